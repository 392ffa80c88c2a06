package rpc

import (
	"context"
	"encoding/json"
	"fmt"
)

// Lookup calls a lookup command. A null reply is reported as found == false
// with a nil error, so a miss is never confused with a transport failure.
func Lookup[T any](ctx context.Context, c Caller, command string, payload any) (value T, found bool, err error) {
	raw, err := c.Call(ctx, command, payload)
	if err != nil {
		return value, false, err
	}
	if isEmptyPayload(raw) {
		return value, false, nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false, fmt.Errorf("%w: %s: %v", ErrMalformedReply, command, err)
	}
	return value, true, nil
}

// Invoke calls a command that must answer with a value; a null reply is
// ErrEmptyReply.
func Invoke[T any](ctx context.Context, c Caller, command string, payload any) (T, error) {
	value, found, err := Lookup[T](ctx, c, command, payload)
	if err != nil {
		return value, err
	}
	if !found {
		return value, fmt.Errorf("%w: %s", ErrEmptyReply, command)
	}
	return value, nil
}
