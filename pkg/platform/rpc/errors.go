package rpc

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout means no correlated reply arrived within the client timeout.
	ErrTimeout = errors.New("rpc: no reply before deadline")

	// ErrEmptyReply means a command that must return a value answered null.
	ErrEmptyReply = errors.New("rpc: empty reply")

	// ErrMalformedReply means the reply payload could not be decoded.
	ErrMalformedReply = errors.New("rpc: malformed reply")
)

// Remote error codes set by Server.
const (
	RemoteCodeRejected       = "rejected"
	RemoteCodeConflict       = "conflict"
	RemoteCodeUnknownCommand = "unknown_command"
	RemoteCodeInternal       = "internal"
)

// TransportError means the command could not be delivered to its channel.
type TransportError struct {
	Channel string
	Command string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rpc: %s on %s: %v", e.Command, e.Channel, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError is a failure reported by the remote handler. Message is the
// handler's own text and is kept verbatim.
type RemoteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *RemoteError) Error() string {
	return e.Message
}

// IsConflict reports whether err is a remote uniqueness conflict.
func IsConflict(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Code == RemoteCodeConflict
}
