package rpc

import (
	"context"
	"errors"

	dErrors "assurance/pkg/domain-errors"
	platformrpc "assurance/pkg/platform/rpc"
)

// mapRPCError classifies a command failure for service. A remote business
// refusal keeps the remote message verbatim; availability problems never
// read as a miss.
func mapRPCError(service string, err error) error {
	if err == nil {
		return nil
	}
	var remote *platformrpc.RemoteError
	var transport *platformrpc.TransportError
	switch {
	case errors.Is(err, platformrpc.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodeTimeout, service+" service did not reply in time")
	case errors.Is(err, context.Canceled):
		return dErrors.Wrap(err, dErrors.CodeCancelled, "request cancelled")
	case errors.As(err, &transport):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, service+" service unavailable")
	case errors.As(err, &remote):
		switch remote.Code {
		case platformrpc.RemoteCodeConflict:
			return dErrors.Wrap(err, dErrors.CodeConflict, remote.Message)
		case platformrpc.RemoteCodeRejected:
			return dErrors.Wrap(err, dErrors.CodeDownstreamRejected, remote.Message)
		case platformrpc.RemoteCodeInternal:
			return dErrors.Wrap(err, dErrors.CodeUnavailable, service+" service failed")
		default:
			return dErrors.Wrap(err, dErrors.CodeInternal, service+" service does not support the command")
		}
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "unexpected "+service+" service reply")
	}
}
