package testutil

import (
	"net/http"

	"assurance/pkg/requestcontext"
)

// WithUserID adds an authenticated subject to the request context.
// This simulates what the auth middleware does for authenticated requests.
func WithUserID(req *http.Request, userID string) *http.Request {
	return req.WithContext(requestcontext.WithUserID(req.Context(), userID))
}

// WithRequestID adds a request id to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
