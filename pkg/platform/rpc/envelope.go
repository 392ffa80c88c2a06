// Package rpc turns a fire-and-forget command channel into request/reply
// calls with a bounded wait.
//
// A Client publishes an Envelope on a service's command channel and waits for
// the Envelope whose CorrelationID matches, delivered on the client's own
// reply channel. A Server consumes a command channel, dispatches by command
// name and publishes the reply to the requester's ReplyTo channel.
//
// Transports (in-memory, Kafka, Redis lists) only move envelopes; they never
// interpret payloads.
package rpc

import (
	"bytes"
	"encoding/json"
	"time"
)

// Envelope is the unit carried by every transport.
type Envelope struct {
	ID            string            `json:"id"`
	CorrelationID string            `json:"correlation_id,omitempty"`
	Command       string            `json:"command"`
	ReplyTo       string            `json:"reply_to,omitempty"`
	Payload       json.RawMessage   `json:"payload,omitempty"`
	Error         *RemoteError      `json:"error,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
	SentAt        time.Time         `json:"sent_at"`
}

// IsReply reports whether the envelope answers an earlier request.
func (e Envelope) IsReply() bool {
	return e.CorrelationID != ""
}

var nullPayload = []byte("null")

// isEmptyPayload reports whether a reply payload carries no value. Downstream
// handlers answer a lookup miss with null.
func isEmptyPayload(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, nullPayload)
}
