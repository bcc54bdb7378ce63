// Package natsutil holds NATS client helpers for the report publisher:
// error classification and retry pacing.
package natsutil

import (
	"errors"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// transient lists client errors that may clear up on a later attempt.
var transient = []error{
	nats.ErrTimeout,
	nats.ErrNoServers,
	nats.ErrDisconnected,
	nats.ErrConnectionReconnecting,
	jetstream.ErrNoStreamResponse,
}

// IsConnectivityError reports whether err is a transient connectivity
// failure (timeouts, missing servers, reconnects, refused dials).
//
// The report publisher retries only these errors.
//
// Parameters:
//   - err: Error to check
//
// Returns:
//   - bool: true if a retry may succeed
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range transient {
		if errors.Is(err, target) {
			return true
		}
	}

	msg := err.Error()

	return strings.Contains(msg, "connection refused") || strings.Contains(msg, "i/o timeout")
}

// IsClosed reports whether err means the connection is permanently closed.
func IsClosed(err error) bool {
	return errors.Is(err, nats.ErrConnectionClosed) || errors.Is(err, nats.ErrConnectionDraining)
}
