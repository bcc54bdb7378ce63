package natsutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
)

func TestIsConnectivityError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "timeout", err: nats.ErrTimeout, want: true},
		{name: "wrapped no servers", err: fmt.Errorf("publish: %w", nats.ErrNoServers), want: true},
		{name: "disconnected", err: nats.ErrDisconnected, want: true},
		{name: "refused text", err: errors.New("dial tcp: connection refused"), want: true},
		{name: "closed is permanent", err: nats.ErrConnectionClosed, want: false},
		{name: "bad subject", err: nats.ErrBadSubject, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsConnectivityError(tt.err))
		})
	}
}

func TestIsClosed(t *testing.T) {
	require.True(t, IsClosed(nats.ErrConnectionClosed))
	require.True(t, IsClosed(fmt.Errorf("flush: %w", nats.ErrConnectionDraining)))
	require.False(t, IsClosed(nats.ErrTimeout))
	require.False(t, IsClosed(nil))
}
