package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartEmbeddedNATS(t *testing.T) {
	ns, nc := StartEmbeddedNATS(t)

	require.True(t, nc.IsConnected())
	require.True(t, ns.JetStreamEnabled())

	other := Connect(t, ns.ClientURL())
	require.True(t, other.IsConnected())
}

func TestCreateJetStreamKV(t *testing.T) {
	_, nc := StartEmbeddedNATS(t)

	kv := CreateJetStreamKV(t, nc, "hype-test")
	require.Equal(t, "hype-test", kv.Bucket())

	_, err := kv.Put(t.Context(), "latest", []byte("{}"))
	require.NoError(t, err)

	entry, err := kv.Get(t.Context(), "latest")
	require.NoError(t, err)
	require.Equal(t, []byte("{}"), entry.Value())
}

func TestCollectMessages(t *testing.T) {
	_, nc := StartEmbeddedNATS(t)

	wait := CollectMessages(t, nc, "hype.>")
	require.NoError(t, nc.Publish("hype.reports", []byte("a")))
	require.NoError(t, nc.Publish("hype.other", []byte("b")))

	msgs := wait(2, 2*time.Second)
	require.Equal(t, "hype.reports", msgs[0].Subject)
	require.Equal(t, []byte("b"), msgs[1].Data)
}
