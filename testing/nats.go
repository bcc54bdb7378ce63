package testing

import (
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	serverReadyTimeout = 5 * time.Second
	clientTimeout      = 2 * time.Second
)

// StartEmbeddedNATS starts an in-process NATS server with JetStream and a
// connected client.
//
// The server listens on a random local port and keeps JetStream data in
// t.TempDir(). Client and server are shut down when the test ends.
//
// Parameters:
//   - t: Test whose lifetime bounds the server
//
// Returns:
//   - *server.Server: The server, e.g. for ClientURL()
//   - *nats.Conn: A client connected to it
//
// Example:
//
//	func TestPublisher(t *testing.T) {
//	    _, nc := hypetest.StartEmbeddedNATS(t)
//	    pub, err := report.NewNATSPublisher(nc, report.WithSubject("hype.reports"))
//	    // ...
//	}
func StartEmbeddedNATS(t *testing.T) (*server.Server, *nats.Conn) {
	t.Helper()

	ns := startServer(t)
	nc := Connect(t, ns.ClientURL())

	return ns, nc
}

func startServer(t *testing.T) *server.Server {
	t.Helper()

	ns, err := server.NewServer(&server.Options{
		Host:      "127.0.0.1",
		Port:      -1,
		JetStream: true,
		StoreDir:  t.TempDir(),
		NoLog:     true,
		NoSigs:    true,
	})
	if err != nil {
		t.Fatalf("create embedded NATS server: %v", err)
	}

	go ns.Start()
	if !ns.ReadyForConnections(serverReadyTimeout) {
		ns.Shutdown()
		t.Fatal("embedded NATS server not ready")
	}

	t.Cleanup(func() {
		ns.Shutdown()
		ns.WaitForShutdown()
	})

	return ns
}

// Connect opens an extra client connection to url, closed when the test ends.
func Connect(t *testing.T, url string) *nats.Conn {
	t.Helper()

	nc, err := nats.Connect(url,
		nats.Name(t.Name()),
		nats.Timeout(clientTimeout),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(3),
	)
	if err != nil {
		t.Fatalf("connect to %s: %v", url, err)
	}
	t.Cleanup(nc.Close)

	return nc
}

// CreateJetStreamKV creates a memory-backed JetStream KV bucket.
//
// Useful for pre-creating the bucket a report publisher writes to, or for
// reading back what it stored.
//
// Example:
//
//	kv := hypetest.CreateJetStreamKV(t, nc, "hype-reports")
//	entry, err := kv.Get(t.Context(), "latest")
func CreateJetStreamKV(t *testing.T, nc *nats.Conn, bucketName string) jetstream.KeyValue {
	t.Helper()

	js, err := jetstream.New(nc)
	if err != nil {
		t.Fatalf("jetstream context: %v", err)
	}

	kv, err := js.CreateKeyValue(t.Context(), jetstream.KeyValueConfig{
		Bucket:      bucketName,
		Description: "test bucket " + bucketName,
		Storage:     jetstream.MemoryStorage,
		Replicas:    1,
	})
	if err != nil {
		t.Fatalf("create KV bucket %s: %v", bucketName, err)
	}

	return kv
}

// CollectMessages subscribes to subject and returns a function that waits
// for n messages.
//
// The subscription is flushed before CollectMessages returns, so anything
// published afterwards is received. The wait function fails the test when
// fewer than n messages arrive within timeout.
//
// Example:
//
//	wait := hypetest.CollectMessages(t, nc, "hype.reports")
//	// ... publish ...
//	msgs := wait(1, 2*time.Second)
func CollectMessages(t *testing.T, nc *nats.Conn, subject string) func(n int, timeout time.Duration) []*nats.Msg {
	t.Helper()

	sub, err := nc.SubscribeSync(subject)
	if err != nil {
		t.Fatalf("subscribe %s: %v", subject, err)
	}
	if err := nc.Flush(); err != nil {
		t.Fatalf("flush subscription %s: %v", subject, err)
	}
	t.Cleanup(func() { _ = sub.Unsubscribe() })

	return func(n int, timeout time.Duration) []*nats.Msg {
		t.Helper()

		deadline := time.Now().Add(timeout)
		msgs := make([]*nats.Msg, 0, n)
		for len(msgs) < n {
			msg, err := sub.NextMsg(time.Until(deadline))
			if err != nil {
				t.Fatalf("received %d of %d messages on %s: %v", len(msgs), n, subject, err)
			}
			msgs = append(msgs, msg)
		}

		return msgs
	}
}
