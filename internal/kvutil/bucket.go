// Package kvutil provides utilities for storing reports in NATS JetStream KeyValue buckets.
package kvutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// DefaultRetries is the attempt count used when EnsureBucket gets maxRetries <= 0.
const DefaultRetries = 3

// LatestKey is the key every report is also stored under.
const LatestKey = "latest"

// maxHistory is the JetStream limit on revisions kept per key.
const maxHistory = 64

// BucketConfig returns the KV configuration for a report bucket.
//
// Parameters:
//   - bucket: Bucket name
//   - history: Revisions kept per key (values below 1 mean 1, capped at 64)
//
// Returns:
//   - jetstream.KeyValueConfig: File-backed bucket configuration
func BucketConfig(bucket string, history int) jetstream.KeyValueConfig {
	history = max(1, min(history, maxHistory))

	return jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "hypergraph partitioning reports",
		History:     uint8(history), //nolint:gosec // bounded to [1, 64] above
		Storage:     jetstream.FileStorage,
	}
}

// EnsureBucket creates or opens a KV bucket with retry logic.
//
// Concurrent runs publishing to the same bucket may race on creation; a
// jetstream.ErrBucketExists result opens the existing bucket instead. Other
// failures are retried with exponential backoff.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - js: JetStream context
//   - config: KV bucket configuration
//   - maxRetries: Maximum number of attempts (DefaultRetries if <= 0)
//
// Returns:
//   - jetstream.KeyValue: The KV bucket instance
//   - error: Any error that occurred after all retries
//
// Example:
//
//	kv, err := kvutil.EnsureBucket(ctx, js, kvutil.BucketConfig("hype-reports", 10), 0)
func EnsureBucket(
	ctx context.Context,
	js jetstream.JetStream,
	config jetstream.KeyValueConfig,
	maxRetries int,
) (jetstream.KeyValue, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultRetries
	}

	var lastErr error

	for attempt := range maxRetries {
		kv, err := js.CreateKeyValue(ctx, config)
		if err == nil {
			return kv, nil
		}

		if errors.Is(err, jetstream.ErrBucketExists) {
			kv, err := js.KeyValue(ctx, config.Bucket)
			if err == nil {
				return kv, nil
			}
			lastErr = fmt.Errorf("bucket exists but failed to open: %w", err)
		} else {
			lastErr = err
		}

		if ctx.Err() != nil {
			return nil, fmt.Errorf("context cancelled during KV bucket creation: %w", ctx.Err())
		}

		// 10ms, 20ms, 40ms...
		if attempt < maxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * 10 * time.Millisecond //nolint:gosec // attempt is bounded by maxRetries
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("failed to create/open KV bucket %s after %d attempts: %w",
		config.Bucket, maxRetries, lastErr)
}

// ReportKey turns an input name into a valid KV key.
//
// KV keys may only contain letters, digits and "-_/=."; every other rune is
// replaced by '_'. Leading and trailing dots are trimmed since NATS rejects
// them. An empty result maps to LatestKey.
//
// Example:
//
//	kvutil.ReportKey("data/graphs/ibm01.hgr") // "data/graphs/ibm01.hgr"
//	kvutil.ReportKey("my graph (v2).txt")     // "my_graph__v2_.txt"
func ReportKey(name string) string {
	key := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '/', r == '=', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	key = strings.Trim(key, ".")

	if key == "" {
		return LatestKey
	}

	return key
}
