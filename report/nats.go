package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/arloliu/hype/internal/kvutil"
	"github.com/arloliu/hype/internal/logging"
	"github.com/arloliu/hype/internal/natsutil"
	"github.com/arloliu/hype/types"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher delivers reports to an external system.
type Publisher interface {
	Publish(ctx context.Context, r *Report) error
}

// Header names set on published report messages.
const (
	HeaderContentType = "Content-Type"
	HeaderInput       = "Hype-Input"
	HeaderStrategy    = "Hype-Strategy"
)

const (
	defaultPublishTimeout = 5 * time.Second
	defaultPublishRetries = 3
	defaultBucketHistory  = 10
)

// NATSPublisher publishes JSON reports to a NATS subject and/or stores them
// in a JetStream KV bucket.
//
// Each report is stored twice in the bucket: under a key derived from the
// report input (see kvutil.ReportKey) and under kvutil.LatestKey.
type NATSPublisher struct {
	nc      *nats.Conn
	subject string
	bucket  string
	history int
	timeout time.Duration
	retries int
	logger  types.Logger

	mu sync.Mutex
	kv jetstream.KeyValue
}

var _ Publisher = (*NATSPublisher)(nil)

// PublisherOption configures a NATSPublisher.
type PublisherOption func(*NATSPublisher)

// WithSubject sets the subject reports are published to.
func WithSubject(subject string) PublisherOption {
	return func(p *NATSPublisher) {
		p.subject = subject
	}
}

// WithBucket sets the JetStream KV bucket reports are stored in.
//
// Parameters:
//   - bucket: Bucket name (created on first publish if missing)
//   - history: Revisions kept per key (0 for default 10)
func WithBucket(bucket string, history int) PublisherOption {
	return func(p *NATSPublisher) {
		p.bucket = bucket
		if history > 0 {
			p.history = history
		}
	}
}

// WithTimeout bounds each Publish call (default 5s).
func WithTimeout(timeout time.Duration) PublisherOption {
	return func(p *NATSPublisher) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// WithRetries sets how many times a publish is attempted on connectivity
// errors (default 3).
func WithRetries(retries int) PublisherOption {
	return func(p *NATSPublisher) {
		if retries > 0 {
			p.retries = retries
		}
	}
}

// WithPublisherLogger sets the publisher logger.
func WithPublisherLogger(logger types.Logger) PublisherOption {
	return func(p *NATSPublisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewNATSPublisher creates a publisher on an existing connection.
//
// At least one of WithSubject and WithBucket is required.
//
// Parameters:
//   - nc: Connected NATS client (owned by the caller)
//   - opts: Publisher options
//
// Returns:
//   - *NATSPublisher: Publisher ready for use
//   - error: types.ErrInvalidConfig when nc is nil or no destination is set
//
// Example:
//
//	pub, err := report.NewNATSPublisher(nc,
//	    report.WithSubject("hype.reports"),
//	    report.WithBucket("hype-reports", 0),
//	)
//	if err != nil {
//	    return err
//	}
//	err = pub.Publish(ctx, rep)
func NewNATSPublisher(nc *nats.Conn, opts ...PublisherOption) (*NATSPublisher, error) {
	if nc == nil {
		return nil, fmt.Errorf("%w: nats connection is required", types.ErrInvalidConfig)
	}

	p := &NATSPublisher{
		nc:      nc,
		history: defaultBucketHistory,
		timeout: defaultPublishTimeout,
		retries: defaultPublishRetries,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	if p.subject == "" && p.bucket == "" {
		return nil, fmt.Errorf("%w: report publisher needs a subject or a bucket", types.ErrInvalidConfig)
	}

	return p, nil
}

// Publish sends r to the configured subject and bucket.
//
// Connectivity errors are retried with a short backoff. Any failure is
// returned wrapped in types.ErrPublishFailed.
func (p *NATSPublisher) Publish(ctx context.Context, r *Report) error {
	payload, err := Encode(r)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrPublishFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if p.subject != "" {
		if err := p.retry(ctx, func() error { return p.publishMsg(ctx, r, payload) }); err != nil {
			return fmt.Errorf("%w: subject %s: %w", types.ErrPublishFailed, p.subject, err)
		}
		p.logger.Debug("report published", "subject", p.subject, "bytes", len(payload))
	}

	if p.bucket != "" {
		if err := p.retry(ctx, func() error { return p.store(ctx, r, payload) }); err != nil {
			return fmt.Errorf("%w: bucket %s: %w", types.ErrPublishFailed, p.bucket, err)
		}
		p.logger.Debug("report stored", "bucket", p.bucket, "key", kvutil.ReportKey(r.Input))
	}

	return nil
}

func (p *NATSPublisher) publishMsg(ctx context.Context, r *Report, payload []byte) error {
	msg := nats.NewMsg(p.subject)
	msg.Header.Set(HeaderContentType, "application/json")
	msg.Header.Set(HeaderStrategy, r.Strategy)
	if r.Input != "" {
		msg.Header.Set(HeaderInput, r.Input)
	}
	msg.Data = payload

	if err := p.nc.PublishMsg(msg); err != nil {
		return err
	}

	return p.nc.FlushWithContext(ctx)
}

func (p *NATSPublisher) store(ctx context.Context, r *Report, payload []byte) error {
	kv, err := p.bucketKV(ctx)
	if err != nil {
		return err
	}

	if key := kvutil.ReportKey(r.Input); key != kvutil.LatestKey {
		if _, err := kv.Put(ctx, key, payload); err != nil {
			return err
		}
	}
	_, err = kv.Put(ctx, kvutil.LatestKey, payload)

	return err
}

func (p *NATSPublisher) bucketKV(ctx context.Context) (jetstream.KeyValue, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.kv != nil {
		return p.kv, nil
	}

	js, err := jetstream.New(p.nc)
	if err != nil {
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	kv, err := kvutil.EnsureBucket(ctx, js, kvutil.BucketConfig(p.bucket, p.history), 0)
	if err != nil {
		return nil, err
	}
	p.kv = kv

	return kv, nil
}

func (p *NATSPublisher) retry(ctx context.Context, fn func() error) error {
	var (
		err   error
		delay time.Duration
	)
	for attempt := range p.retries {
		if err = fn(); err == nil {
			return nil
		}
		if natsutil.IsClosed(err) {
			return fmt.Errorf("connection closed: %w", err)
		}
		if !natsutil.IsConnectivityError(err) || attempt == p.retries-1 {
			return err
		}

		delay = natsutil.NextBackoff(delay, natsutil.DefaultBackoffBase,
			natsutil.DefaultBackoffMultiplier, natsutil.DefaultBackoffCap, nil)
		p.logger.Warn("report publish failed, retrying", "attempt", attempt+1, "delay", delay, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return err
}
