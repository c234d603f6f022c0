package entropy

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Retry defaults for the remote fetch path.
const (
	DefaultRetries    = 3
	DefaultRetryDelay = 2 * time.Second
)

// Origin identifies which path produced a batch of bytes.
type Origin int

const (
	// OriginRemote means the bytes came from the QRNG service.
	OriginRemote Origin = iota
	// OriginFallback means the bytes came from the local generator.
	OriginFallback
)

func (o Origin) String() string {
	switch o {
	case OriginRemote:
		return "remote"
	case OriginFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Result is one satisfied byte request: the bytes plus which path produced
// them, so callers and tests can tell without scraping logs.
type Result struct {
	Bytes  []byte
	Origin Origin
}

// Fetcher is the byte supply a Cache draws from.
type Fetcher interface {
	Fetch(ctx context.Context, n int) Result
}

// Source wraps the remote client with retry and local fallback. Fetch never
// fails from the caller's perspective: after the retry budget is spent the
// fallback generator covers the request.
type Source struct {
	client   *Client
	fallback *Fallback
	retries  int
	delay    time.Duration
	log      *zap.Logger
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithRetries sets the number of remote attempts per fetch.
func WithRetries(n int) SourceOption {
	return func(s *Source) {
		if n > 0 {
			s.retries = n
		}
	}
}

// WithRetryDelay sets the wait between remote attempts.
func WithRetryDelay(d time.Duration) SourceOption {
	return func(s *Source) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithLogger sets the logger for fetch events.
func WithLogger(log *zap.Logger) SourceOption {
	return func(s *Source) {
		if log != nil {
			s.log = log
		}
	}
}

// NewSource creates an entropy source over the given client and fallback.
func NewSource(client *Client, fallback *Fallback, opts ...SourceOption) *Source {
	s := &Source{
		client:   client,
		fallback: fallback,
		retries:  DefaultRetries,
		delay:    DefaultRetryDelay,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Fetch returns exactly n bytes. It tries the remote service up to the retry
// budget, waiting the configured delay between attempts, then falls back to
// the local generator. The returned Result records which path won.
func (s *Source) Fetch(ctx context.Context, n int) Result {
	// Correlates the attempts of one fetch in the logs.
	fetchID := uuid.NewString()[:8]

	var lastErr error
	for attempt := 1; attempt <= s.retries; attempt++ {
		if attempt > 1 {
			s.log.Debug("retrying qrng fetch",
				zap.String("fetch_id", fetchID),
				zap.Int("attempt", attempt),
				zap.Duration("delay", s.delay))
			time.Sleep(s.delay)
		}

		buf, err := s.client.FetchBytes(ctx, n)
		if err == nil {
			s.log.Debug("qrng fetch succeeded",
				zap.String("fetch_id", fetchID),
				zap.Int("bytes", n),
				zap.Int("attempt", attempt))
			return Result{Bytes: buf, Origin: OriginRemote}
		}

		lastErr = err
		s.log.Warn("qrng fetch attempt failed",
			zap.String("fetch_id", fetchID),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}

	s.log.Warn("qrng unavailable, falling back to local generator",
		zap.String("fetch_id", fetchID),
		zap.Int("bytes", n),
		zap.Error(lastErr))

	return Result{Bytes: s.fallback.Bytes(n), Origin: OriginFallback}
}
