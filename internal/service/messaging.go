package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/oggyb/twilio-bridge/internal/cache"
	"github.com/oggyb/twilio-bridge/internal/metrics"
	"github.com/oggyb/twilio-bridge/internal/sms"
	"golang.org/x/sync/errgroup"
)

// SendResult is what the service reports back after handing a message to Twilio.
type SendResult struct {
	// Accepted is true when Twilio answered with a 2xx status.
	Accepted   bool
	StatusCode int
	SID        string
	Raw        string
}

// LookupResult is one entry of a batch lookup.
type LookupResult struct {
	Number string
	Result *sms.LookupResponse
	Err    error
}

// InboundMessage is an SMS Twilio delivered to our webhook.
type InboundMessage struct {
	From      string
	To        string
	Body      string
	MediaURLs []string
}

type MessagingService interface {
	Send(ctx context.Context, msg sms.OutgoingSMS) (*SendResult, error)
	Lookup(ctx context.Context, number string) (*sms.LookupResponse, error)
	LookupMany(ctx context.Context, numbers []string) ([]LookupResult, error)
	Reply(ctx context.Context, in InboundMessage) *sms.MarkupResponse
	Health(ctx context.Context) error
}

// Options carries the tunables injected from config at startup.
type Options struct {
	AccountID       string
	ReplyMessage    string
	CacheTTL        time.Duration
	MaxWorkers      int
	ProviderTimeout time.Duration
}

type messagingService struct {
	client sms.Client
	cache  cache.Cache // nil disables caching
	logger *slog.Logger
	opts   Options
}

// NewMessagingService creates a messaging service around the provider client.
// A nil cache turns off lookup caching and sent-message counters.
func NewMessagingService(client sms.Client, c cache.Cache, logger *slog.Logger, opts Options) MessagingService {
	// Apply sane defaults if config values are missing or invalid.
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 4
	}
	if opts.ProviderTimeout <= 0 {
		opts.ProviderTimeout = 10 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 24 * time.Hour
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &messagingService{
		client: client,
		cache:  c,
		logger: logger.With("component", "messaging"),
		opts:   opts,
	}
}

// Send hands msg to Twilio and reads the reply. A non-2xx reply is not an
// error here: it is reported through SendResult.Accepted.
func (s *messagingService) Send(ctx context.Context, msg sms.OutgoingSMS) (*SendResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.ProviderTimeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.Send(ctx, msg)
	metrics.ProviderRequestDuration.WithLabelValues("send").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MessagesSent.WithLabelValues("error").Inc()
		s.logger.ErrorContext(ctx, "send failed", "to", msg.To, "error", err)
		return nil, fmt.Errorf("twilio send failed: %w", err)
	}
	defer resp.Body.Close()

	rawBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.MessagesSent.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to read twilio response: %w", err)
	}

	res := &SendResult{
		StatusCode: resp.StatusCode,
		Accepted:   resp.StatusCode >= 200 && resp.StatusCode < 300,
		Raw:        string(rawBytes),
	}

	// The sid is informational; an unparseable body leaves it empty.
	var parsed struct {
		SID string `json:"sid"`
	}
	if json.Unmarshal(rawBytes, &parsed) == nil {
		res.SID = parsed.SID
	}

	if !res.Accepted {
		metrics.MessagesSent.WithLabelValues("rejected").Inc()
		s.logger.WarnContext(ctx, "twilio rejected message", "to", msg.To, "status_code", res.StatusCode)
		return res, nil
	}

	metrics.MessagesSent.WithLabelValues("accepted").Inc()
	s.logger.InfoContext(ctx, "message accepted", "to", msg.To, "sid", res.SID)

	if s.cache != nil {
		if _, err := s.cache.Incr(ctx, cache.SentMessages.Key(s.opts.AccountID)); err != nil {
			s.logger.WarnContext(ctx, "failed to bump sent counter", "error", err)
		}
	}

	return res, nil
}

// Lookup returns carrier metadata, served from cache when possible.
func (s *messagingService) Lookup(ctx context.Context, number string) (*sms.LookupResponse, error) {
	key := cache.CarrierLookups.Key(sms.NormalizeNumber(number))

	if cached, ok := s.cachedLookup(ctx, key); ok {
		metrics.Lookups.WithLabelValues("cache_hit").Inc()
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.ProviderTimeout)
	defer cancel()

	start := time.Now()
	res, err := s.client.Lookup(ctx, number)
	metrics.ProviderRequestDuration.WithLabelValues("lookup").Observe(time.Since(start).Seconds())
	if err != nil {
		var nf *sms.NotFoundError
		if errors.As(err, &nf) {
			metrics.Lookups.WithLabelValues("not_found").Inc()
			s.logger.DebugContext(ctx, "lookup not found", "number", number, "cause", nf.Cause())
			return nil, err
		}
		metrics.Lookups.WithLabelValues("error").Inc()
		s.logger.ErrorContext(ctx, "lookup failed", "number", number, "error", err)
		return nil, fmt.Errorf("twilio lookup failed: %w", err)
	}

	metrics.Lookups.WithLabelValues("found").Inc()
	s.storeLookup(ctx, key, res)
	return res, nil
}

func (s *messagingService) cachedLookup(ctx context.Context, key string) (*sms.LookupResponse, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.WarnContext(ctx, "lookup cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var res sms.LookupResponse
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		s.logger.WarnContext(ctx, "dropping corrupt lookup cache entry", "key", key, "error", err)
		_ = s.cache.Del(ctx, key)
		return nil, false
	}
	return &res, true
}

func (s *messagingService) storeLookup(ctx context.Context, key string, res *sms.LookupResponse) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.opts.CacheTTL); err != nil {
		s.logger.WarnContext(ctx, "lookup cache write failed", "key", key, "error", err)
	}
}

// LookupMany looks up every number with at most MaxWorkers requests in
// flight. Results keep the input order; per-number failures are reported in
// LookupResult.Err and only context cancellation fails the whole batch.
func (s *messagingService) LookupMany(ctx context.Context, numbers []string) ([]LookupResult, error) {
	results := make([]LookupResult, len(numbers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.MaxWorkers)

	for i, number := range numbers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.Lookup(gctx, number)
			results[i] = LookupResult{Number: number, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Reply answers an inbound message with the configured reply text.
func (s *messagingService) Reply(ctx context.Context, in InboundMessage) *sms.MarkupResponse {
	metrics.InboundMessages.Inc()
	s.logger.InfoContext(ctx, "inbound message", "from", in.From, "to", in.To, "media", len(in.MediaURLs))

	return s.client.Respond(sms.SMSResponse{Body: s.opts.ReplyMessage})
}

// Health pings the cache when one is configured.
func (s *messagingService) Health(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Ping(ctx)
}
