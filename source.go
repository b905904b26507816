package currency

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/segmentio/encoding/json"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

var errNoRateSource = errors.New("no exchange rate source configured")

// RateSource provides exchange rate tables keyed on a pivot coin.
type RateSource interface {
	// Rates returns a table mapping currency codes to the number of units
	// of that currency per one unit of pivot.
	Rates(ctx context.Context, pivot string) (map[string]float64, error)
}

// BreakerSettings configures the circuit breaker guarding an [HTTPRateSource].
// A zero ConsecutiveFailures disables the breaker.
type BreakerSettings struct {
	ConsecutiveFailures uint32        `mapstructure:"consecutive_failures"`
	Timeout             time.Duration `mapstructure:"timeout"`
	Interval            time.Duration `mapstructure:"interval"`
	MaxRequests         uint32        `mapstructure:"max_requests"`
}

// HTTPRateSource fetches exchange rates with one GET request per call.
// The endpoint answers with a JSON object mapping codes to numbers.
type HTTPRateSource struct {
	client  *http.Client
	url     string
	breaker *gobreaker.CircuitBreaker[map[string]float64]
	log     *zap.Logger
}

// HTTPRateSourceConfig configures an [HTTPRateSource].
type HTTPRateSourceConfig struct {
	// URL of the endpoint. A "%s" verb is replaced with the escaped pivot
	// code; otherwise the pivot is appended as the last path segment.
	URL     string
	Client  *http.Client
	Breaker BreakerSettings
	Logger  *zap.Logger
}

// NewHTTPRateSource returns a source querying cfg.URL.
func NewHTTPRateSource(cfg HTTPRateSourceConfig) *HTTPRateSource {
	s := &HTTPRateSource{
		client: cfg.Client,
		url:    cfg.URL,
		log:    cfg.Logger,
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: 30 * time.Second}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if cfg.Breaker.ConsecutiveFailures > 0 {
		s.breaker = newRateBreaker(cfg.Breaker, s.log)
	}
	return s
}

func newRateBreaker(bs BreakerSettings, log *zap.Logger) *gobreaker.CircuitBreaker[map[string]float64] {
	threshold := bs.ConsecutiveFailures
	return gobreaker.NewCircuitBreaker[map[string]float64](gobreaker.Settings{
		Name:        "exchange-rates",
		MaxRequests: bs.MaxRequests,
		Interval:    bs.Interval,
		Timeout:     bs.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info("rate source breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
}

// Endpoint returns the URL requested for pivot.
func (s *HTTPRateSource) Endpoint(pivot string) string {
	p := url.PathEscape(normCode(pivot))
	if strings.Contains(s.url, "%s") {
		return fmt.Sprintf(s.url, p)
	}
	return strings.TrimRight(s.url, "/") + "/" + p
}

// Rates implements [RateSource].
// When the breaker is open, Rates fails without issuing a request.
func (s *HTTPRateSource) Rates(ctx context.Context, pivot string) (map[string]float64, error) {
	if s.breaker == nil {
		return s.fetch(ctx, pivot)
	}
	table, err := s.breaker.Execute(func() (map[string]float64, error) {
		return s.fetch(ctx, pivot)
	})
	if err != nil {
		return nil, fmt.Errorf("fetching exchange rates: %w", err)
	}
	return table, nil
}

func (s *HTTPRateSource) fetch(ctx context.Context, pivot string) (map[string]float64, error) {
	endpoint := s.Endpoint(pivot)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var table map[string]float64
	if err := json.Unmarshal(body, &table); err != nil {
		return nil, fmt.Errorf("decoding exchange rates: %w", err)
	}
	if table == nil {
		return nil, fmt.Errorf("decoding exchange rates: empty response")
	}
	s.log.Debug("exchange rates received", zap.String("url", endpoint), zap.Int("count", len(table)))
	return table, nil
}
