package currency

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RateCacheConfig holds the collaborators of a [RateCache].
// Only Registry is required.
type RateCacheConfig struct {
	Registry *Registry

	// Source is queried by [RateCache.Fetch]. A cache without a source can
	// still be fed through [RateCache.Replace].
	Source RateSource

	// WalletCurrencies lists the supported wallet currencies; the pivot
	// coin is picked from it by [Registry.PivotCoin].
	WalletCurrencies []string

	Events  *Events
	Logger  *zap.Logger
	Metrics *Metrics
}

// RateCache maps currency codes to exchange rates relative to a pivot coin.
// The table is replaced wholesale on every successful fetch; readers always
// observe a complete table.
// RateCache is safe for concurrent use.
type RateCache struct {
	registry  *Registry
	source    RateSource
	supported []string
	events    *Events
	log       *zap.Logger
	metrics   *Metrics

	mu    sync.RWMutex
	rates map[string]float64
}

// NewRateCache returns an empty rate cache.
func NewRateCache(cfg RateCacheConfig) *RateCache {
	c := &RateCache{
		registry:  cfg.Registry,
		source:    cfg.Source,
		supported: append([]string(nil), cfg.WalletCurrencies...),
		events:    cfg.Events,
		log:       cfg.Logger,
		metrics:   cfg.Metrics,
		rates:     map[string]float64{},
	}
	if c.registry == nil {
		c.registry = NewRegistry()
	}
	if c.events == nil {
		c.events = &Events{}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Events returns the hub the cache publishes to.
func (c *RateCache) Events() *Events {
	return c.events
}

// Registry returns the registry used to normalise currency codes.
func (c *RateCache) Registry() *Registry {
	return c.registry
}

// ExchangeRate returns the rate of code against the pivot coin.
// Wallet currencies are looked up by their mainnet code; fiat codes as-is.
// The second result is false when the cache holds no usable rate.
func (c *RateCache) ExchangeRate(code string) (float64, bool) {
	cur := normCode(code)
	if !c.registry.IsFiat(cur) {
		cur = c.registry.MainnetCode(cur)
	}
	return c.rate(cur)
}

func (c *RateCache) rate(code string) (float64, bool) {
	c.mu.RLock()
	v, ok := c.rates[code]
	c.mu.RUnlock()
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// ExchangeRates returns a copy of the current table.
func (c *RateCache) ExchangeRates() map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]float64, len(c.rates))
	for k, v := range c.rates {
		out[k] = v
	}
	return out
}

// Replace installs table as the new exchange rate table, with the pivot's
// own rate set to 1, and publishes change events.
// It returns the sorted codes whose rate changed, were added or were removed.
//
// When any code changed, Replace publishes one [TopicRateChange] event
// followed by one [RateChangeTopic] event per changed code carrying its
// previous value. Replace publishes nothing when the table is unchanged.
func (c *RateCache) Replace(table map[string]float64, pivot string) []string {
	next := make(map[string]float64, len(table)+1)
	for code, v := range table {
		next[normCode(code)] = v
	}
	if pivot != "" {
		next[c.registry.MainnetCode(pivot)] = 1
	}

	c.mu.Lock()
	prev := c.rates
	c.rates = next
	c.mu.Unlock()

	changed := diffRates(prev, next)
	c.metrics.observeTable(len(next), len(changed))
	if len(changed) == 0 {
		return nil
	}

	c.log.Debug("exchange rates changed", zap.Strings("changed", changed))
	c.events.Publish(TopicRateChange, RateChangeEvent{Changed: changed})
	for _, code := range changed {
		p, had := prev[code]
		c.events.Publish(RateChangeTopic(code), CurrencyRateChangeEvent{
			Code:        code,
			Previous:    p,
			HadPrevious: had,
		})
	}
	return changed
}

func diffRates(prev, next map[string]float64) []string {
	var changed []string
	for code, v := range next {
		if p, ok := prev[code]; !ok || p != v {
			changed = append(changed, code)
		}
	}
	for code := range prev {
		if _, ok := next[code]; !ok {
			changed = append(changed, code)
		}
	}
	sort.Strings(changed)
	return changed
}

// Fetch is a handle on an in-flight exchange rate request started by
// [RateCache.Fetch].
type Fetch struct {
	ID      uuid.UUID
	Pivot   string
	Started time.Time

	done    chan struct{}
	err     error
	changed []string
}

func newFetch() *Fetch {
	return &Fetch{
		ID:      uuid.New(),
		Started: time.Now(),
		done:    make(chan struct{}),
	}
}

func (f *Fetch) finish(changed []string, err error) {
	f.changed = changed
	f.err = err
	close(f.done)
}

// Done returns a channel closed when the request completes.
func (f *Fetch) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the request completes or ctx is done.
func (f *Fetch) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the outcome of a completed request, or nil while it is in flight.
func (f *Fetch) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}

// Changed returns the codes changed by a completed request.
func (f *Fetch) Changed() []string {
	select {
	case <-f.done:
		return f.changed
	default:
		return nil
	}
}

// Fetch requests a fresh table from the source in the background, keyed on
// the pivot coin, and returns a handle on the request. A
// [TopicFetchingRates] event carrying the handle is published before the
// request starts. On success the table is installed with [RateCache.Replace];
// on failure the previous table is left untouched.
//
// Overlapping fetches are neither deduplicated nor cancelled. Cancellation
// and timeouts are left to ctx and the source.
func (c *RateCache) Fetch(ctx context.Context) *Fetch {
	f := newFetch()

	pivot, err := c.registry.PivotCoin(c.supported)
	if err != nil {
		f.finish(nil, err)
		return f
	}
	if c.source == nil {
		f.finish(nil, errNoRateSource)
		return f
	}
	f.Pivot = pivot

	c.events.Publish(TopicFetchingRates, FetchingRatesEvent{Fetch: f})
	c.log.Debug("fetching exchange rates", zap.String("fetch_id", f.ID.String()), zap.String("pivot", pivot))

	go func() {
		table, err := c.source.Rates(ctx, pivot)
		if err != nil {
			c.metrics.observeFetch(err)
			c.log.Warn("exchange rate fetch failed",
				zap.String("fetch_id", f.ID.String()),
				zap.String("pivot", pivot),
				zap.Error(err),
			)
			f.finish(nil, err)
			return
		}
		c.metrics.observeFetch(nil)
		f.finish(c.Replace(table, pivot), nil)
	}()
	return f
}

// Refresh is like [RateCache.Fetch] but blocks until the request completes.
func (c *RateCache) Refresh(ctx context.Context) error {
	return c.Fetch(ctx).Wait(ctx)
}
