package currency

import (
	"sync"
)

// Event topics published by a [RateCache].
const (
	TopicFetchingRates = "fetching-exchange-rates"
	TopicRateChange    = "exchange-rate-change"
)

// RateChangeTopic returns the per-currency topic published when the rate of
// code changes, e.g. "exchange-rate-change-USD".
func RateChangeTopic(code string) string {
	return TopicRateChange + "-" + normCode(code)
}

// FetchingRatesEvent is the payload of [TopicFetchingRates].
type FetchingRatesEvent struct {
	Fetch *Fetch
}

// RateChangeEvent is the payload of [TopicRateChange].
type RateChangeEvent struct {
	Changed []string
}

// CurrencyRateChangeEvent is the payload of a [RateChangeTopic] topic.
// HadPrevious is false when the currency had no rate before the change.
type CurrencyRateChangeEvent struct {
	Code        string
	Previous    float64
	HadPrevious bool
}

// Event is a message delivered to subscribers.
type Event struct {
	Topic   string
	Payload any
}

// Handler receives events. Handlers run synchronously on the publishing
// goroutine, in subscription order, and must not block.
type Handler func(Event)

// Events is an in-process publish/subscribe hub keyed by topic.
// The zero value is ready to use and safe for concurrent use.
type Events struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string][]subscription
}

type subscription struct {
	id uint64
	fn Handler
}

// Subscribe registers fn for topic and returns a function removing it.
func (e *Events) Subscribe(topic string, fn Handler) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.subs == nil {
		e.subs = make(map[string][]subscription)
	}
	e.nextID++
	id := e.nextID
	e.subs[topic] = append(e.subs[topic], subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { e.remove(topic, id) })
	}
}

func (e *Events) remove(topic string, id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	list := e.subs[topic]
	for i, s := range list {
		if s.id == id {
			e.subs[topic] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(e.subs[topic]) == 0 {
		delete(e.subs, topic)
	}
}

// Publish delivers payload to every handler subscribed to topic.
func (e *Events) Publish(topic string, payload any) {
	e.mu.RLock()
	list := e.subs[topic]
	e.mu.RUnlock()

	ev := Event{Topic: topic, Payload: payload}
	for _, s := range list {
		s.fn(ev)
	}
}
