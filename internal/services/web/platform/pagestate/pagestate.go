// Package pagestate keeps the short-lived state of rendered page instances.
//
// A page instance is created by a fresh navigation, identified by a random id
// carried in the page's forms, and forgotten after it has been idle for the
// configured TTL.
package pagestate

import (
	"container/list"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultTTL is the idle lifetime of a page instance.
	DefaultTTL = 30 * time.Minute
	// DefaultMaxEntries caps the instances held by one store.
	DefaultMaxEntries = 10000
)

type config struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// Option customizes a Store.
type Option func(*config)

// WithTTL sets the idle lifetime of instances. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithMaxEntries caps how many instances the store keeps. When the cap is
// reached the least recently used instance is dropped.
func WithMaxEntries(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

type entry[T any] struct {
	id       string
	value    T
	lastSeen time.Time
}

// Store holds page instances of one page type.
type Store[T any] struct {
	mu        sync.Mutex
	cfg       config
	entries   map[string]*list.Element
	order     *list.List
	lastSweep time.Time
}

// New builds an empty store.
func New[T any](opts ...Option) *Store[T] {
	cfg := config{ttl: DefaultTTL, maxEntries: DefaultMaxEntries, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Store[T]{
		cfg:     cfg,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

// Acquire runs fn against the live instance id. When id is unknown or expired
// a new instance is seeded first. It returns the id of the instance fn saw and
// whether that instance was created by this call. fn runs under the store
// lock, so the value it observes is consistent with any mutation it applies.
func (s *Store[T]) Acquire(id string, seed func() (T, error), fn func(*T)) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.cfg.now()
	s.sweepLocked(now)

	if el, ok := s.liveLocked(id, now); ok {
		e := el.Value.(*entry[T])
		e.lastSeen = now
		s.order.MoveToFront(el)
		if fn != nil {
			fn(&e.value)
		}
		return e.id, false, nil
	}

	value, err := seed()
	if err != nil {
		return "", false, err
	}
	e := &entry[T]{id: uuid.NewString(), value: value, lastSeen: now}
	s.entries[e.id] = s.order.PushFront(e)
	for s.order.Len() > s.cfg.maxEntries {
		s.removeLocked(s.order.Back())
	}
	if fn != nil {
		fn(&e.value)
	}
	return e.id, true, nil
}

// Update runs fn against a live instance. It reports false when the instance
// is unknown or expired.
func (s *Store[T]) Update(id string, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.cfg.now()
	s.sweepLocked(now)

	el, ok := s.liveLocked(id, now)
	if !ok {
		return false
	}
	e := el.Value.(*entry[T])
	e.lastSeen = now
	s.order.MoveToFront(el)
	if fn != nil {
		fn(&e.value)
	}
	return true
}

// Delete forgets an instance.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.entries[id]; ok {
		s.removeLocked(el)
	}
}

// Len reports how many instances are held, expired ones included until the
// next sweep.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

func (s *Store[T]) liveLocked(id string, now time.Time) (*list.Element, bool) {
	if id == "" {
		return nil, false
	}
	el, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	if now.Sub(el.Value.(*entry[T]).lastSeen) > s.cfg.ttl {
		s.removeLocked(el)
		return nil, false
	}
	return el, true
}

// sweepLocked drops expired instances at most once per TTL/4.
func (s *Store[T]) sweepLocked(now time.Time) {
	if now.Sub(s.lastSweep) < s.cfg.ttl/4 {
		return
	}
	s.lastSweep = now
	for el := s.order.Back(); el != nil; {
		prev := el.Prev()
		if now.Sub(el.Value.(*entry[T]).lastSeen) <= s.cfg.ttl {
			break
		}
		s.removeLocked(el)
		el = prev
	}
}

func (s *Store[T]) removeLocked(el *list.Element) {
	if el == nil {
		return
	}
	delete(s.entries, el.Value.(*entry[T]).id)
	s.order.Remove(el)
}
