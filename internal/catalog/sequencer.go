package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Token identifies one submission to a Sequencer key.
type Token struct {
	key string
	seq uint64
}

// Sequencer serializes work per resource key. Work for the same key runs
// one at a time in submission order; different keys run concurrently.
type Sequencer struct {
	mu    sync.Mutex
	next  uint64
	lanes map[string]*lane
}

type lane struct {
	sem    *semaphore.Weighted
	latest uint64
	users  int
}

// NewSequencer returns an empty sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{lanes: make(map[string]*lane)}
}

// Do waits for earlier work on key, then runs fn. The token passed to fn
// reports through IsLatest whether a newer submission has been made for
// the same key since this one.
func (s *Sequencer) Do(ctx context.Context, key string, fn func(ctx context.Context, tok Token) error) error {
	s.mu.Lock()
	l, ok := s.lanes[key]
	if !ok {
		l = &lane{sem: semaphore.NewWeighted(1)}
		s.lanes[key] = l
	}
	s.next++
	l.latest = s.next
	l.users++
	tok := Token{key: key, seq: l.latest}
	s.mu.Unlock()

	defer s.release(key, l)

	// Weighted semaphores wake waiters in FIFO order.
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer l.sem.Release(1)

	return fn(ctx, tok)
}

// IsLatest reports whether tok is the most recent submission for its key.
func (s *Sequencer) IsLatest(tok Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lanes[tok.key]
	if !ok {
		// Lane already drained, so nothing newer was submitted.
		return true
	}
	return l.latest == tok.seq
}

func (s *Sequencer) release(key string, l *lane) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.users--
	if l.users == 0 {
		delete(s.lanes, key)
	}
}
