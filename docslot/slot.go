// Package docslot holds the single document a viewer is currently showing.
package docslot

import (
	"context"
	"errors"
	"sync"

	"github.com/gacevedo/virus-sucks-plotter/pluslife"
)

// ErrSuperseded is returned by a load that lost to a newer one.
var ErrSuperseded = errors.New("load superseded by a newer load")

// ReadFunc fetches the raw bytes of a file. It should stop early once ctx is
// cancelled.
type ReadFunc func(ctx context.Context) ([]byte, error)

// Slot is a replace-wholesale cell for the displayed document. Starting a
// load cancels any load still in flight, and only the newest load may commit,
// so the displayed document always comes from the most recently started load
// that succeeded. A failed load never changes what is displayed.
type Slot struct {
	ticksPerMinute float64

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	current    *pluslife.TestDocument
}

func New(ticksPerMinute float64) *Slot {
	if ticksPerMinute <= 0 {
		ticksPerMinute = pluslife.TicksPerMinute
	}

	return &Slot{ticksPerMinute: ticksPerMinute}
}

// Load reads, ingests and, if still the newest load, displays a document.
func (s *Slot) Load(ctx context.Context, read ReadFunc) (pluslife.TestDocument, error) {
	loadCtx, generation := s.begin(ctx)
	defer s.finish(generation)

	raw, err := read(loadCtx)
	if s.superseded(generation) {
		return pluslife.TestDocument{}, ErrSuperseded
	}
	if err != nil {
		return pluslife.TestDocument{}, err
	}
	if err := loadCtx.Err(); err != nil {
		return pluslife.TestDocument{}, err
	}

	doc, err := pluslife.IngestWithDivisor(raw, s.ticksPerMinute)
	if err != nil {
		return pluslife.TestDocument{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return pluslife.TestDocument{}, ErrSuperseded
	}
	s.current = &doc

	return doc, nil
}

// Current returns the displayed document, if any.
func (s *Slot) Current() (pluslife.TestDocument, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return pluslife.TestDocument{}, false
	}

	return *s.current, true
}

// Clear cancels any in-flight load and empties the slot.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.current = nil
}

func (s *Slot) begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	loadCtx, cancel := context.WithCancel(ctx)
	s.generation++
	s.cancel = cancel

	return loadCtx, s.generation
}

func (s *Slot) finish(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation == s.generation && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Slot) superseded(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return generation != s.generation
}
