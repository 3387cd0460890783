package anim

import (
	"sync"
	"time"

	"ftlview/internal/log"
)

// Ticker is the part of *time.Ticker the stepper needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type realTicker struct{ *time.Ticker }

func (t realTicker) C() <-chan time.Time { return t.Ticker.C }

// NewRealTicker wraps time.NewTicker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

// DrawFunc renders frame. It runs on the stepper's goroutine for every
// frame after the first, so UI code must hand it over to its own loop.
type DrawFunc func(gen uint64, frame int)

type run struct {
	gen   uint64
	frame int
	stop  chan struct{}
}

// Stepper owns the animation timers, one per Kind.
type Stepper struct {
	mu        sync.Mutex
	newTicker TickerFunc
	runs      map[Kind]*run
	gen       uint64
}

// NewStepper returns a stepper using newTicker, or real tickers if nil.
func NewStepper(newTicker TickerFunc) *Stepper {
	if newTicker == nil {
		newTicker = NewRealTicker
	}
	return &Stepper{newTicker: newTicker, runs: make(map[Kind]*run)}
}

// Start stops any running animation of the plan's kind, draws frame 0
// synchronously and then advances one frame per interval. Static plans
// only draw once. The returned generation identifies this run.
func (s *Stepper) Start(p Plan, draw DrawFunc) uint64 {
	s.mu.Lock()
	s.stopLocked(p.Kind)
	s.gen++
	r := &run{gen: s.gen, stop: make(chan struct{})}
	s.runs[p.Kind] = r
	s.mu.Unlock()

	log.Debug("animation start", "kind", p.Kind, "gen", r.gen, "frames", p.Length(), "static", p.Static)
	draw(r.gen, 0)

	if p.Static || p.Length() < 2 {
		return r.gen
	}

	ticker := s.newTicker(p.Interval())
	go s.loop(p.Kind, r, p.Length(), ticker, draw)
	return r.gen
}

func (s *Stepper) loop(kind Kind, r *run, length int, ticker Ticker, draw DrawFunc) {
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C():
			s.mu.Lock()
			if s.runs[kind] != r {
				s.mu.Unlock()
				return
			}
			r.frame = (r.frame + 1) % length
			frame := r.frame
			s.mu.Unlock()
			draw(r.gen, frame)
		}
	}
}

// Stop cancels the animation of kind. It does not wait for an in-flight
// draw; callers compare generations with Current to drop stale frames.
func (s *Stepper) Stop(kind Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked(kind)
}

// StopAll cancels every animation.
func (s *Stepper) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range Kinds {
		s.stopLocked(k)
	}
}

func (s *Stepper) stopLocked(kind Kind) {
	r, ok := s.runs[kind]
	if !ok {
		return
	}
	close(r.stop)
	delete(s.runs, kind)
	log.Debug("animation stop", "kind", kind, "gen", r.gen)
}

// Current is the generation of the live run of kind, 0 if none.
func (s *Stepper) Current(kind Kind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.runs[kind]; ok {
		return r.gen
	}
	return 0
}

// Frame is the frame index last drawn by the live run of kind.
func (s *Stepper) Frame(kind Kind) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runs[kind]
	if !ok {
		return 0, false
	}
	return r.frame, true
}

// Live counts running animations.
func (s *Stepper) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}
