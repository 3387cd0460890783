package anim

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"ftlview/internal/data"
)

type fakeTicker struct {
	c       chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.c }

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeTicker) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

type tickerFactory struct {
	mu        sync.Mutex
	tickers   []*fakeTicker
	intervals []time.Duration
}

func (tf *tickerFactory) new(d time.Duration) Ticker {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	t := &fakeTicker{c: make(chan time.Time)}
	tf.tickers = append(tf.tickers, t)
	tf.intervals = append(tf.intervals, d)
	return t
}

func (tf *tickerFactory) last() *fakeTicker {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.tickers[len(tf.tickers)-1]
}

func (tf *tickerFactory) count() int {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return len(tf.tickers)
}

func walkPlan(t *testing.T, kind Kind, length int) Plan {
	t.Helper()
	ad := FallbackCrewAnimation("human")
	clip := ad.Animations["human_walk_down"]
	clip.Length = length
	clip.Time = data.NewStat(2)
	ad.Animations["human_walk_down"] = clip
	p, ok := WalkPlan(kind, ad)
	require.True(t, ok)
	return p
}

func recv(t *testing.T, frames <-chan int) int {
	t.Helper()
	select {
	case f := <-frames:
		return f
	case <-time.After(time.Second):
		t.Fatal("no frame drawn")
		return -1
	}
}

func TestStepperFirstFrameIsSynchronous(t *testing.T) {
	tf := &tickerFactory{}
	s := NewStepper(tf.new)

	var drawn []int
	s.Start(walkPlan(t, KindCrew, 4), func(_ uint64, frame int) { drawn = append(drawn, frame) })
	assert.Equal(t, []int{0}, drawn)
	assert.Equal(t, []time.Duration{75 * time.Millisecond}, tf.intervals)
	s.StopAll()
}

func TestStepperFrameRangeWraps(t *testing.T) {
	tf := &tickerFactory{}
	s := NewStepper(tf.new)
	frames := make(chan int, 16)

	s.Start(walkPlan(t, KindCrew, 3), func(_ uint64, frame int) { frames <- frame })
	assert.Equal(t, 0, recv(t, frames))

	ticker := tf.last()
	var got []int
	for i := 0; i < 7; i++ {
		ticker.c <- time.Now()
		f := recv(t, frames)
		assert.GreaterOrEqual(t, f, 0)
		assert.Less(t, f, 3)
		got = append(got, f)
	}
	assert.Equal(t, []int{1, 2, 0, 1, 2, 0, 1}, got)
	s.StopAll()
}

func TestStepperRestartResetsAndStopsPrevious(t *testing.T) {
	tf := &tickerFactory{}
	s := NewStepper(tf.new)
	frames := make(chan int, 16)
	draw := func(_ uint64, frame int) { frames <- frame }

	gen1 := s.Start(walkPlan(t, KindCrew, 4), draw)
	recv(t, frames)
	first := tf.last()
	first.c <- time.Now()
	assert.Equal(t, 1, recv(t, frames))

	s.Stop(KindCrew)
	assert.Equal(t, uint64(0), s.Current(KindCrew))
	assert.Eventually(t, first.isStopped, time.Second, time.Millisecond)

	gen2 := s.Start(walkPlan(t, KindCrew, 4), draw)
	assert.NotEqual(t, gen1, gen2)
	assert.Equal(t, 0, recv(t, frames))
	frame, ok := s.Frame(KindCrew)
	require.True(t, ok)
	assert.Equal(t, 0, frame)

	// a restart without Stop replaces the running timer
	gen3 := s.Start(walkPlan(t, KindCrew, 4), draw)
	recv(t, frames)
	assert.Equal(t, gen3, s.Current(KindCrew))
	assert.Equal(t, 3, tf.count())
	assert.Equal(t, 1, s.Live())
	s.StopAll()
	assert.Equal(t, 0, s.Live())
}

func TestStepperKindsAreIndependent(t *testing.T) {
	tf := &tickerFactory{}
	s := NewStepper(tf.new)
	noop := func(uint64, int) {}

	s.Start(walkPlan(t, KindCrew, 4), noop)
	s.Start(walkPlan(t, KindDrone, 4), noop)
	assert.Equal(t, 2, s.Live())

	s.Stop(KindDrone)
	assert.NotZero(t, s.Current(KindCrew))
	assert.Zero(t, s.Current(KindDrone))
	s.StopAll()
}

func TestStepperWeaponIsSingleShot(t *testing.T) {
	tf := &tickerFactory{}
	s := NewStepper(tf.new)

	plan, ok := WeaponPlan(&data.AnimationData{FrameWidth: 10, FrameHeight: 30, FireFrame: data.NewStat(1)})
	require.True(t, ok)

	calls := 0
	s.Start(plan, func(uint64, int) { calls++ })
	assert.Equal(t, 1, calls)
	assert.Zero(t, tf.count(), "no timer for the static weapon frame")
	s.StopAll()
}

func TestStepperStopEndsTimerGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	tf := &tickerFactory{}
	s := NewStepper(tf.new)
	frames := make(chan int, 16)
	draw := func(_ uint64, frame int) { frames <- frame }

	s.Start(walkPlan(t, KindCrew, 4), draw)
	s.Start(walkPlan(t, KindDrone, 4), draw)
	recv(t, frames)
	recv(t, frames)
	tf.last().c <- time.Now()
	recv(t, frames)

	s.StopAll()
	assert.Zero(t, s.Live())
}
