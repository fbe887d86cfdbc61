package tween

import (
	"sort"
	"sync"
	"time"
)

// Handle identifies a scheduled tween. The zero Handle is never issued.
type Handle uint64

type entry struct {
	handle Handle
	tween  *tweenImpl
	start  []float32
	begin  time.Duration
}

type scheduler struct {
	mu *sync.Mutex

	now    time.Duration
	next   Handle
	active map[Handle]*entry
}

// Scheduler advances scheduled tweens against a monotonic clock.
//
// Tweens are applied in scheduling order each tick, so when two tweens drive the
// same component the most recently scheduled one wins. Callbacks run without the
// scheduler lock held and may schedule or cancel other tweens; tweens scheduled
// from a callback start on the following tick.
type Scheduler interface {
	// Schedule captures the target's current values as the start and begins the tween at the current clock.
	//
	// Parameters:
	//   - tw: the tween to run
	//
	// Returns:
	//   - Handle: identifies the running tween
	Schedule(tw Tween) Handle

	// Cancel removes a tween without invoking its completion callback.
	//
	// Parameters:
	//   - h: the tween handle
	//
	// Returns:
	//   - bool: false if the tween had already completed or been cancelled
	Cancel(h Handle) bool

	// Tick moves the clock to now and advances every tween. Times earlier than the current clock are ignored.
	//
	// Parameters:
	//   - now: absolute clock value
	Tick(now time.Duration)

	// Update advances the clock by delta and ticks.
	//
	// Parameters:
	//   - delta: elapsed time since the previous update
	Update(delta time.Duration)

	// Now returns the current clock value.
	Now() time.Duration

	// Len returns the number of running tweens.
	Len() int

	// Active reports whether h is still running.
	Active(h Handle) bool
}

var _ Scheduler = &scheduler{}

// NewScheduler creates an empty scheduler with its clock at zero.
//
// Returns:
//   - Scheduler: the new scheduler
func NewScheduler() Scheduler {
	return &scheduler{
		mu:     &sync.Mutex{},
		active: make(map[Handle]*entry),
	}
}

func (s *scheduler) Schedule(tw Tween) Handle {
	impl, ok := tw.(*tweenImpl)
	if !ok {
		impl = &tweenImpl{
			target:   tw.Target(),
			goal:     tw.Goal(),
			duration: tw.Duration(),
			easing:   tw.Easing(),
		}
	}
	start := impl.target.Values()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.active[s.next] = &entry{
		handle: s.next,
		tween:  impl,
		start:  start,
		begin:  s.now,
	}
	return s.next
}

func (s *scheduler) Cancel(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.active[h]; !ok {
		return false
	}
	delete(s.active, h)
	return true
}

func (s *scheduler) Update(delta time.Duration) {
	s.mu.Lock()
	now := s.now
	if delta > 0 {
		now += delta
	}
	s.mu.Unlock()
	s.Tick(now)
}

func (s *scheduler) Tick(now time.Duration) {
	s.mu.Lock()
	if now > s.now {
		s.now = now
	}
	now = s.now
	running := make([]*entry, 0, len(s.active))
	for _, e := range s.active {
		running = append(running, e)
	}
	s.mu.Unlock()

	sort.Slice(running, func(i, j int) bool { return running[i].handle < running[j].handle })

	for _, e := range running {
		if !s.Active(e.handle) {
			continue
		}
		s.advance(e, now)
	}
}

// advance writes the interpolated values for one tween and fires its callbacks.
func (s *scheduler) advance(e *entry, now time.Duration) {
	tw := e.tween
	elapsed := now - e.begin
	done := elapsed >= tw.duration

	var progress float32 = 1
	if !done {
		progress = float32(float64(elapsed) / float64(tw.duration))
	}
	eased := tw.easing(progress)
	if done {
		eased = 1
	}

	n := len(tw.goal)
	if len(e.start) < n {
		n = len(e.start)
	}
	values := make([]float32, n)
	for i := 0; i < n; i++ {
		values[i] = e.start[i] + (tw.goal[i]-e.start[i])*eased
	}
	tw.target.SetValues(values)

	if tw.onUpdate != nil {
		tw.onUpdate(eased)
	}
	if !done {
		return
	}

	s.mu.Lock()
	_, stillActive := s.active[e.handle]
	delete(s.active, e.handle)
	s.mu.Unlock()

	if stillActive && tw.onComplete != nil {
		tw.onComplete()
	}
}

func (s *scheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

func (s *scheduler) Active(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.active[h]
	return ok
}
