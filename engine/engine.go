package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/orchestrator"
	"github.com/Carmen-Shannon/oxy-showcase/engine/profiler"
	"github.com/rs/zerolog"
)

// Host is the windowing side of the loop: it pumps platform events and queues input.
// window.Window satisfies it.
type Host interface {
	// PollEvents pumps pending platform events into the queue without blocking.
	PollEvents()

	// Drain returns queued input in arrival order.
	Drain() []common.InputEvent

	// SetCursor shows the named cursor affordance.
	SetCursor(name string)

	// IsRunning reports whether the host is still open.
	IsRunning() bool
}

// engine implements the Engine interface.
// The loop is single threaded: input is drained and the orchestrator ticked on the goroutine that called Run.
type engine struct {
	logger zerolog.Logger

	tickRateChannel chan time.Duration // dynamic tick rate updates
	engineTickRate  time.Duration

	running     atomic.Bool
	quitChannel chan struct{}
	quitOnce    sync.Once

	host         Host
	orchestrator orchestrator.Orchestrator
	cursor       string

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	renderCallback func(pose camera.Pose)
}

// Engine runs the fixed-rate tick loop that drives the showcase.
// Each tick drains queued host input into the orchestrator, advances it, then hands the
// final camera pose to the render callback.
type Engine interface {
	// Orchestrator returns the driven orchestrator.
	Orchestrator() orchestrator.Orchestrator

	// EnableProfiler enables periodic tick and memory stats in the log.
	EnableProfiler()

	// DisableProfiler disables profiling output.
	DisableProfiler()

	// SetTickRate sets the tick rate in ticks per second.
	// If the engine is running the change takes effect on the next tick.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetRenderCallback registers the function receiving the camera pose after every tick.
	//
	// Parameters:
	//   - callback: function to call with the frame's final camera pose
	SetRenderCallback(callback func(pose camera.Pose))

	// Step runs one tick: drains input, advances the orchestrator by dt, renders and profiles.
	// Run calls it on every ticker fire; hosts with their own clock may call it directly.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Step(dt float32)

	// Run starts the tick loop and blocks until Quit is called or the host closes.
	Run()

	// Quit stops the loop. Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates an Engine driving o.
//
// Parameters:
//   - o: the orchestrator to drive
//   - options: functional options for engine configuration (host, tick rate, profiling, logger)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(o orchestrator.Orchestrator, options ...EngineBuilderOption) Engine {
	e := &engine{
		logger:          zerolog.Nop(),
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		orchestrator:    o,
		engineTickRate:  time.Second / 60,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}
	return e
}

func (e *engine) Orchestrator() orchestrator.Orchestrator {
	return e.orchestrator
}

func (e *engine) Run() {
	if !e.running.CompareAndSwap(false, true) {
		return
	}
	defer e.running.Store(false)

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	e.logger.Info().Dur("tick", e.engineTickRate).Msg("engine started")
	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			e.logger.Info().Msg("engine stopped")
			return
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		case now := <-ticker.C:
			if e.host != nil {
				e.host.PollEvents()
				if !e.host.IsRunning() {
					e.signalQuit()
					continue
				}
			}
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.Step(dt)
		}
	}
}

func (e *engine) Step(dt float32) {
	if e.host != nil {
		for _, ev := range e.host.Drain() {
			e.dispatch(ev)
		}
	}

	e.orchestrator.Tick(dt)

	if e.host != nil {
		if c := e.orchestrator.Cursor(); c != e.cursor {
			e.cursor = c
			e.host.SetCursor(c)
		}
	}
	if e.renderCallback != nil {
		e.renderCallback(e.orchestrator.CameraPose())
	}
	if e.profilingEnabled.Load() {
		e.profiler.Tick()
	}
}

// dispatch forwards one queued host event to the orchestrator.
func (e *engine) dispatch(ev common.InputEvent) {
	switch ev.Kind {
	case common.EventPointerMove:
		e.orchestrator.OnPointerMove(ev.NDC)
	case common.EventPointerDown:
		e.orchestrator.OnPointerDown(ev.NDC, toButton(ev.Button))
	case common.EventPointerUp:
		e.orchestrator.OnPointerUp()
	case common.EventScroll:
		// Wheel up brings the camera closer.
		e.orchestrator.OnScroll(-ev.Delta)
	case common.EventResize:
		e.orchestrator.OnResize(ev.Width, ev.Height)
	case common.EventKeyDown:
		if ev.Key == common.KeyP {
			if e.profilingEnabled.Load() {
				e.DisableProfiler()
			} else {
				e.EnableProfiler()
			}
		}
	}
}

func toButton(b common.MouseButton) orchestrator.Button {
	if b == common.MouseLeft {
		return orchestrator.ButtonPrimary
	}
	return orchestrator.ButtonSecondary
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
	e.logger.Debug().Msg("profiler enabled")
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
	e.logger.Debug().Msg("profiler disabled")
}

func (e *engine) SetTickRate(fps float64) {
	newRate := tickDuration(fps)

	if !e.running.Load() {
		e.engineTickRate = newRate
		return
	}
	// Replace any pending update so the latest rate wins.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetRenderCallback(callback func(pose camera.Pose)) {
	e.renderCallback = callback
}

// tickDuration converts a rate into a ticker period, defaulting to 60Hz.
func tickDuration(fps float64) time.Duration {
	return time.Duration(float64(time.Second) / common.Positive(fps, 60))
}
