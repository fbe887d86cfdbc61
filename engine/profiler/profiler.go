package profiler

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// Profiler tracks tick rate and memory statistics and logs them at a fixed interval.
type Profiler struct {
	logger zerolog.Logger
	now    func() time.Time

	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a Profiler. The interval defaults to one second and the logger to zerolog.Nop().
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		logger:         zerolog.Nop(),
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per engine tick.
// When the interval has elapsed it logs ticks per second, heap usage, allocation rate,
// GC count and pause times, and process memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval || elapsed <= 0 {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	seconds := elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses.
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		lastPauseUs = p.memStats.PauseNs[(gcCount+255)%256] / 1000
		start := p.lastGCCount
		if gcCount-start > 256 {
			start = gcCount - 256
		}
		for i := start; i < gcCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	p.logger.Info().
		Float64("tps", float64(p.frameCount)/seconds).
		Float64("heap_mb", toMB(p.memStats.Alloc)).
		Float64("alloc_rate_mb_s", toMB(p.memStats.TotalAlloc-p.lastTotalAlloc)/seconds).
		Uint32("gc", gcCount).
		Uint64("gc_last_pause_us", lastPauseUs).
		Uint64("gc_max_pause_us", maxPauseUs).
		Float64("sys_mb", toMB(p.memStats.Sys)).
		Msg("profiler")

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

func toMB(b uint64) float64 {
	return float64(b) / 1024 / 1024
}
