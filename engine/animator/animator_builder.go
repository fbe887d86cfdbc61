package animator

import (
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/rs/zerolog"
)

// PlayerBuilderOption is a functional option for configuring a Player during construction.
type PlayerBuilderOption func(*player)

// WithLogger sets the logger used for playback events.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - PlayerBuilderOption: a function that applies the logger option
func WithLogger(logger zerolog.Logger) PlayerBuilderOption {
	return func(p *player) {
		p.logger = logger
	}
}

// WithSpeed sets the playback speed multiplier. Non-positive values are ignored.
//
// Parameters:
//   - speed: playback rate, 1 is authored speed
//
// Returns:
//   - PlayerBuilderOption: a function that applies the speed option
func WithSpeed(speed float32) PlayerBuilderOption {
	return func(p *player) {
		if speed > 0 {
			p.speed = speed
		}
	}
}

// WithClips registers clips at construction, typically the clips of the loaded scene graph.
//
// Parameters:
//   - clips: the clips to register
//
// Returns:
//   - PlayerBuilderOption: a function that registers the clips
func WithClips(clips ...*scene.Clip) PlayerBuilderOption {
	return func(p *player) {
		for _, c := range clips {
			if c != nil {
				p.clips[c.Name] = c
			}
		}
	}
}
