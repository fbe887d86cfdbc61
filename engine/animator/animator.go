package animator

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/rs/zerolog"
)

// binding pairs a clip track with the node it drives.
type binding struct {
	track scene.Track
	node  scene.Node
}

// player is the implementation of the Player interface.
type player struct {
	mu     *sync.Mutex
	logger zerolog.Logger

	root  scene.Node
	clips map[string]*scene.Clip
	speed float32

	current  *scene.Clip
	bindings []binding
	time     float32
	playing  bool

	onFinished func(clip string)
}

// Player plays named transform clips on a single object hierarchy.
//
// Clips play once and hold their final pose. The player never chains clips on its own;
// the finished subscriber decides what plays next. Update is expected to be called from
// the tick loop, and the finished callback runs on that goroutine without the player lock held.
type Player interface {
	// AddClip registers a clip under its name, replacing any clip with the same name.
	//
	// Parameters:
	//   - clip: the clip to register
	AddClip(clip *scene.Clip)

	// HasClip reports whether a clip with the given name is registered.
	//
	// Parameters:
	//   - name: the clip name
	//
	// Returns:
	//   - bool: true if the clip exists
	HasClip(name string) bool

	// Play resets playback and starts the named clip from time zero.
	// The pose at time zero is applied immediately.
	//
	// Parameters:
	//   - name: the clip name
	//
	// Returns:
	//   - error: *common.MissingAssetError if the clip or one of the nodes it drives is absent
	Play(name string) error

	// Stop halts playback at the current pose without raising the finished signal.
	Stop()

	// Update advances playback by deltaSeconds and applies the sampled pose.
	// When the clip end is reached the final pose is clamped and the finished
	// subscriber is notified exactly once.
	//
	// Parameters:
	//   - deltaSeconds: elapsed time since the previous update
	Update(deltaSeconds float32)

	// Playing reports whether a clip is currently advancing.
	//
	// Returns:
	//   - bool: true while a clip is playing
	Playing() bool

	// Current returns the name of the most recently played clip, or "" if none.
	//
	// Returns:
	//   - string: the clip name
	Current() string

	// Time returns the playback position of the current clip in seconds.
	//
	// Returns:
	//   - float32: playback time
	Time() float32

	// OnFinished sets the subscriber notified when a clip reaches its end.
	// Setting a new subscriber replaces the previous one.
	//
	// Parameters:
	//   - fn: receives the name of the finished clip
	OnFinished(fn func(clip string))
}

var _ Player = &player{}

// NewPlayer creates a Player driving nodes under root.
//
// Parameters:
//   - root: the hierarchy clip tracks are resolved against by node name
//   - options: functional options to configure the player
//
// Returns:
//   - Player: the new player
func NewPlayer(root scene.Node, options ...PlayerBuilderOption) Player {
	p := &player{
		mu:     &sync.Mutex{},
		logger: zerolog.Nop(),
		root:   root,
		clips:  make(map[string]*scene.Clip),
		speed:  1,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *player) AddClip(clip *scene.Clip) {
	if clip == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clips[clip.Name] = clip
}

func (p *player) HasClip(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.clips[name]
	return ok
}

func (p *player) Play(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	clip, ok := p.clips[name]
	if !ok {
		return &common.MissingAssetError{Kind: common.AssetKindClip, Name: name}
	}

	bindings := make([]binding, 0, len(clip.Tracks))
	for _, tr := range clip.Tracks {
		var n scene.Node
		if p.root != nil {
			n = p.root.FindByName(tr.Node)
		}
		if n == nil {
			return &common.MissingAssetError{Kind: common.AssetKindNode, Name: tr.Node}
		}
		bindings = append(bindings, binding{track: tr, node: n})
	}

	p.current = clip
	p.bindings = bindings
	p.time = 0
	p.playing = true
	p.apply()

	p.logger.Debug().Str("clip", name).Float32("duration", clip.Duration).Msg("clip started")
	return nil
}

func (p *player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

func (p *player) Update(deltaSeconds float32) {
	p.mu.Lock()
	if !p.playing || p.current == nil {
		p.mu.Unlock()
		return
	}

	finished := false
	if deltaSeconds > 0 {
		p.time += deltaSeconds * p.speed
	}
	if p.time >= p.current.Duration {
		p.time = p.current.Duration
		p.playing = false
		finished = true
	}
	p.apply()

	name := p.current.Name
	cb := p.onFinished
	p.mu.Unlock()

	if finished {
		p.logger.Debug().Str("clip", name).Msg("clip finished")
		if cb != nil {
			cb(name)
		}
	}
}

func (p *player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *player) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return ""
	}
	return p.current.Name
}

func (p *player) Time() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.time
}

func (p *player) OnFinished(fn func(clip string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onFinished = fn
}

// apply samples every bound track at the current time. Caller must hold the mutex.
func (p *player) apply() {
	for _, b := range p.bindings {
		b.track.Apply(b.node, p.time)
	}
}
