package material

import (
	"errors"
	"sync"
)

// ErrNoVideoSource is returned when playback is requested on a source without media.
var ErrNoVideoSource = errors.New("video source has no media path")

// VideoSource is a playable media element backing a video material.
// Decoding and presentation belong to the host renderer; the source only tracks playback state.
type VideoSource interface {
	// Path returns the media path.
	Path() string

	// Play starts or resumes playback.
	//
	// Returns:
	//   - error: ErrNoVideoSource if the element has no media path
	Play() error

	// Pause stops playback, keeping the current frame.
	Pause()

	// Playing reports whether playback is active.
	Playing() bool

	// Muted reports whether audio is muted.
	Muted() bool

	// Loop reports whether playback restarts at the end of the media.
	Loop() bool
}

type videoElement struct {
	mu *sync.Mutex

	path     string
	muted    bool
	loop     bool
	autoplay bool
	playing  bool
}

var _ VideoSource = &videoElement{}

// VideoOption configures a video element during construction.
type VideoOption func(*videoElement)

// WithMuted toggles audio muting.
func WithMuted(muted bool) VideoOption {
	return func(v *videoElement) {
		v.muted = muted
	}
}

// WithLoop toggles looping playback.
func WithLoop(loop bool) VideoOption {
	return func(v *videoElement) {
		v.loop = loop
	}
}

// WithAutoplay starts playback as soon as the element is created.
func WithAutoplay(autoplay bool) VideoOption {
	return func(v *videoElement) {
		v.autoplay = autoplay
	}
}

// NewVideoElement creates a video source for the given media path.
// Elements default to muted and looping, matching inline showcase playback.
//
// Parameters:
//   - path: the media path
//   - options: functional options for the element
//
// Returns:
//   - VideoSource: the new element
func NewVideoElement(path string, options ...VideoOption) VideoSource {
	v := &videoElement{
		mu:    &sync.Mutex{},
		path:  path,
		muted: true,
		loop:  true,
	}
	for _, opt := range options {
		opt(v)
	}
	if v.autoplay && v.path != "" {
		v.playing = true
	}
	return v
}

func (v *videoElement) Path() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.path
}

func (v *videoElement) Play() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.path == "" {
		return ErrNoVideoSource
	}
	v.playing = true
	return nil
}

func (v *videoElement) Pause() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.playing = false
}

func (v *videoElement) Playing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.playing
}

func (v *videoElement) Muted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.muted
}

func (v *videoElement) Loop() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loop
}
