package scene

import (
	"sort"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Property selects which node transform channel a track drives.
type Property int

const (
	PropertyPosition Property = iota
	PropertyRotation
	PropertyScale
)

func (p Property) String() string {
	switch p {
	case PropertyRotation:
		return "rotation"
	case PropertyScale:
		return "scale"
	default:
		return "position"
	}
}

// Track is a keyframed Vec3 channel targeting a named node.
// Times are in seconds and must be ascending; Values has one entry per time.
type Track struct {
	Node     string
	Property Property
	Times    []float32
	Values   []mgl32.Vec3
}

// Sample returns the linearly interpolated value at t, clamped to the first and last keys.
//
// Parameters:
//   - t: time in seconds
//
// Returns:
//   - mgl32.Vec3: the sampled value
func (tr Track) Sample(t float32) mgl32.Vec3 {
	n := len(tr.Times)
	if n == 0 || len(tr.Values) < n {
		return mgl32.Vec3{}
	}
	if t <= tr.Times[0] {
		return tr.Values[0]
	}
	if t >= tr.Times[n-1] {
		return tr.Values[n-1]
	}
	// first key strictly after t
	i := sort.Search(n, func(i int) bool { return tr.Times[i] > t })
	t0, t1 := tr.Times[i-1], tr.Times[i]
	span := t1 - t0
	if span <= 0 {
		return tr.Values[i]
	}
	return common.LerpVec3(tr.Values[i-1], tr.Values[i], (t-t0)/span)
}

// Apply writes the sampled value into the matching transform channel of n.
func (tr Track) Apply(n Node, t float32) {
	v := tr.Sample(t)
	switch tr.Property {
	case PropertyRotation:
		n.SetRotation(v)
	case PropertyScale:
		n.SetScale(v)
	default:
		n.SetPosition(v)
	}
}

// Clip is a named, authored animation made of transform tracks.
type Clip struct {
	Name     string
	Duration float32
	Tracks   []Track
}

// NewClip creates a clip whose duration is the latest key time across all tracks.
//
// Parameters:
//   - name: the clip name
//   - tracks: the keyframed channels
//
// Returns:
//   - *Clip: the new clip
func NewClip(name string, tracks ...Track) *Clip {
	c := &Clip{Name: name, Tracks: tracks}
	for _, tr := range tracks {
		if n := len(tr.Times); n > 0 && tr.Times[n-1] > c.Duration {
			c.Duration = tr.Times[n-1]
		}
	}
	return c
}

// FindClip returns the clip with the given name, or nil.
func FindClip(clips []*Clip, name string) *Clip {
	for _, c := range clips {
		if c != nil && c.Name == name {
			return c
		}
	}
	return nil
}
