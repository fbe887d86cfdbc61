package loader

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// extractClips converts every document animation into a clip of Vec3 transform tracks.
// Channels are addressed by node name. Weight channels are ignored.
//
// Parameters:
//   - names: node names indexed like the document nodes
//
// Returns:
//   - []*scene.Clip: one clip per animation
//   - error: error if a sampler cannot be read
func (p *gltfParser) extractClips(names []string) ([]*scene.Clip, error) {
	doc := p.document
	clips := make([]*scene.Clip, 0, len(doc.Animations))
	for ai, anim := range doc.Animations {
		name := common.Coalesce(anim.Name, fmt.Sprintf("animation_%d", ai))
		var tracks []scene.Track
		for ci, ch := range anim.Channels {
			if ch.Target.Node == nil {
				continue
			}
			node := *ch.Target.Node
			if node < 0 || node >= len(names) {
				return nil, fmt.Errorf("animation %q channel %d: node %d out of range", name, ci, node)
			}
			if ch.Sampler < 0 || ch.Sampler >= len(anim.Samplers) {
				return nil, fmt.Errorf("animation %q channel %d: sampler %d out of range", name, ci, ch.Sampler)
			}
			tr, ok, err := p.extractTrack(names[node], ch.Target.Path, anim.Samplers[ch.Sampler])
			if err != nil {
				return nil, fmt.Errorf("animation %q channel %d: %w", name, ci, err)
			}
			if ok {
				tracks = append(tracks, tr)
			}
		}
		clips = append(clips, scene.NewClip(name, tracks...))
	}
	return clips, nil
}

// extractTrack reads one sampler into a track. Cubic spline keys keep only their values,
// and step keys are duplicated so linear sampling holds each value until the next key.
func (p *gltfParser) extractTrack(node, path string, s gltfAnimSampler) (scene.Track, bool, error) {
	prop, accessorType := scene.PropertyPosition, gltfAccessorTypeVec3
	switch path {
	case gltfAnimPathTranslation:
	case gltfAnimPathScale:
		prop = scene.PropertyScale
	case gltfAnimPathRotation:
		prop = scene.PropertyRotation
		accessorType = gltfAccessorTypeVec4
	default:
		return scene.Track{}, false, nil
	}

	times, err := p.readScalars(s.Input)
	if err != nil {
		return scene.Track{}, false, fmt.Errorf("input: %w", err)
	}
	rows, err := p.readFloats(s.Output, accessorType)
	if err != nil {
		return scene.Track{}, false, fmt.Errorf("output: %w", err)
	}
	if s.Interpolation == gltfInterpolationCubicSpline {
		// (in-tangent, value, out-tangent) triplets
		values := make([][]float32, 0, len(rows)/3)
		for i := 1; i < len(rows); i += 3 {
			values = append(values, rows[i])
		}
		rows = values
	}
	if len(rows) != len(times) {
		return scene.Track{}, false, fmt.Errorf("%d keys but %d values", len(times), len(rows))
	}

	values := make([]mgl32.Vec3, len(rows))
	for i, r := range rows {
		if prop == scene.PropertyRotation {
			values[i] = common.EulerFromQuat(gltfQuat([4]float32{r[0], r[1], r[2], r[3]}))
			if i > 0 {
				values[i] = unwrapEuler(values[i-1], values[i])
			}
			continue
		}
		values[i] = mgl32.Vec3{r[0], r[1], r[2]}
	}

	if s.Interpolation == gltfInterpolationStep && len(times) > 1 {
		stepTimes := make([]float32, 0, 2*len(times)-1)
		stepValues := make([]mgl32.Vec3, 0, 2*len(times)-1)
		stepTimes = append(stepTimes, times[0])
		stepValues = append(stepValues, values[0])
		for i := 1; i < len(times); i++ {
			stepTimes = append(stepTimes, times[i], times[i])
			stepValues = append(stepValues, values[i-1], values[i])
		}
		times, values = stepTimes, stepValues
	}

	return scene.Track{Node: node, Property: prop, Times: times, Values: values}, true, nil
}

// unwrapEuler shifts each angle of next by whole turns so it lies within pi of prev,
// keeping linear interpolation between keys on the short path.
func unwrapEuler(prev, next mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		next[i] = prev[i] + common.WrapAngle(next[i]-prev[i])
	}
	return next
}
