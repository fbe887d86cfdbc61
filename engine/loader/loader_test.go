package loader

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boxManifest = `
name: GameBox
nodes:
  - name: front
    bounds:
      min: [-0.5, -0.5, -0.5]
      max: [0.5, 0.5, 0.5]
    children:
      - name: lid
        position: [0, 0.5, 0]
        triangles:
          - [[-1, 0, -1], [1, 0, -1], [0, 0, 1]]
  - name: InfoPoint
    position: [0, 0.7, -3]
  - name: ViewPoint
    position: [0.2, 0.4, -2]
    visible: false
clips:
  - name: Opening
    tracks:
      - node: lid
        property: rotation
        times: [0, 1.5]
        values: [[0, 0, 0], [-2, 0, 0]]
  - name: Opened
    tracks:
      - node: lid
        property: rotation
        times: [0]
        values: [[-2, 0, 0]]
`

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"models/GameBox/GameBox.glb.yaml":      {Data: []byte(boxManifest)},
		"models/GameBox/GameBox.jpg":           {Data: testPNG(t)},
		"models/GameBoy/GlitchNoiseStatic.mp4": {Data: []byte{0}},
		"models/Broken/Broken.glb.yaml":        {Data: []byte("nodes: [oops")},
		"models/Broken/BadTrack.yaml":          {Data: []byte("clips:\n  - name: A\n    tracks:\n      - node: x\n        times: [0, 1]\n        values: [[0, 0, 0]]\n")},
	}
}

func TestLoadSceneFromSidecarManifest(t *testing.T) {
	l := NewLoader(WithFS(testFS(t)))

	g, err := l.LoadScene("models/GameBox/GameBox.glb")
	require.NoError(t, err)
	assert.Equal(t, "models/GameBox/GameBox.glb", g.Path())
	assert.Equal(t, "GameBox", g.Root().Name())

	lid := g.Find("lid")
	require.NotNil(t, lid)
	assert.Equal(t, "front", lid.Parent().Name())
	require.NotNil(t, lid.Mesh())
	assert.Len(t, lid.Mesh().Triangles, 1)

	front := g.Find("front")
	require.NotNil(t, front.Mesh())
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, front.Mesh().Bounds.Max)

	assert.Equal(t, mgl32.Vec3{0, 0.7, -3}, g.Find("InfoPoint").WorldPosition())
	assert.False(t, g.Find("ViewPoint").Visible())

	opening := g.Clip("Opening")
	require.NotNil(t, opening)
	assert.Equal(t, float32(1.5), opening.Duration)
	assert.Equal(t, scene.PropertyRotation, opening.Tracks[0].Property)
	assert.NotNil(t, g.Clip("Opened"))

	again, err := l.LoadScene("./models/GameBox/GameBox.glb")
	require.NoError(t, err)
	assert.True(t, g == again, "cached graph is reused")
	assert.True(t, l.Get("models/GameBox/GameBox.glb") == g)
	assert.Len(t, l.Scenes(), 1)
}

func TestLoadSceneErrors(t *testing.T) {
	l := NewLoader(WithFS(testFS(t)))
	var loadErr *common.AssetLoadError

	_, err := l.LoadScene("models/Missing/Missing.glb")
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "models/Missing/Missing.glb", loadErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = l.LoadScene("models/Broken/Broken.glb")
	assert.True(t, errors.As(err, &loadErr))

	_, err = l.LoadScene("models/Broken/BadTrack.yaml")
	assert.True(t, errors.As(err, &loadErr))

	_, err = l.LoadScene("models/GameBox/GameBox.fbx")
	require.True(t, errors.As(err, &loadErr))
	assert.ErrorIs(t, err, errUnsupportedFormat)

	assert.Empty(t, l.Scenes())
}

func TestLoadImageMaterial(t *testing.T) {
	l := NewLoader(WithFS(testFS(t)))

	m, err := l.LoadImageMaterial("models/GameBox/GameBox.jpg", material.WithDoubleSided(true))
	require.NoError(t, err)
	assert.Equal(t, material.KindImage, m.Kind())
	assert.True(t, m.DoubleSided())
	require.NotNil(t, m.Texture())
	assert.Equal(t, uint32(2), m.Texture().Width)
	assert.Equal(t, uint32(1), m.Texture().Height)
	assert.False(t, m.Texture().FlipY)
	assert.Equal(t, byte(255), m.Texture().Pixels[0])

	other, err := l.LoadImageMaterial("models/GameBox/GameBox.jpg")
	require.NoError(t, err)
	assert.True(t, m.Texture() == other.Texture(), "texture decoded once")
	assert.False(t, m == other)

	_, err = l.LoadImageMaterial("models/GameBox/GameBoxContent.jpg")
	var loadErr *common.AssetLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadVideoMaterial(t *testing.T) {
	l := NewLoader(WithFS(testFS(t)))

	video := l.NewVideoElement("models/GameBoy/GlitchNoiseStatic.mp4")
	assert.True(t, video.Muted())
	assert.True(t, video.Loop())
	assert.False(t, video.Playing())

	m, err := l.LoadVideoMaterial(video)
	require.NoError(t, err)
	assert.Equal(t, material.KindVideo, m.Kind())
	assert.True(t, m.Video() == video)

	_, err = l.LoadVideoMaterial(l.NewVideoElement("models/GameBoy/Missing.mp4"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = l.LoadVideoMaterial(nil)
	assert.ErrorIs(t, err, material.ErrNoVideoSource)
}
