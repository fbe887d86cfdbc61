package model

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/loader"
	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	roomManifest = `
name: Attic
nodes:
  - name: Floor
    bounds: {min: [-5, -0.1, -5], max: [5, 0, 5]}
  - name: WindowGlass
    bounds: {min: [-1, 1, -6], max: [1, 2, -5.9]}
`
	boxManifest = `
name: GameBox
nodes:
  - name: frontPanel
    bounds: {min: [-0.2, 0, -0.1], max: [0.2, 0.3, 0.1]}
  - name: LightbulbGlass
    bounds: {min: [-0.05, 0.3, -0.05], max: [0.05, 0.4, 0.05]}
  - name: Cartridge
    bounds: {min: [-0.1, 0, -0.05], max: [0.1, 0.1, 0.05]}
  - name: InfoPoint
    position: [0, 0.7, -3]
  - name: ViewPoint
    position: [0.1, 0.6, -2.6]
clips:
  - name: Opening
    tracks:
      - {node: frontPanel, property: rotation, times: [0, 1], values: [[0, 0, 0], [-1.5, 0, 0]]}
`
	boxWithoutMarkers = `
name: GameBox
nodes:
  - name: frontPanel
    bounds: {min: [-0.2, 0, -0.1], max: [0.2, 0.3, 0.1]}
`
	deviceManifest = `
name: GameBoyScene
nodes:
  - name: GameBoy
    position: [0, 0.5, -3]
    bounds: {min: [-0.05, -0.08, -0.01], max: [0.05, 0.08, 0.01]}
    children:
      - name: Screen
        bounds: {min: [-0.03, 0, 0.01], max: [0.03, 0.04, 0.011]}
`
)

func pixel(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	return buf.Bytes()
}

func assetFS(t *testing.T) fstest.MapFS {
	img := pixel(t)
	return fstest.MapFS{
		"Attic.glb.yaml":        {Data: []byte(roomManifest)},
		"Attic.jpg":             {Data: img},
		"GameBox.glb.yaml":      {Data: []byte(boxManifest)},
		"Bare.glb.yaml":         {Data: []byte(boxWithoutMarkers)},
		"GameBox.jpg":           {Data: img},
		"GameBoxContent.jpg":    {Data: img},
		"GameBoy.glb.yaml":      {Data: []byte(deviceManifest)},
		"GameBoy.jpg":           {Data: img},
		"GlitchNoiseStatic.mp4": {Data: []byte{0}},
	}
}

func TestBoxLoadAssignsMaterials(t *testing.T) {
	l := loader.NewLoader(loader.WithFS(assetFS(t)))
	world := scene.NewNode("world")
	box := NewBox(l, BoxPaths{Scene: "GameBox.glb", Baked: "GameBox.jpg", Content: "GameBoxContent.jpg"})

	require.NoError(t, box.Load(context.Background(), world))

	g := box.Graph()
	require.NotNil(t, g)
	assert.Equal(t, "GameBox.jpg", g.Find("frontPanel").Material().Name())
	assert.Equal(t, "GameBoxContent.jpg", g.Find("Cartridge").Material().Name())
	glass := g.Find(LightbulbGlassName).Material()
	assert.Equal(t, material.KindBasic, glass.Kind())
	assert.Equal(t, float32(0.16), glass.Opacity())
	assert.Nil(t, g.Find(InfoPointName).Material(), "marker nodes carry no mesh")

	assert.Equal(t, mgl32.Vec3{0, 0.7, -3}, box.InfoPoint())
	assert.Equal(t, mgl32.Vec3{0.1, 0.6, -2.6}, box.ViewPoint())
	assert.Equal(t, []scene.Node{box.Root()}, world.Children())

	require.NoError(t, box.Load(context.Background(), world), "second load is a no-op")
	assert.Len(t, world.Children(), 1)
}

func TestBoxMissingMarker(t *testing.T) {
	l := loader.NewLoader(loader.WithFS(assetFS(t)))
	box := NewBox(l, BoxPaths{Scene: "Bare.glb", Baked: "GameBox.jpg", Content: "GameBoxContent.jpg"})

	err := box.Load(context.Background(), scene.NewNode("world"))
	var missing *common.MissingAssetError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, InfoPointName, missing.Name)
	assert.Nil(t, box.Root())
}

func TestRoomWindowGlass(t *testing.T) {
	l := loader.NewLoader(loader.WithFS(assetFS(t)))
	room := NewRoom(l, RoomPaths{Scene: "Attic.glb", Baked: "Attic.jpg"})
	require.NoError(t, room.Load(context.Background(), scene.NewNode("world")))

	glass := room.Graph().Find(WindowGlassName).Material()
	assert.Equal(t, [4]float32{0x81 / 255.0, 0x81 / 255.0, 0x81 / 255.0, 0.12}, glass.BaseColor())
	assert.Equal(t, material.KindImage, room.Graph().Find("Floor").Material().Kind())
}

func TestDeviceVideoOptional(t *testing.T) {
	fsys := assetFS(t)
	l := loader.NewLoader(loader.WithFS(fsys))
	dev := NewDevice(l, DevicePaths{Scene: "GameBoy.glb", Baked: "GameBoy.jpg", Video: "GlitchNoiseStatic.mp4"})
	require.NoError(t, dev.Load(context.Background(), scene.NewNode("world")))

	assert.Equal(t, DeviceRootName, dev.Root().Name())
	assert.Equal(t, ScreenName, dev.Screen().Name())
	require.NotNil(t, dev.VideoMaterial())
	assert.True(t, dev.VideoMaterial().Video() == dev.Video())
	assert.Equal(t, "GameBoy.jpg", dev.Screen().Material().Name(), "screen keeps the baked material until the video is applied")

	noVideo := NewDevice(l, DevicePaths{Scene: "GameBoy.glb", Baked: "GameBoy.jpg", Video: "missing.mp4"})
	require.NoError(t, noVideo.Load(context.Background(), scene.NewNode("world")))
	assert.Nil(t, noVideo.VideoMaterial())
}

func TestManagerLoadAll(t *testing.T) {
	l := loader.NewLoader(loader.WithFS(assetFS(t)))
	world := scene.NewNode("world")
	mgr := NewManager(WithWorkers(2))
	defer mgr.Close()

	mgr.Add(
		NewRoom(l, RoomPaths{Scene: "Attic.glb", Baked: "Attic.jpg"}),
		NewBox(l, BoxPaths{Scene: "GameBox.glb", Baked: "GameBox.jpg", Content: "GameBoxContent.jpg"}),
		NewDevice(l, DevicePaths{Scene: "GameBoy.glb", Baked: "GameBoy.jpg", Video: "GlitchNoiseStatic.mp4"}),
	)
	require.NoError(t, mgr.LoadAll(context.Background(), world))
	assert.Len(t, world.Children(), 3)
	assert.Len(t, mgr.Models(), 3)
}

func TestManagerJoinsErrors(t *testing.T) {
	l := loader.NewLoader(loader.WithFS(assetFS(t)))
	world := scene.NewNode("world")
	mgr := NewManager()
	defer mgr.Close()

	mgr.Add(
		NewRoom(l, RoomPaths{Scene: "Missing.glb", Baked: "Attic.jpg"}),
		NewBox(l, BoxPaths{Scene: "Bare.glb", Baked: "GameBox.jpg", Content: "GameBoxContent.jpg"}),
		NewDevice(l, DevicePaths{Scene: "GameBoy.glb", Baked: "GameBoy.jpg", Video: "GlitchNoiseStatic.mp4"}),
	)
	err := mgr.LoadAll(context.Background(), world)
	require.Error(t, err)

	var loadErr *common.AssetLoadError
	assert.True(t, errors.As(err, &loadErr))
	var missing *common.MissingAssetError
	assert.True(t, errors.As(err, &missing))
	assert.Len(t, world.Children(), 1, "the device still loads")
}

func TestLoadCancelled(t *testing.T) {
	l := loader.NewLoader(loader.WithFS(assetFS(t)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRoom(l, RoomPaths{Scene: "Attic.glb", Baked: "Attic.jpg"}).Load(ctx, scene.NewNode("world"))
	assert.ErrorIs(t, err, context.Canceled)
}
