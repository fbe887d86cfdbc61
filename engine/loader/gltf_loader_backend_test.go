package loader

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"testing/fstest"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGLTFBuffer packs positions, indices, key times, translations and rotations.
func testGLTFBuffer() []byte {
	var buf bytes.Buffer
	put := func(vs ...float32) {
		for _, v := range vs {
			_ = binary.Write(&buf, binary.LittleEndian, v)
		}
	}
	// positions @0, indices @36 (padded to 44), times @44, translations @52, rotations @76
	put(0, 0, 0, 1, 0, 0, 0, 1, 0)
	_ = binary.Write(&buf, binary.LittleEndian, []uint16{0, 1, 2, 0})
	put(0, 1)
	put(0, 0, 0, 0, 1, 0)
	s, c := float32(math.Sin(0.25)), float32(math.Cos(0.25))
	put(0, 0, 0, 1, 0, s, 0, c)
	return buf.Bytes()
}

func testGLTFDocument(uri string) map[string]any {
	buffer := map[string]any{"byteLength": 108}
	if uri != "" {
		buffer["uri"] = uri
	}
	s := math.Sqrt2 / 2
	return map[string]any{
		"asset":  map[string]any{"version": "2.0"},
		"scene":  0,
		"scenes": []any{map[string]any{"nodes": []int{1, 2}}},
		"nodes": []any{
			map[string]any{"name": "Lid", "translation": []float64{0, 0.5, 0}, "rotation": []float64{s, 0, 0, s}, "mesh": 0},
			map[string]any{"name": "Box", "children": []int{0}, "scale": []float64{2, 2, 2}},
			map[string]any{"matrix": []float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 2, 3, 1}},
		},
		"meshes": []any{map[string]any{"primitives": []any{
			map[string]any{"attributes": map[string]int{"POSITION": 0}, "indices": 1},
		}}},
		"accessors": []any{
			map[string]any{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"},
			map[string]any{"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"},
			map[string]any{"bufferView": 2, "componentType": 5126, "count": 2, "type": "SCALAR"},
			map[string]any{"bufferView": 3, "componentType": 5126, "count": 2, "type": "VEC3"},
			map[string]any{"bufferView": 4, "componentType": 5126, "count": 2, "type": "VEC4"},
		},
		"bufferViews": []any{
			map[string]any{"buffer": 0, "byteOffset": 0, "byteLength": 36},
			map[string]any{"buffer": 0, "byteOffset": 36, "byteLength": 6},
			map[string]any{"buffer": 0, "byteOffset": 44, "byteLength": 8},
			map[string]any{"buffer": 0, "byteOffset": 52, "byteLength": 24},
			map[string]any{"buffer": 0, "byteOffset": 76, "byteLength": 32},
		},
		"buffers": []any{buffer},
		"animations": []any{map[string]any{
			"name": "Opening",
			"channels": []any{
				map[string]any{"sampler": 0, "target": map[string]any{"node": 0, "path": "translation"}},
				map[string]any{"sampler": 1, "target": map[string]any{"node": 0, "path": "rotation"}},
			},
			"samplers": []any{
				map[string]any{"input": 2, "output": 3},
				map[string]any{"input": 2, "output": 4, "interpolation": "STEP"},
			},
		}},
	}
}

func testGLTFJSON(t *testing.T) []byte {
	t.Helper()
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(testGLTFBuffer())
	data, err := json.Marshal(testGLTFDocument(uri))
	require.NoError(t, err)
	return data
}

func testGLB(t *testing.T, version uint32) []byte {
	t.Helper()
	js, err := json.Marshal(testGLTFDocument(""))
	require.NoError(t, err)
	for len(js)%4 != 0 {
		js = append(js, ' ')
	}
	bin := testGLTFBuffer()

	var out bytes.Buffer
	total := uint32(12 + 8 + len(js) + 8 + len(bin))
	require.NoError(t, binary.Write(&out, binary.LittleEndian, gltfGLBHeader{Magic: gltfGLBMagic, Version: version, Length: total}))
	require.NoError(t, binary.Write(&out, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(js)), ChunkType: gltfGLBChunkJSON}))
	out.Write(js)
	require.NoError(t, binary.Write(&out, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(bin)), ChunkType: gltfGLBChunkBIN}))
	out.Write(bin)
	return out.Bytes()
}

func assertTestScene(t *testing.T, g scene.Graph) {
	t.Helper()
	children := g.Root().Children()
	require.Len(t, children, 2)
	assert.Equal(t, "Box", children[0].Name())
	assert.Equal(t, "node_2", children[1].Name(), "unnamed nodes get an index name")

	marker := children[1]
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, marker.Position())
	assert.True(t, marker.Scale().Sub(mgl32.Vec3{1, 1, 1}).Len() < 1e-6)

	lid := g.Find("Lid")
	require.NotNil(t, lid)
	assert.Equal(t, "Box", lid.Parent().Name())
	assert.True(t, lid.Rotation().Sub(mgl32.Vec3{math.Pi / 2, 0, 0}).Len() < 1e-5, "got %v", lid.Rotation())
	require.NotNil(t, lid.Mesh())
	assert.Len(t, lid.Mesh().Triangles, 1)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, lid.Mesh().Bounds.Max)

	clip := g.Clip("Opening")
	require.NotNil(t, clip)
	assert.InDelta(t, 1, clip.Duration, 1e-6)
	require.Len(t, clip.Tracks, 2)

	move := clip.Tracks[0]
	assert.Equal(t, scene.PropertyPosition, move.Property)
	assert.Equal(t, "Lid", move.Node)
	assert.True(t, move.Sample(0.5).Sub(mgl32.Vec3{0, 0.5, 0}).Len() < 1e-6)

	turn := clip.Tracks[1]
	assert.Equal(t, scene.PropertyRotation, turn.Property)
	assert.Equal(t, []float32{0, 1, 1}, turn.Times, "step keys are duplicated")
	assert.True(t, turn.Sample(0.9).Len() < 1e-6, "step holds the first key")
	assert.True(t, turn.Sample(1).Sub(mgl32.Vec3{0, 0.5, 0}).Len() < 1e-4, "got %v", turn.Sample(1))
}

func TestGLTFBackendJSON(t *testing.T) {
	g, err := newGLTFLoaderBackend().Load("Box.gltf", bytes.NewReader(testGLTFJSON(t)))
	require.NoError(t, err)
	assert.Equal(t, "Box.gltf", g.Path())
	assertTestScene(t, g)
}

func TestGLTFBackendGLB(t *testing.T) {
	g, err := newGLTFLoaderBackend().Load("Box.glb", bytes.NewReader(testGLB(t, 2)))
	require.NoError(t, err)
	assertTestScene(t, g)
}

func TestGLTFBackendErrors(t *testing.T) {
	b := newGLTFLoaderBackend()

	_, err := b.Load("v1.glb", bytes.NewReader(testGLB(t, 1)))
	assert.ErrorIs(t, err, errInvalidGLBVersion)

	doc := testGLTFDocument("Box.bin")
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	_, err = b.Load("external.gltf", bytes.NewReader(data))
	assert.ErrorIs(t, err, errExternalBuffer)

	doc["asset"] = map[string]any{"version": "1.0"}
	data, err = json.Marshal(doc)
	require.NoError(t, err)
	_, err = b.Load("old.gltf", bytes.NewReader(data))
	assert.ErrorIs(t, err, errInvalidGLTFVersion)

	_, err = b.Load("junk.gltf", bytes.NewReader([]byte("{")))
	assert.Error(t, err)
}

func TestLoadSceneDecodesBinaryWithoutManifest(t *testing.T) {
	fsys := testFS(t)
	fsys["models/Plain/Plain.glb"] = &fstest.MapFile{Data: testGLB(t, 2)}
	fsys["models/Plain/Broken.glb"] = &fstest.MapFile{Data: []byte("glTF")}
	l := NewLoader(WithFS(fsys))

	g, err := l.LoadScene("models/Plain/Plain.glb")
	require.NoError(t, err)
	assert.NotNil(t, g.Find("Lid"))

	_, err = l.LoadScene("models/Plain/Broken.glb")
	var loadErr *common.AssetLoadError
	assert.True(t, errors.As(err, &loadErr))
}
