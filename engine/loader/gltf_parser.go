package loader

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// Common errors returned by the parser
var (
	errInvalidGLTFVersion = errors.New("invalid glTF version: must be 2.0")
	errInvalidGLBMagic    = errors.New("invalid GLB magic number")
	errInvalidGLBVersion  = errors.New("invalid GLB version: must be 2")
	errMissingJSONChunk   = errors.New("GLB file missing JSON chunk")
	errInvalidBufferURI   = errors.New("invalid buffer URI")
	errExternalBuffer     = errors.New("external buffer files are not supported, embed them or export as GLB")
	errBufferSizeMismatch = errors.New("buffer size mismatch")
)

// gltfParser holds a decoded glTF document with its resolved buffers and reads typed accessor data.
type gltfParser struct {
	document *gltfDocument
}

// parseGLTF decodes a .gltf JSON document or a .glb container.
// The format is detected from the GLB magic number.
//
// Parameters:
//   - r: reader providing the encoded asset
//
// Returns:
//   - *gltfParser: the parser over the decoded document
//   - error: error if the data is not a valid glTF 2.0 asset
func parseGLTF(r io.Reader) (*gltfParser, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}

	var jsonData, binData []byte
	if len(data) >= 4 && binary.LittleEndian.Uint32(data[:4]) == gltfGLBMagic {
		if jsonData, binData, err = splitGLB(data); err != nil {
			return nil, err
		}
	} else {
		jsonData = data
	}

	var doc gltfDocument
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse glTF JSON: %w", err)
	}
	if !strings.HasPrefix(doc.Asset.Version, "2.") {
		return nil, errInvalidGLTFVersion
	}
	if err := loadBuffers(&doc, binData); err != nil {
		return nil, fmt.Errorf("failed to load buffers: %w", err)
	}
	return &gltfParser{document: &doc}, nil
}

// splitGLB returns the JSON and BIN chunks of a GLB container.
func splitGLB(data []byte) ([]byte, []byte, error) {
	r := bytes.NewReader(data)

	var header gltfGLBHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, nil, fmt.Errorf("failed to read GLB header: %w", err)
	}
	if header.Magic != gltfGLBMagic {
		return nil, nil, errInvalidGLBMagic
	}
	if header.Version != gltfGLBVersion {
		return nil, nil, errInvalidGLBVersion
	}

	var jsonData, binData []byte
	for {
		var chunk gltfGLBChunkHeader
		if err := binary.Read(r, binary.LittleEndian, &chunk); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("failed to read chunk header: %w", err)
		}
		if int64(chunk.ChunkLength) > int64(r.Len()) {
			return nil, nil, fmt.Errorf("chunk of %d bytes exceeds the remaining %d", chunk.ChunkLength, r.Len())
		}
		body := make([]byte, chunk.ChunkLength)
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, nil, fmt.Errorf("failed to read chunk data: %w", err)
		}
		switch chunk.ChunkType {
		case gltfGLBChunkJSON:
			jsonData = body
		case gltfGLBChunkBIN:
			binData = body
		}
	}
	if jsonData == nil {
		return nil, nil, errMissingJSONChunk
	}
	return jsonData, binData, nil
}

// loadBuffers resolves buffer data from the GLB binary chunk or embedded data URIs.
func loadBuffers(doc *gltfDocument, binChunk []byte) error {
	for i := range doc.Buffers {
		buf := &doc.Buffers[i]
		switch {
		case buf.URI == "" && i == 0 && binChunk != nil:
			buf.Data = binChunk
		case buf.URI == "":
			return fmt.Errorf("buffer %d has no URI and no GLB binary chunk", i)
		case strings.HasPrefix(buf.URI, "data:"):
			data, err := decodeDataURI(buf.URI)
			if err != nil {
				return fmt.Errorf("buffer %d: %w", i, err)
			}
			buf.Data = data
		default:
			return fmt.Errorf("buffer %d (%s): %w", i, buf.URI, errExternalBuffer)
		}
		if len(buf.Data) < buf.ByteLength {
			return fmt.Errorf("buffer %d: %w", i, errBufferSizeMismatch)
		}
	}
	return nil
}

// decodeDataURI decodes a base64 data URI.
// Format: data:[<mediatype>][;base64],<data>
func decodeDataURI(uri string) ([]byte, error) {
	comma := strings.Index(uri, ",")
	if comma < 0 {
		return nil, errInvalidBufferURI
	}
	if header := uri[5:comma]; !strings.Contains(header, "base64") {
		return nil, fmt.Errorf("unsupported data URI encoding: %s", header)
	}
	data, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	return data, nil
}

// --- Accessor Data Reading ---

// accessorElements returns the accessor and the raw bytes of each element, honoring byte strides.
func (p *gltfParser) accessorElements(index int) (*gltfAccessor, [][]byte, error) {
	doc := p.document
	if index < 0 || index >= len(doc.Accessors) {
		return nil, nil, fmt.Errorf("accessor index %d out of range", index)
	}
	acc := &doc.Accessors[index]
	if acc.BufferView == nil {
		return nil, nil, fmt.Errorf("accessor %d has no bufferView", index)
	}
	if *acc.BufferView < 0 || *acc.BufferView >= len(doc.BufferViews) {
		return nil, nil, fmt.Errorf("accessor %d: bufferView %d out of range", index, *acc.BufferView)
	}
	bv := &doc.BufferViews[*acc.BufferView]
	if bv.Buffer < 0 || bv.Buffer >= len(doc.Buffers) {
		return nil, nil, fmt.Errorf("bufferView %d: buffer %d out of range", *acc.BufferView, bv.Buffer)
	}
	data := doc.Buffers[bv.Buffer].Data

	elementSize := gltfComponentTypeSize(acc.ComponentType) * gltfAccessorTypeComponentCount(acc.Type)
	if elementSize == 0 {
		return nil, nil, fmt.Errorf("accessor %d: unsupported layout %s/%d", index, acc.Type, acc.ComponentType)
	}
	stride := elementSize
	if bv.ByteStride != nil && *bv.ByteStride > 0 {
		stride = *bv.ByteStride
	}

	start := bv.ByteOffset + acc.ByteOffset
	out := make([][]byte, acc.Count)
	for i := range out {
		off := start + i*stride
		if off+elementSize > len(data) {
			return nil, nil, fmt.Errorf("accessor %d: element %d exceeds buffer", index, i)
		}
		out[i] = data[off : off+elementSize]
	}
	return acc, out, nil
}

// readFloats reads a FLOAT accessor of the given element type as rows of components.
func (p *gltfParser) readFloats(index int, accessorType string) ([][]float32, error) {
	acc, elems, err := p.accessorElements(index)
	if err != nil {
		return nil, err
	}
	if acc.Type != accessorType || acc.ComponentType != gltfComponentTypeFloat {
		return nil, fmt.Errorf("accessor %d is not %s FLOAT: type=%s, componentType=%d", index, accessorType, acc.Type, acc.ComponentType)
	}
	n := gltfAccessorTypeComponentCount(acc.Type)
	out := make([][]float32, len(elems))
	for i, e := range elems {
		row := make([]float32, n)
		for c := range row {
			row[c] = math.Float32frombits(binary.LittleEndian.Uint32(e[c*4:]))
		}
		out[i] = row
	}
	return out, nil
}

// readScalars reads a SCALAR FLOAT accessor such as animation key times.
func (p *gltfParser) readScalars(index int) ([]float32, error) {
	rows, err := p.readFloats(index, gltfAccessorTypeScalar)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(rows))
	for i, r := range rows {
		out[i] = r[0]
	}
	return out, nil
}

// readIndices reads an index accessor of any unsigned component type.
func (p *gltfParser) readIndices(index int) ([]uint32, error) {
	acc, elems, err := p.accessorElements(index)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltfAccessorTypeScalar {
		return nil, fmt.Errorf("index accessor is not SCALAR: type=%s", acc.Type)
	}
	out := make([]uint32, len(elems))
	for i, e := range elems {
		switch acc.ComponentType {
		case gltfComponentTypeUnsignedByte:
			out[i] = uint32(e[0])
		case gltfComponentTypeUnsignedShort:
			out[i] = uint32(binary.LittleEndian.Uint16(e))
		case gltfComponentTypeUnsignedInt:
			out[i] = binary.LittleEndian.Uint32(e)
		default:
			return nil, fmt.Errorf("unsupported index component type: %d", acc.ComponentType)
		}
	}
	return out, nil
}

// --- Helper Functions ---

// gltfComponentTypeSize returns the byte size of a component type.
func gltfComponentTypeSize(componentType int) int {
	switch componentType {
	case gltfComponentTypeByte, gltfComponentTypeUnsignedByte:
		return 1
	case gltfComponentTypeShort, gltfComponentTypeUnsignedShort:
		return 2
	case gltfComponentTypeUnsignedInt, gltfComponentTypeFloat:
		return 4
	default:
		return 0
	}
}

// gltfAccessorTypeComponentCount returns the number of components for an accessor type.
func gltfAccessorTypeComponentCount(accessorType string) int {
	switch accessorType {
	case gltfAccessorTypeScalar:
		return 1
	case gltfAccessorTypeVec2:
		return 2
	case gltfAccessorTypeVec3:
		return 3
	case gltfAccessorTypeVec4:
		return 4
	case gltfAccessorTypeMat4:
		return 16
	default:
		return 0
	}
}
