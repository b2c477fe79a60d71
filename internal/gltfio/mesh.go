// Package gltfio owns mesh data for the UV generator: it loads triangle
// geometry from glTF files, applies generated SurfaceDataPatch values back
// onto the full vertex attributes, and writes the result with the secondary
// coordinates in TEXCOORD_1.
package gltfio

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mrDIMAS/uvgen/internal/uvgen"
)

// Mesh is one triangle primitive with all per-vertex attributes this tool
// carries through. Optional attribute slices are nil when absent and
// otherwise parallel to Positions.
type Mesh struct {
	Name      string
	Positions [][3]float32
	Indices   []uint32

	Normals   [][3]float32
	TexCoords [][2]float32
	Colors    [][4]uint8
	Tangents  [][4]float32

	// SecondTexCoords is filled in by ApplyPatch and written as TEXCOORD_1.
	SecondTexCoords [][2]float32
}

// DataID hashes positions and indices with FNV-1a. It identifies the surface
// data a patch was generated for.
func (m *Mesh) DataID() uint64 {
	h := fnv.New64a()
	_ = binary.Write(h, binary.LittleEndian, m.Positions)
	_ = binary.Write(h, binary.LittleEndian, m.Indices)
	return h.Sum64()
}

// Vec3Positions converts the position buffer into the generator's vector
// type.
func (m *Mesh) Vec3Positions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(m.Positions))
	for i, p := range m.Positions {
		out[i] = mgl32.Vec3{p[0], p[1], p[2]}
	}
	return out
}

// Triangles groups the flat index buffer into triples.
func (m *Mesh) Triangles() ([][3]uint32, error) {
	if len(m.Indices)%3 != 0 {
		return nil, fmt.Errorf("gltfio: mesh %q has %d indices, not a multiple of 3", m.Name, len(m.Indices))
	}
	tris := make([][3]uint32, len(m.Indices)/3)
	for i := range tris {
		tris[i] = [3]uint32{m.Indices[i*3], m.Indices[i*3+1], m.Indices[i*3+2]}
	}
	return tris, nil
}

// ApplyPatch rewrites the mesh with the patch produced for it: clones every
// additional vertex (all attributes, in append order, so entries may refer
// to earlier clones), replaces the index buffer with the seam-split
// topology, and stores the secondary texture coordinates.
func (m *Mesh) ApplyPatch(patch *uvgen.SurfaceDataPatch) error {
	for _, src := range patch.AdditionalVertices {
		i := int(src)
		if i >= len(m.Positions) {
			return fmt.Errorf("gltfio: mesh %q: additional vertex source %d of %d out of range", m.Name, src, len(m.Positions))
		}
		m.Positions = append(m.Positions, m.Positions[i])
		if m.Normals != nil {
			m.Normals = append(m.Normals, m.Normals[i])
		}
		if m.TexCoords != nil {
			m.TexCoords = append(m.TexCoords, m.TexCoords[i])
		}
		if m.Colors != nil {
			m.Colors = append(m.Colors, m.Colors[i])
		}
		if m.Tangents != nil {
			m.Tangents = append(m.Tangents, m.Tangents[i])
		}
	}

	if len(patch.SecondTexCoords) != len(m.Positions) {
		return fmt.Errorf("gltfio: mesh %q: %d secondary coordinates for %d vertices", m.Name, len(patch.SecondTexCoords), len(m.Positions))
	}

	m.Indices = m.Indices[:0]
	for _, tri := range patch.Triangles {
		for _, vi := range tri {
			if int(vi) >= len(m.Positions) {
				return fmt.Errorf("gltfio: mesh %q: patched triangle references vertex %d of %d", m.Name, vi, len(m.Positions))
			}
			m.Indices = append(m.Indices, vi)
		}
	}

	m.SecondTexCoords = make([][2]float32, len(patch.SecondTexCoords))
	for i, tc := range patch.SecondTexCoords {
		m.SecondTexCoords[i] = [2]float32{tc.X(), tc.Y()}
	}

	return nil
}
