// Package uvgen computes a secondary texture parameterization (lightmap UVs)
// for a triangle mesh using box mapping: every triangle is projected onto the
// box face its normal points at, vertices shared across face boundaries are
// split into seams, connected groups of triangles become UV islands, and the
// islands are packed into the unit square.
//
// The generator never touches its inputs; it works on private copies and
// returns a SurfaceDataPatch the caller applies to the original mesh data.
package uvgen

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mrDIMAS/uvgen/internal/rectpack"
)

// ErrInvalidIndex reports a triangle referencing a vertex index outside the
// vertex buffer. It is the only error kind the generator produces.
var ErrInvalidIndex = errors.New("vertex index out of range")

// SurfaceDataPatch carries everything needed to apply generated UVs to mesh
// data that was not present at generation time (e.g. reloaded from storage):
// the seam-split topology, the vertices the split added, and one secondary
// texture coordinate per final vertex.
type SurfaceDataPatch struct {
	// DataID identifies the source mesh. The generator leaves it zero;
	// callers typically stamp a content hash here.
	DataID uint64

	// AdditionalVertices lists, in append order, the source index of every
	// vertex the seam split cloned. The mesh owner must clone all per-vertex
	// attributes from each source index, one by one, in this order (an entry
	// may reference an earlier clone).
	AdditionalVertices []uint32

	// Triangles is the final topology. It replaces the original index
	// buffer.
	Triangles [][3]uint32

	// SecondTexCoords holds one coordinate per vertex of the final buffer
	// (original vertices first, then AdditionalVertices in order).
	SecondTexCoords []mgl32.Vec2

	// Unplaced counts islands the atlas packer could not place within its
	// attempt budget. Their vertices keep zero coordinates.
	Unplaced int
}

// GenerateUVs computes lightmap UVs for the given mesh. The spacing is the
// UV-space margin kept around every packed island. The input slices are not
// modified.
//
// The only failure mode is an invalid vertex index in the triangle list; all
// degenerate geometry (zero-area triangles, zero normals, disconnected
// pieces) is handled without error.
func GenerateUVs(vertices []mgl32.Vec3, triangles [][3]uint32, spacing float32) (*SurfaceDataPatch, error) {
	verts := slices.Clone(vertices)
	tris := slices.Clone(triangles)

	box, err := buildUVBox(verts, tris)
	if err != nil {
		return nil, err
	}

	patch := &SurfaceDataPatch{}

	if err := splitSeams(&verts, tris, box, patch); err != nil {
		return nil, err
	}

	islands := segmentIslands(tris, box.projections)

	scale, rects := packIslands(islands, spacing, rectpack.New(1, 1))

	patch.SecondTexCoords = make([]mgl32.Vec2, len(verts))
	margin := mgl32.Vec2{spacing, spacing}
	for i, rect := range rects {
		isl := islands[i]
		for _, ti := range isl.triangles {
			tri := tris[ti]
			proj := box.projections[ti]
			for k, vi := range tri {
				if int(vi) >= len(patch.SecondTexCoords) {
					return nil, fmt.Errorf("uvgen: final coordinate write for vertex %d of %d: %w",
						vi, len(patch.SecondTexCoords), ErrInvalidIndex)
				}
				patch.SecondTexCoords[vi] = proj[k].Sub(isl.uvMin).Mul(scale).
					Add(margin).
					Add(mgl32.Vec2{rect.X, rect.Y})
			}
		}
	}

	patch.Unplaced = len(islands) - len(rects)
	patch.Triangles = tris

	return patch, nil
}
