package uvgen

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// splitSeams duplicates every vertex shared between triangles on different
// box faces, so that after it runs no vertex index crosses a face boundary.
// Vertices shared only within one face are left alone; they keep the islands
// of that face connected.
//
// The triangle buffer is rewritten in place, the vertex buffer grows
// append-only, and every clone is recorded in patch.AdditionalVertices.
// Iteration is over slices in fixed face order, so results are reproducible.
func splitSeams(vertices *[]mgl32.Vec3, triangles [][3]uint32, box *uvBox, patch *SurfaceDataPatch) error {
	for current := range box.faces {
		for other := range box.faces {
			if other == current {
				continue
			}
			if err := faceVsFace(vertices, triangles, box.faces[current], box.faces[other], patch); err != nil {
				return err
			}
		}
	}
	return nil
}

// faceVsFace scans every triangle of one face against every triangle of
// another and clones each shared vertex into the face's own copy. Brute
// force on purpose: face clusters are small and the scan order stays stable.
func faceVsFace(vertices *[]mgl32.Vec3, triangles [][3]uint32, faceTriangles, otherFaceTriangles []int, patch *SurfaceDataPatch) error {
	for _, otherIndex := range otherFaceTriangles {
		other := triangles[otherIndex]
		for _, triangleIndex := range faceTriangles {
			tri := &triangles[triangleIndex]
		vertexLoop:
			for k := range tri {
				for _, otherVertex := range other {
					if tri[k] != otherVertex {
						continue
					}
					// Shared across the boundary: clone it and point this
					// occurrence at the clone. The new index can never match
					// again, so each occurrence is cloned at most once.
					if int(otherVertex) >= len(*vertices) {
						return fmt.Errorf("uvgen: seam split cloning vertex %d of %d: %w",
							otherVertex, len(*vertices), ErrInvalidIndex)
					}
					patch.AdditionalVertices = append(patch.AdditionalVertices, otherVertex)
					tri[k] = uint32(len(*vertices))
					*vertices = append(*vertices, (*vertices)[otherVertex])
					continue vertexLoop
				}
			}
		}
	}
	return nil
}
