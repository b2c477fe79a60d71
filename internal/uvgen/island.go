package uvgen

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// island is a maximal group of triangles connected by shared vertex indices
// in the post-split topology. It moves as one rigid unit during packing.
type island struct {
	// triangles holds indices into the triangle buffer.
	triangles []int
	uvMin     mgl32.Vec2
	uvMax     mgl32.Vec2
}

func newIsland(firstTriangle int) *island {
	return &island{
		triangles: []int{firstTriangle},
		uvMin:     mgl32.Vec2{math.MaxFloat32, math.MaxFloat32},
		uvMax:     mgl32.Vec2{-math.MaxFloat32, -math.MaxFloat32},
	}
}

func (m *island) width() float32  { return m.uvMax.X() - m.uvMin.X() }
func (m *island) height() float32 { return m.uvMax.Y() - m.uvMin.Y() }
func (m *island) area() float32   { return m.width() * m.height() }

// segmentIslands partitions the triangle buffer into islands. Each island is
// seeded with the lowest-indexed unassigned triangle and grown breadth-first
// by rescanning all remaining triangles for a shared vertex, until nothing
// more is absorbed. Brute force, but deterministic for a given input order.
//
// Each island's bounding box is the union of its triangles' projections.
func segmentIslands(triangles [][3]uint32, projections [][3]mgl32.Vec2) []*island {
	var islands []*island
	assigned := make([]bool, len(triangles))

	for seed := range triangles {
		if assigned[seed] {
			continue
		}
		isl := newIsland(seed)
		assigned[seed] = true

		// isl.triangles doubles as the BFS frontier; frontier marks how far
		// the absorption scan has advanced into it.
		frontier := 1
		for i := 0; i < frontier; i++ {
			tri := triangles[isl.triangles[i]]
			for otherIndex, other := range triangles {
				if assigned[otherIndex] {
					continue
				}
			vertexLoop:
				for _, vi := range tri {
					for _, ovi := range other {
						if vi == ovi {
							isl.triangles = append(isl.triangles, otherIndex)
							assigned[otherIndex] = true
							frontier++
							break vertexLoop
						}
					}
				}
			}
		}

		for _, ti := range isl.triangles {
			for _, p := range projections[ti] {
				isl.uvMin = mgl32.Vec2{min(isl.uvMin.X(), p.X()), min(isl.uvMin.Y(), p.Y())}
				isl.uvMax = mgl32.Vec2{max(isl.uvMax.X(), p.X()), max(isl.uvMax.Y(), p.Y())}
			}
		}
		islands = append(islands, isl)
	}

	return islands
}
