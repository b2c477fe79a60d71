// Package objio loads triangle geometry from Wavefront OBJ files. Only
// vertex positions and faces matter to the UV generator, so everything else
// (normals, texcoords, materials, groups) is skipped.
package objio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Load parses an OBJ file and returns its positions and triangles. Polygons
// with more than three corners are fan-triangulated. Face indices may use
// the v, v/vt, v//vn and v/vt/vn forms, 1-based or negative (relative to the
// end of the vertex list).
func Load(path string) ([]mgl32.Vec3, [][3]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("objio: open %s: %w", path, err)
	}
	defer f.Close()

	var (
		positions []mgl32.Vec3
		triangles [][3]uint32
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("objio: %s:%d: vertex needs 3 components", path, lineNo)
			}
			var v mgl32.Vec3
			for i := 0; i < 3; i++ {
				c, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, nil, fmt.Errorf("objio: %s:%d: bad coordinate %q: %w", path, lineNo, fields[i+1], err)
				}
				v[i] = float32(c)
			}
			positions = append(positions, v)

		case "f":
			corners := fields[1:]
			if len(corners) < 3 {
				return nil, nil, fmt.Errorf("objio: %s:%d: face needs at least 3 corners", path, lineNo)
			}
			indices := make([]uint32, len(corners))
			for i, c := range corners {
				idx, err := parseFaceIndex(c, len(positions))
				if err != nil {
					return nil, nil, fmt.Errorf("objio: %s:%d: %w", path, lineNo, err)
				}
				indices[i] = idx
			}
			// Fan triangulation around the first corner.
			for i := 1; i+1 < len(indices); i++ {
				triangles = append(triangles, [3]uint32{indices[0], indices[i], indices[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("objio: read %s: %w", path, err)
	}

	if len(triangles) == 0 {
		return nil, nil, fmt.Errorf("objio: %s: no faces", path)
	}

	return positions, triangles, nil
}

// parseFaceIndex resolves one face corner to a zero-based vertex index.
// Texture and normal references after the first slash are ignored.
func parseFaceIndex(corner string, vertexCount int) (uint32, error) {
	ref := corner
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		ref = ref[:slash]
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q: %w", corner, err)
	}
	switch {
	case n > 0:
		n--
	case n < 0:
		n += vertexCount
	default:
		return 0, fmt.Errorf("face index 0 in %q (OBJ indices are 1-based)", corner)
	}
	if n < 0 || n >= vertexCount {
		return 0, fmt.Errorf("face index %q out of range (have %d vertices)", corner, vertexCount)
	}
	return uint32(n), nil
}
