package gltfio

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Load reads a .gltf or .glb file and returns one Mesh per indexed triangle
// primitive. Primitives without positions or indices, or with a non-triangle
// mode, are skipped.
func Load(path string) ([]*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltfio: open %s: %w", path, err)
	}

	var meshes []*Mesh
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok || prim.Indices == nil {
				continue
			}

			mesh := &Mesh{Name: gm.Name}
			if mesh.Name == "" {
				mesh.Name = fmt.Sprintf("mesh%d", mi)
			}
			if len(gm.Primitives) > 1 {
				mesh.Name = fmt.Sprintf("%s.%d", mesh.Name, pi)
			}

			mesh.Positions, err = modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("gltfio: %s: mesh %d primitive %d positions: %w", path, mi, pi, err)
			}
			mesh.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("gltfio: %s: mesh %d primitive %d indices: %w", path, mi, pi, err)
			}

			if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
				mesh.Normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
				if err != nil {
					return nil, fmt.Errorf("gltfio: %s: mesh %d primitive %d normals: %w", path, mi, pi, err)
				}
			}
			if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
				mesh.TexCoords, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
				if err != nil {
					return nil, fmt.Errorf("gltfio: %s: mesh %d primitive %d texcoords: %w", path, mi, pi, err)
				}
			}
			if idx, ok := prim.Attributes[gltf.COLOR_0]; ok {
				mesh.Colors, err = modeler.ReadColor(doc, doc.Accessors[idx], nil)
				if err != nil {
					return nil, fmt.Errorf("gltfio: %s: mesh %d primitive %d colors: %w", path, mi, pi, err)
				}
			}
			if idx, ok := prim.Attributes[gltf.TANGENT]; ok {
				mesh.Tangents, err = modeler.ReadTangent(doc, doc.Accessors[idx], nil)
				if err != nil {
					return nil, fmt.Errorf("gltfio: %s: mesh %d primitive %d tangents: %w", path, mi, pi, err)
				}
			}

			meshes = append(meshes, mesh)
		}
	}

	if len(meshes) == 0 {
		return nil, fmt.Errorf("gltfio: %s: no indexed triangle primitives", path)
	}

	return meshes, nil
}
