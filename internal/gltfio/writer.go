package gltfio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Save writes the meshes into a fresh glTF document, one node per mesh.
// SecondTexCoords, when present, become the TEXCOORD_1 attribute so that
// lightmap-aware renderers pick them up. The extension selects the format:
// .glb is binary, anything else is JSON.
func Save(path string, meshes []*Mesh) error {
	doc := gltf.NewDocument()

	for _, m := range meshes {
		attrs := gltf.PrimitiveAttributes{
			gltf.POSITION: modeler.WritePosition(doc, m.Positions),
		}
		if m.Normals != nil {
			attrs[gltf.NORMAL] = modeler.WriteNormal(doc, m.Normals)
		}
		if m.TexCoords != nil {
			attrs[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(doc, m.TexCoords)
		}
		if m.SecondTexCoords != nil {
			attrs[gltf.TEXCOORD_1] = modeler.WriteTextureCoord(doc, m.SecondTexCoords)
		}
		if m.Colors != nil {
			attrs[gltf.COLOR_0] = modeler.WriteColor(doc, m.Colors)
		}
		if m.Tangents != nil {
			attrs[gltf.TANGENT] = modeler.WriteTangent(doc, m.Tangents)
		}

		prim := &gltf.Primitive{
			Attributes: attrs,
			Indices:    gltf.Index(modeler.WriteIndices(doc, m.Indices)),
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       m.Name,
			Primitives: []*gltf.Primitive{prim},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: m.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	var err error
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("gltfio: save %s: %w", path, err)
	}
	return nil
}
