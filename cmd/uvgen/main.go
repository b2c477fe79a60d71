// Command uvgen generates lightmap UVs (a second texture channel) for one
// mesh file. It accepts glTF/GLB or OBJ input and writes GLB with the
// generated coordinates in TEXCOORD_1, plus an optional WebP preview of the
// packed atlas.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrDIMAS/uvgen/internal/gltfio"
	"github.com/mrDIMAS/uvgen/internal/logger"
	"github.com/mrDIMAS/uvgen/internal/objio"
	"github.com/mrDIMAS/uvgen/internal/preview"
	"github.com/mrDIMAS/uvgen/internal/uvgen"
)

func main() {
	inPath := flag.String("in", "", "Input mesh file (.glb, .gltf or .obj)")
	outPath := flag.String("out", "", "Output GLB file (default: <in>_unwrapped.glb)")
	spacing := flag.Float64("spacing", 0.005, "UV-space margin between packed islands")
	previewPath := flag.String("preview", "", "Write a WebP preview of the UV layout to this path")
	previewSize := flag.Int("preview-size", 1024, "Preview image edge length in pixels")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")

	flag.Parse()

	logger.Init(*logLevel, "")
	defer logger.Sync()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: uvgen -in mesh.glb [-out unwrapped.glb] [-spacing 0.005] [-preview layout.webp]")
		os.Exit(2)
	}
	if *spacing <= 0 {
		logger.Sugar.Fatalf("spacing must be positive, got %g", *spacing)
	}

	out := *outPath
	if out == "" {
		ext := filepath.Ext(*inPath)
		out = strings.TrimSuffix(*inPath, ext) + "_unwrapped.glb"
	}

	meshes, err := loadMeshes(*inPath)
	if err != nil {
		logger.Sugar.Fatalf("load: %v", err)
	}

	for mi, mesh := range meshes {
		positions := mesh.Vec3Positions()
		triangles, err := mesh.Triangles()
		if err != nil {
			logger.Sugar.Fatalf("%v", err)
		}

		patch, err := uvgen.GenerateUVs(positions, triangles, float32(*spacing))
		if err != nil {
			logger.Sugar.Fatalf("mesh %q: unwrap failed: %v", mesh.Name, err)
		}
		patch.DataID = mesh.DataID()

		logger.Sugar.Infof("mesh %q: %d vertices (+%d split), %d triangles",
			mesh.Name, len(mesh.Positions), len(patch.AdditionalVertices), len(patch.Triangles))
		if patch.Unplaced > 0 {
			logger.Sugar.Warnf("mesh %q: %d islands left unplaced, their UVs stay zero", mesh.Name, patch.Unplaced)
		}

		if err := mesh.ApplyPatch(patch); err != nil {
			logger.Sugar.Fatalf("apply patch: %v", err)
		}

		if *previewPath != "" {
			img := preview.Render(patch, preview.Options{Size: *previewSize, Supersample: 4})
			path := *previewPath
			if len(meshes) > 1 {
				ext := filepath.Ext(path)
				path = fmt.Sprintf("%s_%d%s", strings.TrimSuffix(path, ext), mi, ext)
			}
			if err := preview.WriteWebP(path, img); err != nil {
				logger.Sugar.Fatalf("%v", err)
			}
			logger.Sugar.Infof("preview written to %s", path)
		}
	}

	if err := gltfio.Save(out, meshes); err != nil {
		logger.Sugar.Fatalf("save: %v", err)
	}
	logger.Sugar.Infof("wrote %s", out)
}

// loadMeshes dispatches on the input extension. OBJ carries positions only,
// so the resulting mesh has no extra attributes to clone.
func loadMeshes(path string) ([]*gltfio.Mesh, error) {
	if strings.EqualFold(filepath.Ext(path), ".obj") {
		positions, triangles, err := objio.Load(path)
		if err != nil {
			return nil, err
		}
		mesh := &gltfio.Mesh{
			Name:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			Positions: make([][3]float32, len(positions)),
		}
		for i, p := range positions {
			mesh.Positions[i] = [3]float32{p.X(), p.Y(), p.Z()}
		}
		for _, tri := range triangles {
			mesh.Indices = append(mesh.Indices, tri[0], tri[1], tri[2])
		}
		return []*gltfio.Mesh{mesh}, nil
	}
	return gltfio.Load(path)
}
