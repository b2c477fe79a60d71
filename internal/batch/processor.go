// Package batch unwraps a set of mesh files with a worker pool. Every mesh
// is an independent pure computation, so files scale out across workers with
// no coordination beyond the result slice.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mrDIMAS/uvgen/internal/gltfio"
	"github.com/mrDIMAS/uvgen/internal/logger"
	"github.com/mrDIMAS/uvgen/internal/preview"
	"github.com/mrDIMAS/uvgen/internal/uvgen"
)

// Config holds shared settings for a batch run.
type Config struct {
	OutputDir   string
	Spacing     float32
	Preview     bool
	PreviewSize int
	Supersample int
	Workers     int
}

// Result holds the outcome of processing one file.
type Result struct {
	File     string `json:"file"`
	Output   string `json:"output,omitempty"`
	Meshes   int    `json:"meshes"`
	Unplaced int    `json:"unplaced_islands,omitempty"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// Run processes all files using a worker pool and returns one Result per
// file, in input order. Individual failures never abort the run.
func Run(cfg Config, files []string) []Result {
	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Sugar.Infof("[%d/%d] %.1f files/sec", p, total, rate)
				}
			}
		}
	}()

	fileChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = processFile(cfg, files[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results
}

func processFile(cfg Config, path string) Result {
	res := Result{File: path}

	meshes, err := gltfio.Load(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Meshes = len(meshes)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	for mi, mesh := range meshes {
		positions := mesh.Vec3Positions()
		triangles, err := mesh.Triangles()
		if err != nil {
			res.Error = err.Error()
			return res
		}

		patch, err := uvgen.GenerateUVs(positions, triangles, cfg.Spacing)
		if err != nil {
			res.Error = fmt.Sprintf("mesh %q: %v", mesh.Name, err)
			return res
		}
		patch.DataID = mesh.DataID()

		if patch.Unplaced > 0 {
			res.Unplaced += patch.Unplaced
			logger.Sugar.Warnf("%s: mesh %q: %d islands left unplaced, their UVs stay zero",
				path, mesh.Name, patch.Unplaced)
		}

		if err := mesh.ApplyPatch(patch); err != nil {
			res.Error = err.Error()
			return res
		}

		if cfg.Preview {
			img := preview.Render(patch, preview.Options{Size: cfg.PreviewSize, Supersample: cfg.Supersample})
			name := base + ".webp"
			if len(meshes) > 1 {
				name = fmt.Sprintf("%s_%d.webp", base, mi)
			}
			if err := preview.WriteWebP(filepath.Join(cfg.OutputDir, name), img); err != nil {
				res.Error = err.Error()
				return res
			}
		}
	}

	outPath := filepath.Join(cfg.OutputDir, base+".glb")
	if err := gltfio.Save(outPath, meshes); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Output = outPath
	res.Success = true
	return res
}
