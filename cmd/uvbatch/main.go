// Command uvbatch generates lightmap UVs for every glTF/GLB file in a
// directory using a worker pool, writing unwrapped GLB files and a results
// manifest to the output directory.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/mrDIMAS/uvgen/internal/batch"
	"github.com/mrDIMAS/uvgen/internal/config"
	"github.com/mrDIMAS/uvgen/internal/logger"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	inputDir := flag.String("in", "", "Directory with .glb/.gltf files")
	outputDir := flag.String("out", "", "Output directory")
	spacing := flag.Float64("spacing", 0, "UV-space margin between packed islands (default 0.005)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	doPreview := flag.Bool("preview", false, "Also write a WebP preview per mesh")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			logger.Init("info", "")
			logger.Sugar.Fatalf("%v", err)
		}
	}

	cfg.Resolve(config.Flags{
		InputDir:  *inputDir,
		OutputDir: *outputDir,
		Spacing:   *spacing,
		Workers:   *workers,
		Preview:   *doPreview,
		LogLevel:  *logLevel,
	})

	logger.Init(cfg.LogLevel, cfg.LogFile)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Sugar.Fatalf("%v", err)
	}

	files, err := collectMeshFiles(cfg.InputDir)
	if err != nil {
		logger.Sugar.Fatalf("%v", err)
	}
	if len(files) == 0 {
		logger.Sugar.Fatalf("no .glb/.gltf files in %s", cfg.InputDir)
	}

	logger.Sugar.Infof("unwrapping %d files with %d workers", len(files), cfg.Workers)
	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Spacing:     float32(cfg.Spacing),
		Preview:     cfg.Preview,
		PreviewSize: cfg.PreviewSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}, files)

	ok := 0
	for _, r := range results {
		if r.Success {
			ok++
		} else {
			logger.Sugar.Errorf("%s: %s", r.File, r.Error)
		}
	}
	logger.Sugar.Infof("done: %d/%d succeeded in %s", ok, len(results), time.Since(start).Round(time.Millisecond))

	manifest := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifest, results); err != nil {
		logger.Sugar.Errorf("%v", err)
	}

	if ok < len(results) {
		os.Exit(1)
	}
}

func collectMeshFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.glb", "*.gltf"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}
