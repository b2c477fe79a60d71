package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteManifest writes the per-file results to a JSON manifest so tooling
// downstream of the bake can see what was produced and what failed.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest %s: %w", path, err)
	}
	return nil
}
