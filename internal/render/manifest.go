// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-ocr/pkg/types"
)

// Manifest is the YAML sidecar written next to the markdown output,
// recording where the result came from.
type Manifest struct {
	Source      string    `yaml:"source"`
	Model       string    `yaml:"model"`
	Pages       int       `yaml:"pages"`
	Images      int       `yaml:"images"`
	GeneratedAt time.Time `yaml:"generated_at"`
}

// WriteManifest writes the run manifest beside outPath, replacing the
// output extension with .yaml.
func WriteManifest(outPath, sourcePath, model string, pages []types.Page) error {
	images := 0
	for _, p := range pages {
		images += len(p.Images)
	}

	m := Manifest{
		Source:      sourcePath,
		Model:       model,
		Pages:       len(pages),
		Images:      images,
		GeneratedAt: time.Now().UTC(),
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	manifestPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".yaml"
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", manifestPath, err)
	}
	return nil
}
