// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes OCR results to disk: the markdown document, the
// extracted images (per image mode), and a YAML run manifest.
package render

import (
	"archive/zip"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdf-ocr/internal/input"
	"github.com/pdiddy/pdf-ocr/pkg/types"
)

// zipImagesDir is the directory inside the archive holding decoded images.
const zipImagesDir = "images"

// Write assembles the markdown document from pages and writes it to
// cfg.Path, creating parent directories as needed. Returned is the path of
// the file actually written: cfg.Path, or the sibling .zip in zip mode.
//
// Every page gets a 1-based "# Page N" heading followed by its markdown
// with trailing whitespace trimmed; pages are separated by a blank line.
func Write(cfg types.OutputConfig, pages []types.Page) (string, error) {
	if parent := filepath.Dir(cfg.Path); parent != "" && parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory %s: %w", parent, err)
		}
	}

	stem := strings.TrimSuffix(filepath.Base(cfg.Path), filepath.Ext(cfg.Path))
	if stem == "" {
		stem = "output"
	}

	// Image ID -> decoded bytes, collected for zip mode.
	var zipImages []namedImage

	var b strings.Builder
	for _, page := range pages {
		md := strings.TrimRight(page.Markdown, " \t\r\n")

		if cfg.Images.WantsImageData() {
			var err error
			md, zipImages, err = materializeImages(cfg, stem, page, md, zipImages)
			if err != nil {
				return "", err
			}
		}

		fmt.Fprintf(&b, "# Page %d\n\n", page.Index+1)
		b.WriteString(md)
		b.WriteString("\n\n")
	}

	if cfg.Images == types.ImagesZip {
		zipPath := strings.TrimSuffix(cfg.Path, filepath.Ext(cfg.Path)) + ".zip"
		if err := writeZip(zipPath, stem+".md", b.String(), zipImages); err != nil {
			return "", err
		}
		return zipPath, nil
	}

	if err := os.WriteFile(cfg.Path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing markdown output: %w", err)
	}
	return cfg.Path, nil
}

type namedImage struct {
	name string
	data []byte
}

// materializeImages applies the image mode to one page: decoding payloads,
// writing files where required, and rewriting "](<id>)" markdown links to
// the image's new location.
func materializeImages(cfg types.OutputConfig, stem string, page types.Page, md string, zipImages []namedImage) (string, []namedImage, error) {
	for _, img := range page.Images {
		if img.ID == "" || img.ImageBase64 == "" {
			continue
		}
		oldRef := fmt.Sprintf("](%s)", img.ID)

		switch cfg.Images {
		case types.ImagesSeparate:
			dir := filepath.Join(filepath.Dir(cfg.Path), stem+"_images")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", nil, fmt.Errorf("creating images directory %s: %w", dir, err)
			}
			decoded, err := decodeImageBase64(img.ImageBase64, img.ID)
			if err != nil {
				return "", nil, err
			}
			if err := os.WriteFile(filepath.Join(dir, img.ID), decoded, 0o644); err != nil {
				return "", nil, fmt.Errorf("writing image %s: %w", img.ID, err)
			}
			md = strings.ReplaceAll(md, oldRef, fmt.Sprintf("](%s/%s)", filepath.Base(dir), img.ID))

		case types.ImagesInline:
			dataURI := img.ImageBase64
			if !strings.HasPrefix(dataURI, "data:") {
				mime := input.MIMEForExt(input.Ext(img.ID))
				dataURI = fmt.Sprintf("data:%s;base64,%s", mime, img.ImageBase64)
			}
			md = strings.ReplaceAll(md, oldRef, fmt.Sprintf("](%s)", dataURI))

		case types.ImagesZip:
			decoded, err := decodeImageBase64(img.ImageBase64, img.ID)
			if err != nil {
				return "", nil, err
			}
			zipImages = append(zipImages, namedImage{name: img.ID, data: decoded})
			md = strings.ReplaceAll(md, oldRef, fmt.Sprintf("](%s/%s)", zipImagesDir, img.ID))
		}
	}
	return md, zipImages, nil
}

// writeZip bundles the markdown and decoded images into a deflate archive.
func writeZip(zipPath, mdName, markdown string, images []namedImage) error {
	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("creating zip file %s: %w", zipPath, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	w, err := zw.Create(mdName)
	if err != nil {
		return fmt.Errorf("adding %s to zip: %w", mdName, err)
	}
	if _, err := w.Write([]byte(markdown)); err != nil {
		return fmt.Errorf("writing %s to zip: %w", mdName, err)
	}

	for _, img := range images {
		w, err := zw.Create(zipImagesDir + "/" + img.name)
		if err != nil {
			return fmt.Errorf("adding image %s to zip: %w", img.name, err)
		}
		if _, err := w.Write(img.data); err != nil {
			return fmt.Errorf("writing image %s to zip: %w", img.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing zip: %w", err)
	}
	return nil
}

// decodeImageBase64 decodes an image payload, tolerating a data URI prefix.
func decodeImageBase64(b64, id string) ([]byte, error) {
	if _, encoded, found := strings.Cut(b64, ","); found {
		b64 = encoded
	}
	decoded, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 for image %s: %w", id, err)
	}
	return decoded, nil
}
