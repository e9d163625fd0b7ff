// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration structures shared between the CLI
// and the pipeline packages.
package types

import "time"

// HTTPConfig holds shared HTTP settings for the OCR API call.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. OCR of a large PDF can take
	// minutes, so the default is 300s.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pdf-ocr/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ImageMode selects what happens to images returned by the OCR API.
type ImageMode string

const (
	// ImagesNone discards image data; markdown links are left as returned.
	ImagesNone ImageMode = "none"

	// ImagesSeparate decodes images into a directory next to the output
	// file and rewrites markdown links to point at it.
	ImagesSeparate ImageMode = "separate"

	// ImagesInline rewrites markdown links into base64 data URIs.
	ImagesInline ImageMode = "inline"

	// ImagesZip bundles the markdown and decoded images into a zip archive.
	ImagesZip ImageMode = "zip"
)

// Valid reports whether m is one of the recognized image modes.
func (m ImageMode) Valid() bool {
	switch m {
	case ImagesNone, ImagesSeparate, ImagesInline, ImagesZip:
		return true
	}
	return false
}

// WantsImageData reports whether the mode needs image payloads from the API.
func (m ImageMode) WantsImageData() bool {
	return m != ImagesNone
}

// OCRConfig holds settings for the OCR request.
type OCRConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the OCR model identifier (default "mistral-ocr-latest").
	Model string `json:"model" yaml:"model"`

	// APIKey is the Mistral API authentication key. Never written to the
	// config file; resolved from the environment or .secrets/.
	APIKey string `json:"-" yaml:"-"`

	// IncludeImages requests embedded image data from the API.
	IncludeImages bool `json:"include_images" yaml:"include_images"`
}

// OutputConfig holds settings for writing the converted markdown.
type OutputConfig struct {
	// Path is the destination markdown file (default "ocr_output.md").
	Path string `json:"path" yaml:"path"`

	// Images selects how returned images are materialized.
	Images ImageMode `json:"images" yaml:"images"`
}
