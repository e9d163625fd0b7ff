// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Page holds one page of OCR output. Index is zero-based; the markdown is
// taken verbatim from the API response.
type Page struct {
	Index    int     `json:"index" yaml:"index"`
	Markdown string  `json:"markdown" yaml:"-"`
	Images   []Image `json:"images,omitempty" yaml:"-"`
}

// Image is an extracted image referenced from the page markdown by ID.
// The payload may or may not carry a "data:" URI prefix.
type Image struct {
	ID          string `json:"id"`
	ImageBase64 string `json:"image_base64"`
}
