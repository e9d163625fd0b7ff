// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package input classifies and prepares local files for the OCR request.
// PDFs are sent as-is, images become MIME-typed data URIs, and office
// documents are converted to a temporary PDF through LibreOffice first.
package input

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies an input file by extension.
type Kind string

const (
	KindPDF     Kind = "pdf"
	KindImage   Kind = "image"
	KindOffice  Kind = "office"
	KindUnknown Kind = "unknown"
)

// imageExtensions are sent to the API as image_url documents.
var imageExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true,
	"bmp": true, "tiff": true, "tif": true, "webp": true,
}

// officeExtensions are converted to PDF via LibreOffice before upload.
var officeExtensions = map[string]bool{
	"doc": true, "docx": true, "odt": true, "rtf": true, "txt": true,
	"html": true, "htm": true, "pptx": true, "ppt": true, "odp": true,
	"xlsx": true, "xls": true, "ods": true, "csv": true, "epub": true,
}

// Ext returns the lowercased extension of path without the leading dot.
func Ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Classify returns the input kind for path based on its extension.
func Classify(path string) Kind {
	ext := Ext(path)
	switch {
	case ext == "pdf":
		return KindPDF
	case imageExtensions[ext]:
		return KindImage
	case officeExtensions[ext]:
		return KindOffice
	default:
		return KindUnknown
	}
}

// MIMEForExt returns the MIME type for an image extension.
func MIMEForExt(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "tiff", "tif":
		return "image/tiff"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// EncodeFile returns the base64 encoding of the file at path. A missing
// file is reported as "PDF not found" so the top-level diagnostic matches
// what the user asked for.
func EncodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("PDF not found: %s", path)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
