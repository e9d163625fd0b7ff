// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package input

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"paper.pdf", KindPDF},
		{"dir/paper.PDF", KindPDF},
		{"scan.jpg", KindImage},
		{"scan.JPEG", KindImage},
		{"scan.webp", KindImage},
		{"report.docx", KindOffice},
		{"slides.pptx", KindOffice},
		{"book.epub", KindOffice},
		{"data.csv", KindOffice},
		{"archive.tar.gz", KindUnknown},
		{"noext", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestMIMEForExt(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{"jpg", "image/jpeg"},
		{"jpeg", "image/jpeg"},
		{"png", "image/png"},
		{"tif", "image/tiff"},
		{"webp", "image/webp"},
		{"bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MIMEForExt(tt.ext), "ext %q", tt.ext)
	}
}

func TestEncodeFile(t *testing.T) {
	t.Run("round-trips file contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.pdf")
		content := []byte("%PDF-1.4 fake body")
		require.NoError(t, os.WriteFile(path, content, 0o644))

		got, err := EncodeFile(path)
		require.NoError(t, err)

		decoded, err := base64.StdEncoding.DecodeString(got)
		require.NoError(t, err)
		assert.Equal(t, content, decoded)
	})

	t.Run("missing file reports PDF not found", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.pdf")
		_, err := EncodeFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PDF not found")
		assert.Contains(t, err.Error(), path)
	})
}
