// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package input

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExec records invocations and simulates LibreOffice behavior.
type fakeExec struct {
	lookPathOK bool
	runErr     error
	// producePDF writes the expected output PDF when Run is called.
	producePDF bool

	ranName string
	ranArgs []string
}

func (f *fakeExec) LookPath(file string) (string, error) {
	if f.lookPathOK {
		return "/fake/bin/" + file, nil
	}
	return "", fmt.Errorf("%s not found", file)
}

func (f *fakeExec) Run(name string, args ...string) error {
	f.ranName = name
	f.ranArgs = args
	if f.runErr != nil {
		return f.runErr
	}
	if f.producePDF {
		// --outdir is followed by the directory, input path is last.
		var outdir string
		for i, a := range args {
			if a == "--outdir" && i+1 < len(args) {
				outdir = args[i+1]
			}
		}
		in := args[len(args)-1]
		stem := filepath.Base(in)
		stem = stem[:len(stem)-len(filepath.Ext(stem))]
		return os.WriteFile(filepath.Join(outdir, stem+".pdf"), []byte("%PDF"), 0o644)
	}
	return nil
}

func TestNewConverterBinaryMissing(t *testing.T) {
	_, err := newConverter(&fakeExec{lookPathOK: false})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LibreOffice not found")
}

func TestConvertToPDF(t *testing.T) {
	ex := &fakeExec{lookPathOK: true, producePDF: true}
	c, err := newConverter(ex)
	require.NoError(t, err)
	c.tempDir = t.TempDir()

	docPath := filepath.Join(t.TempDir(), "report.docx")
	require.NoError(t, os.WriteFile(docPath, []byte("doc"), 0o644))

	pdfPath, cleanup, err := c.ConvertToPDF(docPath)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(c.tempDir, "report.pdf"), pdfPath)
	assert.FileExists(t, pdfPath)
	assert.Equal(t, []string{"--headless", "--convert-to", "pdf", "--outdir", c.tempDir, docPath}, ex.ranArgs)

	cleanup()
	assert.NoFileExists(t, pdfPath)
}

func TestConvertToPDFMissingInput(t *testing.T) {
	c, err := newConverter(&fakeExec{lookPathOK: true})
	require.NoError(t, err)
	c.tempDir = t.TempDir()

	_, _, err = c.ConvertToPDF(filepath.Join(t.TempDir(), "absent.docx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDF not found")
}

func TestConvertToPDFConversionFails(t *testing.T) {
	ex := &fakeExec{lookPathOK: true, runErr: fmt.Errorf("exit status 1: soffice crashed")}
	c, err := newConverter(ex)
	require.NoError(t, err)
	c.tempDir = t.TempDir()

	docPath := filepath.Join(t.TempDir(), "report.docx")
	require.NoError(t, os.WriteFile(docPath, []byte("doc"), 0o644))

	_, _, err = c.ConvertToPDF(docPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "libreoffice conversion failed")
}

func TestConvertToPDFNoOutputProduced(t *testing.T) {
	// Run succeeds but never writes the PDF.
	ex := &fakeExec{lookPathOK: true, producePDF: false}
	c, err := newConverter(ex)
	require.NoError(t, err)
	c.tempDir = t.TempDir()

	docPath := filepath.Join(t.TempDir(), "report.odt")
	require.NoError(t, os.WriteFile(docPath, []byte("doc"), 0o644))

	_, _, err = c.ConvertToPDF(docPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not produce expected PDF")
}
