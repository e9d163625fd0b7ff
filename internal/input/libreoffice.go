// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package input

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

var defaultExec executor = &osExecutor{}

// libreofficeCandidates lists install locations checked when the binary is
// not on PATH.
func libreofficeCandidates() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Applications/LibreOffice.app/Contents/MacOS/soffice",
			"/opt/homebrew/bin/soffice",
		}
	case "windows":
		return []string{
			`C:\Program Files\LibreOffice\program\soffice.exe`,
			`C:\Program Files (x86)\LibreOffice\program\soffice.exe`,
		}
	default:
		return []string{"/usr/bin/libreoffice", "/usr/bin/soffice"}
	}
}

// Converter turns office documents into temporary PDFs via headless
// LibreOffice.
type Converter struct {
	bin  string
	exec executor
	// tempDir holds conversion output; caller removes per-file temps.
	tempDir string
}

// NewConverter locates the LibreOffice binary and returns a Converter.
// Returns an error when LibreOffice is not installed, since conversion of
// office documents is impossible without it (PDF and image inputs never
// need it).
func NewConverter() (*Converter, error) {
	return newConverter(defaultExec)
}

func newConverter(ex executor) (*Converter, error) {
	for _, name := range []string{"libreoffice", "soffice"} {
		if path, err := ex.LookPath(name); err == nil {
			return &Converter{bin: path, exec: ex, tempDir: defaultTempDir()}, nil
		}
	}
	for _, path := range libreofficeCandidates() {
		if _, err := os.Stat(path); err == nil {
			return &Converter{bin: path, exec: ex, tempDir: defaultTempDir()}, nil
		}
	}
	return nil, fmt.Errorf("LibreOffice not found; install it from https://www.libreoffice.org/ (only needed for office documents: docx, odt, pptx, etc.)")
}

func defaultTempDir() string {
	return filepath.Join(os.TempDir(), "pdf-ocr")
}

// ConvertToPDF converts the document at path into a temporary PDF and
// returns its location together with a cleanup function that removes it.
func (c *Converter) ConvertToPDF(path string) (pdfPath string, cleanup func(), err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("PDF not found: %s", path)
		}
		return "", nil, fmt.Errorf("inspecting %s: %w", path, err)
	}

	if err := os.MkdirAll(c.tempDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("creating temp directory %s: %w", c.tempDir, err)
	}

	if err := c.exec.Run(c.bin, "--headless", "--convert-to", "pdf", "--outdir", c.tempDir, path); err != nil {
		return "", nil, fmt.Errorf("libreoffice conversion failed: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	pdfPath = filepath.Join(c.tempDir, stem+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", nil, fmt.Errorf("libreoffice did not produce expected PDF at %s", pdfPath)
	}

	return pdfPath, func() { os.Remove(pdfPath) }, nil
}
