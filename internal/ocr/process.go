// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/pdf-ocr/internal/input"
	"github.com/pdiddy/pdf-ocr/internal/render"
	"github.com/pdiddy/pdf-ocr/pkg/types"
)

// officeConverter turns an office document into a temporary PDF.
type officeConverter interface {
	ConvertToPDF(path string) (pdfPath string, cleanup func(), err error)
}

// newOfficeConverter is swapped by tests to avoid requiring LibreOffice.
var newOfficeConverter = func() (officeConverter, error) { return input.NewConverter() }

// ProcessFile runs the whole pipeline for one input file: classify, convert
// office documents to PDF, base64-encode, call the OCR API, and write the
// markdown output (plus images and the run manifest). It returns the path
// of the written output file. Progress lines go to w.
func ProcessFile(ctx context.Context, client *Client, inputPath string, cfg types.OCRConfig, out types.OutputConfig, w io.Writer) (string, error) {
	kind := input.Classify(inputPath)
	if kind == input.KindUnknown {
		return "", fmt.Errorf("unsupported file type: .%s (expected pdf, image, or office document: docx, odt, pptx, xlsx, etc.)", input.Ext(inputPath))
	}

	effectivePath := inputPath
	if kind == input.KindOffice {
		conv, err := newOfficeConverter()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(w, "converting .%s to PDF via LibreOffice...\n", input.Ext(inputPath))
		pdfPath, cleanup, err := conv.ConvertToPDF(inputPath)
		if err != nil {
			return "", err
		}
		defer cleanup()
		effectivePath = pdfPath
	}

	fmt.Fprintln(w, "encoding file...")
	b64, err := input.EncodeFile(effectivePath)
	if err != nil {
		return "", err
	}

	doc := buildDocument(kind, inputPath, effectivePath, b64)

	req := Request{Model: cfg.Model, Document: doc}
	if cfg.IncludeImages || out.Images.WantsImageData() {
		yes := true
		req.IncludeImageBase64 = &yes
	}

	fmt.Fprintln(w, "sending OCR request to Mistral API...")
	resp, err := client.Process(ctx, req)
	if err != nil {
		return "", err
	}

	fmt.Fprintln(w, "processing response...")
	outPath, err := render.Write(out, resp.Pages)
	if err != nil {
		return "", err
	}

	if err := render.WriteManifest(outPath, inputPath, cfg.Model, resp.Pages); err != nil {
		return "", err
	}

	return outPath, nil
}

// buildDocument shapes the document descriptor. Office documents were
// already converted, so only the original input name survives into
// document_name; images go out as MIME-typed image_url data URIs.
func buildDocument(kind input.Kind, inputPath, effectivePath, b64 string) Document {
	if kind == input.KindImage {
		mime := input.MIMEForExt(input.Ext(effectivePath))
		return Document{
			Type:     "image_url",
			ImageURL: fmt.Sprintf("data:%s;base64,%s", mime, b64),
		}
	}
	return Document{
		Type:         "document_url",
		DocumentURL:  "data:application/pdf;base64," + b64,
		DocumentName: filepath.Base(inputPath),
	}
}
