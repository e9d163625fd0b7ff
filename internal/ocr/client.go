// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr implements the Mistral OCR API client and the single-document
// processing pipeline built on top of it.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/pdf-ocr/internal/httputil"
	"github.com/pdiddy/pdf-ocr/pkg/types"
)

// ocrAPIBase is the Mistral OCR endpoint. Declared as a var so tests can
// substitute an httptest server.
var ocrAPIBase = "https://api.mistral.ai/v1/ocr"

// Request is the JSON body for the OCR endpoint.
type Request struct {
	Model    string   `json:"model"`
	Document Document `json:"document"`

	// IncludeImageBase64 is a pointer so the key is omitted entirely when
	// image data was not requested.
	IncludeImageBase64 *bool `json:"include_image_base64,omitempty"`
}

// Document describes the uploaded file. Type is "document_url" for PDFs
// (DocumentURL + DocumentName set) or "image_url" for images (ImageURL set).
type Document struct {
	Type         string `json:"type"`
	DocumentURL  string `json:"document_url,omitempty"`
	DocumentName string `json:"document_name,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

// Response is the OCR result: an ordered sequence of pages.
type Response struct {
	Pages []types.Page `json:"pages"`
}

// Client calls the Mistral OCR API.
type Client struct {
	Client    *http.Client
	APIKey    string
	UserAgent string
}

// Process sends one OCR request and decodes the response. The call blocks
// until the service has processed the whole document; rate limiting is
// handled inside the transport path (httputil.DoWithRetry), any other
// failure surfaces as a single "OCR request failed" error.
func (c *Client) Process(ctx context.Context, reqBody Request) (*Response, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding OCR request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ocrAPIBase, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("OCR request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("OCR request failed (HTTP %d): %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("parsing OCR response: %w", err)
	}
	return &out, nil
}
