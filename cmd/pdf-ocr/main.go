// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-ocr CLI: it sends a local
// document to the Mistral OCR API and writes the result as Markdown.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-ocr/internal/ocr"
	"github.com/pdiddy/pdf-ocr/internal/secrets"
	"github.com/pdiddy/pdf-ocr/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultInput   = "document.pdf"
	defaultModel   = "mistral-ocr-latest"
	defaultOutput  = "ocr_output.md"
	defaultTimeout = 300 * time.Second

	// secretsDir is the fallback location for the API key when
	// MISTRAL_API_KEY is not in the environment.
	secretsDir = ".secrets/"
)

// rootCmd runs the OCR pipeline directly; there is exactly one document per
// invocation.
var rootCmd = &cobra.Command{
	Use:   "pdf-ocr",
	Short: "Convert a PDF to Markdown with the Mistral OCR API",
	Long: `pdf-ocr reads a local document, sends it to the Mistral OCR cloud API,
and writes the returned per-page text as a Markdown file.

PDFs and images upload directly; office documents (docx, odt, pptx, xlsx,
epub, ...) are converted to PDF through headless LibreOffice first. The API
key is read from the MISTRAL_API_KEY environment variable (a .env file in
the working directory is honored) or from .secrets/mistral-api-key.`,
	SilenceUsage: true,
	RunE:         runOCR,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-ocr.yaml or ~/.config/pdf-ocr/config.yaml)")

	rootCmd.Flags().String("pdf", defaultInput, "path to the input document (pdf, image, or office document)")
	rootCmd.Flags().String("model", defaultModel, "Mistral OCR model name")
	rootCmd.Flags().Bool("include-images", false, "request extracted images (base64) in the response")
	rootCmd.Flags().String("images", string(types.ImagesNone), "image handling: none, separate, inline, or zip")
	rootCmd.Flags().String("output", defaultOutput, "where to write the markdown output")
	rootCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-ocr")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-ocr"))
		}
	}

	viper.SetEnvPrefix("PDF_OCR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting returns the flag value, letting the config file override the
// default when the flag was not given on the command line.
func stringSetting(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	if !cmd.Flags().Changed(name) {
		if cv := viper.GetString(name); cv != "" {
			return cv
		}
	}
	return v
}

func runOCR(cmd *cobra.Command, args []string) error {
	pdfPath := stringSetting(cmd, "pdf")
	model := stringSetting(cmd, "model")
	outputPath := stringSetting(cmd, "output")
	imageMode := types.ImageMode(stringSetting(cmd, "images"))
	includeImages, _ := cmd.Flags().GetBool("include-images")

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if !cmd.Flags().Changed("timeout") {
		if cv := viper.GetDuration("timeout"); cv > 0 {
			timeout = cv
		}
	}

	if !imageMode.Valid() {
		return fmt.Errorf("invalid --images mode %q (expected none, separate, inline, or zip)", imageMode)
	}

	apiKey, err := secrets.ResolveAPIKey(secretsDir)
	if err != nil {
		return err
	}

	cfg := types.OCRConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: "pdf-ocr/" + version,
		},
		Model:         model,
		APIKey:        apiKey,
		IncludeImages: includeImages,
	}
	out := types.OutputConfig{
		Path:   outputPath,
		Images: imageMode,
	}

	client := &ocr.Client{
		Client:    &http.Client{Timeout: cfg.Timeout},
		APIKey:    cfg.APIKey,
		UserAgent: cfg.UserAgent,
	}

	written, err := ocr.ProcessFile(cmd.Context(), client, pdfPath, cfg, out, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Printf("OCR markdown written to %s\n", written)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
