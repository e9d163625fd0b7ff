// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the Mistral API credential. The key is looked up
// in the process environment first (a .env file in the working directory is
// loaded beforehand), then in a directory of plain-text files where the
// filename is the key name and the file contents (trimmed) are the value.
//
// Supported key file: mistral-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// EnvAPIKey is the environment variable holding the Mistral API key.
const EnvAPIKey = "MISTRAL_API_KEY"

// apiKeyFile is the filename under the secrets directory.
const apiKeyFile = "mistral-api-key"

// ResolveAPIKey returns the Mistral API key from the environment or from
// dir. A .env file in the working directory is merged into the environment
// first; a missing .env is not an error. An empty result is a fatal
// configuration error for the caller, so ResolveAPIKey reports it as such.
func ResolveAPIKey(dir string) (string, error) {
	// Existing environment variables win over .env entries.
	_ = godotenv.Load()

	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}

	stored, err := Load(dir)
	if err != nil {
		return "", err
	}
	if key, ok := stored[apiKeyFile]; ok {
		return key, nil
	}

	return "", fmt.Errorf("%s environment variable is not set (and no %s file in %s)", EnvAPIKey, apiKeyFile, dir)
}

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory or missing files are not errors; Load
// returns an empty map. Unreadable files produce a warning on stderr but do
// not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
