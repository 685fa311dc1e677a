// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file is one secret: the filename is the key and the trimmed file
// contents are the value. The digest consults it as a fallback when the
// matching environment variable is unset.
//
// Supported key files: gcse-api-key, gcse-cx, smtp-pass.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store maps secret key names to values.
type Store map[string]string

// Get returns the value for key, or the empty string when absent. A nil
// Store is usable and always empty.
func (s Store) Get(key string) string {
	return s[key]
}

// Load reads every regular file in dir into a Store. A missing directory
// is not an error; Load returns an empty Store. Dotfiles and files that
// trim to nothing are skipped, and unreadable files produce a warning on
// stderr without aborting.
func Load(dir string) (Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	store := make(Store)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			store[entry.Name()] = value
		}
	}
	return store, nil
}
