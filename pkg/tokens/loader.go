package tokens

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// AutoDiscoverPatterns match common token file naming conventions when no
// explicit token file is configured.
var AutoDiscoverPatterns = []string{
	"**/tokens.json",
	"**/*.tokens.json",
	"**/design-tokens.json",
}

// DefaultExcludes keep dependency and build output directories out of
// token file discovery.
var DefaultExcludes = []string{
	"node_modules/**",
	"dist/**",
	"build/**",
	".git/**",
}

// DiscoverTokenFiles walks rootDir for token definition files, applying
// exclude patterns first and then the auto-discover patterns.
func DiscoverTokenFiles(rootDir string, excludes []string) ([]string, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}
	if excludes == nil {
		excludes = DefaultExcludes
	}

	var files []string

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		// Check exclusions.
		for _, pattern := range excludes {
			matched, _ := doublestar.PathMatch(pattern, relPath)
			if matched {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}

		for _, pattern := range AutoDiscoverPatterns {
			matched, _ := doublestar.PathMatch(pattern, relPath)
			if !matched {
				// Root-level files have no directory component for the
				// leading "**/" to consume.
				matched, _ = doublestar.PathMatch(strings.TrimPrefix(pattern, "**/"), relPath)
			}
			if matched {
				files = append(files, path)
				break
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// LoadFile reads and validates one raw token tree from a JSON file.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file %q: %w", path, err)
	}
	tree, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("token file %q: %w", path, err)
	}
	return tree, nil
}

// LoadBytes parses a raw token tree from JSON bytes. The top level must be
// an object; arrays and primitives are rejected here, at the boundary, so
// Resolve never has to.
func LoadBytes(data []byte) (map[string]any, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	tree, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("token tree must be a JSON object, got %T", parsed)
	}
	return tree, nil
}
