package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrison/fortuner/internal/models"
)

// DefaultExcludeExtensions lists the compiled index extensions skipped during directory walks.
var DefaultExcludeExtensions = []string{".dat"}

// ResolveOptions configures source path resolution
type ResolveOptions struct {
	// ExcludeExtensions lists extensions skipped inside directories (e.g., ".dat").
	// Files named directly are never filtered.
	ExcludeExtensions []string
	// AllowStdin passes "-" through unchanged instead of treating it as a path
	AllowStdin bool
}

// ResolveResult contains the resolved files and any walk entries that were skipped
type ResolveResult struct {
	// Files contains deduplicated paths sorted lexicographically
	Files []string
	// Skipped contains non-fatal errors for entries the walker could not read
	Skipped []error
}

// Resolve expands source paths into a sorted, deduplicated list of regular files.
// Every path must exist; the first missing path aborts resolution with a
// models.SourceError of kind PathNotFound.
func Resolve(paths []string, opts ResolveOptions) (*ResolveResult, error) {
	extMap := make(map[string]bool)
	for _, ext := range opts.ExcludeExtensions {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}

	result := &ResolveResult{
		Files:   make([]string, 0),
		Skipped: make([]error, 0),
	}
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result.Files = append(result.Files, path)
		}
	}

	for _, path := range paths {
		if opts.AllowStdin && path == models.StdinSource {
			add(path)
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, models.NewSourceError(models.PathNotFound, path, err)
		}

		if !info.IsDir() {
			if info.Mode().IsRegular() {
				add(filepath.Clean(path))
			}
			continue
		}

		// WalkDir does not descend into a symlinked root; a trailing separator
		// makes the lstat of the root resolve through the link.
		root := path
		if linfo, err := os.Lstat(path); err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
			root = path + string(filepath.Separator)
		}

		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				result.Skipped = append(result.Skipped, fmt.Errorf("error accessing %s: %w", p, err))
				return nil // Continue walking
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if extMap[strings.ToLower(filepath.Ext(d.Name()))] {
				return nil
			}
			add(p)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory %s: %w", path, err)
		}
	}

	sort.Strings(result.Files)

	return result, nil
}
