// Package walker provides depth-bounded, error-tolerant filesystem traversal
// with hidden-file, gitignore, and extension filtering.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Options configures the directory walk behavior
type Options struct {
	// Extensions is the set of bare extensions to match (no leading dot).
	// Matching is case-sensitive. An empty-string entry matches files
	// without an extension.
	Extensions []string

	// IncludeHidden includes dotfiles and dot-directories in the walk
	IncludeHidden bool

	// RespectGitignore honors .gitignore files, nested per directory
	RespectGitignore bool

	// MaxDepth limits recursion depth (0 = unlimited, 1 = files directly
	// under the root only)
	MaxDepth int
}

// Result contains the results of a walk
type Result struct {
	// Files contains the paths of all matched regular files, sorted
	Files []string

	// Errors contains non-fatal errors encountered during the walk
	// (unreadable directories, broken .gitignore files). The walk
	// continues past them.
	Errors []error
}

// Walk traverses the tree rooted at root and collects regular files whose
// extension is in opts.Extensions. The root itself is never treated as
// hidden, so "clc" run inside a dot-directory still works.
func Walk(root string, opts Options) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	extSet := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		extSet[ext] = true
	}

	result := &Result{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	var ignores *ignoreStack
	if opts.RespectGitignore {
		ignores = newIgnoreStack(root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil // continue walking
		}

		// Load this directory's .gitignore before filtering its children
		if ignores != nil && d.IsDir() {
			if loadErr := ignores.load(path); loadErr != nil {
				result.Errors = append(result.Errors, loadErr)
			}
		}

		// Skip the root directory itself
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", path, relErr))
			return nil
		}

		if d.IsDir() {
			if !opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}

			if ignores != nil && ignores.ignored(rel, true) {
				return filepath.SkipDir
			}

			// A directory at depth MaxDepth would only yield files
			// beyond the bound, so prune it
			if opts.MaxDepth > 0 {
				depth := strings.Count(rel, string(filepath.Separator)) + 1
				if depth >= opts.MaxDepth {
					return filepath.SkipDir
				}
			}

			return nil
		}

		if !opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if ignores != nil && ignores.ignored(rel, false) {
			return nil
		}

		if !extSet[FileExt(d.Name())] {
			return nil
		}

		result.Files = append(result.Files, path)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	// Sort files for consistent output
	sort.Strings(result.Files)

	return result, nil
}

// FileExt returns the bare extension of a filename without the leading dot.
// Dotfiles like ".bashrc" have no extension.
func FileExt(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return ext[1:]
}
