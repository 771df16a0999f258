// File: pkg/selection/walker.go
package selection

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// gitMetadataDir is excluded from the walk no matter what the ignore file
// says.
const gitMetadataDir = ".git"

// isGitMetadataPath reports whether rel falls under the unconditional git
// exclusion. The test is a prefix match on the slash-normalized relative
// path, so root-level siblings like .gitignore and .github are barred
// alongside the metadata directory itself.
func isGitMetadataPath(rel string) bool {
	return strings.HasPrefix(filepath.ToSlash(rel), gitMetadataDir)
}

// WalkLister is the fallback candidate source for projects where git cannot
// produce a listing. It walks the tree under root and applies a loose
// reading of the project's ignore file.
type WalkLister struct{}

// Name identifies the lister in log output.
func (WalkLister) Name() string {
	return "walk"
}

// List walks the tree under root and collects every regular file not
// covered by the ignore patterns. Unreadable directories are skipped, not
// fatal; the result is OK even when the walk came back degraded.
func (WalkLister) List(root string, logger *zap.Logger) ListResult {
	patterns := LoadIgnoreFile(root, logger)

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logger.Warn("Skipping unreadable path during walk",
				zap.String("path", path),
				zap.Error(walkErr))
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}

		if d.IsDir() {
			if isGitMetadataPath(rel) {
				return filepath.SkipDir
			}
			// A directory whose path matches a pattern can be pruned
			// entirely: with unanchored matching every descendant path
			// matches the same pattern.
			if MatchesAny(patterns, rel) {
				logger.Debug("Pruning ignored directory", zap.String("path", rel))
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if isGitMetadataPath(rel) {
			return nil
		}
		if MatchesAny(patterns, rel) {
			logger.Debug("Skipping ignored file", zap.String("path", rel))
			return nil
		}

		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		// Only reachable when the root itself cannot be read; errors
		// below the root are absorbed by the callback.
		logger.Warn("Tree walk failed",
			zap.String("directory", root),
			zap.Error(err))
		return ListResult{Status: StatusFailed, Err: err}
	}

	logger.Debug("Tree walk complete",
		zap.String("directory", root),
		zap.Int("fileCount", len(paths)),
		zap.Int("patternCount", len(patterns)))
	return ListResult{Paths: paths, Status: StatusOK}
}

// Compile-time checks that both listers satisfy CandidateLister.
var (
	_ CandidateLister = (*GitLister)(nil)
	_ CandidateLister = WalkLister{}
)
