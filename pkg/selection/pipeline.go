// File: pkg/selection/pipeline.go
package selection

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Pipeline turns one candidate list into the final bundle file set. The
// stages run in a fixed order: union with the explicit includes, first-seen
// deduplication, hard exclusions, existence filter.
type Pipeline struct {
	// Explicit are root-relative paths appended to every candidate list.
	// They go through the same exclusion and existence stages as the rest.
	Explicit []string

	// Exclusions are glob patterns that unconditionally remove files.
	Exclusions []string
}

// Finalize applies the pipeline stages to candidates and returns the final
// file set, relative to root and in first-seen order.
func (p Pipeline) Finalize(root string, candidates []string, logger *zap.Logger) []string {
	merged := make([]string, 0, len(candidates)+len(p.Explicit))
	merged = append(merged, candidates...)
	merged = append(merged, p.Explicit...)

	seen := make(map[string]struct{}, len(merged))
	final := make([]string, 0, len(merged))
	for _, rel := range merged {
		key := filepath.ToSlash(rel)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if pattern, excluded := p.excludedBy(rel); excluded {
			logger.Debug("Dropping hard-excluded file",
				zap.String("path", rel),
				zap.String("pattern", pattern))
			continue
		}

		info, err := os.Stat(filepath.Join(root, rel))
		if err != nil || !info.Mode().IsRegular() {
			logger.Debug("Dropping nonexistent or irregular file",
				zap.String("path", rel),
				zap.Error(err))
			continue
		}

		final = append(final, rel)
	}

	logger.Info("Selection pipeline finished",
		zap.Int("candidateCount", len(candidates)),
		zap.Int("finalCount", len(final)))
	return final
}

// excludedBy returns the first exclusion pattern covering rel, if any.
func (p Pipeline) excludedBy(rel string) (string, bool) {
	for _, pattern := range p.Exclusions {
		if MatchesExclusion(pattern, rel) {
			return pattern, true
		}
	}
	return "", false
}

// MatchesExclusion reports whether rel falls under pattern. Patterns
// without a separator are tested against every component of the relative
// path, so "node_modules" hits node_modules itself and anything beneath it
// but not a sibling like my_node_modules_backup. Patterns containing a
// separator are tested against the whole slash-normalized path.
func MatchesExclusion(pattern, rel string) bool {
	normalized := filepath.ToSlash(rel)

	if strings.ContainsRune(pattern, '/') {
		ok, err := path.Match(pattern, normalized)
		return err == nil && ok
	}

	for _, component := range strings.Split(normalized, "/") {
		if ok, err := path.Match(pattern, component); err == nil && ok {
			return true
		}
	}
	return false
}
