// File: pkg/selection/pattern.go
package selection

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// IgnoreFileName is the ignore file the fallback walk honors.
const IgnoreFileName = ".gitignore"

// IgnorePattern is one usable line from an ignore file, compiled into its
// loose matching form.
type IgnorePattern struct {
	Raw     string         // Pattern text after trimming.
	LineNo  int            // 1-based line number in the source file.
	matcher *regexp.Regexp // Compiled translation of the pattern.
}

// Matches reports whether rel, a root-relative path, is covered by the
// pattern. Matching is loose: the pattern may hit anywhere in the
// separator-normalized path.
func (p *IgnorePattern) Matches(rel string) bool {
	return p.matcher.MatchString(filepath.ToSlash(rel))
}

// CompilePattern translates one ignore-file line into an IgnorePattern.
// It returns nil for lines that carry no pattern: blank lines, comments,
// and lines that are empty once the trailing separator is stripped.
//
// The translation is a deliberately loose approximation of gitignore
// matching: `*` expands to any run of characters including separators,
// `?` to exactly one character, and the compiled pattern may match
// anywhere in the relative path. Negation, root anchoring and
// directory-only distinctions are not supported.
func CompilePattern(line string) *IgnorePattern {
	trimmed := strings.TrimSpace(line)

	// Ignore empty lines and comments.
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	// Strip a single trailing separator; "temp/" ignores like "temp".
	stripped := trimmed
	if strings.HasSuffix(stripped, "/") {
		stripped = strings.TrimSuffix(stripped, "/")
	} else if strings.HasSuffix(stripped, `\`) {
		stripped = strings.TrimSuffix(stripped, `\`)
	}
	if stripped == "" {
		return nil
	}

	// Escape regex metacharacters, then re-expand the glob wildcards and
	// fold both separator spellings into the forward slash the matcher
	// normalizes paths to.
	escaped := escapeLiteralChars(stripped)
	escaped = strings.ReplaceAll(escaped, "*", ".*")
	escaped = strings.ReplaceAll(escaped, "?", ".")
	escaped = strings.ReplaceAll(escaped, `\\`, "/")

	matcher, err := regexp.Compile(escaped)
	if err != nil {
		return nil
	}

	return &IgnorePattern{
		Raw:     trimmed,
		matcher: matcher,
	}
}

// escapeLiteralChars escapes regex special characters except for the glob
// wildcards `*` and `?`. The backslash goes first so separators escaped
// here are not re-escaped by the later replacements.
func escapeLiteralChars(pattern string) string {
	specialChars := `\.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// LoadIgnoreFile reads the ignore file at the project root and compiles its
// usable lines. A missing or unreadable file yields no patterns; the walk
// then runs with the unconditional exclusions only.
func LoadIgnoreFile(root string, logger *zap.Logger) []*IgnorePattern {
	path := filepath.Join(root, IgnoreFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No ignore file present", zap.String("path", path))
		} else {
			logger.Warn("Failed to read ignore file", zap.String("path", path), zap.Error(err))
		}
		return nil
	}

	var patterns []*IgnorePattern
	for i, line := range strings.Split(string(content), "\n") {
		pattern := CompilePattern(line)
		if pattern == nil {
			continue
		}
		pattern.LineNo = i + 1
		patterns = append(patterns, pattern)
	}

	logger.Debug("Compiled ignore patterns",
		zap.String("path", path),
		zap.Int("patternCount", len(patterns)))
	return patterns
}

// MatchesAny reports whether rel is covered by at least one pattern.
func MatchesAny(patterns []*IgnorePattern, rel string) bool {
	for _, pattern := range patterns {
		if pattern.Matches(rel) {
			return true
		}
	}
	return false
}
