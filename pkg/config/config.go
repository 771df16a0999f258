// File: pkg/config/config.go
// Package config defines the tunable settings of a bundle run and their
// compiled-in defaults. A YAML settings file can override individual fields;
// a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProjectToken is the placeholder in OutputName that gets replaced with the
// selected project's directory name.
const ProjectToken = "{project}"

// Settings holds the fixed rules and knobs of the export process.
type Settings struct {
	// ExplicitIncludes are project-relative paths that are always added to
	// the bundle when they exist on disk, regardless of how the candidate
	// list was produced.
	ExplicitIncludes []string `yaml:"explicit_includes"`

	// HardExclusions are glob patterns that unconditionally remove files
	// from the bundle, overriding explicit includes and tracked status.
	// A pattern without a path separator is matched against every component
	// of the relative path; a pattern with a separator is matched against
	// the whole slash-normalized relative path.
	HardExclusions []string `yaml:"hard_exclusions"`

	// UntrackedExtension selects which untracked-but-not-ignored files the
	// git-backed lister picks up alongside the tracked ones.
	UntrackedExtension string `yaml:"untracked_extension"`

	// OutputName names the bundle artifact. The ProjectToken placeholder is
	// replaced with the project directory name.
	OutputName string `yaml:"output_name"`

	// WithTree prepends a rendered tree of the bundled files to the artifact.
	WithTree bool `yaml:"with_tree"`

	// SkipBinary replaces binary file content with a short omission note
	// instead of embedding raw bytes.
	SkipBinary bool `yaml:"skip_binary"`

	// MaxWarnSizeKB is the per-file size threshold, in kilobytes, above
	// which a warning is logged. Oversized files are still bundled.
	MaxWarnSizeKB int `yaml:"max_warn_size_kb"`
}

// Default returns the compiled-in settings.
func Default() *Settings {
	return &Settings{
		ExplicitIncludes: []string{
			"config/config.yaml",
		},
		HardExclusions: []string{
			// Dependency and build output directories
			"node_modules",
			"vendor",
			"venv",
			".venv",
			"__pycache__",
			"target",
			"build",
			"dist",
			// Editor and tool cache directories
			".idea",
			".vscode",
			".pytest_cache",
			".mypy_cache",
			".cache",
			// Log, temp and backup files
			"*.log",
			"*.tmp",
			"*.bak",
			"*.swp",
			// Files that tend to carry secrets
			".env",
			".env.*",
			"*.pem",
			"*.key",
			// Local databases
			"*.sqlite3",
			"*.db",
			// Operating system noise
			".DS_Store",
			"Thumbs.db",
		},
		UntrackedExtension: ".txt",
		OutputName:         ProjectToken + "_bundle.txt",
		WithTree:           false,
		SkipBinary:         false,
		MaxWarnSizeKB:      1024,
	}
}

// Load reads settings from the YAML file at path, overlaying the defaults.
// Fields absent from the file keep their default values. A nonexistent file
// yields the defaults without error; an unreadable or malformed file is an
// error.
func Load(path string) (*Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return settings, nil
}

// OutputFileName resolves OutputName for the given project directory name.
func (s *Settings) OutputFileName(project string) string {
	return strings.ReplaceAll(s.OutputName, ProjectToken, project)
}
