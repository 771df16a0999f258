// File: pkg/selection/git.go
package selection

import (
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// GitRunner abstracts git invocations so the lister can be exercised in
// tests without a git binary on the search path.
type GitRunner interface {
	// LookPath reports whether a git executable can be found.
	LookPath() error
	// Run executes git with the given arguments in dir and returns its
	// standard output.
	Run(dir string, args ...string) (string, error)
}

// execGitRunner runs the real git binary through os/exec.
type execGitRunner struct{}

func (execGitRunner) LookPath() error {
	_, err := exec.LookPath("git")
	return err
}

func (execGitRunner) Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

// Compile-time check that execGitRunner satisfies GitRunner.
var _ GitRunner = execGitRunner{}

// GitLister asks git for the files worth bundling: everything tracked, plus
// untracked-but-not-ignored files carrying the configured extension. Any
// failure is reported through the ListResult status so the caller can fall
// back to the manual walk.
type GitLister struct {
	runner       GitRunner
	untrackedExt string
}

// NewGitLister builds a GitLister that shells out to the git binary.
// untrackedExt is the extension, including the leading dot, of untracked
// files to pick up alongside the tracked ones.
func NewGitLister(untrackedExt string) *GitLister {
	return NewGitListerWithRunner(execGitRunner{}, untrackedExt)
}

// NewGitListerWithRunner builds a GitLister with a custom runner. Used in
// tests to stub out the git binary.
func NewGitListerWithRunner(runner GitRunner, untrackedExt string) *GitLister {
	return &GitLister{
		runner:       runner,
		untrackedExt: untrackedExt,
	}
}

// Name identifies the lister in log output.
func (g *GitLister) Name() string {
	return "git"
}

// List gathers the tracked and eligible untracked files of the repository
// at root. Paths come back slash-separated and relative to root, tracked
// files first.
func (g *GitLister) List(root string, logger *zap.Logger) ListResult {
	if err := g.runner.LookPath(); err != nil {
		logger.Info("Git executable not found, listing unavailable", zap.Error(err))
		return ListResult{Status: StatusUnavailable, Err: err}
	}

	// Mark the directory safe so ls-files works on repositories owned by
	// another user. Best effort: a failure here only matters if the
	// listing itself fails afterwards.
	if _, err := g.runner.Run(root, "config", "--global", "--add", "safe.directory", root); err != nil {
		logger.Debug("Could not mark directory as safe",
			zap.String("directory", root),
			zap.Error(err))
	}

	// core.quotepath is off for both listings so non-ASCII paths arrive
	// as raw bytes instead of C-quoted strings.
	tracked, err := g.runner.Run(root, "-c", "core.quotepath=off", "ls-files")
	if err != nil {
		logger.Warn("Listing tracked files failed",
			zap.String("directory", root),
			zap.Error(err))
		return ListResult{Status: StatusFailed, Err: err}
	}

	untracked, err := g.runner.Run(root, "-c", "core.quotepath=off", "ls-files", "--others", "--exclude-standard", "--", "*"+g.untrackedExt)
	if err != nil {
		logger.Warn("Listing untracked files failed",
			zap.String("directory", root),
			zap.String("extension", g.untrackedExt),
			zap.Error(err))
		return ListResult{Status: StatusFailed, Err: err}
	}

	paths := splitGitLines(tracked)
	paths = append(paths, splitGitLines(untracked)...)

	logger.Debug("Git listing complete",
		zap.String("directory", root),
		zap.Int("fileCount", len(paths)))
	return ListResult{Paths: paths, Status: StatusOK}
}

// splitGitLines turns git's newline-separated output into a path slice,
// dropping blank lines and carriage returns.
func splitGitLines(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths
}
