// Package selection decides which files of a project directory belong in a
// bundle. Candidates come from exactly one source per run: the git-backed
// lister when it produces anything, otherwise a manual tree walk with a
// loose reading of the project's ignore file. The pipeline then folds in
// the explicit includes and strips everything the hard exclusions cover.
package selection

import (
	"go.uber.org/zap"
)

// Options carries the fixed selection rules for one run.
type Options struct {
	// UntrackedExtension is handed to the git lister; untracked files with
	// this extension ride along with the tracked ones.
	UntrackedExtension string

	// ExplicitIncludes are always-bundle paths relative to the root.
	ExplicitIncludes []string

	// HardExclusions are glob patterns that win over every include.
	HardExclusions []string
}

// Select produces the final bundle file list for root. The returned paths
// are relative to root, slash-separated where the lister yields them that
// way, and ordered first-seen.
func Select(root string, opts Options, logger *zap.Logger) []string {
	return SelectWith(root, opts, logger,
		NewGitLister(opts.UntrackedExtension),
		WalkLister{},
	)
}

// SelectWith runs the selection with an explicit lister chain. The first
// lister with a usable result supplies the candidates; later listers are
// never consulted, so candidate sources never mix within one run. When no
// lister produces anything the pipeline still runs, leaving the explicit
// includes as the only candidates.
func SelectWith(root string, opts Options, logger *zap.Logger, listers ...CandidateLister) []string {
	var candidates []string
	for _, lister := range listers {
		result := lister.List(root, logger)
		if result.Usable() {
			logger.Debug("Candidate source selected",
				zap.String("lister", lister.Name()),
				zap.Int("candidateCount", len(result.Paths)))
			candidates = result.Paths
			break
		}
		logger.Info("Candidate source unusable, trying next",
			zap.String("lister", lister.Name()),
			zap.String("status", result.Status.String()),
			zap.Error(result.Err))
	}

	pipeline := Pipeline{
		Explicit:   opts.ExplicitIncludes,
		Exclusions: opts.HardExclusions,
	}
	return pipeline.Finalize(root, candidates, logger)
}
