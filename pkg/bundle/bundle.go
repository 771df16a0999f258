// Package bundle turns a selected project directory into a single
// concatenated text artifact. The selection package decides which files go
// in; this package renders and writes the bundle.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bundlex/pkg/config"
	"bundlex/pkg/selection"

	"go.uber.org/zap"
)

// Run orchestrates one export: select the files, render the optional tree,
// write the bundle. Selection problems degrade to a smaller bundle; only
// unusable arguments and output failures are fatal.
func Run(args Arguments, logger *zap.Logger) (*Result, error) {
	startTime := time.Now()

	settings := args.Settings
	if settings == nil {
		settings = config.Default()
	}

	// Resolve the project directory's absolute path
	root, err := filepath.Abs(args.Root)
	if err != nil {
		logger.Error("Failed to resolve project directory", zap.String("directory", args.Root), zap.Error(err))
		return nil, fmt.Errorf("failed to resolve project directory %s: %w", args.Root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("project directory %s is not usable: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path %s is not a directory", root)
	}

	logger.Info("Starting export", zap.String("directory", root))

	files := selection.Select(root, selection.Options{
		UntrackedExtension: settings.UntrackedExtension,
		ExplicitIncludes:   settings.ExplicitIncludes,
		HardExclusions:     settings.HardExclusions,
	}, logger)

	if len(files) == 0 {
		logger.Warn("No files selected, nothing to bundle", zap.String("directory", root))
		return &Result{Files: files}, nil
	}

	outputPath := args.Output
	if outputPath == "" {
		outputPath = settings.OutputFileName(filepath.Base(root))
	}
	if err := ensureDirectory(filepath.Dir(outputPath), logger); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Render the tree once and reuse it for the prologue and the side file
	var treeContent string
	if args.WithTree || args.TreePath != "" {
		treeContent = RenderTree(filepath.Base(root), files)
	}
	if args.TreePath != "" {
		if err := ensureDirectory(filepath.Dir(args.TreePath), logger); err != nil {
			return nil, fmt.Errorf("failed to create tree output directory: %w", err)
		}
		if err := writeToFile(args.TreePath, []byte(treeContent), 0o644, logger); err != nil {
			return nil, fmt.Errorf("failed to write tree file: %w", err)
		}
	}

	prologue := ""
	if args.WithTree {
		prologue = treeContent
	}

	written, skipped, err := writeBundle(root, outputPath, prologue, files, args, logger)
	if err != nil {
		logger.Error("Failed to write bundle", zap.String("outputFile", outputPath), zap.Error(err))
		return nil, fmt.Errorf("failed to write bundle: %w", err)
	}

	logger.Info("Export complete",
		zap.String("outputFile", outputPath),
		zap.Int("totalFiles", len(files)),
		zap.Int("writtenFiles", written),
		zap.Int("skippedFiles", len(skipped)),
		zap.Duration("elapsed", time.Since(startTime)))

	return &Result{
		OutputPath: outputPath,
		Files:      files,
		Written:    written,
		Skipped:    skipped,
	}, nil
}
