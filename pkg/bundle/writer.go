// File: pkg/bundle/writer.go
package bundle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bundlex/pkg/filelock"

	"go.uber.org/zap"
)

// sectionHeader builds the delimiter block that precedes each file's
// content in the bundle. The relative path is embedded verbatim.
func sectionHeader(relativePath string) string {
	separatorLine := "# " + strings.Repeat("-", 78)
	return fmt.Sprintf("\n\n%s\n# Source: %s #\n\n", separatorLine, relativePath)
}

// writeBundle streams the selected files into the output file. The output
// is guarded by an advisory lock so two exports cannot interleave writes.
// A file that vanished since selection is skipped with a warning; every
// other write failure is fatal.
func writeBundle(root, outputPath, prologue string, paths []string, args Arguments, logger *zap.Logger) (int, []string, error) {
	lock := filelock.New(outputPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return 0, nil, err
	}
	if !locked {
		return 0, nil, fmt.Errorf("another export is already writing %s", outputPath)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("Failed to release output lock", zap.String("lockFile", lock.Path()), zap.Error(err))
		}
	}()

	logger.Debug("Writing bundle", zap.String("outputFile", outputPath), zap.Int("fileCount", len(paths)))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return 0, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)

	// Write the tree prologue first, when there is one
	if prologue != "" {
		if _, err := writer.WriteString(prologue); err != nil {
			return 0, nil, fmt.Errorf("failed to write tree prologue: %w", err)
		}
	}

	written := 0
	var skipped []string
	for _, rel := range paths {
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			logger.Warn("Skipping file that vanished before writing",
				zap.String("path", rel),
				zap.Error(err))
			skipped = append(skipped, rel)
			continue
		}

		if args.MaxWarnSizeKB > 0 && len(content) > args.MaxWarnSizeKB*1024 {
			logger.Warn("Bundling oversized file",
				zap.String("path", rel),
				zap.Int("sizeBytes", len(content)),
				zap.Int("warnThresholdKB", args.MaxWarnSizeKB))
		}

		body := string(content)
		if args.SkipBinary && isBinaryContent(content) {
			logger.Info("Omitting binary file content",
				zap.String("path", rel),
				zap.Int("sizeBytes", len(content)))
			body = fmt.Sprintf("[binary file omitted: %d bytes]\n", len(content))
		}

		if _, err := writer.WriteString(sectionHeader(filepath.ToSlash(rel))); err != nil {
			return written, skipped, fmt.Errorf("failed to write section header for %s: %w", rel, err)
		}
		if _, err := writer.WriteString(body); err != nil {
			return written, skipped, fmt.Errorf("failed to write content of %s: %w", rel, err)
		}
		written++
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return written, skipped, fmt.Errorf("failed to flush output: %w", err)
	}

	return written, skipped, nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
