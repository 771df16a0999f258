package bundle

import (
	"bundlex/pkg/config"
)

// Arguments holds everything one export run needs. Settings supplies the
// selection rules and the default output name; the remaining fields carry
// the per-run choices already resolved by the caller.
type Arguments struct {
	Root          string           // Project directory to bundle.
	Output        string           // Bundle path; empty means derived from Settings.
	TreePath      string           // Optional separate file for the rendered tree.
	WithTree      bool             // Prepend the rendered tree to the bundle.
	SkipBinary    bool             // Replace binary content with an omission note.
	MaxWarnSizeKB int              // Warn threshold for oversized files; 0 disables.
	Settings      *config.Settings // Selection rules; nil means defaults.
}

// Result summarizes a completed export.
type Result struct {
	OutputPath string   // Where the bundle was written; empty if nothing was.
	Files      []string // Selected files, relative to the root, in bundle order.
	Written    int      // Files actually written into the bundle.
	Skipped    []string // Files that vanished between selection and writing.
}
