// File: cmd/export.go
package cmd

import (
	"fmt"
	"os"

	"bundlex/pkg/bundle"
	"bundlex/pkg/config"
	"bundlex/pkg/picker"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportBase         string
	exportOutput       string
	exportConfigPath   string
	exportTree         bool
	exportTreeFile     string
	exportSkipBinary   bool
	exportUntrackedExt string
)

// exportCmd drives the whole pipeline: choose a project, select its files,
// write the bundle.
var exportCmd = &cobra.Command{
	Use:   "export [directory]",
	Short: "Bundle a project directory into a single text file",
	Long: `Export concatenates the relevant files of a project directory into one
annotated text artifact. Files come from git when it can list the project,
with a manual ignore-aware walk as fallback. Without a directory argument an
interactive chooser lists the projects under --base.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(exportConfigPath)
		if err != nil {
			return err
		}

		// Flags override the settings file only when actually set.
		if cmd.Flags().Changed("tree") {
			settings.WithTree = exportTree
		}
		if cmd.Flags().Changed("skip-binary") {
			settings.SkipBinary = exportSkipBinary
		}
		if cmd.Flags().Changed("untracked-ext") {
			settings.UntrackedExtension = exportUntrackedExt
		}

		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		result, err := bundle.Run(bundle.Arguments{
			Root:          root,
			Output:        exportOutput,
			TreePath:      exportTreeFile,
			WithTree:      settings.WithTree,
			SkipBinary:    settings.SkipBinary,
			MaxWarnSizeKB: settings.MaxWarnSizeKB,
			Settings:      settings,
		}, logger)
		if err != nil {
			return err
		}

		printSummary(result)
		return nil
	},
}

// resolveRoot picks the project directory: the positional argument when
// given, otherwise the interactive chooser over --base.
func resolveRoot(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if !picker.StdinIsTerminal() {
		return "", fmt.Errorf("no project directory given and stdin is not a terminal; pass a directory argument")
	}
	root, err := picker.Choose(exportBase, os.Stdin, os.Stdout)
	if err != nil {
		return "", err
	}
	logger.Info("Project chosen interactively", zap.String("directory", root))
	return root, nil
}

// printSummary reports the outcome on stdout.
func printSummary(result *bundle.Result) {
	if result.OutputPath == "" {
		color.Yellow("Nothing to bundle: no files were selected.")
		return
	}
	color.Green("Bundled %d files into %s", result.Written, result.OutputPath)
	if len(result.Skipped) > 0 {
		color.Yellow("Skipped %d files that vanished during the run:", len(result.Skipped))
		for _, path := range result.Skipped {
			fmt.Printf("  - %s\n", path)
		}
	}
}

func init() {
	exportCmd.Flags().StringVar(&exportBase, "base", ".", "Base directory the interactive chooser lists projects from")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Bundle file path (default <project>_bundle.txt)")
	exportCmd.Flags().StringVar(&exportConfigPath, "config", "bundlex.yaml", "Settings file path")
	exportCmd.Flags().BoolVar(&exportTree, "tree", false, "Prepend a tree of the bundled files to the bundle")
	exportCmd.Flags().StringVar(&exportTreeFile, "tree-file", "", "Also write the rendered tree to this file")
	exportCmd.Flags().BoolVar(&exportSkipBinary, "skip-binary", false, "Replace binary file content with an omission note")
	exportCmd.Flags().StringVar(&exportUntrackedExt, "untracked-ext", "", "Extension of untracked files to pick up from git (default .txt)")

	RootCmd.AddCommand(exportCmd)
}
