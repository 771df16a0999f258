package cmd

import (
	"fmt"

	"bundlex/pkg/logging"
	"bundlex/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger
	debug  bool
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "bundlex",
	Short: "Bundlex bundles a project's files into a single text artifact",
	Long: `Bundlex collects the relevant files of a project directory and concatenates
them into one annotated text file, designed for workflows like LLM input
preparation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The process-wide logger is built before flag parsing; rebuild it
		// once the --debug flag is known.
		if debug {
			rebuilt, err := logging.Setup(true, "Bundlex", version.Get().Version)
			if err != nil {
				return fmt.Errorf("failed to enable debug logging: %w", err)
			}
			logger = rebuilt
		}
		return nil
	},
}

// Execute wires the shared logger into the command tree and runs it.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
