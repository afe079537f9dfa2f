// Package cli implements the borelog command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tsawler/borelog/config"
	"github.com/tsawler/borelog/internal/logger"
)

var (
	verbose    bool
	configPath string

	// settings is loaded before every command runs.
	settings = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "borelog",
	Short: "Paginate borehole logs",
	Long: `borelog lays out geotechnical borehole logs on fixed-size pages.
Layers that span a page break are split, descriptions that do not fit their
layer are pushed down or moved to overflow pages, and the resulting geometry
is written as JSON, JSONL, CSV or TSV for a renderer.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline progress to stderr")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (default ~/.borelog/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx; watch stops when it is done.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadSettings(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Debug("no home directory, using defaults: %v", err)
			settings = config.Default()
			return nil
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("configuration from %s", path)
	settings = cfg
	return nil
}
