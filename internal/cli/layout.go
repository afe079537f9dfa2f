package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/borelog/export"
	"github.com/tsawler/borelog/internal/logger"
)

var (
	layoutFormat  string
	layoutOutput  string
	layoutWorkers int
	layoutNoText  bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout FILE...",
	Short: "Lay out borehole files and export the page geometry",
	Long: `Lays out each borehole file and writes the resulting sheets.
Without --output, every layout is written to stdout in argument order.
With --output, each borehole gets its own file named after its ID.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().StringVarP(&layoutFormat, "format", "f", "", "output format: json, jsonl, csv or tsv (default from config)")
	layoutCmd.Flags().StringVarP(&layoutOutput, "output", "o", "", "directory to write one file per borehole")
	layoutCmd.Flags().IntVarP(&layoutWorkers, "workers", "w", 0, "concurrent layouts (default from config, 0 = all CPUs)")
	layoutCmd.Flags().BoolVar(&layoutNoText, "no-text", false, "omit wrapped description lines")
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	exportCfg, err := settings.ExportConfig()
	if err != nil {
		return err
	}
	if layoutFormat != "" {
		format, err := export.ParseFormat(layoutFormat)
		if err != nil {
			return err
		}
		exportCfg.Format = format
		exportCfg.PrettyPrint = format == export.FormatJSON && settings.Export.PrettyPrint
	}
	if layoutNoText {
		exportCfg.IncludeText = false
	}
	exporter := export.NewExporterWithConfig(exportCfg)

	logger.Section("Layout")
	results, err := layoutFiles(cmd.Context(), args, layoutWorkers)
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if layoutOutput == "" {
			if err := exporter.Export(res.Layout, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("%s: %w", res.Borehole, err)
			}
			continue
		}

		name := filepath.Join(layoutOutput, res.Borehole+exportCfg.Format.FileExtension())
		if err := exporter.ExportToFile(res.Layout, name); err != nil {
			return fmt.Errorf("%s: %w", res.Borehole, err)
		}
		logger.Info("wrote %s", name)
	}

	return firstError(results)
}
