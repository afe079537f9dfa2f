package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/tsawler/borelog/internal/logger"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-lay out a borehole file whenever it changes",
	Long: `Prints the summary of FILE, then prints it again every time the file is
written. The directory is watched so that editors which save by renaming a
temporary file are picked up. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "quiet period before re-running")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	target, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	out := cmd.OutOrStdout()
	st := newStyles()
	render := func() {
		results, err := layoutFiles(ctx, []string{target}, 1)
		if err != nil {
			cmd.PrintErrln(st.Error.Render(err.Error()))
			return
		}
		fmt.Fprintln(out, renderSummary(results[0], st))
	}

	render()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isChange(event, target) {
				logger.Debug("%s: %s", event.Op, event.Name)
				pending = time.After(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)
		case <-pending:
			pending = nil
			fmt.Fprintln(out)
			render()
		}
	}
}

// isChange reports whether event means target has new content.
func isChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(target) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}
