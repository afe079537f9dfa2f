package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tsawler/borelog"
	"github.com/tsawler/borelog/model"
)

var summaryCmd = &cobra.Command{
	Use:   "summary FILE...",
	Short: "Print a per-sheet summary of each borehole layout",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	results, err := layoutFiles(cmd.Context(), args, 0)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := newStyles()
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, renderSummary(res, st))
	}
	return firstError(results)
}

var summaryColumns = []struct {
	title string
	width int
}{
	{"Sheet", 12},
	{"Kind", 10},
	{"Depth (m)", 16},
	{"Rows", 6},
	{"On page", 9},
	{"Continues", 11},
	{"Complete", 10},
}

// renderSummary draws one borehole as a table of its sheets.
func renderSummary(res borelog.Result, st styles) string {
	if res.Err != nil {
		return st.Error.Render(fmt.Sprintf("%s: %v", res.Borehole, res.Err))
	}

	l := res.Layout
	var b strings.Builder
	b.WriteString(st.Title.Render(res.Borehole))
	b.WriteString(st.Muted.Render(fmt.Sprintf("  %.2f m per page, %.2f m total, %d sheets",
		l.DepthPerPage, l.TotalDepth, l.SheetCount())))
	b.WriteString("\n")

	header := make([]string, len(summaryColumns))
	for i, col := range summaryColumns {
		header[i] = col.title
	}
	b.WriteString(summaryRow(st.Header, header))
	b.WriteString("\n")

	for _, sheet := range l.Sheets {
		switch s := sheet.(type) {
		case *model.Page:
			b.WriteString(summaryRow(st.Cell, []string{
				s.Label(),
				s.Kind().String(),
				fmt.Sprintf("%.2f–%.2f", s.Top, s.DataBottom),
				strconv.Itoa(len(s.Rows)),
				strconv.Itoa(len(s.RowsByClass(model.ClassOnPage))),
				strconv.Itoa(len(s.RowsByClass(model.ClassLayerContinues))),
				strconv.Itoa(len(s.RowsByClass(model.ClassLayerComplete))),
			}))
		case *model.OverflowPage:
			b.WriteString(summaryRow(st.Overflow, []string{
				s.Label(),
				s.Kind().String(),
				"",
				strconv.Itoa(len(s.Entries)),
				"", "", "",
			}))
		}
		b.WriteString("\n")
	}

	if len(res.Warnings) > 0 {
		b.WriteString(st.Warning.Render(fmt.Sprintf("%d warnings: %s",
			len(res.Warnings), borelog.FormatWarnings(res.Warnings))))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func summaryRow(style lipgloss.Style, cells []string) string {
	rendered := make([]string, len(cells))
	for i, cell := range cells {
		rendered[i] = style.Width(summaryColumns[i].width).Render(cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
