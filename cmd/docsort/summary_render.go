package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"docsort/internal/organizer"
	"docsort/internal/report"
)

// printSummary renders the run summary: a rounded table on a terminal, the
// plain-text report everywhere else so piped output stays grep-friendly.
func printSummary(w io.Writer, outcomes []organizer.Outcome, summary report.Summary) {
	if !stdoutIsTerminal() {
		fmt.Fprint(w, report.Render(outcomes, summary))
		return
	}

	fmt.Fprintf(w, "Organized %d of %d files (%d failed)\n", summary.Succeeded, summary.Total, summary.Failed)
	if len(summary.Categories) > 0 {
		rows := make([]table.Row, 0, len(summary.Categories))
		for _, name := range summary.SortedCategories() {
			rows = append(rows, table.Row{name, summary.Categories[name]})
		}
		fmt.Fprintln(w, renderRows(table.Row{"Category", "Files"}, rows, 2))
	}
	for _, outcome := range outcomes {
		if !outcome.Success {
			fmt.Fprintf(w, "failed: %s: %s\n", outcome.OriginalName, outcome.ErrorMessage)
		}
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
