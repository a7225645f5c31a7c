// Package report aggregates per-file outcomes into run totals and renders the
// plain-text summary written at the end of a run.
package report

import (
	"fmt"
	"sort"
	"strings"

	"docsort/internal/organizer"
)

// Summary holds the aggregate totals for one run.
type Summary struct {
	Total      int
	Succeeded  int
	Failed     int
	Categories map[string]int
	Mode       string
	DryRun     bool
}

// Summarize tallies outcomes into per-category counts and totals.
func Summarize(outcomes []organizer.Outcome, mode string, dryRun bool) Summary {
	summary := Summary{
		Total:      len(outcomes),
		Categories: make(map[string]int),
		Mode:       mode,
		DryRun:     dryRun,
	}
	for _, outcome := range outcomes {
		if outcome.Success {
			summary.Succeeded++
			summary.Categories[outcome.Category]++
		} else {
			summary.Failed++
		}
	}
	return summary
}

// SortedCategories returns category names ordered by count descending, ties
// broken alphabetically.
func (s Summary) SortedCategories() []string {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if s.Categories[names[i]] != s.Categories[names[j]] {
			return s.Categories[names[i]] > s.Categories[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// Render produces the plain-text run report: totals, category counts, and a
// per-file listing of placements and failures.
func Render(outcomes []organizer.Outcome, summary Summary) string {
	var b strings.Builder
	b.WriteString("File Organization Summary\n")
	b.WriteString(strings.Repeat("=", 50))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Mode: %s\n", modeLabel(summary))
	fmt.Fprintf(&b, "Total files: %d\n", summary.Total)
	fmt.Fprintf(&b, "Organized: %d\n", summary.Succeeded)
	fmt.Fprintf(&b, "Failed: %d\n", summary.Failed)

	if len(summary.Categories) > 0 {
		b.WriteString("\nCategories:\n")
		for _, name := range summary.SortedCategories() {
			fmt.Fprintf(&b, "  %s: %d\n", name, summary.Categories[name])
		}
	}

	b.WriteString("\nFiles:\n")
	for _, outcome := range outcomes {
		if outcome.Success {
			fmt.Fprintf(&b, "  %s -> %s [%s]\n", outcome.OriginalName, outcome.FinalPath, outcome.Category)
		} else {
			fmt.Fprintf(&b, "  %s -> FAILED: %s\n", outcome.OriginalName, outcome.ErrorMessage)
		}
	}
	return b.String()
}

func modeLabel(summary Summary) string {
	if summary.DryRun {
		return summary.Mode + " (dry run)"
	}
	return summary.Mode
}
