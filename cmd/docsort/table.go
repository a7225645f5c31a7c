package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderRows renders a rounded table for the terminal summaries this command
// prints. Columns listed in numericColumns (1-based) are right-aligned; the
// count columns are the only non-text data any docsort table carries.
func renderRows(header table.Row, rows []table.Row, numericColumns ...int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)
	tw.AppendRows(rows)

	if len(numericColumns) > 0 {
		configs := make([]table.ColumnConfig, 0, len(numericColumns))
		for _, column := range numericColumns {
			configs = append(configs, table.ColumnConfig{
				Number:      column,
				Align:       text.AlignRight,
				AlignHeader: text.AlignLeft,
			})
		}
		tw.SetColumnConfigs(configs)
	}
	return tw.Render()
}
