package output

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/sitelint/pkg/lint"
)

// SummaryTable renders the run summary as a bordered table.
func SummaryTable(s lint.Summary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Errors", "Warnings", "Passed", "Excluded", "Total"})
	t.AppendRow(table.Row{s.Errors, s.Warnings, s.Passed, s.Excluded, s.Total})
	return t.Render()
}
