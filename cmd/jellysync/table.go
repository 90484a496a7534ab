package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"jellysync/internal/reconcile"
)

// renderReport lays out per-item outcomes for terminal display.
func renderReport(report *reconcile.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Kind", "Name", "Action", "Status", "Detail"})

	for _, outcome := range report.Outcomes {
		status := "ok"
		if !outcome.OK {
			status = "failed"
		}
		tw.AppendRow(table.Row{
			string(outcome.Kind),
			outcome.Name,
			string(outcome.Action),
			status,
			outcome.Detail,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 5, WidthMax: 60},
	})

	return tw.Render()
}
