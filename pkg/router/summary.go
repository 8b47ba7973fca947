package router

import (
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var outcomeOrder = []Outcome{OutcomeCopied, OutcomePlanned, OutcomeExists, OutcomeNotFound, OutcomeMalformed, OutcomeFailed}

func CountOutcomes(results []Result) map[Outcome]int {
	counts := make(map[Outcome]int, len(outcomeOrder))
	for _, res := range results {
		counts[res.Outcome]++
	}
	return counts
}

// RenderSummary draws one row per routed file followed by a per-outcome footer.
func RenderSummary(results []Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Module", "Variant", "Target", "Outcome"})

	for _, res := range results {
		target := ""
		if res.Target != "" {
			target = filepath.Join(res.Level, res.Module, filepath.Base(res.Target))
		}
		tw.AppendRow(table.Row{res.Source, res.Module, res.Variant, target, res.Outcome})
	}

	counts := CountOutcomes(results)
	for _, o := range outcomeOrder {
		if counts[o] == 0 {
			continue
		}
		tw.AppendFooter(table.Row{"", "", "", o, counts[o]})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, AlignFooter: text.AlignRight},
		{Number: 5, AlignFooter: text.AlignLeft},
	})

	return tw.Render()
}
