package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-seedexpand/pkg/evaluation"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(11)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF00"))

	resultsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)
)

func reportLine(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

// renderReport formats the aggregated scores to three decimal places
func renderReport(r *evaluation.Report) string {
	lines := []string{
		titleStyle.Render("=== RESULTS ==="),
		reportLine("Seeds:", fmt.Sprintf("%d (%s)", r.RequestedTrials, r.Strategy)),
		reportLine("Trials:", fmt.Sprintf("%d", len(r.Trials))),
		reportLine("Precision:", fmt.Sprintf("%.3f", r.MeanPrecision)),
		reportLine("Recall:", fmt.Sprintf("%.3f", r.MeanRecall)),
		reportLine("F1 score:", fmt.Sprintf("%.3f", r.MeanF1)),
		reportLine("Run:", r.RunID),
	}
	return resultsBoxStyle.Render(strings.Join(lines, "\n"))
}
