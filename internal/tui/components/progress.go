package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/timeworthapp/timeworth/internal/tui/theme"
)

// BudgetBar renders a labeled budget-usage bar with percentage.
// Usage above 100% renders a full bar in red.
func BudgetBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	display := pct
	if display > 1 {
		display = 1
	}

	color := t.Green
	switch {
	case pct >= 1:
		color = t.Red
	case pct >= 0.75:
		color = t.Orange
	case pct >= 0.5:
		color = t.Yellow
	}

	filled := int(display * float64(barWidth))
	filledStyle := lipgloss.NewStyle().Foreground(color)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", barWidth-filled)) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
