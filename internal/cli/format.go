package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Money renders an amount prefixed with the currency symbol, rounded to two
// decimal places. Rounding happens here and nowhere else: aggregation keeps
// full precision and only the displayed string is truncated.
func Money(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// MoneyWhole renders an amount with no decimal places, for compact listings.
func MoneyWhole(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.0f", symbol, amount)
}

// Bar renders a fixed-width progress bar. percent is expected in [0, 100];
// overBudget switches the fill to the error color.
func Bar(percent float64, width int, overBudget bool) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}

	fillColor := PrimaryColor
	if overBudget {
		fillColor = ErrorColor
	}

	fill := lipgloss.NewStyle().Foreground(fillColor).Render(strings.Repeat("█", filled))
	rest := SubtleStyle.Render(strings.Repeat("░", width-filled))
	return fill + rest
}
