package tui

import (
	"fmt"
	"strings"
	"time"

	"tally/internal/cli"
	"tally/internal/icons"
	"tally/internal/report"

	"github.com/charmbracelet/lipgloss"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(cli.SubtleColor).
				Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(cli.PrimaryColor)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(cli.SubtleColor)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case TabOverview:
		b.WriteString(m.renderOverview())
	case TabExpenses:
		b.WriteString(m.renderExpenses())
	case TabTrend:
		b.WriteString(m.renderTrend())
	}

	if line := m.errorLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(cli.ErrorStyle.Render(line))
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keymap.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keymap.ShortHelp()))
	}

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, int(tabCount))
	for t := TabOverview; t < tabCount; t++ {
		style := inactiveTabStyle
		if t == m.tab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderOverview() string {
	data := m.currentOverview()
	currency := m.store.Currency()

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("Total Spent in " + monthLabel(data.nowTime)))
	b.WriteString("\n")
	b.WriteString(cli.BoldStyle.Render(cli.Money(currency, data.spent)))
	b.WriteString("\n\n")

	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("Budget %s / %s (%.0f%%)",
		cli.Money(currency, data.spent),
		cli.Money(currency, data.budget),
		data.ratio*100)))
	b.WriteString("\n")
	b.WriteString(m.budgetBar.ViewAs(report.DisplayPercent(data.ratio) / 100))
	if data.ratio > 1 {
		b.WriteString(" " + cli.ErrorStyle.Render("over budget"))
	}
	b.WriteString("\n\n")

	b.WriteString(sectionTitleStyle.Render("Categories"))
	b.WriteString("\n")
	for _, cat := range m.store.Categories() {
		spent := data.perCat[cat.ID]
		line := fmt.Sprintf("%s %-20s %10s", icons.Glyph(cat.Icon), cat.Name, cli.Money(currency, spent))
		if cat.HasBudget() {
			catRatio := report.BudgetProgress(spent, cat.BudgetLimit)
			line += fmt.Sprintf("  %s %s",
				cli.Bar(report.DisplayPercent(catRatio), 16, catRatio > 1),
				cli.SubtleStyle.Render("limit "+cli.MoneyWhole(currency, cat.BudgetLimit)))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderExpenses() string {
	expenses := m.store.Expenses()
	if len(expenses) == 0 {
		return cli.SubtleStyle.Render("No expenses recorded yet.")
	}

	names := make(map[int64]string)
	for _, cat := range m.store.Categories() {
		names[cat.ID] = cat.Name
	}
	currency := m.store.Currency()

	var b strings.Builder
	index := 0
	for _, section := range report.GroupByDay(expenses) {
		b.WriteString(sectionTitleStyle.Render(section.Title))
		b.WriteString("\n")
		for _, exp := range section.Expenses {
			name, ok := names[exp.CategoryID]
			if !ok {
				name = report.FallbackLabel
			}
			line := fmt.Sprintf("  %-20s %10s  %s", name, cli.Money(currency, exp.Amount), exp.Note)
			if index == m.cursor {
				line = selectedRowStyle.Render("▸" + line[1:])
			}
			b.WriteString(line)
			b.WriteString("\n")
			index++
		}
	}

	return b.String()
}

func (m Model) renderTrend() string {
	buckets := report.SixMonthTrend(m.store.Expenses(), time.Now())
	currency := m.store.Currency()

	var max float64
	for _, bucket := range buckets {
		if bucket.Value > max {
			max = bucket.Value
		}
	}

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("Six-month trend"))
	b.WriteString("\n")
	for _, bucket := range buckets {
		percent := 0.0
		if max > 0 {
			percent = bucket.Value / max * 100
		}
		b.WriteString(fmt.Sprintf("%-4s %10s  %s\n",
			bucket.Label,
			cli.Money(currency, bucket.Value),
			cli.Bar(percent, 24, false)))
	}

	return b.String()
}
