// Package tui implements the interactive dashboard: a tabbed terminal view
// over the domain store with an overview, an expense browser, and the
// six-month trend.
package tui

import (
	"context"
	"fmt"
	"time"

	"tally/internal/report"
	"tally/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab identifies one of the dashboard views.
type Tab int

const (
	TabOverview Tab = iota
	TabExpenses
	TabTrend
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabExpenses:
		return "Expenses"
	case TabTrend:
		return "Trend"
	default:
		return "Unknown"
	}
}

// Model holds the dashboard state. All domain data lives in the injected
// store; the model only keeps view state (active tab, cursor, sizes).
type Model struct {
	ctx       context.Context
	store     *store.Store
	keymap    KeyMap
	help      help.Model
	budgetBar progress.Model
	lastErr   error
	tab       Tab
	cursor    int
	width     int
	height    int
	showHelp  bool
}

// refreshedMsg reports completion of a store mutation or reload.
type refreshedMsg struct {
	err error
}

// NewModel creates a dashboard over an initialized store.
func NewModel(ctx context.Context, st *store.Store) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false

	return Model{
		ctx:       ctx,
		store:     st,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		budgetBar: bar,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.budgetBar.Width = min(m.width-4, 48)
		return m, nil

	case refreshedMsg:
		m.lastErr = msg.err
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keymap.NextTab):
			m.tab = (m.tab + 1) % tabCount
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keymap.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keymap.Up):
			if m.tab == TabExpenses && m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keymap.Down):
			if m.tab == TabExpenses {
				m.cursor++
				m.clampCursor()
			}
			return m, nil

		case key.Matches(msg, m.keymap.Delete):
			if m.tab != TabExpenses {
				return m, nil
			}
			expenses := m.store.Expenses()
			if m.cursor >= len(expenses) {
				return m, nil
			}
			id := expenses[m.cursor].ID
			return m, m.deleteExpense(id)

		case key.Matches(msg, m.keymap.Refresh):
			return m, m.reload()
		}
	}

	return m, nil
}

func (m *Model) clampCursor() {
	count := len(m.store.Expenses())
	if count == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= count {
		m.cursor = count - 1
	}
}

func (m Model) deleteExpense(id int64) tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{err: m.store.DeleteExpense(m.ctx, id)}
	}
}

func (m Model) reload() tea.Cmd {
	return func() tea.Msg {
		if err := m.store.LoadCategories(m.ctx); err != nil {
			return refreshedMsg{err: err}
		}
		return refreshedMsg{err: m.store.LoadExpenses(m.ctx)}
	}
}

// monthLabel is the heading for current-month views.
func monthLabel(now time.Time) string {
	return now.Format("January 2006")
}

// overviewData bundles the aggregates the overview tab renders.
type overviewData struct {
	spent   float64
	budget  float64
	ratio   float64
	perCat  map[int64]float64
	nowTime time.Time
}

func (m Model) currentOverview() overviewData {
	now := time.Now()
	expenses := m.store.Expenses()
	categories := m.store.Categories()

	data := overviewData{
		spent:   report.MonthlyTotal(expenses, now),
		budget:  report.BudgetTotal(categories),
		perCat:  make(map[int64]float64, len(categories)),
		nowTime: now,
	}
	data.ratio = report.BudgetProgress(data.spent, data.budget)

	for _, cat := range categories {
		data.perCat[cat.ID] = report.CategoryMonthlyTotal(expenses, cat.ID, now)
	}
	return data
}

// errorLine formats the last operation error, if any.
func (m Model) errorLine() string {
	if m.lastErr == nil {
		return ""
	}
	return fmt.Sprintf("error: %v", m.lastErr)
}
