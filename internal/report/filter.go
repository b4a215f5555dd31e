package report

import (
	"sort"
	"time"

	"tally/internal/model"
)

// Filter narrows an expense list by category and an inclusive calendar-date
// range. Nil fields mean "no constraint"; the zero Filter passes everything.
type Filter struct {
	CategoryID *int64
	Start      *time.Time
	End        *time.Time
}

// Apply retains the expenses matching every set constraint, preserving input
// order. Start is compared at start-of-day and End at end-of-day, so a range
// with Start == End keeps exactly that calendar day regardless of
// time-of-day on either side.
func (f Filter) Apply(expenses []model.Expense) []model.Expense {
	var start, end time.Time
	if f.Start != nil {
		y, m, d := f.Start.Date()
		start = time.Date(y, m, d, 0, 0, 0, 0, f.Start.Location())
	}
	if f.End != nil {
		y, m, d := f.End.Date()
		end = time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), f.End.Location())
	}

	out := make([]model.Expense, 0, len(expenses))
	for _, exp := range expenses {
		if f.CategoryID != nil && exp.CategoryID != *f.CategoryID {
			continue
		}
		if f.Start != nil && exp.Date.Before(start) {
			continue
		}
		if f.End != nil && exp.Date.After(end) {
			continue
		}
		out = append(out, exp)
	}
	return out
}

// Section is one calendar day's worth of expenses for the list view.
type Section struct {
	Day      time.Time
	Title    string
	Expenses []model.Expense
}

// GroupByDay splits expenses into sections keyed by calendar day, most recent
// day first. Within a section the input order is preserved, so callers that
// pass the store's date-descending load order keep it. Section titles use a
// short weekday/month/day label.
func GroupByDay(expenses []model.Expense) []Section {
	grouped := make(map[time.Time][]model.Expense)
	for _, exp := range expenses {
		day := exp.Day()
		grouped[day] = append(grouped[day], exp)
	}

	days := make([]time.Time, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	sections := make([]Section, 0, len(days))
	for _, day := range days {
		sections = append(sections, Section{
			Day:      day,
			Title:    day.Format("Mon, Jan 2"),
			Expenses: grouped[day],
		})
	}
	return sections
}
