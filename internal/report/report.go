// Package report derives display-ready views from the in-memory collections.
// Every function here is pure: same inputs, same outputs, no I/O and no
// hidden clock. Callers pass the reference time explicitly.
//
// All monetary math is done on full-precision sums; rounding happens only
// when a value is formatted for display.
package report

import (
	"sort"
	"time"

	"tally/internal/model"
)

// FallbackLabel names spending whose category cannot be resolved, e.g. when
// the category has been archived.
const FallbackLabel = "Other"

// FallbackColor is the neutral gray used for unresolvable categories.
const FallbackColor = "#cbd5e1"

// TrendMonths is the width of the trend window, current month included.
const TrendMonths = 6

// sameMonth reports whether t falls in the calendar month of ref.
func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

// MonthlyTotal sums the expenses falling in now's calendar month.
func MonthlyTotal(expenses []model.Expense, now time.Time) float64 {
	var total float64
	for _, exp := range expenses {
		if sameMonth(exp.Date, now) {
			total += exp.Amount
		}
	}
	return total
}

// CategoryMonthlyTotal sums the current month's expenses for one category.
func CategoryMonthlyTotal(expenses []model.Expense, categoryID int64, now time.Time) float64 {
	var total float64
	for _, exp := range expenses {
		if exp.CategoryID == categoryID && sameMonth(exp.Date, now) {
			total += exp.Amount
		}
	}
	return total
}

// BudgetTotal sums budget limits across categories. Unset limits contribute
// zero; they are summed, not skipped, so the denominator is never skewed.
func BudgetTotal(categories []model.Category) float64 {
	var total float64
	for _, cat := range categories {
		total += cat.BudgetLimit
	}
	return total
}

// BudgetProgress returns spent/budget, or 0 when no budget is set. The ratio
// is deliberately uncapped: values above 1 are the meaningful "over budget"
// state. Cap only for display via DisplayPercent.
func BudgetProgress(spent, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	return spent / budget
}

// DisplayPercent converts a progress ratio to a bar-width percentage,
// capped at 100.
func DisplayPercent(ratio float64) float64 {
	percent := ratio * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// Slice is one category's share of the current month's spending.
type Slice struct {
	Label      string
	Color      string
	CategoryID int64
	Value      float64
}

// Distribution groups the current month's spending by category, resolving
// each category's display name and color. Unresolvable categories get the
// fallback label and color. Zero and negative totals are dropped; the
// remainder is sorted by value descending (category ID breaks ties so the
// order is deterministic). The slice values always sum to MonthlyTotal minus
// any dropped non-positive totals.
func Distribution(expenses []model.Expense, categories []model.Category, now time.Time) []Slice {
	totals := make(map[int64]float64)
	for _, exp := range expenses {
		if sameMonth(exp.Date, now) {
			totals[exp.CategoryID] += exp.Amount
		}
	}

	byID := make(map[int64]model.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	slices := make([]Slice, 0, len(totals))
	for id, value := range totals {
		if value <= 0 {
			continue
		}
		slice := Slice{CategoryID: id, Value: value, Label: FallbackLabel, Color: FallbackColor}
		if cat, ok := byID[id]; ok {
			slice.Label = cat.Name
			slice.Color = cat.Color
		}
		slices = append(slices, slice)
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Value != slices[j].Value {
			return slices[i].Value > slices[j].Value
		}
		return slices[i].CategoryID < slices[j].CategoryID
	})

	return slices
}

// TrendBucket is one month's aggregate total in the trend window.
type TrendBucket struct {
	Label string
	Year  int
	Month time.Month
	Value float64
}

// SixMonthTrend computes totals for the 6 calendar months ending at now's
// month, oldest first. Months with no expenses produce zero-valued buckets;
// the result always has exactly TrendMonths entries.
func SixMonthTrend(expenses []model.Expense, now time.Time) []TrendBucket {
	buckets := make([]TrendBucket, 0, TrendMonths)

	for i := TrendMonths - 1; i >= 0; i-- {
		// Normalize via time.Date so month arithmetic is stable even when
		// now is the 29th-31st of a month.
		ref := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())

		var total float64
		for _, exp := range expenses {
			if sameMonth(exp.Date, ref) {
				total += exp.Amount
			}
		}

		buckets = append(buckets, TrendBucket{
			Label: ref.Format("Jan"),
			Year:  ref.Year(),
			Month: ref.Month(),
			Value: total,
		})
	}

	return buckets
}
