package report

import (
	"testing"
	"time"

	"tally/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Apply(t *testing.T) {
	aug10Morning := time.Date(2026, 8, 10, 8, 15, 0, 0, time.Local)
	aug10Night := time.Date(2026, 8, 10, 23, 45, 0, 0, time.Local)
	aug12 := time.Date(2026, 8, 12, 12, 0, 0, 0, time.Local)
	aug20 := time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)

	expenses := []model.Expense{
		expense(1, 1, 10, aug20),
		expense(2, 2, 20, aug12),
		expense(3, 1, 30, aug10Night),
		expense(4, 2, 40, aug10Morning),
	}

	catOne := int64(1)
	aug10 := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
	aug12Noon := aug12

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []int64
	}{
		{
			name:    "no filters pass everything in order",
			filter:  Filter{},
			wantIDs: []int64{1, 2, 3, 4},
		},
		{
			name:    "category only",
			filter:  Filter{CategoryID: &catOne},
			wantIDs: []int64{1, 3},
		},
		{
			name:    "start compares at start of day",
			filter:  Filter{Start: &aug12Noon},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "end compares at end of day",
			filter:  Filter{End: &aug12Noon},
			wantIDs: []int64{2, 3, 4},
		},
		{
			name:    "start equals end keeps exactly that calendar day",
			filter:  Filter{Start: &aug10, End: &aug10},
			wantIDs: []int64{3, 4},
		},
		{
			name:    "all filters combine",
			filter:  Filter{CategoryID: &catOne, Start: &aug10, End: &aug12Noon},
			wantIDs: []int64{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(expenses)
			gotIDs := make([]int64, 0, len(got))
			for _, exp := range got {
				gotIDs = append(gotIDs, exp.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilter_Empty(t *testing.T) {
	assert.Empty(t, Filter{}.Apply(nil))
}

func TestGroupByDay(t *testing.T) {
	aug12Morning := time.Date(2026, 8, 12, 9, 0, 0, 0, time.Local)
	aug12Evening := time.Date(2026, 8, 12, 21, 0, 0, 0, time.Local)
	aug14 := time.Date(2026, 8, 14, 12, 0, 0, 0, time.Local)

	// Store load order: date descending.
	expenses := []model.Expense{
		expense(1, 1, 10, aug14),
		expense(2, 1, 20, aug12Evening),
		expense(3, 1, 30, aug12Morning),
	}

	sections := GroupByDay(expenses)
	require.Len(t, sections, 2)

	assert.Equal(t, "Fri, Aug 14", sections[0].Title)
	require.Len(t, sections[0].Expenses, 1)

	assert.Equal(t, "Wed, Aug 12", sections[1].Title)
	require.Len(t, sections[1].Expenses, 2)
	assert.Equal(t, int64(2), sections[1].Expenses[0].ID, "input order is preserved within a section")
	assert.Equal(t, int64(3), sections[1].Expenses[1].ID)
}

func TestGroupByDay_Empty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil))
}
