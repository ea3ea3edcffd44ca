package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snehilworks/finance-expense/internal/core"
)

func day(s string) time.Time {
	d, err := core.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"monday maps to itself", "2024-06-03", "2024-06-03"},
		{"wednesday", "2024-06-05", "2024-06-03"},
		{"saturday", "2024-06-08", "2024-06-03"},
		{"sunday belongs to prior monday", "2024-06-09", "2024-06-03"},
		{"next monday starts a new week", "2024-06-10", "2024-06-10"},
		{"crosses a month boundary", "2024-06-01", "2024-05-27"},
		{"crosses a year boundary", "2024-01-01", "2024-01-01"},
		{"sunday new year", "2023-01-01", "2022-12-26"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(day(tt.in))
			assert.Equal(t, tt.want, core.FormatDay(got))
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestWeekStartIdempotent(t *testing.T) {
	// Every day of a week resolves to the same Monday, and re-computing
	// from that Monday is a fixed point.
	start := WeekStart(day("2024-06-05"))
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		assert.Equal(t, start, WeekStart(d), "day %s", core.FormatDay(d))
	}
	assert.Equal(t, start, WeekStart(start))
}

func TestFilterByDay(t *testing.T) {
	records := []core.Expense{
		{ID: "a", Date: "2024-06-03", Category: "Bills", Amount: 100},
		{ID: "b", Date: "2024-06-04", Category: "Bills", Amount: 50},
	}
	got := FilterByDay(records, "2024-06-03")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	assert.Empty(t, FilterByDay(records, "2024-06-05"))
	assert.Empty(t, FilterByDay(nil, "2024-06-03"))
}

func TestFilterByWeek(t *testing.T) {
	records := []core.Expense{
		{ID: "mon", Date: "2024-06-03", Category: "Bills", Amount: 100},
		{ID: "tue", Date: "2024-06-04", Category: "Bills", Amount: 50},
		{ID: "prev-sun", Date: "2024-06-02", Category: "Bills", Amount: 10},
		{ID: "next-mon", Date: "2024-06-10", Category: "Bills", Amount: 20},
		{ID: "bad", Date: "garbage", Category: "Bills", Amount: 999},
	}

	got := FilterByWeek(records, day("2024-06-05"))
	require.Len(t, got, 2)
	assert.Equal(t, "mon", got[0].ID)
	assert.Equal(t, "tue", got[1].ID)

	// Sunday of the same week still sees both records.
	assert.Len(t, FilterByWeek(records, day("2024-06-09")), 2)
}

func TestFilterByMonth(t *testing.T) {
	records := []core.Expense{
		{ID: "a", Date: "2024-06-03", Amount: 1},
		{ID: "b", Date: "2024-06-30", Amount: 1},
		{ID: "c", Date: "2024-07-01", Amount: 1},
		{ID: "bad", Date: "2024-13-99", Amount: 1},
	}
	got := FilterByMonth(records, "2024-06")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	assert.Empty(t, FilterByMonth(records, "not-a-month"))
	assert.Empty(t, FilterByMonth(nil, "2024-06"))
}

func TestGroupByCategory(t *testing.T) {
	records := []core.Expense{
		{Date: "2024-06-03", Category: "Bills", Amount: 100},
		{Date: "2024-06-04", Category: "Bills", Amount: 50},
		{Date: "2024-06-04", Category: "Shopping", SubCategory: "Shoes", Amount: 200},
		{Date: "2024-06-05", Category: "Rapido", Amount: 40},
	}
	groups := GroupByCategory(records)
	require.Len(t, groups, 3)

	// Sorted by descending total.
	assert.Equal(t, "Shopping", groups[0].Category)
	assert.Equal(t, "Bills", groups[1].Category)
	assert.Equal(t, "Rapido", groups[2].Category)

	assert.Equal(t, 150.0, groups[1].Total)
	assert.Equal(t, 2, groups[1].Count)
	assert.Len(t, groups[1].Records, 2)

	// Empty sub-categories land in the Other bucket.
	assert.Equal(t, 150.0, groups[1].SubTotals[OtherBucket])
	assert.Equal(t, 200.0, groups[0].SubTotals["Shoes"])
}

func TestGroupByCategoryTiesKeepEncounterOrder(t *testing.T) {
	records := []core.Expense{
		{Date: "2024-06-03", Category: "Bills", Amount: 100},
		{Date: "2024-06-03", Category: "Shopping", Amount: 100},
		{Date: "2024-06-03", Category: "Rapido", Amount: 100},
	}
	groups := GroupByCategory(records)
	require.Len(t, groups, 3)
	assert.Equal(t, "Bills", groups[0].Category)
	assert.Equal(t, "Shopping", groups[1].Category)
	assert.Equal(t, "Rapido", groups[2].Category)
}

func TestGroupByCategoryConservesTotal(t *testing.T) {
	records := []core.Expense{
		{Date: "2024-06-03", Category: "Bills", Amount: 12.5},
		{Date: "2024-06-04", Category: "Shopping", Amount: 7.25},
		{Date: "2024-06-05", Category: "Bills", Amount: 3},
		{Date: "2024-06-06", Category: "Investing", Amount: 1000},
	}
	var grouped float64
	for _, g := range GroupByCategory(records) {
		grouped += g.Total
	}
	assert.InDelta(t, Sum(records), grouped, 1e-9)
}

func TestGroupBySubCategory(t *testing.T) {
	records := []core.Expense{
		{Category: "Shopping", SubCategory: "Shoes", Amount: 200},
		{Category: "Shopping", Amount: 30},
		{Category: "Bills", Amount: 70},
	}
	got := GroupBySubCategory(records)
	assert.Equal(t, 200.0, got["Shoes"])
	assert.Equal(t, 100.0, got[OtherBucket])
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 0.0, Sum([]core.Expense{}))
	assert.InDelta(t, 150.0, Sum([]core.Expense{{Amount: 100}, {Amount: 50}}), 1e-9)
}

func TestPercentOfTotal(t *testing.T) {
	assert.Equal(t, 0.0, PercentOfTotal(0, 0))
	assert.Equal(t, 0.0, PercentOfTotal(50, 0))
	assert.Equal(t, 100.0, PercentOfTotal(42, 42))
	assert.InDelta(t, 25.0, PercentOfTotal(25, 100), 1e-9)
}

func TestWeekOverWeekChange(t *testing.T) {
	assert.Equal(t, 0.0, WeekOverWeekChange(500, 0))
	assert.Equal(t, 0.0, WeekOverWeekChange(0, 0))
	assert.InDelta(t, 50.0, WeekOverWeekChange(150, 100), 1e-9)
	assert.InDelta(t, -50.0, WeekOverWeekChange(50, 100), 1e-9)
}

func TestMonthWeekBuckets(t *testing.T) {
	records := []core.Expense{
		{Date: "2024-06-01", Amount: 10},  // w1
		{Date: "2024-06-07", Amount: 5},   // w1
		{Date: "2024-06-08", Amount: 20},  // w2
		{Date: "2024-06-15", Amount: 30},  // w3
		{Date: "2024-06-30", Amount: 40},  // w5
		{Date: "2024-07-01", Amount: 999}, // other month
		{Date: "bad", Amount: 999},
	}
	got := MonthWeekBuckets(records, "2024-06")
	require.Len(t, got, 4)
	assert.Equal(t, WeekBucket{Label: "2024-06-w1", Total: 15}, got[0])
	assert.Equal(t, WeekBucket{Label: "2024-06-w2", Total: 20}, got[1])
	assert.Equal(t, WeekBucket{Label: "2024-06-w3", Total: 30}, got[2])
	assert.Equal(t, WeekBucket{Label: "2024-06-w5", Total: 40}, got[3])
}

func TestEmptyInputNeverFaults(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
	assert.Empty(t, GroupBySubCategory(nil))
	assert.Empty(t, MonthWeekBuckets(nil, "2024-06"))
	assert.Empty(t, FilterByWeek(nil, day("2024-06-05")))
}
