package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snehilworks/finance-expense/internal/core"
)

func TestSummarizeWeek(t *testing.T) {
	records := []core.Expense{
		// Week containing 2024-06-05: Mon 3rd .. Sun 9th.
		{ID: "b", Date: "2024-06-04", Category: "Bills", Amount: 50},
		{ID: "a", Date: "2024-06-03", Category: "Bills", Amount: 100},
		// Previous week.
		{ID: "p", Date: "2024-05-29", Category: "Bills", Amount: 200},
	}

	s := SummarizeWeek(records, day("2024-06-05"))

	assert.Equal(t, "2024-06-03", core.FormatDay(s.Start))
	assert.Equal(t, "2024-06-09", core.FormatDay(s.End))

	// Listing is ascending by date.
	require.Len(t, s.Records, 2)
	assert.Equal(t, "a", s.Records[0].ID)
	assert.Equal(t, "b", s.Records[1].ID)

	assert.Equal(t, 150.0, s.Total)
	assert.Equal(t, 200.0, s.PreviousTotal)
	assert.InDelta(t, -25.0, s.Change, 1e-9)

	require.Len(t, s.Groups, 1)
	assert.Equal(t, "Bills", s.Groups[0].Category)
	assert.Equal(t, 150.0, s.Groups[0].Total)
	assert.Equal(t, 2, s.Groups[0].Count)
}

func TestSummarizeWeekNoPriorData(t *testing.T) {
	records := []core.Expense{
		{ID: "a", Date: "2024-06-03", Category: "Bills", Amount: 100},
	}
	s := SummarizeWeek(records, day("2024-06-05"))
	assert.Equal(t, 0.0, s.PreviousTotal)
	assert.Equal(t, 0.0, s.Change)
}

func TestSummarizeWeekEmpty(t *testing.T) {
	s := SummarizeWeek(nil, day("2024-06-05"))
	assert.Empty(t, s.Records)
	assert.Empty(t, s.Groups)
	assert.Equal(t, 0.0, s.Total)
	assert.Equal(t, 0.0, s.Change)
}

func TestSummarizeMonth(t *testing.T) {
	records := []core.Expense{
		{Date: "2024-06-02", Category: "Shopping", Amount: 300},
		{Date: "2024-06-10", Category: "Bills", Amount: 100},
		{Date: "2024-06-11", Category: "Bills", Amount: 0.5},
		{Date: "2024-07-01", Category: "Bills", Amount: 999},
	}

	s := SummarizeMonth(records, "2024-06")
	assert.Equal(t, 400.5, s.Total)

	require.Len(t, s.Shares, 2)
	assert.Equal(t, "Shopping", s.Shares[0].Category)
	assert.InDelta(t, 300.0/400.5*100, s.Shares[0].Percent, 1e-9)

	var pct float64
	for _, sh := range s.Shares {
		pct += sh.Percent
	}
	assert.InDelta(t, 100.0, pct, 1e-9)

	require.Len(t, s.Weeks, 2)
	assert.Equal(t, "2024-06-w1", s.Weeks[0].Label)
	assert.Equal(t, "2024-06-w2", s.Weeks[1].Label)
}

func TestSummarizeMonthEmpty(t *testing.T) {
	s := SummarizeMonth(nil, "2024-06")
	assert.Equal(t, 0.0, s.Total)
	assert.Empty(t, s.Shares)
	assert.Empty(t, s.Weeks)
}
