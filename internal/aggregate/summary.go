package aggregate

import (
	"sort"
	"time"

	"github.com/snehilworks/finance-expense/internal/core"
)

// WeekSummary is everything the weekly view renders for one Monday..Sunday
// window: the listing (ascending by date), category breakdown, and the
// week-over-week delta against the preceding window.
type WeekSummary struct {
	Start         time.Time       `json:"start"`
	End           time.Time       `json:"end"`
	Records       []core.Expense  `json:"records"`
	Groups        []CategoryGroup `json:"groups"`
	Total         float64         `json:"total"`
	PreviousTotal float64         `json:"previousTotal"`
	Change        float64         `json:"change"` // percent vs previous week, 0 when no prior data
}

// CategoryShare is a per-category slice of a month: total plus percentage
// of the month total.
type CategoryShare struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Percent  float64 `json:"percent"`
}

// MonthSummary is everything the monthly chart view renders for one
// calendar month: category shares for the pie and intra-month week buckets
// for the bars.
type MonthSummary struct {
	YearMonth string          `json:"yearMonth"`
	Shares    []CategoryShare `json:"shares"`
	Weeks     []WeekBucket    `json:"weeks"`
	Total     float64         `json:"total"`
}

// SummarizeWeek computes the weekly view for the week containing ref.
func SummarizeWeek(records []core.Expense, ref time.Time) WeekSummary {
	start := WeekStart(ref)
	current := FilterByWeek(records, ref)
	sort.SliceStable(current, func(a, b int) bool {
		return current[a].Date < current[b].Date
	})
	previous := FilterByWeek(records, start.AddDate(0, 0, -7))

	total := Sum(current)
	prevTotal := Sum(previous)
	return WeekSummary{
		Start:         start,
		End:           start.AddDate(0, 0, 6),
		Records:       current,
		Groups:        GroupByCategory(current),
		Total:         total,
		PreviousTotal: prevTotal,
		Change:        WeekOverWeekChange(total, prevTotal),
	}
}

// SummarizeMonth computes the monthly chart view for yearMonth ("YYYY-MM").
func SummarizeMonth(records []core.Expense, yearMonth string) MonthSummary {
	monthly := FilterByMonth(records, yearMonth)
	total := Sum(monthly)

	groups := GroupByCategory(monthly)
	shares := make([]CategoryShare, 0, len(groups))
	for _, g := range groups {
		shares = append(shares, CategoryShare{
			Category: g.Category,
			Total:    g.Total,
			Percent:  PercentOfTotal(g.Total, total),
		})
	}

	return MonthSummary{
		YearMonth: yearMonth,
		Shares:    shares,
		Weeks:     MonthWeekBuckets(records, yearMonth),
		Total:     total,
	}
}
