// Package aggregate turns a flat list of expense records into the grouped
// totals and statistics the views render. Every function is a pure function
// over an in-memory slice: no I/O, no mutation of its input. Records whose
// date does not parse are excluded from date-bucketed output instead of
// failing the aggregation.
package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/snehilworks/finance-expense/internal/core"
)

// OtherBucket is the sub-category label records without a sub-category are
// grouped under.
const OtherBucket = "Other"

// CategoryGroup is the per-category slice of a grouped window: summed
// amount, record count, the matching records, and per-sub-category totals.
type CategoryGroup struct {
	Category  string             `json:"category"`
	Total     float64            `json:"total"`
	Count     int                `json:"count"`
	Records   []core.Expense     `json:"records"`
	SubTotals map[string]float64 `json:"subTotals"`
}

// WeekBucket is one intra-month week of the monthly bar chart, keyed
// "YYYY-MM-wN" with N = ceil(day-of-month / 7).
type WeekBucket struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

// FilterByDay returns the records whose date equals day exactly.
func FilterByDay(records []core.Expense, day string) []core.Expense {
	var out []core.Expense
	for _, e := range records {
		if e.Date == day {
			out = append(out, e)
		}
	}
	return out
}

// FilterByMonth returns the records whose date falls within the given
// calendar year-month ("YYYY-MM").
func FilterByMonth(records []core.Expense, yearMonth string) []core.Expense {
	m, err := time.Parse(core.MonthLayout, yearMonth)
	if err != nil {
		return nil
	}
	var out []core.Expense
	for _, e := range records {
		d, ok := e.Day()
		if !ok {
			continue
		}
		if d.Year() == m.Year() && d.Month() == m.Month() {
			out = append(out, e)
		}
	}
	return out
}

// WeekStart returns the Monday opening the week containing day. The weekday
// index counts Sunday as 0; a Sunday belongs to the week that started six
// days earlier, every other day steps back (weekday-1) days. Shifting this
// boundary by one silently moves every weekly total, so it is fixed here
// and nowhere else.
func WeekStart(day time.Time) time.Time {
	day = day.Truncate(24 * time.Hour)
	wd := int(day.Weekday())
	if wd == 0 {
		return day.AddDate(0, 0, -6)
	}
	return day.AddDate(0, 0, -(wd - 1))
}

// FilterByWeek returns the records within the Monday..Sunday week containing
// ref, a contiguous 7-day window.
func FilterByWeek(records []core.Expense, ref time.Time) []core.Expense {
	start := WeekStart(ref)
	end := start.AddDate(0, 0, 6)
	var out []core.Expense
	for _, e := range records {
		d, ok := e.Day()
		if !ok {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			out = append(out, e)
		}
	}
	return out
}

// GroupByCategory sums amount per category, ordered by descending total.
// Ties keep the original encounter order. Sub-category totals within each
// group bucket empty sub-categories under OtherBucket.
func GroupByCategory(records []core.Expense) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, e := range records {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, CategoryGroup{
				Category:  e.Category,
				SubTotals: make(map[string]float64),
			})
		}
		g := &groups[i]
		g.Total += e.Amount
		g.Count++
		g.Records = append(g.Records, e)
		sub := e.SubCategory
		if sub == "" {
			sub = OtherBucket
		}
		g.SubTotals[sub] += e.Amount
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Total > groups[b].Total
	})
	return groups
}

// GroupBySubCategory sums amount per sub-category across all records,
// bucketing records without one under OtherBucket.
func GroupBySubCategory(records []core.Expense) map[string]float64 {
	out := make(map[string]float64)
	for _, e := range records {
		sub := e.SubCategory
		if sub == "" {
			sub = OtherBucket
		}
		out[sub] += e.Amount
	}
	return out
}

// Sum totals the amounts of records; zero for an empty sequence.
func Sum(records []core.Expense) float64 {
	var total float64
	for _, e := range records {
		total += e.Amount
	}
	return total
}

// PercentOfTotal returns part's share of total as a percentage. A zero
// total yields 0, never a division fault.
func PercentOfTotal(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// WeekOverWeekChange returns the percentage change from previous to
// current. A previous total of zero yields 0: with no prior data there is
// no meaningful change, and NaN/Inf must never reach the display layer.
func WeekOverWeekChange(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// MonthWeekBuckets decomposes the given calendar month into intra-month
// week buckets: each record lands in bucket ceil(day-of-month / 7), labeled
// "YYYY-MM-wN". This is deliberately not the Monday-start week of
// FilterByWeek; the two conventions serve different views and are never
// unified.
func MonthWeekBuckets(records []core.Expense, yearMonth string) []WeekBucket {
	var totals [5]float64
	var seen [5]bool
	for _, e := range FilterByMonth(records, yearMonth) {
		d, ok := e.Day()
		if !ok {
			continue
		}
		idx := (d.Day() + 6) / 7 // ceil(day/7), 1..5
		totals[idx-1] += e.Amount
		seen[idx-1] = true
	}
	var out []WeekBucket
	for i := range totals {
		if !seen[i] {
			continue
		}
		out = append(out, WeekBucket{
			Label: fmt.Sprintf("%s-w%d", yearMonth, i+1),
			Total: totals[i],
		})
	}
	return out
}
