package http

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/snehilworks/finance-expense/internal/aggregate"
	"github.com/snehilworks/finance-expense/internal/core"
	"github.com/snehilworks/finance-expense/internal/service"
)

// View models: everything is pre-formatted server-side so templates stay
// free of logic.

type recordVM struct {
	ID       string
	Date     string
	Label    string
	Category string
	Note     string
	Icon     string
	Color    string
	Amount   string
}

type dayVM struct {
	Day     string
	Today   string
	Records []recordVM
	Total   string
	Count   int
}

type subTotalVM struct {
	Name   string
	Amount string
}

type weekGroupVM struct {
	Category string
	Icon     string
	Color    string
	Total    string
	Percent  string
	Count    int
	Subs     []subTotalVM
	Records  []recordVM
}

type weekVM struct {
	RefDate    string
	RangeLabel string
	PrevDate   string
	NextDate   string
	Today      string
	Total      string
	HasPrev    bool
	PrevTotal  string
	Change     string
	ChangeUp   bool
	Groups     []weekGroupVM
	Empty      bool
}

type pieSliceVM struct {
	Category string
	Icon     string
	Color    string
	Total    string
	Percent  string
}

type barVM struct {
	Label     string
	Total     string
	HeightPct int
}

type monthVM struct {
	Month    string
	Total    string
	Slices   []pieSliceVM
	Gradient template.CSS
	Bars     []barVM
	Empty    bool
}

func (s *Server) recordVM(e core.Expense) recordVM {
	cat := s.catalog.Lookup(e.Category)
	return recordVM{
		ID:       e.ID,
		Date:     e.Date,
		Label:    e.Label(),
		Category: e.Category,
		Note:     e.Note,
		Icon:     cat.Icon,
		Color:    cat.Color,
		Amount:   formatRupees(e.Amount),
	}
}

func (s *Server) dayVM(view service.DayView) dayVM {
	records := make([]recordVM, 0, len(view.Records))
	for _, e := range view.Records {
		records = append(records, s.recordVM(e))
	}
	return dayVM{
		Day:     view.Day,
		Today:   core.Today(),
		Records: records,
		Total:   formatRupees(view.Total),
		Count:   len(records),
	}
}

func (s *Server) weekVM(sum aggregate.WeekSummary) weekVM {
	groups := make([]weekGroupVM, 0, len(sum.Groups))
	for _, g := range sum.Groups {
		cat := s.catalog.Lookup(g.Category)

		subs := make([]subTotalVM, 0, len(g.SubTotals))
		for name, amount := range g.SubTotals {
			subs = append(subs, subTotalVM{Name: name, Amount: formatRupees(amount)})
		}
		sort.Slice(subs, func(a, b int) bool { return subs[a].Name < subs[b].Name })

		records := make([]recordVM, 0, len(g.Records))
		for _, e := range g.Records {
			records = append(records, s.recordVM(e))
		}

		groups = append(groups, weekGroupVM{
			Category: g.Category,
			Icon:     cat.Icon,
			Color:    cat.Color,
			Total:    formatRupees(g.Total),
			Percent:  formatPercent(aggregate.PercentOfTotal(g.Total, sum.Total)),
			Count:    g.Count,
			Subs:     subs,
			Records:  records,
		})
	}

	change := fmt.Sprintf("%+.1f%%", sum.Change)
	return weekVM{
		RefDate:    core.FormatDay(sum.Start),
		RangeLabel: sum.Start.Format("2 Jan") + " – " + sum.End.Format("2 Jan 2006"),
		PrevDate:   core.FormatDay(sum.Start.AddDate(0, 0, -7)),
		NextDate:   core.FormatDay(sum.Start.AddDate(0, 0, 7)),
		Today:      core.Today(),
		Total:      formatRupees(sum.Total),
		HasPrev:    sum.PreviousTotal > 0,
		PrevTotal:  formatRupees(sum.PreviousTotal),
		Change:     change,
		ChangeUp:   sum.Change >= 0,
		Groups:     groups,
		Empty:      len(sum.Records) == 0,
	}
}

func (s *Server) monthVM(sum aggregate.MonthSummary) monthVM {
	slices := make([]pieSliceVM, 0, len(sum.Shares))
	var stops []string
	cursor := 0.0
	for _, sh := range sum.Shares {
		cat := s.catalog.Lookup(sh.Category)
		slices = append(slices, pieSliceVM{
			Category: sh.Category,
			Icon:     cat.Icon,
			Color:    cat.Color,
			Total:    formatRupees(sh.Total),
			Percent:  formatPercent(sh.Percent),
		})
		stops = append(stops, fmt.Sprintf("%s %.2f%% %.2f%%", cat.Color, cursor, cursor+sh.Percent))
		cursor += sh.Percent
	}

	var maxBucket float64
	for _, b := range sum.Weeks {
		if b.Total > maxBucket {
			maxBucket = b.Total
		}
	}
	bars := make([]barVM, 0, len(sum.Weeks))
	for _, b := range sum.Weeks {
		height := 0
		if maxBucket > 0 {
			height = int(b.Total / maxBucket * 100)
		}
		bars = append(bars, barVM{
			Label:     b.Label,
			Total:     formatRupees(b.Total),
			HeightPct: height,
		})
	}

	return monthVM{
		Month:    sum.YearMonth,
		Total:    formatRupees(sum.Total),
		Slices:   slices,
		Gradient: template.CSS("conic-gradient(" + strings.Join(stops, ", ") + ")"),
		Bars:     bars,
		Empty:    sum.Total == 0,
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded")
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed", "template", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
