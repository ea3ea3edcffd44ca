package http

import (
	"context"
	"net/http"
	"time"

	"github.com/snehilworks/finance-expense/internal/aggregate"
	"github.com/snehilworks/finance-expense/internal/core"
)

// The /ui/* endpoints return htmx partials: the same panels the full pages
// embed, re-rendered for a new window selection or after a mutation.

func (s *Server) handleDayPanel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	day := core.Today()
	if v := r.URL.Query().Get("date"); v != "" {
		if _, err := core.ParseDay(v); err == nil {
			day = v
		}
	}

	view, err := s.svc.DayFor(r.Context(), day)
	if err != nil {
		writeErrorFragment(w, http.StatusInternalServerError, "Failed to load expenses")
		return
	}
	s.render(w, r, "day_panel", s.dayVM(view))
}

func (s *Server) handleWeekPanel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	sum, err := s.weekSummary(r.Context(), weekRef(r))
	if err != nil {
		writeErrorFragment(w, http.StatusInternalServerError, "Failed to load expenses")
		return
	}
	s.render(w, r, "week_panel", s.weekVM(sum))
}

func (s *Server) handleMonthPanel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	sum, err := s.monthSummary(r.Context(), monthRef(r))
	if err != nil {
		writeErrorFragment(w, http.StatusInternalServerError, "Failed to load expenses")
		return
	}
	s.render(w, r, "month_panel", s.monthVM(sum))
}

// weekSummary serves the weekly aggregation through the view cache, keyed
// by the Monday opening the window.
func (s *Server) weekSummary(ctx context.Context, ref time.Time) (aggregate.WeekSummary, error) {
	key := core.FormatDay(aggregate.WeekStart(ref))
	if sum, ok := s.weekCache.Get(key); ok {
		return sum, nil
	}
	sum, err := s.svc.WeekFor(ctx, ref)
	if err != nil {
		return aggregate.WeekSummary{}, err
	}
	s.weekCache.Set(key, sum)
	return sum, nil
}

func (s *Server) monthSummary(ctx context.Context, yearMonth string) (aggregate.MonthSummary, error) {
	if sum, ok := s.monthCache.Get(yearMonth); ok {
		return sum, nil
	}
	sum, err := s.svc.MonthFor(ctx, yearMonth)
	if err != nil {
		return aggregate.MonthSummary{}, err
	}
	s.monthCache.Set(yearMonth, sum)
	return sum, nil
}
