package http

import (
	"net/http"
	"time"

	"github.com/snehilworks/finance-expense/internal/catalog"
	"github.com/snehilworks/finance-expense/internal/core"
)

type formVM struct {
	Today       string
	Categories  []catalog.Category
	Suggestions []int
}

type dailyPageVM struct {
	Form formVM
	Day  dayVM
}

func (s *Server) formVM() formVM {
	return formVM{
		Today:       core.Today(),
		Categories:  s.catalog.Categories,
		Suggestions: s.catalog.Suggestions,
	}
}

func (s *Server) handleDailyPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	view, err := s.svc.DayFor(r.Context(), core.Today())
	if err != nil {
		http.Error(w, "failed to load expenses", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "daily_page", dailyPageVM{Form: s.formVM(), Day: s.dayVM(view)})
}

func (s *Server) handleWeeklyPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	sum, err := s.weekSummary(r.Context(), weekRef(r))
	if err != nil {
		http.Error(w, "failed to load expenses", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "weekly_page", s.weekVM(sum))
}

func (s *Server) handleMonthlyPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	sum, err := s.monthSummary(r.Context(), monthRef(r))
	if err != nil {
		http.Error(w, "failed to load expenses", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "monthly_page", s.monthVM(sum))
}

// weekRef resolves the ?date= query to a week reference, defaulting to
// today. A date that does not parse also falls back to today rather than
// erroring, so a mistyped URL still shows a sensible page.
func weekRef(r *http.Request) time.Time {
	if v := r.URL.Query().Get("date"); v != "" {
		if d, err := core.ParseDay(v); err == nil {
			return d
		}
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// monthRef resolves the ?month= query ("YYYY-MM"), defaulting to the
// current month.
func monthRef(r *http.Request) string {
	if v := r.URL.Query().Get("month"); v != "" {
		if _, err := time.Parse(core.MonthLayout, v); err == nil {
			return v
		}
	}
	return time.Now().Format(core.MonthLayout)
}
