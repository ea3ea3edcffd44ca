package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/snehilworks/finance-expense/internal/core"
	"github.com/snehilworks/finance-expense/internal/service"
)

// apiMux builds the JSON surface. It mirrors the form endpoints so scripts
// and other tooling can read and write the same collection.
func (s *Server) apiMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/expenses", s.handleAPIExpenses)
	mux.HandleFunc("/api/expenses/", s.handleAPIExpenseByID)
	mux.HandleFunc("/api/summary/week", s.handleAPIWeekSummary)
	mux.HandleFunc("/api/summary/month", s.handleAPIMonthSummary)
	return mux
}

type apiError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

func (s *Server) handleAPIExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := s.svc.ListAll(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to load expenses"})
			return
		}
		if items == nil {
			items = []core.Expense{}
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		var in struct {
			Date        string  `json:"date"`
			Category    string  `json:"category"`
			SubCategory string  `json:"subCategory"`
			Amount      float64 `json:"amount"`
			Note        string  `json:"note"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body"})
			return
		}
		created, err := s.svc.Add(r.Context(), service.AddInput{
			Date:        sanitizeInput(in.Date),
			Category:    sanitizeInput(in.Category),
			SubCategory: sanitizeInput(in.SubCategory),
			Amount:      in.Amount,
			Note:        sanitizeInput(in.Note),
		})
		if err != nil {
			if errors.Is(err, core.ErrInvalidAmount) ||
				errors.Is(err, core.ErrEmptyCategory) ||
				errors.Is(err, core.ErrInvalidDate) {
				writeJSON(w, http.StatusUnprocessableEntity, apiError{Error: err.Error()})
				return
			}
			writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to save expense"})
			return
		}
		s.invalidateViews()
		writeJSON(w, http.StatusCreated, created)

	default:
		w.Header().Set("Allow", "GET, POST")
		writeJSON(w, http.StatusMethodNotAllowed, apiError{Error: "method not allowed"})
	}
}

func (s *Server) handleAPIExpenseByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		writeJSON(w, http.StatusMethodNotAllowed, apiError{Error: "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/expenses/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "missing expense id"})
		return
	}

	if err := s.svc.Delete(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to delete expense"})
		return
	}
	s.invalidateViews()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPIWeekSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeJSON(w, http.StatusMethodNotAllowed, apiError{Error: "method not allowed"})
		return
	}
	sum, err := s.weekSummary(r.Context(), weekRef(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to load expenses"})
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleAPIMonthSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeJSON(w, http.StatusMethodNotAllowed, apiError{Error: "method not allowed"})
		return
	}
	sum, err := s.monthSummary(r.Context(), monthRef(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "failed to load expenses"})
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
