package http

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/snehilworks/finance-expense/internal/core"
	"github.com/snehilworks/finance-expense/internal/service"
)

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "path", r.URL.Path)
		writeErrorFragment(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	date := sanitizeInput(r.Form.Get("date"))
	if date == "" {
		date = core.Today()
	}
	category := sanitizeInput(r.Form.Get("category"))
	subCategory := sanitizeInput(r.Form.Get("subCategory"))
	note := sanitizeInput(r.Form.Get("note"))

	amount, err := core.ParseAmount(r.Form.Get("amount"))
	if err != nil {
		writeErrorFragment(w, http.StatusUnprocessableEntity, "Please enter a valid amount")
		return
	}

	created, err := s.svc.Add(r.Context(), service.AddInput{
		Date:        date,
		Category:    category,
		SubCategory: subCategory,
		Amount:      amount,
		Note:        note,
	})
	if err != nil {
		switch err {
		case core.ErrEmptyCategory:
			writeErrorFragment(w, http.StatusUnprocessableEntity, "Please pick a category")
		case core.ErrInvalidDate:
			writeErrorFragment(w, http.StatusUnprocessableEntity, "Please enter a valid date")
		case core.ErrInvalidAmount:
			writeErrorFragment(w, http.StatusUnprocessableEntity, "Please enter a valid amount")
		default:
			slog.ErrorContext(r.Context(), "Failed to save expense",
				"error", err,
				"category", category,
				"amount", amount,
				"component", "expense_handler",
				"operation", "create")
			writeErrorFragment(w, http.StatusInternalServerError, "Error saving expense")
		}
		return
	}

	s.invalidateViews()

	msg := fmt.Sprintf("Expense added: %s — %s",
		template.HTMLEscapeString(created.Label()),
		formatRupees(created.Amount))
	w.Header().Set("HX-Trigger", fmt.Sprintf(`{
		"form:reset": {},
		"show-notification": {"type": "success", "message": "%s", "duration": 3000},
		"records:refresh": {}
	}`, template.JSEscapeString(msg)))

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		methodNotAllowed(w, "DELETE, POST")
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeErrorFragment(w, http.StatusBadRequest, "Missing expense id")
		return
	}

	if err := s.svc.Delete(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete expense",
			"error", err, "expense_id", id)
		writeErrorFragment(w, http.StatusInternalServerError, "Error deleting expense")
		return
	}

	s.invalidateViews()
	w.Header().Set("HX-Trigger", `{"records:refresh": {}}`)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleClearExpenses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	if err := s.svc.ClearAll(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Failed to clear expenses", "error", err)
		writeErrorFragment(w, http.StatusInternalServerError, "Error clearing expenses")
		return
	}

	s.invalidateViews()
	w.Header().Set("HX-Trigger", `{
		"show-notification": {"type": "success", "message": "All expenses cleared", "duration": 3000},
		"records:refresh": {}
	}`)
	w.WriteHeader(http.StatusOK)
}
