// Package service orchestrates the Store and the aggregation functions on
// behalf of the views. All mutations follow the same shape: read the full
// collection, compute the new one, swap it in with ReplaceAll.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/snehilworks/finance-expense/internal/aggregate"
	"github.com/snehilworks/finance-expense/internal/core"
	"github.com/snehilworks/finance-expense/internal/store"
)

type ExpenseService struct {
	store store.Store
}

func New(st store.Store) *ExpenseService {
	return &ExpenseService{store: st}
}

// AddInput is the validated-on-entry form payload for a new record.
type AddInput struct {
	Date        string
	Category    string
	SubCategory string
	Amount      float64
	Note        string
}

// DayView is the daily records panel: the given day's records in
// most-recent-first stored order, plus their total.
type DayView struct {
	Day     string
	Records []core.Expense
	Total   float64
}

// Add validates the input, mints a fresh ID and prepends the record to the
// collection. Nothing is written when validation fails.
func (s *ExpenseService) Add(ctx context.Context, in AddInput) (core.Expense, error) {
	e := core.Expense{
		Date:        in.Date,
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Amount:      in.Amount,
		Note:        in.Note,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	e.ID = uuid.NewString()

	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return core.Expense{}, fmt.Errorf("load expenses: %w", err)
	}
	if err := s.store.ReplaceAll(ctx, append([]core.Expense{e}, items...)); err != nil {
		return core.Expense{}, fmt.Errorf("save expenses: %w", err)
	}

	slog.InfoContext(ctx, "Expense created",
		"expense_id", e.ID,
		"day", e.Date,
		"category", e.Category,
		"amount", e.Amount)
	return e, nil
}

// Delete removes the record with the given ID. An ID not present in the
// collection is a no-op, not an error; nothing is rewritten in that case.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}

	kept := items[:0:0]
	for _, e := range items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(items) {
		slog.DebugContext(ctx, "Delete of unknown expense ignored", "expense_id", id)
		return nil
	}

	if err := s.store.ReplaceAll(ctx, kept); err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}
	slog.InfoContext(ctx, "Expense deleted", "expense_id", id)
	return nil
}

// ClearAll destroys the whole collection.
func (s *ExpenseService) ClearAll(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}
	slog.InfoContext(ctx, "All expenses cleared")
	return nil
}

// ListAll returns the full persisted collection in stored order.
func (s *ExpenseService) ListAll(ctx context.Context) ([]core.Expense, error) {
	return s.store.LoadAll(ctx)
}

// DayFor returns the records of one calendar day. Stored order is kept,
// which is most-recent-first because Add prepends.
func (s *ExpenseService) DayFor(ctx context.Context, dayStr string) (DayView, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return DayView{}, fmt.Errorf("load expenses: %w", err)
	}
	records := aggregate.FilterByDay(items, dayStr)
	return DayView{
		Day:     dayStr,
		Records: records,
		Total:   aggregate.Sum(records),
	}, nil
}

// WeekFor returns the weekly summary for the week containing ref.
func (s *ExpenseService) WeekFor(ctx context.Context, ref time.Time) (aggregate.WeekSummary, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return aggregate.WeekSummary{}, fmt.Errorf("load expenses: %w", err)
	}
	return aggregate.SummarizeWeek(items, ref), nil
}

// MonthFor returns the monthly chart summary for yearMonth ("YYYY-MM").
func (s *ExpenseService) MonthFor(ctx context.Context, yearMonth string) (aggregate.MonthSummary, error) {
	items, err := s.store.LoadAll(ctx)
	if err != nil {
		return aggregate.MonthSummary{}, fmt.Errorf("load expenses: %w", err)
	}
	return aggregate.SummarizeMonth(items, yearMonth), nil
}
