package core

import (
	"errors"
	"math"
	"strings"
	"time"
)

// Expense is one discrete spending transaction. The field set and JSON tags
// are the persisted wire shape: a stored collection is exactly a JSON array
// of these objects, optional fields omitted when empty.
type Expense struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"` // calendar day, YYYY-MM-DD
	Category    string  `json:"category"`
	SubCategory string  `json:"subCategory,omitempty"`
	Amount      float64 `json:"amount"`
	Note        string  `json:"note,omitempty"`
}

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidDate   = errors.New("invalid date")
)

// DayLayout is the calendar-day format used everywhere: storage, forms, URLs.
const DayLayout = "2006-01-02"

// MonthLayout identifies a calendar year-month.
const MonthLayout = "2006-01"

// Validate checks the fields required for a record to be accepted: a
// parseable date, a category, and a positive finite amount. ID is not
// checked here because it is minted after validation.
func (e Expense) Validate() error {
	if _, err := ParseDay(e.Date); err != nil {
		return ErrInvalidDate
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if e.Amount <= 0 || math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return ErrInvalidAmount
	}
	return nil
}

// Label returns the display label for a record: the sub-category when set,
// otherwise the category.
func (e Expense) Label() string {
	if e.SubCategory != "" {
		return e.SubCategory
	}
	return e.Category
}

// Day returns the record's date as a time.Time. ok is false when the stored
// date does not parse; such records are excluded from date-bucketed views
// rather than failing aggregation.
func (e Expense) Day() (time.Time, bool) {
	d, err := ParseDay(e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ParseDay parses a YYYY-MM-DD calendar day in UTC.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, strings.TrimSpace(s))
}

// FormatDay formats t as a YYYY-MM-DD calendar day.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// Today returns the current calendar day.
func Today() string {
	return FormatDay(time.Now())
}
