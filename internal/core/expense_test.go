package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain integer", input: "100", want: 100},
		{name: "dot separator", input: "12.34", want: 12.34},
		{name: "comma separator", input: "12,34", want: 12.34},
		{name: "rounds third decimal up", input: "12.346", want: 12.35},
		{name: "rounds third decimal down", input: "12.344", want: 12.34},
		{name: "whitespace trimmed", input: "  50 ", want: 50},
		{name: "empty", input: "", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "explicit plus sign", input: "+5", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "nan literal", input: "NaN", wantErr: true},
		{name: "infinity literal", input: "Inf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestExpenseValidate(t *testing.T) {
	valid := Expense{Date: "2024-06-03", Category: "Bills", Amount: 100}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(e *Expense)
		wantErr error
	}{
		{"bad date", func(e *Expense) { e.Date = "not-a-date" }, ErrInvalidDate},
		{"empty date", func(e *Expense) { e.Date = "" }, ErrInvalidDate},
		{"empty category", func(e *Expense) { e.Category = "  " }, ErrEmptyCategory},
		{"zero amount", func(e *Expense) { e.Amount = 0 }, ErrInvalidAmount},
		{"negative amount", func(e *Expense) { e.Amount = -1 }, ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			assert.ErrorIs(t, e.Validate(), tt.wantErr)
		})
	}
}

func TestExpenseLabel(t *testing.T) {
	e := Expense{Category: "Bills", SubCategory: "Electricity"}
	assert.Equal(t, "Electricity", e.Label())

	e.SubCategory = ""
	assert.Equal(t, "Bills", e.Label())
}

func TestExpenseDay(t *testing.T) {
	e := Expense{Date: "2024-06-03"}
	d, ok := e.Day()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), d)

	e.Date = "garbage"
	_, ok = e.Day()
	assert.False(t, ok)
}
