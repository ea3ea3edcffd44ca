package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snehilworks/finance-expense/internal/core"
)

func TestEncodeDecode(t *testing.T) {
	items := []core.Expense{
		{ID: "1", Date: "2024-06-03", Category: "Bills", Amount: 100},
		{ID: "2", Date: "2024-06-04", Category: "Shopping", SubCategory: "Shoes", Amount: 50, Note: "sale"},
	}
	payload, err := Encode(items)
	require.NoError(t, err)

	got := Decode(payload)
	assert.Equal(t, items, got)
}

func TestEncodeNilIsEmptyArray(t *testing.T) {
	payload, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(payload))
}

func TestDecodeEmptyPayload(t *testing.T) {
	assert.Nil(t, Decode(nil))
	assert.Nil(t, Decode([]byte{}))
}

func TestDecodeCorruptPayload(t *testing.T) {
	// Corruption degrades to an empty collection, never an error.
	assert.Nil(t, Decode([]byte("{not json")))
	assert.Nil(t, Decode([]byte(`{"id":"x"}`))) // object, not array
}

func TestDecodeToleratesMissingOptionalFields(t *testing.T) {
	payload := []byte(`[{"id":"1","date":"2024-06-03","category":"Bills","amount":100}]`)
	got := Decode(payload)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].SubCategory)
	assert.Empty(t, got[0].Note)
	assert.Equal(t, 100.0, got[0].Amount)
}
