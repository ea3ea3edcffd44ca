// Package store defines the persistence contract for the expense
// collection: one slot holding one serialized JSON array of records,
// read and written whole. Fine-grained add/remove does not exist on
// purpose; every mutation is a full-collection swap, which keeps the
// contract trivial and makes each write atomic for the single writer
// this application has.
package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/snehilworks/finance-expense/internal/core"
)

// SlotKey names the single slot the collection lives under. The value is
// carried over from the storage key of the first version; changing it
// orphans existing data.
const SlotKey = "expense_tracker_v1"

// Store is the narrow persistence contract every backend implements.
//
// LoadAll returns every persisted record. An absent slot and a corrupt,
// unparseable payload both yield an empty collection and a nil error:
// corruption is logged and swallowed because degrading to empty keeps the
// tool usable, while surfacing it would block the UI on state the user has
// no way to repair. The returned error is reserved for failures of the
// backing medium itself.
//
// ReplaceAll atomically overwrites the collection with exactly the given
// records. Clear drops the slot; a subsequent LoadAll returns empty.
type Store interface {
	LoadAll(ctx context.Context) ([]core.Expense, error)
	ReplaceAll(ctx context.Context, items []core.Expense) error
	Clear(ctx context.Context) error
}

// Encode serializes the collection to its slot payload. A nil slice
// encodes as an empty JSON array, not null.
func Encode(items []core.Expense) ([]byte, error) {
	if items == nil {
		items = []core.Expense{}
	}
	return json.Marshal(items)
}

// Decode parses a slot payload. An empty payload is an empty collection; a
// payload that does not parse is logged and discarded. Records with missing
// optional fields are tolerated, there is no schema version to check.
func Decode(payload []byte) []core.Expense {
	if len(payload) == 0 {
		return nil
	}
	var items []core.Expense
	if err := json.Unmarshal(payload, &items); err != nil {
		slog.Warn("Discarding unparseable expense payload",
			"slot", SlotKey,
			"payload_bytes", len(payload),
			"error", err)
		return nil
	}
	return items
}
