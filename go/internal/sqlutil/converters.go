package sqlutil

import (
	"encoding/json"

	"github.com/sqlc-dev/pqtype"
)

// Helpers for converting between Go types and nullable SQL column types.

// ToNullJSON marshals v into a nullable JSONB column value. A nil v maps
// to SQL NULL.
func ToNullJSON(v interface{}) (pqtype.NullRawMessage, error) {
	if v == nil {
		return pqtype.NullRawMessage{Valid: false}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return pqtype.NullRawMessage{}, err
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}

// FromNullJSON unmarshals a nullable JSONB column into dst, leaving dst
// untouched when the column is NULL.
func FromNullJSON(raw pqtype.NullRawMessage, dst interface{}) error {
	if !raw.Valid {
		return nil
	}
	return json.Unmarshal(raw.RawMessage, dst)
}
