package repositories

import (
	"encoding/json"
	"fmt"
)

// jsonbParam encodes a slice for a JSONB column. A nil slice is stored as SQL NULL.
func jsonbParam[T any](items []T) (interface{}, error) {
	if items == nil {
		return nil, nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode jsonb value: %w", err)
	}
	return string(b), nil
}
