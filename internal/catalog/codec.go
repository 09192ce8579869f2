package catalog

import (
	"encoding/json"
	"fmt"
)

// Encode serializes the full catalog. There is no version field.
func Encode(c Catalog) ([]byte, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return b, nil
}

// Decode parses a persisted catalog. A JSON null yields a nil Catalog.
func Decode(b []byte) (Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return c, nil
}
