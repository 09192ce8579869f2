package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParsePrice turns form input into a price. Anything that is not a finite,
// non-negative number becomes 0.
func ParsePrice(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return clampPrice(f)
}

// CoercePrice applies the ParsePrice rule to an arbitrary decoded value.
func CoercePrice(v any) float64 {
	switch x := v.(type) {
	case float64:
		return clampPrice(x)
	case float32:
		return clampPrice(float64(x))
	case int:
		return clampPrice(float64(x))
	case int64:
		return clampPrice(float64(x))
	case json.Number:
		return ParsePrice(x.String())
	case string:
		return ParsePrice(x)
	default:
		return 0
	}
}

func clampPrice(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
