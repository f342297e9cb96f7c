package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Attributes represents user-defined keys attached to a model object.
//
// Numbers are kept as json.Number so that values such as areas or
// multipliers typed by the user are not rounded through float64.
type Attributes map[string]any

// DecodeAttributes parses a JSON object into Attributes preserving numeric precision.
func DecodeAttributes(data []byte) (Attributes, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var result map[string]any
	if err := decoder.Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode Attributes: %w", err)
	}
	return result, nil
}

// --- Type-safe getters ---

// Value returns the attribute stored under key for display. Numbers come
// back as decimal.Decimal so user-entered quantities keep their digits.
func (a Attributes) Value(key string) (any, bool) {
	v, ok := a[key]
	if !ok {
		return nil, false
	}
	switch v.(type) {
	case json.Number, float64:
		return a.GetDecimal(key), true
	}
	return v, true
}

// GetDecimal returns decimal.Decimal value with full precision.
// Preferred for user-entered quantities that must not lose precision.
func (a Attributes) GetDecimal(key string) decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	switch v := a[key].(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(v)
	}
	return decimal.Zero
}

// Set adds or updates a value. Returns self for chaining.
func (a *Attributes) Set(key string, value any) Attributes {
	if *a == nil {
		*a = make(Attributes)
	}
	(*a)[key] = value
	return *a
}
