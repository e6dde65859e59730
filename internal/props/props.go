// Package props wraps the loosely-typed prop bag carried by every widget
// spec node. All accessors return a caller-supplied default on absence or
// type mismatch instead of failing, so every call site gets identical
// fallback semantics.
package props

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Bag is the open prop mapping of one widget spec node. A nil Bag is valid
// and behaves like an empty one.
type Bag map[string]any

// With returns a copy of the bag with one key replaced. Used by the
// interpreter to overlay client-local interaction values onto the spec.
func (b Bag) With(key string, value any) Bag {
	out := make(Bag, len(b)+1)
	for k, v := range b {
		out[k] = v
	}
	out[key] = value
	return out
}

// String returns the value as a string, or def when absent or not a string.
func (b Bag) String(key, def string) string {
	if v, ok := b[key].(string); ok {
		return v
	}
	return def
}

// Bool returns the value as a bool, or def when absent or not a bool.
func (b Bag) Bool(key string, def bool) bool {
	if v, ok := b[key].(bool); ok {
		return v
	}
	return def
}

// Float returns the value as a float64, accepting JSON numbers, Go integer
// types, and numeric strings. Anything else yields def.
func (b Bag) Float(key string, def float64) float64 {
	v, ok := b[key]
	if !ok {
		return def
	}
	if f, ok := toFloat(v); ok {
		return f
	}
	return def
}

// Int returns the value truncated to an int, with Float's coercion rules.
func (b Bag) Int(key string, def int) int {
	return int(b.Float(key, float64(def)))
}

// Keyword returns the value lowered when it is one of allowed, else def.
// Used for alignment and axis keywords where unrecognized input must fall
// back rather than fail.
func (b Bag) Keyword(key, def string, allowed ...string) string {
	v, ok := b[key].(string)
	if !ok {
		return def
	}
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return def
}

// Map returns a nested mapping value, or nil when absent or not a mapping.
func (b Bag) Map(key string) Bag {
	if v, ok := b[key].(map[string]any); ok {
		return Bag(v)
	}
	return nil
}

// Has reports whether the key is present at all.
func (b Bag) Has(key string) bool {
	_, ok := b[key]
	return ok
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
