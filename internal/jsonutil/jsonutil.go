// Package jsonutil provides lenient accessors for loosely typed JSON objects,
// where a field may be missing, mistyped, or encoded as a string.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DecodeObject unmarshals data as a JSON object. Arrays, scalars and null are
// rejected so callers can always index the result. Numbers are kept as
// json.Number, so one unrepresentable value does not fail the whole object.
func DecodeObject(data []byte, context string) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]interface{}
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%s: %w", context, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%s: not a JSON object", context)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%s: unexpected data after object", context)
	}
	return m, nil
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	return GetStringOr(m, key, "")
}

// GetStringOr returns m[key] if it is a non-empty string, otherwise defaultValue.
func GetStringOr(m map[string]interface{}, key string, defaultValue string) string {
	if val, ok := m[key].(string); ok && strings.TrimSpace(val) != "" {
		return val
	}
	return defaultValue
}

// GetInt extracts an integer from m[key]. Whole JSON numbers (float64 or
// json.Number) and strings
// holding a base-10 integer are accepted; anything else reports false.
func GetInt(m map[string]interface{}, key string) (int, bool) {
	switch val := m[key].(type) {
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return wholeInt(f)
	case float64:
		return wholeInt(val)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func wholeInt(f float64) (int, bool) {
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
