package paylane

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Response is a decoded gateway reply. Values keep the shapes encoding/json
// gives generic maps: float64 for numbers, string, bool, nested
// map[string]any for objects, []any for arrays.
type Response map[string]any

// Success reports application-level success: the body contained
// "success": true as a JSON boolean. Anything else, including a missing
// key, a string "true" or an HTTP 2xx with "success": false, is failure.
func (r Response) Success() bool {
	v, ok := r["success"].(bool)
	return ok && v
}

// GetString returns the string value under key.
func (r Response) GetString(key string) (string, bool) {
	v, ok := r[key].(string)
	return v, ok
}

// GetBool returns the boolean value under key.
func (r Response) GetBool(key string) (bool, bool) {
	v, ok := r[key].(bool)
	return v, ok
}

// GetInt64 returns the numeric value under key as an int64.
func (r Response) GetInt64(key string) (int64, bool) {
	v, ok := r[key].(float64)
	if !ok {
		return 0, false
	}
	return int64(v), true
}

// GetMap returns the nested object under key.
func (r Response) GetMap(key string) (Response, bool) {
	v, ok := r[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Response(v), true
}

// GetDecimal reads a money field. The gateway sends amounts both as JSON
// numbers and as strings; both forms parse.
func (r Response) GetDecimal(key string) (decimal.Decimal, bool) {
	switch v := r[key].(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// IDString returns the first of id_sale, id_authorization or id present in
// the response, rendered as a string. Numeric ids come back from the
// gateway as JSON numbers.
func (r Response) IDString() (string, bool) {
	for _, key := range []string{"id_sale", "id_authorization", "id"} {
		switch v := r[key].(type) {
		case string:
			return v, true
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), true
		}
	}
	return "", false
}
