package normalize

import "strings"

// Runtime type guards for the loosely typed raw fields. The upstream rows come
// out of jsonb, so numbers arrive as float64 and arrays as []any, but the
// guards also accept the native Go types so already-normalized values can be
// fed back through unchanged.

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// stringList reports ok=false when v is not an array at all; when it is, the
// result keeps only the entries that are non-empty strings after trimming,
// preserving order.
func stringList(v any) ([]string, bool) {
	var items []any
	switch arr := v.(type) {
	case []any:
		items = arr
	case []string:
		out := make([]string, 0, len(arr))
		for _, s := range arr {
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
		return out, true
	default:
		return nil, false
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := asString(it); ok {
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, t)
			}
		}
	}
	return out, true
}

// firstString returns the first candidate that is a non-empty string after
// trimming, else the fallback. This is the resolve(first, second, default)
// helper used for all the dual-named legacy columns.
func firstString(fallback string, candidates ...any) string {
	for _, c := range candidates {
		if s, ok := asString(c); ok {
			if t := strings.TrimSpace(s); t != "" {
				return t
			}
		}
	}
	return fallback
}

// firstNumber returns the first candidate that is a number.
func firstNumber(candidates ...any) (float64, bool) {
	for _, c := range candidates {
		if n, ok := asNumber(c); ok {
			return n, true
		}
	}
	return 0, false
}

// firstPositive returns the first candidate that is a number greater than zero.
func firstPositive(candidates ...any) (float64, bool) {
	for _, c := range candidates {
		if n, ok := asNumber(c); ok && n > 0 {
			return n, true
		}
	}
	return 0, false
}
