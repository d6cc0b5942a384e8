package engine

import "strconv"

// Answer values arrive either as typed Go values (in-process runner) or as
// decoded JSON (handlers), so multi-choice answers may be []string or []any
// and numbers may be any numeric width. The helpers below collapse both
// worlds to the string-shaped values the rules operate on.

// asStringSlice returns the value as a slice of strings when it is a
// multi-choice style answer.
func asStringSlice(v any) ([]string, bool) {
	switch arr := v.(type) {
	case []string:
		return arr, true
	case []any:
		out := make([]string, len(arr))
		for i, el := range arr {
			out[i] = stringify(el)
		}
		return out, true
	}
	return nil, false
}

// stringify renders a scalar answer the way the form layer would display
// it. Nil renders as the empty string.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int32:
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return ""
	}
}

// truthy mirrors the relaxed presence check the form layer applies when a
// visibility condition names no expected value: nil, empty string, false
// and numeric zero are absent, everything else counts as an answer.
func truthy(v any) bool {
	switch s := v.(type) {
	case nil:
		return false
	case string:
		return s != ""
	case bool:
		return s
	case float64:
		return s != 0
	case float32:
		return s != 0
	case int:
		return s != 0
	case int32:
		return s != 0
	case int64:
		return s != 0
	default:
		return true
	}
}
