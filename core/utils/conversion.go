package utils

import (
	"strconv"
	"strings"
)

// ToInt converts numbers and numeric text to int. Surrounding whitespace is
// ignored; anything unparsable converts to 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case []byte:
		i, _ := strconv.Atoi(strings.TrimSpace(string(v)))
		return i
	default:
		return 0
	}
}

// PadInt formats n zero-padded to width digits. Negative numbers keep their
// sign in front of the padding.
func PadInt(n, width int) string {
	if width <= 0 {
		return strconv.Itoa(n)
	}
	if n < 0 {
		return "-" + PadInt(-n, width-1)
	}
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
