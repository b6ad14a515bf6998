package utils

import (
	"fmt"
	"time"
)

// ToString converts various types to string using explicit type switching.
// Nil becomes the empty string, which is how SQL NULL cells enter a
// snapshot; times render as RFC 3339.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}
