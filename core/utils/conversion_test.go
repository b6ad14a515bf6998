package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want string
	}{
		{"String", "AL", "AL"},
		{"Bytes", []byte("Anchorage"), "Anchorage"},
		{"Nil", nil, ""},
		{"Int", int64(42), "42"},
		{"Float", 3.5, "3.5"},
		{"Time", time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC), "2024-03-09T14:30:05Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.val))
		})
	}
}
