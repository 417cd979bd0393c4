package textutil

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"a very long name", 10, "a very ..."},
		{"abcdef", 2, "ab"},
		{"Hôtel Château Émeraude", 10, "Hôtel C..."},
		{"東京ステーションホテル", 5, "東京..."},
		{"ÉÉÉÉ", 3, "ÉÉÉ"},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.max)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.max)
		assert.True(t, utf8.ValidString(got))
	}
}
