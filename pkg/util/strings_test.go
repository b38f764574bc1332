package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2025", true},
		{"１２", true},
		{"三十", true},
		{"½", true},
		{"一个", false},
		{"12a", false},
		{"", false},
		{"星露谷", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNumeric(tt.in), tt.in)
	}
}

func TestRuneLen(t *testing.T) {
	assert.Equal(t, 4, RuneLen("星露谷a"))
	assert.Equal(t, 0, RuneLen(""))
}

func TestStr2List(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Str2List(" a, b ,a,, ", ","))
	assert.Empty(t, Str2List("", ","))
}
