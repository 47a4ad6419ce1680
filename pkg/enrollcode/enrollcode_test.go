package enrollcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	gen := NewWithSeed(42)

	for i := 0; i < 1000; i++ {
		code := gen.Generate()
		require.Len(t, code, Length)
		for j := 0; j < len(code); j++ {
			c := code[j]
			isUpper := c >= 'A' && c <= 'Z'
			isDigit := c >= '0' && c <= '9'
			assert.True(t, isUpper || isDigit, "unexpected character %q in code %q", c, code)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := NewWithSeed(7)
	b := NewWithSeed(7)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"valid letters", "ABCD", true},
		{"valid mixed", "A1B2", true},
		{"valid digits", "0099", true},
		{"too short", "ABC", false},
		{"too long", "ABCDE", false},
		{"lowercase", "abcd", false},
		{"symbol", "AB-D", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.code))
		})
	}
}
