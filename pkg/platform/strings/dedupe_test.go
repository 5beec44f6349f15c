package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "trims whitespace",
			input:    []string{"  dev.json  ", "shared.json  "},
			expected: []string{"dev.json", "shared.json"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"b.json", "a.json", "b.json"},
			expected: []string{"b.json", "a.json"},
		},
		{
			name:     "removes empty strings",
			input:    []string{"a.json", "", "  "},
			expected: []string{"a.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}

func TestDuplicates(t *testing.T) {
	assert.Nil(t, Duplicates([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, Duplicates([]string{"a", "b", "a", "b", "a"}))
	assert.Equal(t, []string{"A"}, Duplicates([]string{"a", "A", "A"}))
}
