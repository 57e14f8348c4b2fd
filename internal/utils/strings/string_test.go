package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlural(t *testing.T) {
	tests := []struct {
		singular string
		plural   string
		count    int
		expected string
	}{
		{"item", "items", 1, "item"},
		{"item", "items", 0, "items"},
		{"item", "items", 2, "items"},
		{"person", "people", 1, "person"},
		{"person", "people", 5, "people"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Pluralize(test.singular, test.plural, test.count))
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1 error", Count(1, "error", "errors"))
	assert.Equal(t, "0 errors", Count(0, "error", "errors"))
	assert.Equal(t, "12 statements", Count(12, "statement", "statements"))
}
