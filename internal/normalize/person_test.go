package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPersonName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"plain two words", "John Doe", true},
		{"three words", "John Michael Doe", true},
		{"four words", "John Paul George Smith", true},
		{"single word", "John", false},
		{"five words", "A Very Long Name Here", false},
		{"digit in word", "John D0e", false},
		{"business suffix", "John Smith LLC", false},
		{"business substring", "John Smith Roofing", false},
		{"insurance word", "Acme Insurance Agency", false},
		{"short first word", "J Smith", false},
		{"short last word", "Smith J", false},
		{"ampersand", "Smith & Sons", false},
		{"at sign", "john@doe com", false},
		{"empty", "", false},
		{"jacob not a business word", "Jacob Incard", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPersonName(tt.input))
		})
	}
}

func TestPersonPrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"business styled", "John Smith Roofing LLC", "John Smith"},
		{"three word prefix", "John Michael Smith Contracting Inc", "John Michael Smith"},
		{"no indicator", "John Smith", ""},
		{"indicator too early", "Roofing LLC", ""},
		{"single word before indicator", "Smith Roofing", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PersonPrefix(tt.input))
		})
	}
}
