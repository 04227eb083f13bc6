package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"simple", "Kitchen", "kitchen"},
		{"spaces collapse to dashes", "Garden  Tools", "garden-tools"},
		{"punctuation stripped", "Mugs & Cups!", "mugs-cups"},
		{"mixed case and padding", "  Home Decor  ", "home-decor"},
		{"existing dashes collapse", "a--b - c", "a-b-c"},
		{"leading and trailing dashes trimmed", "-edge case-", "edge-case"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.in))
		})
	}
}
