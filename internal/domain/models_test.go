package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTSEntry_IsAdValorem(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		expected bool
	}{
		{"plain_percentage", "12.8%", true},
		{"free", "Free", true},
		{"cents_per_unit", "2¢/each", false},
		{"dollars_per_unit", "$1.35/kg", false},
		{"compound", "1¢/each + 4.6%", false},
		{"empty", "", false},
		{"bare_number_without_percent", "12.8", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := HTSEntry{GeneralRate: tt.rate}
			assert.Equal(t, tt.expected, e.IsAdValorem())
		})
	}
}
