package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNameLower(t *testing.T) {
	assert.Equal(t, "mama's kitchen", NormalizeNameLower("  Mama's   Kitchen "))
	assert.Equal(t, "", NormalizeNameLower("   "))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"University of Nairobi", "university-of-nairobi"},
		{"  Café  Déli  ", "cafe-deli"},
		{"St. Paul's", "st-pauls"},
		{"___", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}
