package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Status
	}{
		{"empty defaults to pending", "", StatusPending},
		{"canonical passes through", "preparing", StatusPreparing},
		{"legacy on-the-way", "on-the-way", StatusOutForDelivery},
		{"unknown passes through", "refunded", Status("refunded")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalStatus(tt.raw))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, IsValidStatus(s), string(s))
	}
	assert.False(t, IsValidStatus(Status("on-the-way")))
	assert.False(t, IsValidStatus(Status("refunded")))
	assert.False(t, IsValidStatus(Status("")))
}

func TestLegacyAliasNormalizesToValid(t *testing.T) {
	// every alias must land on a writable canonical value
	for raw, canon := range legacyAliases {
		assert.True(t, IsValidStatus(canon), raw)
	}
}
