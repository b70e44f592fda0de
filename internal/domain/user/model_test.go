package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromDoc_Defaults(t *testing.T) {
	u := FromDoc("u1", map[string]any{"name": "Jane"})

	assert.True(t, u.IsActive, "isActive defaults to true unless explicitly false")
	assert.Equal(t, "customer", u.Role)
}

func TestFromDoc_ExplicitValues(t *testing.T) {
	u := FromDoc("u2", map[string]any{
		"name":        "Sam",
		"isActive":    false,
		"role":        "admin",
		"ordersCount": int64(7),
		"totalSpent":  123.5,
	})

	assert.False(t, u.IsActive)
	assert.Equal(t, "admin", u.Role)
	assert.Equal(t, 7, u.OrdersCount)
	assert.Equal(t, 123.5, u.TotalSpent)
}
