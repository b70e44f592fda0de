package ads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromDoc_Defaults(t *testing.T) {
	ad := FromDoc("a1", map[string]any{"title": "Lunch deal"})

	assert.Equal(t, "a1", ad.ID)
	assert.Equal(t, "Lunch deal", ad.Title)
	assert.True(t, ad.Active, "active defaults to true when unset")
	assert.False(t, ad.Deleted)
}

func TestFromDoc_ExplicitFields(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ad := FromDoc("a2", map[string]any{
		"title":     "Promo",
		"subtitle":  "Half price",
		"image":     "https://img/x.png",
		"link":      "/restaurants/r1",
		"active":    false,
		"deleted":   true,
		"createdAt": created,
	})

	assert.False(t, ad.Active)
	assert.True(t, ad.Deleted)
	assert.Equal(t, created, ad.CreatedAt)
	assert.Equal(t, "Half price", ad.Subtitle)
}
