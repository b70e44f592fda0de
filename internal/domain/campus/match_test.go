package campus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusbites/backend/internal/domain/restaurant"
	"campusbites/backend/internal/domain/university"
)

func uon() university.University {
	return university.University{
		ID:        "u1",
		Name:      "University of Nairobi",
		ShortName: "UoN",
		Hostels:   []string{"Hall A", "Hall B"},
	}
}

func TestIsAssigned_CampusMatch(t *testing.T) {
	tests := []struct {
		name   string
		campus string
		want   bool
	}{
		{"exact", "UoN", true},
		{"lower", "uon", true},
		{"upper", "UON", true},
		{"mixed", "uOn", true},
		{"different", "JKUAT", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := restaurant.Restaurant{Campus: tt.campus}
			assert.Equal(t, tt.want, IsAssigned(r, uon()))
		})
	}
}

func TestIsAssigned_HostelMatch(t *testing.T) {
	r := restaurant.Restaurant{Locations: []string{"Hall A"}}
	assert.True(t, IsAssigned(r, uon()))

	r = restaurant.Restaurant{Locations: []string{"HALL B"}}
	assert.True(t, IsAssigned(r, uon()))

	r = restaurant.Restaurant{Locations: []string{"Hall C"}}
	assert.False(t, IsAssigned(r, uon()))
}

func TestIsAssigned_UniNameInLocations(t *testing.T) {
	// shortName equality
	r := restaurant.Restaurant{Locations: []string{"uon"}}
	assert.True(t, IsAssigned(r, uon()))

	// full name containment
	r = restaurant.Restaurant{Locations: []string{"Near University of Nairobi gate"}}
	assert.True(t, IsAssigned(r, uon()))

	// containment false-positive on an unrelated string is accepted behavior
	r = restaurant.Restaurant{Locations: []string{"The university of nairobi alumni club"}}
	assert.True(t, IsAssigned(r, uon()))
}

func TestIsAssigned_EmptyLocations(t *testing.T) {
	r := restaurant.Restaurant{Locations: []string{}}
	assert.False(t, IsAssigned(r, uon()))

	// rule 1 still fires with empty locations
	r = restaurant.Restaurant{Locations: []string{}, Campus: "uon"}
	assert.True(t, IsAssigned(r, uon()))
}

func TestIsAssigned_EmptyHostels(t *testing.T) {
	u := uon()
	u.Hostels = nil
	r := restaurant.Restaurant{Locations: []string{"Hall A"}}
	assert.False(t, IsAssigned(r, u))
}

func TestIsAssigned_OrderIndependent(t *testing.T) {
	u := uon()
	a := restaurant.Restaurant{Locations: []string{"x", "Hall B", "y"}}
	b := restaurant.Restaurant{Locations: []string{"y", "x", "Hall B"}}
	assert.Equal(t, IsAssigned(a, u), IsAssigned(b, u))

	u.Hostels = []string{"Hall B", "Hall A"}
	assert.True(t, IsAssigned(a, u))
}

func TestToggleLocations_AppendThenAssigned(t *testing.T) {
	u := uon()
	locs := ToggleLocations([]string{"somewhere"}, u, false)

	assert.Equal(t, []string{"somewhere", "UoN"}, locs)
	assert.True(t, IsAssigned(restaurant.Restaurant{Locations: locs}, u))
}

func TestToggleLocations_AppendSkipsExisting(t *testing.T) {
	u := uon()
	locs := ToggleLocations([]string{"uon"}, u, false)
	assert.Equal(t, []string{"uon"}, locs)
}

func TestToggleLocations_RemoveDropsHostelsAndUniTokens(t *testing.T) {
	u := uon()
	locs := ToggleLocations([]string{"Hall A", "UoN", "Westlands", "near university of nairobi"}, u, true)
	assert.Equal(t, []string{"Westlands"}, locs)
	assert.False(t, IsAssigned(restaurant.Restaurant{Locations: locs}, u))
}

func TestToggleLocations_RemoveLeavesCampusField(t *testing.T) {
	// The mutator only rewrites locations; a campus field equal to the
	// shortName keeps rule 1 alive after "removal".
	u := uon()
	r := restaurant.Restaurant{Campus: "uon", Locations: []string{"UoN"}}

	locs := ToggleLocations(r.Locations, u, true)
	r.Locations = locs

	assert.Empty(t, locs)
	assert.True(t, IsAssigned(r, u))
}

func TestToggleLocations_NotAStrictRoundTrip(t *testing.T) {
	// Entries that already matched the university before the first toggle
	// are gone after add-then-remove: the pair is not an identity.
	u := uon()
	original := []string{"Hall A", "Westlands"}

	added := ToggleLocations(original, u, false)
	removed := ToggleLocations(added, u, true)

	assert.Equal(t, []string{"Westlands"}, removed)
}

func TestToggleLocations_DoesNotMutateInput(t *testing.T) {
	u := uon()
	original := []string{"Westlands"}
	_ = ToggleLocations(original, u, false)
	assert.Equal(t, []string{"Westlands"}, original)
}
