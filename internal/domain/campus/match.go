// Package campus decides whether a restaurant belongs to a university.
//
// The relation is never stored as a normalized foreign key: it is inferred at
// read time from three overlapping string fields (campus, locations, and
// free-text containment of the university name). All call sites go through
// IsAssigned so a future migration to a single mechanism only touches this
// package.
package campus

import (
	"strings"

	"campusbites/backend/internal/domain/restaurant"
	"campusbites/backend/internal/domain/university"
)

// IsAssigned reports whether the restaurant is associated with the
// university. True if any of:
//
//  1. restaurant.campus equals university.shortName (case-insensitive);
//  2. any locations entry equals any hostel (case-insensitive);
//  3. any locations entry equals university.shortName, or contains
//     university.name as a substring (case-insensitive).
//
// Comparison is plain lowercased equality/containment: no whitespace or
// diacritic normalization. Substring containment can false-positive on an
// unrelated location that happens to embed the university name; that is
// long-standing behavior the data depends on, not something to patch here.
func IsAssigned(r restaurant.Restaurant, u university.University) bool {
	shortLower := strings.ToLower(u.ShortName)
	nameLower := strings.ToLower(u.Name)

	if strings.ToLower(r.Campus) == shortLower {
		return true
	}

	for _, loc := range r.Locations {
		locLower := strings.ToLower(loc)
		if locLower == shortLower || strings.Contains(locLower, nameLower) {
			return true
		}
		for _, h := range u.Hostels {
			if locLower == strings.ToLower(h) {
				return true
			}
		}
	}
	return false
}

// ToggleLocations computes the restaurant's new locations list for an
// assignment toggle. It never mutates its input.
//
// Removing drops every entry that matches a hostel, equals the shortName, or
// contains the university name. It does not touch the campus field, so a
// restaurant whose campus equals the shortName still satisfies rule 1
// afterwards. Adding appends the shortName unless an entry already equals it
// case-insensitively.
func ToggleLocations(locations []string, u university.University, currentlyAssigned bool) []string {
	shortLower := strings.ToLower(u.ShortName)
	nameLower := strings.ToLower(u.Name)

	if currentlyAssigned {
		out := make([]string, 0, len(locations))
		for _, loc := range locations {
			locLower := strings.ToLower(loc)
			matchesHostel := false
			for _, h := range u.Hostels {
				if strings.ToLower(h) == locLower {
					matchesHostel = true
					break
				}
			}
			matchesUni := locLower == shortLower || strings.Contains(locLower, nameLower)
			if matchesHostel || matchesUni {
				continue
			}
			out = append(out, loc)
		}
		return out
	}

	out := make([]string, 0, len(locations)+1)
	out = append(out, locations...)
	for _, loc := range locations {
		if strings.ToLower(loc) == shortLower {
			return out
		}
	}
	return append(out, u.ShortName)
}
