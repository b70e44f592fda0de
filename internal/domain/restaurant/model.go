package restaurant

import (
	"strings"
	"time"
)

type Restaurant struct {
	ID        string  `firestore:"id" json:"id"`
	Name      string  `firestore:"name" json:"name"`
	NameLower string  `firestore:"nameLower" json:"-"`
	Image     string  `firestore:"image,omitempty" json:"image,omitempty"`
	Rating    float64 `firestore:"rating,omitempty" json:"rating,omitempty"`

	DeliveryTime string   `firestore:"deliveryTime,omitempty" json:"deliveryTime,omitempty"`
	DeliveryFee  float64  `firestore:"deliveryFee,omitempty" json:"deliveryFee,omitempty"`
	Distance     string   `firestore:"distance,omitempty" json:"distance,omitempty"`
	Cuisine      []string `firestore:"cuisine,omitempty" json:"cuisine,omitempty"`
	Categories   []string `firestore:"categories,omitempty" json:"categories,omitempty"`
	Description  string   `firestore:"description,omitempty" json:"description,omitempty"`

	// Address is the legacy single-line field; the structured parts below
	// superseded it but older documents only carry Address.
	Address      string `firestore:"address,omitempty" json:"address,omitempty"`
	AddressLine1 string `firestore:"addressLine1,omitempty" json:"addressLine1,omitempty"`
	AddressLine2 string `firestore:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	City         string `firestore:"city,omitempty" json:"city,omitempty"`
	State        string `firestore:"state,omitempty" json:"state,omitempty"`
	PostalCode   string `firestore:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country      string `firestore:"country,omitempty" json:"country,omitempty"`

	IsOpen    bool `firestore:"isOpen" json:"isOpen"`
	IsStudent bool `firestore:"isStudent,omitempty" json:"isStudent,omitempty"`

	// Three overlapping campus-association mechanisms live on the record:
	// Campus (a university shortName), Locations (free-text tokens matched
	// against hostels and university names) and Schools (university ids).
	// Read-side association goes through campus.IsAssigned only.
	Campus    string   `firestore:"campus,omitempty" json:"campus,omitempty"`
	Locations []string `firestore:"locations,omitempty" json:"locations,omitempty"`
	Schools   []string `firestore:"schools,omitempty" json:"schools,omitempty"`

	CreatedAt time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type UpdateInput struct {
	Name         *string   `json:"name,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Rating       *float64  `json:"rating,omitempty"`
	DeliveryTime *string   `json:"deliveryTime,omitempty"`
	DeliveryFee  *float64  `json:"deliveryFee,omitempty"`
	Distance     *string   `json:"distance,omitempty"`
	Cuisine      *[]string `json:"cuisine,omitempty"`
	Categories   *[]string `json:"categories,omitempty"`
	Description  *string   `json:"description,omitempty"`
	AddressLine1 *string   `json:"addressLine1,omitempty"`
	AddressLine2 *string   `json:"addressLine2,omitempty"`
	City         *string   `json:"city,omitempty"`
	State        *string   `json:"state,omitempty"`
	PostalCode   *string   `json:"postalCode,omitempty"`
	Country      *string   `json:"country,omitempty"`
	IsStudent    *bool     `json:"isStudent,omitempty"`
}

func (in *UpdateInput) Trim() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Image != nil {
		*in.Image = strings.TrimSpace(*in.Image)
	}
	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}
}
