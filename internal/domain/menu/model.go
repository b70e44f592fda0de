package menu

import (
	"strings"
	"time"
)

type Item struct {
	ID           string  `firestore:"id" json:"id"`
	RestaurantID string  `firestore:"restaurantId" json:"restaurantId"`
	Name         string  `firestore:"name" json:"name"`
	Description  string  `firestore:"description,omitempty" json:"description,omitempty"`
	Price        float64 `firestore:"price" json:"price"`
	Image        string  `firestore:"image,omitempty" json:"image,omitempty"`
	Category     string  `firestore:"category,omitempty" json:"category,omitempty"`
	IsPopular    bool    `firestore:"isPopular" json:"isPopular"`
	IsVegetarian bool    `firestore:"isVegetarian" json:"isVegetarian"`

	CreatedAt time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type CreateInput struct {
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Image        string  `json:"image,omitempty"`
	Category     string  `json:"category,omitempty"`
	IsPopular    bool    `json:"isPopular,omitempty"`
	IsVegetarian bool    `json:"isVegetarian,omitempty"`
}

func (in *CreateInput) Trim() {
	in.RestaurantID = strings.TrimSpace(in.RestaurantID)
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
}

type UpdateInput struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Image        *string  `json:"image,omitempty"`
	Category     *string  `json:"category,omitempty"`
	IsPopular    *bool    `json:"isPopular,omitempty"`
	IsVegetarian *bool    `json:"isVegetarian,omitempty"`
}

func (in *UpdateInput) Trim() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		*in.Category = strings.TrimSpace(*in.Category)
	}
}
