package university

import (
	"strings"
	"time"
)

type University struct {
	ID        string   `firestore:"id" json:"id"`
	Name      string   `firestore:"name" json:"name"`
	NameLower string   `firestore:"nameLower" json:"-"`
	Slug      string   `firestore:"slug" json:"slug"`
	ShortName string   `firestore:"shortName,omitempty" json:"shortName,omitempty"`
	City      string   `firestore:"city,omitempty" json:"city,omitempty"`
	Hostels   []string `firestore:"hostels,omitempty" json:"hostels"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type CreateInput struct {
	Name      string   `json:"name"`
	ShortName string   `json:"shortName,omitempty"`
	City      string   `json:"city,omitempty"`
	Hostels   []string `json:"hostels,omitempty"`
}

func (in *CreateInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.ShortName = strings.TrimSpace(in.ShortName)
	in.City = strings.TrimSpace(in.City)
	for i := range in.Hostels {
		in.Hostels[i] = strings.TrimSpace(in.Hostels[i])
	}
}

type UpdateInput struct {
	Name      *string   `json:"name,omitempty"`
	ShortName *string   `json:"shortName,omitempty"`
	City      *string   `json:"city,omitempty"`
	Hostels   *[]string `json:"hostels,omitempty"`
}

func (in *UpdateInput) Trim() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.ShortName != nil {
		*in.ShortName = strings.TrimSpace(*in.ShortName)
	}
	if in.City != nil {
		*in.City = strings.TrimSpace(*in.City)
	}
}
