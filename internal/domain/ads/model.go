package ads

import (
	"strings"
	"time"
)

type Ad struct {
	ID       string `firestore:"id" json:"id"`
	Title    string `firestore:"title" json:"title"`
	Subtitle string `firestore:"subtitle,omitempty" json:"subtitle,omitempty"`
	Image    string `firestore:"image,omitempty" json:"image,omitempty"`
	Link     string `firestore:"link,omitempty" json:"link,omitempty"`
	Active   bool   `firestore:"active" json:"active"`
	Deleted  bool   `firestore:"deleted" json:"-"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

// FromDoc builds an Ad from a raw document, applying the read-time defaults
// older documents rely on: active defaults to true when unset, deleted to
// false.
func FromDoc(id string, data map[string]any) Ad {
	ad := Ad{ID: id, Active: true}
	if v, ok := data["title"].(string); ok {
		ad.Title = v
	}
	if v, ok := data["subtitle"].(string); ok {
		ad.Subtitle = v
	}
	if v, ok := data["image"].(string); ok {
		ad.Image = v
	}
	if v, ok := data["link"].(string); ok {
		ad.Link = v
	}
	if v, ok := data["active"].(bool); ok {
		ad.Active = v
	}
	if v, ok := data["deleted"].(bool); ok {
		ad.Deleted = v
	}
	if v, ok := data["createdAt"].(time.Time); ok {
		ad.CreatedAt = v
	}
	return ad
}

type CreateInput struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image,omitempty"`
	Link     string `json:"link,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}

func (in *CreateInput) Trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Subtitle = strings.TrimSpace(in.Subtitle)
	in.Link = strings.TrimSpace(in.Link)
}

type UpdateInput struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	Image    *string `json:"image,omitempty"`
	Link     *string `json:"link,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

func (in *UpdateInput) Trim() {
	if in.Title != nil {
		*in.Title = strings.TrimSpace(*in.Title)
	}
	if in.Subtitle != nil {
		*in.Subtitle = strings.TrimSpace(*in.Subtitle)
	}
	if in.Link != nil {
		*in.Link = strings.TrimSpace(*in.Link)
	}
}
