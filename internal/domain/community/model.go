package community

import (
	"strings"
	"time"
)

// Community is a partner tech group. The ID is immutable once persisted.
type Community struct {
	ID          string `firestore:"id" json:"id"`
	Name        string `firestore:"name" json:"name"`
	Logo        string `firestore:"logo,omitempty" json:"logo,omitempty"`
	Description string `firestore:"description,omitempty" json:"description,omitempty"`

	Links SocialLinks `firestore:"links,omitempty" json:"links,omitempty"`

	// IsStatic marks seed data; static communities are edited in source.
	IsStatic bool `firestore:"isStatic" json:"isStatic"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// SocialLinks holds the community's outbound links.
type SocialLinks struct {
	Website   string `firestore:"website,omitempty" json:"website,omitempty"`
	Discord   string `firestore:"discord,omitempty" json:"discord,omitempty"`
	Meetup    string `firestore:"meetup,omitempty" json:"meetup,omitempty"`
	Luma      string `firestore:"luma,omitempty" json:"luma,omitempty"`
	Twitter   string `firestore:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram string `firestore:"instagram,omitempty" json:"instagram,omitempty"`
	LinkedIn  string `firestore:"linkedin,omitempty" json:"linkedin,omitempty"`
	YouTube   string `firestore:"youtube,omitempty" json:"youtube,omitempty"`
	Twitch    string `firestore:"twitch,omitempty" json:"twitch,omitempty"`
	Facebook  string `firestore:"facebook,omitempty" json:"facebook,omitempty"`
	GitHub    string `firestore:"github,omitempty" json:"github,omitempty"`
}

// Store modes for the communities collection. The legacy static mode serves
// hard-coded seed data; a one-time migration promotes it into Firestore.
const (
	StoreModeStatic    = "static"
	StoreModeFirestore = "firestore"
)

// CreateCommunityInput represents input for creating a community.
type CreateCommunityInput struct {
	ID          string      `json:"id,omitempty"` // defaults to a slug of the name
	Name        string      `json:"name"`
	Logo        string      `json:"logo,omitempty"`
	Description string      `json:"description,omitempty"`
	Links       SocialLinks `json:"links,omitempty"`
}

func (in *CreateCommunityInput) Trim() {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	in.Logo = strings.TrimSpace(in.Logo)
	in.Description = strings.TrimSpace(in.Description)
}

// UpdateCommunityInput represents input for updating a community. The ID is
// never updatable.
type UpdateCommunityInput struct {
	Name        *string      `json:"name,omitempty"`
	Logo        *string      `json:"logo,omitempty"`
	Description *string      `json:"description,omitempty"`
	Links       *SocialLinks `json:"links,omitempty"`
}

func (in *UpdateCommunityInput) Trim() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Logo != nil {
		*in.Logo = strings.TrimSpace(*in.Logo)
	}
	if in.Description != nil {
		*in.Description = strings.TrimSpace(*in.Description)
	}
}
