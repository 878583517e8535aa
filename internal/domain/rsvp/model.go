package rsvp

import (
	"strings"
	"time"
)

// RSVP is one attendee registration for an event.
type RSVP struct {
	ID          string `firestore:"id" json:"id"`
	EventID     string `firestore:"eventId" json:"eventId"`
	EventSlug   string `firestore:"eventSlug" json:"eventSlug"`
	CommunityID string `firestore:"communityId,omitempty" json:"communityId,omitempty"`
	FirstName   string `firestore:"firstName" json:"firstName"`
	LastName    string `firestore:"lastName" json:"lastName"`
	Email       string `firestore:"email" json:"email"`

	JoinNewsletter bool `firestore:"joinNewsletter" json:"joinNewsletter"`

	// MagenScore is the advisory bot-defense score recorded at submission,
	// when verification is configured. It never blocks intake.
	MagenScore float64 `firestore:"magenScore,omitempty" json:"magenScore,omitempty"`

	SubmittedAt time.Time `firestore:"submittedAt" json:"submittedAt"`
}

// SubmitRSVPInput represents a public registration form submission.
type SubmitRSVPInput struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	JoinNewsletter bool   `json:"joinNewsletter,omitempty"`

	// MagenToken is the client-side verification token, when present.
	MagenToken string `json:"magenToken,omitempty"`
}

func (in *SubmitRSVPInput) Trim() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.MagenToken = strings.TrimSpace(in.MagenToken)
}
