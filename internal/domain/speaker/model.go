package speaker

import (
	"strings"
	"time"
)

// Submission is a speaker proposal for the conference track.
type Submission struct {
	ID          string    `firestore:"id" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	Email       string    `firestore:"email" json:"email"`
	TalkTitle   string    `firestore:"talkTitle" json:"talkTitle"`
	Abstract    string    `firestore:"abstract,omitempty" json:"abstract,omitempty"`
	CommunityID string    `firestore:"communityId,omitempty" json:"communityId,omitempty"`
	Status      string    `firestore:"status" json:"status"`
	SubmittedAt time.Time `firestore:"submittedAt" json:"submittedAt"`
}

const (
	StatusSubmitted = "submitted"
	StatusAccepted  = "accepted"
	StatusDeclined  = "declined"
)

// SubmitInput represents the public speaker form.
type SubmitInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	TalkTitle   string `json:"talkTitle"`
	Abstract    string `json:"abstract,omitempty"`
	CommunityID string `json:"communityId,omitempty"`
}

func (in *SubmitInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.TalkTitle = strings.TrimSpace(in.TalkTitle)
	in.Abstract = strings.TrimSpace(in.Abstract)
	in.CommunityID = strings.TrimSpace(in.CommunityID)
}
