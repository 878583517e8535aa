package accessrequest

import (
	"strings"
	"time"
)

// Request statuses. A request is resolved exactly once: approval grants
// organizer access, rejection deletes the document.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Request is a pending ask for organizer access, submitted from the public
// site.
type Request struct {
	ID           string    `firestore:"id" json:"id"`
	Name         string    `firestore:"name" json:"name"`
	Email        string    `firestore:"email" json:"email"`
	CommunityOrg string    `firestore:"communityOrg" json:"communityOrg"`
	Status       string    `firestore:"status" json:"status"`
	SubmittedAt  time.Time `firestore:"submittedAt" json:"submittedAt"`
}

// SubmitRequestInput represents the public access-request form.
type SubmitRequestInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	CommunityOrg string `json:"communityOrg"`
}

func (in *SubmitRequestInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.CommunityOrg = strings.TrimSpace(in.CommunityOrg)
}

// ApproveInput carries the community the new organizer is scoped to. The
// request's communityOrg is free text; the admin picks the real community.
type ApproveInput struct {
	CommunityID string `json:"communityId"`
}

func (in *ApproveInput) Trim() {
	in.CommunityID = strings.TrimSpace(in.CommunityID)
}
