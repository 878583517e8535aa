package principal

import (
	"strings"
	"time"

	"devsa-hub/backend/internal/domain/access"
)

// Principal is a dashboard identity stored in the admins collection. The
// document ID is the normalized email, which makes the email the unique key.
type Principal struct {
	Email       string `firestore:"email" json:"email"`
	Name        string `firestore:"name,omitempty" json:"name,omitempty"`
	Role        string `firestore:"role" json:"role"`
	CommunityID string `firestore:"communityId,omitempty" json:"communityId,omitempty"`

	// IsProtected is set once at provisioning for the reserved super-admin.
	// No action in the system may alter or remove a protected principal.
	IsProtected bool `firestore:"isProtected" json:"isProtected"`

	ApprovedAt time.Time `firestore:"approvedAt" json:"approvedAt"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Actor converts the stored record into the policy's view of the principal.
func (p *Principal) Actor() access.Actor {
	if p == nil {
		return access.Actor{Role: access.RoleAnonymous}
	}
	return access.Actor{
		Email:       p.Email,
		Role:        access.ParseRole(p.Role),
		CommunityID: p.CommunityID,
	}
}

// GrantInput represents input for granting dashboard access.
type GrantInput struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CommunityID string `json:"communityId,omitempty"`
}

func (in *GrantInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Role = strings.TrimSpace(in.Role)
	in.CommunityID = strings.TrimSpace(in.CommunityID)
}

// UpdateInput represents input for editing an admin record.
type UpdateInput struct {
	Name        *string `json:"name,omitempty"`
	Role        *string `json:"role,omitempty"`
	CommunityID *string `json:"communityId,omitempty"`
}

func (in *UpdateInput) Trim() {
	if in.Name != nil {
		*in.Name = strings.TrimSpace(*in.Name)
	}
	if in.Role != nil {
		*in.Role = strings.TrimSpace(*in.Role)
	}
	if in.CommunityID != nil {
		*in.CommunityID = strings.TrimSpace(*in.CommunityID)
	}
}
