package principal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devsa-hub/backend/internal/domain/access"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// ResolveActor turns a login email into a policy actor. Login is an email
// lookup against the allow-list: unknown emails resolve to anonymous, they
// are never an error.
func (s *Service) ResolveActor(ctx context.Context, email string) (access.Actor, *Principal, error) {
	if strings.TrimSpace(email) == "" {
		return access.Actor{Role: access.RoleAnonymous}, nil, nil
	}

	p, err := s.repo.GetByEmail(ctx, email)
	if IsErrNotFound(err) {
		return access.Actor{Email: email, Role: access.RoleAnonymous}, nil, nil
	}
	if err != nil {
		return access.Actor{Role: access.RoleAnonymous}, nil, err
	}
	return p.Actor(), p, nil
}

// List returns the admin roster. Non-admin callers get an empty list, not an
// authorization error.
func (s *Service) List(ctx context.Context, actor access.Actor) ([]Principal, error) {
	d := access.CanRead(actor.Role, actor.CommunityID, access.ResourceAdmins)
	if d.Scope.Empty() {
		return []Principal{}, nil
	}
	return s.repo.List(ctx)
}

// Grant creates an admin or organizer record. superadmin can never be granted
// here; it is pre-seeded only.
func (s *Service) Grant(ctx context.Context, actor access.Actor, in GrantInput) (*Principal, error) {
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrBadRequest)
	}

	if !access.CanWrite(actor, access.ResourceAdmins, access.ActionCreate, access.Target{Email: in.Email}) {
		return nil, fmt.Errorf("%w: only admins can grant access", ErrUnauthorized)
	}

	role, communityID, ok := access.NormalizeGrant(access.Role(in.Role), in.CommunityID)
	if !ok {
		if access.Role(in.Role) == access.RoleOrganizer {
			return nil, fmt.Errorf("%w: organizer access requires a community", ErrBadRequest)
		}
		return nil, fmt.Errorf("%w: role must be admin or organizer", ErrBadRequest)
	}

	now := time.Now().UTC()
	p := Principal{
		Email:       in.Email,
		Name:        in.Name,
		Role:        string(role),
		CommunityID: communityID,
		ApprovedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.repo.Create(ctx, p)
}

// Update edits an admin record. The protected principal refuses every edit,
// whoever asks.
func (s *Service) Update(ctx context.Context, actor access.Actor, email string, in UpdateInput) (*Principal, error) {
	target, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if target.IsProtected {
		return nil, fmt.Errorf("%w: this account cannot be modified", ErrProtected)
	}
	if !access.CanWrite(actor, access.ResourceAdmins, access.ActionUpdate, adminTarget(target)) {
		return nil, fmt.Errorf("%w: only admins can edit access", ErrUnauthorized)
	}

	updates := map[string]interface{}{
		"updatedAt": time.Now().UTC(),
	}

	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Role != nil {
		communityID := target.CommunityID
		if in.CommunityID != nil {
			communityID = *in.CommunityID
		}
		role, communityID, ok := access.NormalizeGrant(access.Role(*in.Role), communityID)
		if !ok {
			if access.Role(*in.Role) == access.RoleOrganizer {
				return nil, fmt.Errorf("%w: organizer access requires a community", ErrBadRequest)
			}
			return nil, fmt.Errorf("%w: role must be admin or organizer", ErrBadRequest)
		}
		updates["role"] = string(role)
		updates["communityId"] = communityID
	} else if in.CommunityID != nil {
		updates["communityId"] = *in.CommunityID
	}

	return s.repo.Update(ctx, target.Email, updates)
}

// Remove revokes access. Protected principals and self-removal are rejected
// outright, before any policy check.
func (s *Service) Remove(ctx context.Context, actor access.Actor, email string) error {
	target, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if target.IsProtected {
		return fmt.Errorf("%w: this account cannot be removed", ErrProtected)
	}
	if strings.EqualFold(actor.Email, target.Email) {
		return fmt.Errorf("%w: you cannot remove your own access", ErrForbidden)
	}
	if !access.CanWrite(actor, access.ResourceAdmins, access.ActionDelete, adminTarget(target)) {
		return fmt.Errorf("%w: only admins can revoke access", ErrUnauthorized)
	}

	return s.repo.Delete(ctx, target.Email)
}

func adminTarget(p *Principal) access.Target {
	return access.Target{
		Email:     p.Email,
		Protected: p.IsProtected,
	}
}
