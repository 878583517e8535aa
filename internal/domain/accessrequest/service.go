package accessrequest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devsa-hub/backend/internal/domain/access"
	"devsa-hub/backend/internal/domain/principal"
)

type Service struct {
	repo          *Repo
	principalRepo *principal.Repo
}

func NewService(repo *Repo, principalRepo *principal.Repo) *Service {
	return &Service{repo: repo, principalRepo: principalRepo}
}

// Submit files an organizer access request from the public form.
func (s *Service) Submit(ctx context.Context, in SubmitRequestInput) (*Request, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrBadRequest)
	}
	if in.CommunityOrg == "" {
		return nil, fmt.Errorf("%w: community or organization is required", ErrBadRequest)
	}

	return s.repo.Create(ctx, Request{
		Name:         in.Name,
		Email:        in.Email,
		CommunityOrg: in.CommunityOrg,
		Status:       StatusPending,
		SubmittedAt:  time.Now().UTC(),
	})
}

// List returns all requests for the dashboard. Non-admins get an empty list.
func (s *Service) List(ctx context.Context, actor access.Actor) ([]Request, error) {
	d := access.CanRead(actor.Role, actor.CommunityID, access.ResourceAccessRequests)
	if d.Scope.Empty() {
		return []Request{}, nil
	}
	return s.repo.List(ctx)
}

// Approve resolves a pending request: the requester becomes an organizer
// scoped to the community the admin picked. A request resolves exactly once.
func (s *Service) Approve(ctx context.Context, actor access.Actor, requestID string, in ApproveInput) (*principal.Principal, error) {
	if requestID == "" {
		return nil, fmt.Errorf("%w: requestId is required", ErrBadRequest)
	}
	if in.CommunityID == "" {
		return nil, fmt.Errorf("%w: communityId is required to approve", ErrBadRequest)
	}
	if !access.CanWrite(actor, access.ResourceAccessRequests, access.ActionUpdate, access.Target{}) {
		return nil, fmt.Errorf("%w: only admins can approve requests", ErrUnauthorized)
	}

	req, err := s.repo.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != StatusPending {
		return nil, fmt.Errorf("%w: request is already %s", ErrAlreadyResolved, req.Status)
	}

	// Approving a request for an email that already holds protected access
	// must never downgrade that record.
	if existing, err := s.principalRepo.GetByEmail(ctx, req.Email); err == nil && existing.IsProtected {
		return nil, fmt.Errorf("%w: that account cannot be modified", ErrUnauthorized)
	}

	now := time.Now().UTC()
	p, err := s.principalRepo.Put(ctx, principal.Principal{
		Email:       req.Email,
		Name:        req.Name,
		Role:        string(access.RoleOrganizer),
		CommunityID: in.CommunityID,
		ApprovedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetStatus(ctx, requestID, StatusApproved); err != nil {
		return nil, err
	}
	return p, nil
}

// Reject resolves a pending request by deleting it.
func (s *Service) Reject(ctx context.Context, actor access.Actor, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("%w: requestId is required", ErrBadRequest)
	}
	if !access.CanWrite(actor, access.ResourceAccessRequests, access.ActionDelete, access.Target{}) {
		return fmt.Errorf("%w: only admins can reject requests", ErrUnauthorized)
	}

	req, err := s.repo.Get(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != StatusPending {
		return fmt.Errorf("%w: request is already %s", ErrAlreadyResolved, req.Status)
	}

	return s.repo.Delete(ctx, requestID)
}
