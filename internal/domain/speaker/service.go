package speaker

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

// Submit files a speaker proposal from the public form.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Submission, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrBadRequest)
	}
	if in.TalkTitle == "" {
		return nil, fmt.Errorf("%w: talk title is required", ErrBadRequest)
	}

	return s.repo.Create(ctx, Submission{
		Name:        in.Name,
		Email:       in.Email,
		TalkTitle:   in.TalkTitle,
		Abstract:    in.Abstract,
		CommunityID: in.CommunityID,
		Status:      StatusSubmitted,
		SubmittedAt: time.Now().UTC(),
	})
}

// List returns all submissions for the dashboard. Non-admins get an empty
// list.
func (s *Service) List(ctx context.Context, actor access.Actor) ([]Submission, error) {
	d := access.CanRead(actor.Role, actor.CommunityID, access.ResourceSpeakers)
	if d.Scope.Empty() {
		return []Submission{}, nil
	}
	return s.repo.List(ctx)
}

// SetStatus reviews a submission. Admin only.
func (s *Service) SetStatus(ctx context.Context, actor access.Actor, submissionID, status string) (*Submission, error) {
	if submissionID == "" {
		return nil, fmt.Errorf("%w: submissionId is required", ErrBadRequest)
	}
	if status != StatusSubmitted && status != StatusAccepted && status != StatusDeclined {
		return nil, fmt.Errorf("%w: status must be submitted, accepted, or declined", ErrBadRequest)
	}
	if !access.CanWrite(actor, access.ResourceSpeakers, access.ActionUpdate, access.Target{}) {
		return nil, fmt.Errorf("%w: only admins can review submissions", ErrUnauthorized)
	}

	if _, err := s.repo.Get(ctx, submissionID); err != nil {
		return nil, err
	}
	if err := s.repo.SetStatus(ctx, submissionID, status); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, submissionID)
}

// Remove deletes a submission. Admin only.
func (s *Service) Remove(ctx context.Context, actor access.Actor, submissionID string) error {
	if submissionID == "" {
		return fmt.Errorf("%w: submissionId is required", ErrBadRequest)
	}
	if !access.CanWrite(actor, access.ResourceSpeakers, access.ActionDelete, access.Target{}) {
		return fmt.Errorf("%w: only admins can remove submissions", ErrUnauthorized)
	}
	if _, err := s.repo.Get(ctx, submissionID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, submissionID)
}
