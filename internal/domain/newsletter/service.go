package newsletter

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

// Subscribe records a direct newsletter signup. Repeat signups are idempotent.
func (s *Service) Subscribe(ctx context.Context, in SubscribeInput) (*Subscription, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrBadRequest)
	}

	return s.repo.Put(ctx, Subscription{
		Email:        email,
		Source:       SourceDirect,
		Status:       StatusActive,
		SubscribedAt: time.Now().UTC(),
	})
}

// SubscribeFromRSVP records an RSVP opt-in, tagged with the event slug.
func (s *Service) SubscribeFromRSVP(ctx context.Context, email, eventSlug string) (*Subscription, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrBadRequest)
	}

	return s.repo.Put(ctx, Subscription{
		Email:        email,
		Source:       SourceEventRSVPPfx + eventSlug,
		Status:       StatusActive,
		SubscribedAt: time.Now().UTC(),
	})
}

// List returns all subscriptions for the dashboard. Non-admins get an empty
// list, never an error.
func (s *Service) List(ctx context.Context, actor access.Actor) ([]Subscription, error) {
	d := access.CanRead(actor.Role, actor.CommunityID, access.ResourceNewsletter)
	if d.Scope.Empty() {
		return []Subscription{}, nil
	}
	return s.repo.List(ctx)
}

// Remove deletes a subscription. Admin only.
func (s *Service) Remove(ctx context.Context, actor access.Actor, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrBadRequest)
	}
	if !access.CanWrite(actor, access.ResourceNewsletter, access.ActionDelete, access.Target{}) {
		return fmt.Errorf("%w: only admins can remove subscribers", ErrUnauthorized)
	}
	if _, err := s.repo.Get(ctx, email); err != nil {
		return err
	}
	return s.repo.Delete(ctx, email)
}

// ListDevSASubscribers returns the legacy subscriber list. Non-admins get an
// empty list.
func (s *Service) ListDevSASubscribers(ctx context.Context, actor access.Actor) ([]DevSASubscriber, error) {
	d := access.CanRead(actor.Role, actor.CommunityID, access.ResourceDevSASubscribers)
	if d.Scope.Empty() {
		return []DevSASubscriber{}, nil
	}
	return s.repo.ListDevSASubscribers(ctx)
}
