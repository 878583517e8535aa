package rsvp

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"devsa-hub/backend/internal/domain/access"
	"devsa-hub/backend/internal/domain/event"
	"devsa-hub/backend/internal/domain/newsletter"
	"devsa-hub/backend/internal/magen"
)

type Service struct {
	repo          *Repo
	eventSvc      *event.Service
	newsletterSvc *newsletter.Service
	verifier      *magen.Client
}

func NewService(repo *Repo, eventSvc *event.Service, newsletterSvc *newsletter.Service) *Service {
	return &Service{repo: repo, eventSvc: eventSvc, newsletterSvc: newsletterSvc}
}

// SetVerifier sets the Magen client for advisory bot scoring.
func (s *Service) SetVerifier(v *magen.Client) {
	s.verifier = v
}

// Submit handles a public registration. The event must be published with
// registration enabled, and must not have started yet: submissions during or
// after the event are rejected with a registration-closed error.
func (s *Service) Submit(ctx context.Context, idOrSlug string, in SubmitRSVPInput, remoteIP string) (*RSVP, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", ErrBadRequest)
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrBadRequest)
	}

	ev, err := s.eventSvc.GetPublic(ctx, idOrSlug)
	if err != nil {
		if event.IsErrNotFound(err) {
			return nil, fmt.Errorf("%w: event not found", ErrNotFound)
		}
		return nil, err
	}

	now := time.Now().UTC()
	if !event.CanRegister(*ev, now) {
		return nil, fmt.Errorf("%w: registration is closed for this event", ErrRegistrationClosed)
	}

	// Advisory bot check: record the score, never block on it.
	var score float64
	if s.verifier.Enabled() && in.MagenToken != "" {
		verdict, err := s.verifier.Verify(ctx, in.MagenToken, remoteIP)
		if err != nil {
			log.Printf("magen verify unavailable for %s: %v", ev.Slug, err)
		} else {
			score = verdict.Score
			if verdict.Score < 0.3 {
				log.Printf("magen low score %.2f (%s) on %s from %s", verdict.Score, verdict.Verdict, ev.Slug, remoteIP)
			}
		}
	}

	communityID := ""
	if len(ev.CommunityIDs) > 0 {
		communityID = ev.CommunityIDs[0]
	}

	reg := RSVP{
		EventID:        ev.ID,
		EventSlug:      ev.Slug,
		CommunityID:    communityID,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		JoinNewsletter: in.JoinNewsletter,
		MagenScore:     score,
		SubmittedAt:    now,
	}

	out, err := s.repo.Create(ctx, reg)
	if err != nil {
		return nil, err
	}

	if in.JoinNewsletter {
		if _, err := s.newsletterSvc.SubscribeFromRSVP(ctx, in.Email, ev.Slug); err != nil {
			// The registration already landed; a failed opt-in is not fatal.
			log.Printf("newsletter opt-in failed for %s: %v", ev.Slug, err)
		}
	}

	return out, nil
}

// ListScoped lists the registrations the actor may see: admins all, organizers
// their community, everyone else an empty list.
func (s *Service) ListScoped(ctx context.Context, actor access.Actor, eventID string) ([]RSVP, error) {
	d := access.CanRead(actor.Role, actor.CommunityID, access.ResourceRSVPs)
	switch {
	case d.Scope.All:
		return s.repo.List(ctx, eventID, "")
	case d.Scope.CommunityID != "":
		return s.repo.List(ctx, eventID, d.Scope.CommunityID)
	default:
		return []RSVP{}, nil
	}
}

// Remove deletes a registration. Admin only.
func (s *Service) Remove(ctx context.Context, actor access.Actor, rsvpID string) error {
	if rsvpID == "" {
		return fmt.Errorf("%w: rsvpId is required", ErrBadRequest)
	}
	if !access.CanWrite(actor, access.ResourceRSVPs, access.ActionDelete, access.Target{}) {
		return fmt.Errorf("%w: only admins can remove registrations", ErrUnauthorized)
	}
	return s.repo.Delete(ctx, rsvpID)
}
