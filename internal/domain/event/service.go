package event

import (
	"context"
	"fmt"
	"time"

	"devsa-hub/backend/internal/domain/access"
	"devsa-hub/backend/internal/utils"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// Create creates a new event for the actor's community.
func (s *Service) Create(ctx context.Context, actor access.Actor, in CreateEventInput) (*Event, error) {
	if err := s.validateCreateInput(in); err != nil {
		return nil, err
	}

	ids := in.HostIDs()
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one host community is required", ErrBadRequest)
	}

	if !access.CanWrite(actor, access.ResourceEvents, access.ActionCreate, access.Target{CommunityIDs: ids}) {
		return nil, fmt.Errorf("%w: not allowed to create events for this community", ErrUnauthorized)
	}

	date, err := time.Parse(time.RFC3339, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be RFC 3339", ErrBadRequest)
	}

	var endTime time.Time
	if in.EndTime != "" {
		endTime, err = time.Parse(time.RFC3339, in.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: endTime must be RFC 3339", ErrBadRequest)
		}
		if !endTime.After(date) {
			return nil, fmt.Errorf("%w: endTime must be after date", ErrBadRequest)
		}
	}

	status := in.Status
	if status == "" {
		status = StatusDraft
	}
	if status != StatusDraft && status != StatusPublished {
		return nil, fmt.Errorf("%w: status must be draft or published", ErrBadRequest)
	}

	eventType := in.EventType
	if eventType == "" {
		eventType = "in-person"
	}

	now := time.Now().UTC()
	e := Event{
		Slug:          utils.Slugify(in.Title) + "-" + date.Format("2006-01-02"),
		Title:         in.Title,
		Description:   in.Description,
		Date:          date,
		EndTime:       endTime,
		CommunityIDs:  ids,
		CommunityName: in.CommunityName,
		Status:        status,
		EventType:     eventType,
		Location:      in.Location,
		ImageURL:      in.ImageURL,
		RSVPEnabled:   in.RSVPEnabled,
		CreatedBy:     actor.Email,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return s.repo.Create(ctx, e)
}

// Update updates an event. Static events refuse every mutation.
func (s *Service) Update(ctx context.Context, actor access.Actor, eventID string, in UpdateEventInput) (*Event, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: eventId is required", ErrBadRequest)
	}

	existing, err := s.repo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if existing.IsStatic {
		return nil, fmt.Errorf("%w: static events must be edited in source data", ErrStatic)
	}

	if !access.CanWrite(actor, access.ResourceEvents, access.ActionUpdate, access.Target{CommunityIDs: existing.CommunityIDs}) {
		return nil, fmt.Errorf("%w: not allowed to edit this event", ErrUnauthorized)
	}

	updates := map[string]interface{}{
		"updatedAt": time.Now().UTC(),
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrBadRequest)
		}
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Date != nil {
		date, err := time.Parse(time.RFC3339, *in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be RFC 3339", ErrBadRequest)
		}
		updates["date"] = date
	}
	if in.EndTime != nil {
		if *in.EndTime == "" {
			updates["endTime"] = time.Time{}
		} else {
			endTime, err := time.Parse(time.RFC3339, *in.EndTime)
			if err != nil {
				return nil, fmt.Errorf("%w: endTime must be RFC 3339", ErrBadRequest)
			}
			updates["endTime"] = endTime
		}
	}
	if in.CommunityIDs != nil || in.CommunityID != nil {
		ids := []string{}
		if in.CommunityIDs != nil {
			ids = append(ids, *in.CommunityIDs...)
		}
		if in.CommunityID != nil {
			ids = append(ids, SplitCommunityIDs(*in.CommunityID)...)
		}
		ids = dedupeTokens(ids)
		if len(ids) == 0 {
			return nil, fmt.Errorf("%w: at least one host community is required", ErrBadRequest)
		}
		// Re-check against the new host list so an organizer cannot move an
		// event out of their own community.
		if !access.CanWrite(actor, access.ResourceEvents, access.ActionUpdate, access.Target{CommunityIDs: ids}) {
			return nil, fmt.Errorf("%w: not allowed to assign this event to those communities", ErrUnauthorized)
		}
		updates["communityIds"] = ids
	}
	if in.CommunityName != nil {
		updates["communityName"] = *in.CommunityName
	}
	if in.Status != nil {
		if *in.Status != StatusDraft && *in.Status != StatusPublished {
			return nil, fmt.Errorf("%w: status must be draft or published", ErrBadRequest)
		}
		updates["status"] = *in.Status
	}
	if in.EventType != nil {
		et := *in.EventType
		if et == "" {
			et = "in-person"
		} else if !IsValidEventType(et) {
			return nil, fmt.Errorf("%w: eventType must be one of: in-person, hybrid, virtual", ErrBadRequest)
		}
		updates["eventType"] = et
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.ImageURL != nil {
		updates["imageUrl"] = *in.ImageURL
	}
	if in.RSVPEnabled != nil {
		updates["rsvpEnabled"] = *in.RSVPEnabled
	}

	return s.repo.Update(ctx, eventID, updates)
}

// Delete deletes an event. Static events refuse every mutation.
func (s *Service) Delete(ctx context.Context, actor access.Actor, eventID string) error {
	if eventID == "" {
		return fmt.Errorf("%w: eventId is required", ErrBadRequest)
	}

	existing, err := s.repo.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if existing.IsStatic {
		return fmt.Errorf("%w: static events must be edited in source data", ErrStatic)
	}

	if !access.CanWrite(actor, access.ResourceEvents, access.ActionDelete, access.Target{CommunityIDs: existing.CommunityIDs}) {
		return fmt.Errorf("%w: not allowed to delete this event", ErrUnauthorized)
	}

	return s.repo.Delete(ctx, eventID)
}

// GetPublic retrieves a published event by ID or slug. Drafts stay hidden:
// they resolve to not-found, never to a permission error.
func (s *Service) GetPublic(ctx context.Context, idOrSlug string) (*Event, error) {
	if idOrSlug == "" {
		return nil, fmt.Errorf("%w: event id or slug is required", ErrBadRequest)
	}

	e, err := s.repo.Get(ctx, idOrSlug)
	if IsErrNotFound(err) {
		e, err = s.repo.GetBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, err
	}
	if e.Status != StatusPublished {
		return nil, fmt.Errorf("%w: event not found", ErrNotFound)
	}
	return e, nil
}

// ListPublic lists published events for the public site.
func (s *Service) ListPublic(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx, ListEventsInput{Status: StatusPublished})
}

// ListScoped lists the events the actor may see on the dashboard: admins see
// everything, organizers only their community, everyone else an empty list.
func (s *Service) ListScoped(ctx context.Context, actor access.Actor) ([]Event, error) {
	d := access.CanRead(actor.Role, actor.CommunityID, access.ResourceEvents)
	switch {
	case d.Scope.All:
		return s.repo.List(ctx, ListEventsInput{})
	case d.Scope.CommunityID != "":
		return s.repo.List(ctx, ListEventsInput{CommunityID: d.Scope.CommunityID})
	default:
		return []Event{}, nil
	}
}

// Partition returns the dashboard's upcoming/archived split of the actor's
// visible events.
func (s *Service) Partition(ctx context.Context, actor access.Actor, now time.Time) (*Partition, error) {
	events, err := s.ListScoped(ctx, actor)
	if err != nil {
		return nil, err
	}
	p := PartitionByArchive(events, now)
	return &p, nil
}

func (s *Service) validateCreateInput(in CreateEventInput) error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrBadRequest)
	}
	if in.Date == "" {
		return fmt.Errorf("%w: date is required", ErrBadRequest)
	}
	if in.EventType != "" && !IsValidEventType(in.EventType) {
		return fmt.Errorf("%w: eventType must be one of: in-person, hybrid, virtual", ErrBadRequest)
	}
	return nil
}
