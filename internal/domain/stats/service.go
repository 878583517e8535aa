package stats

import (
	"context"
	"fmt"
	"time"

	"devsa-hub/backend/internal/domain/access"
	"devsa-hub/backend/internal/domain/accessrequest"
	"devsa-hub/backend/internal/domain/event"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type Service struct {
	client *firestore.Client
}

func NewService(client *firestore.Client) *Service {
	return &Service{client: client}
}

// GetDashboardStats computes the summary counts for the admin dashboard.
// Admin only; the per-community organizer view gets its numbers from its own
// scoped lists instead.
func (s *Service) GetDashboardStats(ctx context.Context, actor access.Actor, now time.Time) (*DashboardStats, error) {
	if !access.HasAdminAccess(actor.Role) {
		return nil, fmt.Errorf("%w: admin access required", ErrUnauthorized)
	}

	out := &DashboardStats{}

	eventsIter := s.client.Collection("events").Documents(ctx)
	for {
		doc, err := eventsIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get events: %w", err)
		}

		out.Events.Total++
		data := doc.Data()
		status, _ := data["status"].(string)
		if status == event.StatusPublished {
			out.Events.Published++
		} else {
			out.Events.Draft++
		}

		if date, ok := data["date"].(time.Time); ok {
			if date.Before(now) {
				out.Events.Archived++
			} else {
				out.Events.Upcoming++
			}
		}
	}

	out.Communities = s.count(ctx, "communities")
	out.RSVPs = s.count(ctx, "rsvps")
	out.Newsletter = s.count(ctx, "newsletter")
	out.Speakers = s.count(ctx, "speakers")

	requestsIter := s.client.Collection("accessRequests").Documents(ctx)
	for {
		doc, err := requestsIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			break
		}

		out.Requests.Total++
		data := doc.Data()
		if status, _ := data["status"].(string); status == accessrequest.StatusPending {
			out.Requests.Pending++
		}
	}

	return out, nil
}

func (s *Service) count(ctx context.Context, collection string) int {
	iter := s.client.Collection(collection).Documents(ctx)
	n := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			break
		}
		n++
	}
	return n
}
