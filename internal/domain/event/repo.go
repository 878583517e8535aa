package event

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) collection() *firestore.CollectionRef {
	return r.fs.Collection("events")
}

// Create creates a new event document.
func (r *Repo) Create(ctx context.Context, e Event) (*Event, error) {
	ref := r.collection().NewDoc()
	e.ID = ref.ID

	if _, err := ref.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &e, nil
}

// Put writes an event at its fixed document ID, overwriting any existing
// document. Used by the seeder for the flagship static events.
func (r *Repo) Put(ctx context.Context, e Event) (*Event, error) {
	if _, err := r.collection().Doc(e.ID).Set(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to put event: %w", err)
	}
	return &e, nil
}

// Get retrieves an event by ID.
func (r *Repo) Get(ctx context.Context, eventID string) (*Event, error) {
	doc, err := r.collection().Doc(eventID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: event not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var e Event
	if err := doc.DataTo(&e); err != nil {
		return nil, fmt.Errorf("failed to parse event: %w", err)
	}
	e.ID = doc.Ref.ID
	return &e, nil
}

// GetBySlug retrieves an event by its URL slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*Event, error) {
	iter := r.collection().Where("slug", "==", slug).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("%w: event not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}

	var e Event
	if err := doc.DataTo(&e); err != nil {
		return nil, fmt.Errorf("failed to parse event: %w", err)
	}
	e.ID = doc.Ref.ID
	return &e, nil
}

// Update merges updates into an event document and returns the result.
func (r *Repo) Update(ctx context.Context, eventID string, updates map[string]interface{}) (*Event, error) {
	ref := r.collection().Doc(eventID)

	if _, err := ref.Set(ctx, updates, firestore.MergeAll); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return r.Get(ctx, eventID)
}

// Delete deletes an event document.
func (r *Repo) Delete(ctx context.Context, eventID string) error {
	if _, err := r.collection().Doc(eventID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// List lists events, optionally filtered by status and host community.
func (r *Repo) List(ctx context.Context, input ListEventsInput) ([]Event, error) {
	q := r.collection().Query

	if input.Status != "" {
		q = q.Where("status", "==", input.Status)
	}
	if input.CommunityID != "" {
		q = q.Where("communityIds", "array-contains", input.CommunityID)
	}

	limit := input.Limit
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	q = q.OrderBy("date", firestore.Asc).Limit(int(limit))

	iter := q.Documents(ctx)
	defer iter.Stop()

	var events []Event
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events: %w", err)
		}

		var e Event
		if err := doc.DataTo(&e); err != nil {
			continue
		}
		e.ID = doc.Ref.ID
		events = append(events, e)
	}

	if events == nil {
		events = []Event{}
	}
	return events, nil
}
