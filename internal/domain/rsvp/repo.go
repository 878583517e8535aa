package rsvp

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) collection() *firestore.CollectionRef {
	return r.fs.Collection("rsvps")
}

// Create records a registration.
func (r *Repo) Create(ctx context.Context, reg RSVP) (*RSVP, error) {
	ref := r.collection().NewDoc()
	reg.ID = ref.ID

	if _, err := ref.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to create rsvp: %w", err)
	}
	return &reg, nil
}

// Delete removes a registration.
func (r *Repo) Delete(ctx context.Context, rsvpID string) error {
	if _, err := r.collection().Doc(rsvpID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete rsvp: %w", err)
	}
	return nil
}

// List lists registrations, optionally filtered by event or host community.
func (r *Repo) List(ctx context.Context, eventID, communityID string) ([]RSVP, error) {
	q := r.collection().Query
	if eventID != "" {
		q = q.Where("eventId", "==", eventID)
	}
	if communityID != "" {
		q = q.Where("communityId", "==", communityID)
	}
	q = q.OrderBy("submittedAt", firestore.Desc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []RSVP
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate rsvps: %w", err)
		}

		var reg RSVP
		if err := doc.DataTo(&reg); err != nil {
			continue
		}
		reg.ID = doc.Ref.ID
		out = append(out, reg)
	}

	if out == nil {
		out = []RSVP{}
	}
	return out, nil
}
