package newsletter

import (
	"context"
	"fmt"

	"devsa-hub/backend/internal/utils"

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
	return r.fs.Collection("newsletter")
}

// Put upserts a subscription keyed by normalized email, which makes repeat
// signups idempotent. An existing subscription keeps its original source.
func (r *Repo) Put(ctx context.Context, sub Subscription) (*Subscription, error) {
	sub.Email = utils.NormalizeEmail(sub.Email)
	ref := r.collection().Doc(sub.Email)

	if _, err := ref.Create(ctx, sub); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return r.Get(ctx, sub.Email)
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return &sub, nil
}

// Get retrieves a subscription by email.
func (r *Repo) Get(ctx context.Context, email string) (*Subscription, error) {
	email = utils.NormalizeEmail(email)
	doc, err := r.collection().Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: subscription not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	var sub Subscription
	if err := doc.DataTo(&sub); err != nil {
		return nil, fmt.Errorf("failed to parse subscription: %w", err)
	}
	if sub.Email == "" {
		sub.Email = doc.Ref.ID
	}
	return &sub, nil
}

// Delete removes a subscription.
func (r *Repo) Delete(ctx context.Context, email string) error {
	email = utils.NormalizeEmail(email)
	if _, err := r.collection().Doc(email).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

// List lists all subscriptions, newest first.
func (r *Repo) List(ctx context.Context) ([]Subscription, error) {
	iter := r.collection().OrderBy("subscribedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []Subscription
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate subscriptions: %w", err)
		}

		var sub Subscription
		if err := doc.DataTo(&sub); err != nil {
			continue
		}
		if sub.Email == "" {
			sub.Email = doc.Ref.ID
		}
		out = append(out, sub)
	}

	if out == nil {
		out = []Subscription{}
	}
	return out, nil
}

// ListDevSASubscribers lists the legacy devsaSubscribers collection.
func (r *Repo) ListDevSASubscribers(ctx context.Context) ([]DevSASubscriber, error) {
	iter := r.fs.Collection("devsaSubscribers").Documents(ctx)
	defer iter.Stop()

	var out []DevSASubscriber
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate devsa subscribers: %w", err)
		}

		var s DevSASubscriber
		if err := doc.DataTo(&s); err != nil {
			continue
		}
		if s.ID == "" {
			s.ID = doc.Ref.ID
		}
		out = append(out, s)
	}

	if out == nil {
		out = []DevSASubscriber{}
	}
	return out, nil
}
