package principal

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
	return r.fs.Collection("admins")
}

// Create creates an admin record, keyed by normalized email so the email is
// unique by construction.
func (r *Repo) Create(ctx context.Context, p Principal) (*Principal, error) {
	p.Email = utils.NormalizeEmail(p.Email)
	ref := r.collection().Doc(p.Email)

	if _, err := ref.Create(ctx, p); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, fmt.Errorf("%w: %s already has access", ErrAlreadyExists, p.Email)
		}
		return nil, fmt.Errorf("failed to create admin record: %w", err)
	}
	return &p, nil
}

// Put writes an admin record unconditionally (seed / approve paths).
func (r *Repo) Put(ctx context.Context, p Principal) (*Principal, error) {
	p.Email = utils.NormalizeEmail(p.Email)
	if _, err := r.collection().Doc(p.Email).Set(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to write admin record: %w", err)
	}
	return &p, nil
}

// GetByEmail retrieves a principal by email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*Principal, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrBadRequest)
	}

	doc, err := r.collection().Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: no access for %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to get admin record: %w", err)
	}

	var p Principal
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to parse admin record: %w", err)
	}
	if p.Email == "" {
		p.Email = doc.Ref.ID
	}
	return &p, nil
}

// Update merges updates into an admin record and returns the result.
func (r *Repo) Update(ctx context.Context, email string, updates map[string]interface{}) (*Principal, error) {
	email = utils.NormalizeEmail(email)
	if _, err := r.collection().Doc(email).Set(ctx, updates, firestore.MergeAll); err != nil {
		return nil, fmt.Errorf("failed to update admin record: %w", err)
	}
	return r.GetByEmail(ctx, email)
}

// Delete removes an admin record.
func (r *Repo) Delete(ctx context.Context, email string) error {
	email = utils.NormalizeEmail(email)
	if _, err := r.collection().Doc(email).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete admin record: %w", err)
	}
	return nil
}

// List lists all admin records.
func (r *Repo) List(ctx context.Context) ([]Principal, error) {
	iter := r.collection().OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []Principal
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate admin records: %w", err)
		}

		var p Principal
		if err := doc.DataTo(&p); err != nil {
			continue
		}
		if p.Email == "" {
			p.Email = doc.Ref.ID
		}
		out = append(out, p)
	}

	if out == nil {
		out = []Principal{}
	}
	return out, nil
}
