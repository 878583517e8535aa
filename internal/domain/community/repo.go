package community

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
	return r.fs.Collection("communities")
}

func (r *Repo) metaRef() *firestore.DocumentRef {
	return r.fs.Collection("meta").Doc("config")
}

// Create creates a community document keyed by its ID. A duplicate ID is a
// collision error, never a silent overwrite.
func (r *Repo) Create(ctx context.Context, c Community) (*Community, error) {
	ref := r.collection().Doc(c.ID)

	if _, err := ref.Create(ctx, c); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, fmt.Errorf("%w: community %q already exists", ErrAlreadyExists, c.ID)
		}
		return nil, fmt.Errorf("failed to create community: %w", err)
	}
	return &c, nil
}

// Get retrieves a community by ID.
func (r *Repo) Get(ctx context.Context, communityID string) (*Community, error) {
	doc, err := r.collection().Doc(communityID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: community not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get community: %w", err)
	}

	var c Community
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to parse community: %w", err)
	}
	if c.ID == "" {
		c.ID = doc.Ref.ID
	}
	return &c, nil
}

// Update merges updates into a community document and returns the result.
func (r *Repo) Update(ctx context.Context, communityID string, updates map[string]interface{}) (*Community, error) {
	ref := r.collection().Doc(communityID)

	if _, err := ref.Set(ctx, updates, firestore.MergeAll); err != nil {
		return nil, fmt.Errorf("failed to update community: %w", err)
	}
	return r.Get(ctx, communityID)
}

// Delete deletes a community document.
func (r *Repo) Delete(ctx context.Context, communityID string) error {
	if _, err := r.collection().Doc(communityID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete community: %w", err)
	}
	return nil
}

// List lists all communities ordered by name.
func (r *Repo) List(ctx context.Context) ([]Community, error) {
	iter := r.collection().OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []Community
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate communities: %w", err)
		}

		var c Community
		if err := doc.DataTo(&c); err != nil {
			continue
		}
		if c.ID == "" {
			c.ID = doc.Ref.ID
		}
		out = append(out, c)
	}

	if out == nil {
		out = []Community{}
	}
	return out, nil
}

// StoreMode reads the communities store mode from meta/config. A missing
// document means the legacy static mode.
func (r *Repo) StoreMode(ctx context.Context) (string, error) {
	doc, err := r.metaRef().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return StoreModeStatic, nil
		}
		return "", fmt.Errorf("failed to read store mode: %w", err)
	}

	mode, err := doc.DataAt("communityStore")
	if err != nil {
		return StoreModeStatic, nil
	}
	if m, ok := mode.(string); ok && m == StoreModeFirestore {
		return StoreModeFirestore, nil
	}
	return StoreModeStatic, nil
}

// SetStoreMode flips the communities store mode.
func (r *Repo) SetStoreMode(ctx context.Context, mode string) error {
	_, err := r.metaRef().Set(ctx, map[string]interface{}{
		"communityStore": mode,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to set store mode: %w", err)
	}
	return nil
}
