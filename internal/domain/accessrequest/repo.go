package accessrequest

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
	return r.fs.Collection("accessRequests")
}

// Create files a new request.
func (r *Repo) Create(ctx context.Context, req Request) (*Request, error) {
	ref := r.collection().NewDoc()
	req.ID = ref.ID

	if _, err := ref.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create access request: %w", err)
	}
	return &req, nil
}

// Get retrieves a request by ID.
func (r *Repo) Get(ctx context.Context, requestID string) (*Request, error) {
	doc, err := r.collection().Doc(requestID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: access request not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get access request: %w", err)
	}

	var req Request
	if err := doc.DataTo(&req); err != nil {
		return nil, fmt.Errorf("failed to parse access request: %w", err)
	}
	req.ID = doc.Ref.ID
	return &req, nil
}

// SetStatus updates a request's status.
func (r *Repo) SetStatus(ctx context.Context, requestID, status string) error {
	_, err := r.collection().Doc(requestID).Set(ctx, map[string]interface{}{
		"status": status,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update access request: %w", err)
	}
	return nil
}

// Delete removes a request.
func (r *Repo) Delete(ctx context.Context, requestID string) error {
	if _, err := r.collection().Doc(requestID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete access request: %w", err)
	}
	return nil
}

// List lists requests, newest first.
func (r *Repo) List(ctx context.Context) ([]Request, error) {
	iter := r.collection().OrderBy("submittedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []Request
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate access requests: %w", err)
		}

		var req Request
		if err := doc.DataTo(&req); err != nil {
			continue
		}
		req.ID = doc.Ref.ID
		out = append(out, req)
	}

	if out == nil {
		out = []Request{}
	}
	return out, nil
}
