package speaker

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
	return r.fs.Collection("speakers")
}

// Create files a speaker submission.
func (r *Repo) Create(ctx context.Context, sub Submission) (*Submission, error) {
	ref := r.collection().NewDoc()
	sub.ID = ref.ID

	if _, err := ref.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create speaker submission: %w", err)
	}
	return &sub, nil
}

// Get retrieves a submission by ID.
func (r *Repo) Get(ctx context.Context, submissionID string) (*Submission, error) {
	doc, err := r.collection().Doc(submissionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: speaker submission not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get speaker submission: %w", err)
	}

	var sub Submission
	if err := doc.DataTo(&sub); err != nil {
		return nil, fmt.Errorf("failed to parse speaker submission: %w", err)
	}
	sub.ID = doc.Ref.ID
	return &sub, nil
}

// SetStatus updates a submission's review status.
func (r *Repo) SetStatus(ctx context.Context, submissionID, status string) error {
	_, err := r.collection().Doc(submissionID).Set(ctx, map[string]interface{}{
		"status": status,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update speaker submission: %w", err)
	}
	return nil
}

// Delete removes a submission.
func (r *Repo) Delete(ctx context.Context, submissionID string) error {
	if _, err := r.collection().Doc(submissionID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete speaker submission: %w", err)
	}
	return nil
}

// List lists submissions, newest first.
func (r *Repo) List(ctx context.Context) ([]Submission, error) {
	iter := r.collection().OrderBy("submittedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []Submission
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate speaker submissions: %w", err)
		}

		var sub Submission
		if err := doc.DataTo(&sub); err != nil {
			continue
		}
		sub.ID = doc.Ref.ID
		out = append(out, sub)
	}

	if out == nil {
		out = []Submission{}
	}
	return out, nil
}
