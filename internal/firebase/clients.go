package firebase

import (
	"context"
	"fmt"
	"os"

	"devsa-hub/backend/internal/config"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Clients bundles Firebase + GCP clients used by handlers.
type Clients struct {
	App       *firebase.App
	Auth      *auth.Client
	Firestore *firestore.Client
	Storage   *storage.Client

	ProjectID string
	Bucket    string
}

func NewClients(ctx context.Context, cfg config.Config) (*Clients, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("missing FIREBASE_PROJECT_ID or GOOGLE_CLOUD_PROJECT")
	}

	var opts []option.ClientOption
	// In Cloud Run / GCP, Application Default Credentials are used automatically.
	// Locally, set GOOGLE_APPLICATION_CREDENTIALS to a service account JSON file,
	// or FIREBASE_SERVICE_ACCOUNT_JSON to the raw json content.
	if cred := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); cred != "" {
		opts = append(opts, option.WithCredentialsFile(cred))
	} else if raw := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); raw != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(raw)))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, err
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	fs, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, err
	}

	st, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &Clients{
		App:       app,
		Auth:      authClient,
		Firestore: fs,
		Storage:   st,
		ProjectID: cfg.ProjectID,
		Bucket:    cfg.StorageBucket,
	}, nil
}
