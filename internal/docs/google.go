package docs

import (
	"context"
	"fmt"

	gdocs "google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
)

// GoogleService is the production Service backed by the Google Docs API.
type GoogleService struct {
	docs *gdocs.Service
}

// NewGoogleService authenticates with a service-account credentials file
// and returns a handle that is safe for concurrent use.
func NewGoogleService(ctx context.Context, credentialsPath string) (*GoogleService, error) {
	svc, err := gdocs.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(gdocs.DocumentsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("docs: create google docs client: %w", err)
	}
	return &GoogleService{docs: svc}, nil
}

// Get fetches the full document tree.
func (g *GoogleService) Get(ctx context.Context, documentID string) (*gdocs.Document, error) {
	return g.docs.Documents.Get(documentID).Context(ctx).Do()
}

// BatchUpdate submits all requests as one atomic update.
func (g *GoogleService) BatchUpdate(ctx context.Context, documentID string, req *gdocs.BatchUpdateDocumentRequest) error {
	_, err := g.docs.Documents.BatchUpdate(documentID, req).Context(ctx).Do()
	return err
}

// Close is a no-op; the HTTP client holds no resources that need releasing.
func (g *GoogleService) Close() error { return nil }
