// Package docs stores conversation memories in a single external document.
//
// The Adapter only knows two operations: prepend a timestamped entry and
// read the whole text back. Storage lives behind the Service interface,
// implemented by the Google Docs API (production) and by SQLite (local use
// and tests). Both speak the Google Docs document model.
package docs

import (
	"context"
	"fmt"
	"strings"
	"time"

	gdocs "google.golang.org/api/docs/v1"
)

// TimestampLayout is the format of the "Timestamp:" line of every entry.
const TimestampLayout = "2006-01-02 15:04:05"

// anchorIndex is where entries are inserted: the start of the body.
const anchorIndex = 1

// Service is the subset of the document API the adapter needs.
type Service interface {
	Get(ctx context.Context, documentID string) (*gdocs.Document, error)
	BatchUpdate(ctx context.Context, documentID string, req *gdocs.BatchUpdateDocumentRequest) error
}

// Adapter appends to and reads from one fixed document.
type Adapter struct {
	svc        Service
	documentID string
	now        func() time.Time
}

// NewAdapter creates an Adapter bound to documentID.
func NewAdapter(svc Service, documentID string) *Adapter {
	return &Adapter{svc: svc, documentID: documentID, now: time.Now}
}

// DocumentID returns the identifier of the memory document.
func (a *Adapter) DocumentID() string { return a.documentID }

// AppendEntry inserts text at the top of the document under a
// "=== New Memory ===" header with the local wall-clock time. Entries are
// never merged or deduplicated, so the document reads newest first.
//
// The call is not cancellable: once submitted it runs to completion.
func (a *Adapter) AppendEntry(ctx context.Context, text string) error {
	entry := fmt.Sprintf("\n=== New Memory ===\nTimestamp: %s\n%s\n",
		a.now().Format(TimestampLayout), text)

	req := &gdocs.BatchUpdateDocumentRequest{
		Requests: []*gdocs.Request{{
			InsertText: &gdocs.InsertTextRequest{
				Location: &gdocs.Location{Index: anchorIndex},
				Text:     entry,
			},
		}},
	}

	if err := a.svc.BatchUpdate(context.WithoutCancel(ctx), a.documentID, req); err != nil {
		return fmt.Errorf("docs: append entry: %w", err)
	}
	return nil
}

// ReadAll returns every non-blank text run of the document, trimmed and
// joined by newlines, in document order. An empty document yields "".
func (a *Adapter) ReadAll(ctx context.Context) (string, error) {
	doc, err := a.svc.Get(context.WithoutCancel(ctx), a.documentID)
	if err != nil {
		return "", fmt.Errorf("docs: read document: %w", err)
	}
	return ExtractText(doc), nil
}

// ExtractText walks body → paragraphs → text runs. Tables, section breaks
// and other structural elements are skipped.
func ExtractText(doc *gdocs.Document) string {
	if doc == nil || doc.Body == nil {
		return ""
	}

	var lines []string
	for _, el := range doc.Body.Content {
		if el == nil || el.Paragraph == nil {
			continue
		}
		for _, pe := range el.Paragraph.Elements {
			if pe == nil || pe.TextRun == nil {
				continue
			}
			if text := strings.TrimSpace(pe.TextRun.Content); text != "" {
				lines = append(lines, text)
			}
		}
	}
	return strings.Join(lines, "\n")
}
