package port

import "context"

// DocumentStore abstracts access to the plain-text rendering of a reference
// tariff-schedule document. How the text was produced (PDF-to-text or
// otherwise) is the store's concern, not the resolver's.
type DocumentStore interface {
	// ReadDocument returns the entire document identified by id as UTF-8 text.
	ReadDocument(ctx context.Context, id string) (string, error)
}
