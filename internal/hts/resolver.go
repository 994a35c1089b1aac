package hts

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"moogship/internal/domain"
	"moogship/internal/port"
)

// Resolver is the single entry point for duty-rate resolution. It tries, in
// strict order: primary table → secondary table → document text extraction →
// chapter-level estimate, returning the first hit. "Not found" is a modeled
// outcome (nil), and a failing stage never aborts the chain.
//
// It implements port.RateResolver.
type Resolver struct {
	store port.DocumentStore
	docID string

	initOnce  sync.Once
	primary   *Table
	secondary *Table

	// The reference document is read at most once per process. singleflight
	// collapses concurrent first reads into one store call.
	docGroup  singleflight.Group
	docMu     sync.RWMutex
	docText   string
	docLoaded bool
}

// NewResolver creates a Resolver that falls back to the document identified
// by docID in store when neither static table has the code. store may be
// nil, in which case the document stage is skipped.
func NewResolver(store port.DocumentStore, docID string) *Resolver {
	return &Resolver{store: store, docID: docID}
}

// Resolve returns the duty-rate entry for hsCode, or nil when no stage can
// produce one. Implausible input short-circuits before any lookup work.
func (r *Resolver) Resolve(ctx context.Context, hsCode string) *domain.HTSEntry {
	if !IsPlausible(hsCode) {
		log.Printf("hts.Resolver: rejecting implausible code %q", hsCode)
		return nil
	}

	r.initOnce.Do(r.initTables)

	if e := r.primary.Lookup(hsCode); e != nil {
		log.Printf("hts.Resolver: %q resolved from %s table", hsCode, r.primary.Name())
		return e
	}
	if e := r.secondary.Lookup(hsCode); e != nil {
		log.Printf("hts.Resolver: %q resolved from %s table", hsCode, r.secondary.Name())
		return e
	}

	if e := r.extractFromDocument(ctx, hsCode); e != nil {
		log.Printf("hts.Resolver: %q resolved from document text", hsCode)
		r.primary.Put(*e)
		return e
	}

	if e := EstimateByChapter(hsCode); e != nil {
		log.Printf("hts.Resolver: %q estimated from chapter %d", hsCode, e.Chapter)
		r.primary.Put(*e)
		return e
	}

	log.Printf("hts.Resolver: no rate found for %q", hsCode)
	return nil
}

func (r *Resolver) initTables() {
	r.primary = newPrimaryTable()
	r.secondary = newSecondaryTable()
	log.Printf("hts.Resolver: tables initialized (%s=%d entries, %s=%d entries)",
		r.primary.Name(), r.primary.Len(), r.secondary.Name(), r.secondary.Len())
}

// extractFromDocument runs the text extractor against the reference
// document. Store failures are logged and converted to a nil stage result so
// the fallback chain continues.
func (r *Resolver) extractFromDocument(ctx context.Context, hsCode string) *domain.HTSEntry {
	if r.store == nil {
		return nil
	}
	text, err := r.documentText(ctx)
	if err != nil {
		log.Printf("hts.Resolver: document stage unavailable: %v", err)
		return nil
	}
	return ExtractEntry(text, hsCode)
}

func (r *Resolver) documentText(ctx context.Context) (string, error) {
	r.docMu.RLock()
	if r.docLoaded {
		defer r.docMu.RUnlock()
		return r.docText, nil
	}
	r.docMu.RUnlock()

	v, err, _ := r.docGroup.Do("document", func() (interface{}, error) {
		text, err := r.store.ReadDocument(ctx, r.docID)
		if err != nil {
			return "", err
		}
		r.docMu.Lock()
		r.docText = text
		r.docLoaded = true
		r.docMu.Unlock()
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
