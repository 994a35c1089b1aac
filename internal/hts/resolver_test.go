package hts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"moogship/internal/domain"
	"moogship/mocks"
)

const testDocID = "htsus_general_rates.txt"

func TestResolver_StaticTableHit(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	r := NewResolver(store, testDocID)

	e := r.Resolve(context.Background(), "0406.40.44")
	require.NotNil(t, e)
	assert.Equal(t, "12.8%", e.GeneralRate)
	assert.InDelta(t, 0.128, e.Percentage, 1e-9)
	assert.Equal(t, 4, e.Chapter)
	assert.Equal(t, domain.RateSourcePrimaryTable, e.Source)
	assert.Equal(t, domain.ConfidenceHigh, e.Confidence)

	// A table hit never touches the document store.
	store.AssertNotCalled(t, "ReadDocument", mock.Anything, mock.Anything)
}

func TestResolver_FormatTolerance(t *testing.T) {
	r := NewResolver(nil, "")
	ctx := context.Background()

	dotted := r.Resolve(ctx, "0406.40.44")
	undotted := r.Resolve(ctx, "040640440") // mangled grouping, 9 digits
	require.NotNil(t, dotted)
	require.NotNil(t, undotted)
	assert.Equal(t, dotted, undotted)

	spaced := r.Resolve(ctx, "0406 40 44")
	assert.Equal(t, dotted, spaced)
}

func TestResolver_SecondaryTableHit(t *testing.T) {
	r := NewResolver(nil, "")

	e := r.Resolve(context.Background(), "8712.00.15")
	require.NotNil(t, e)
	assert.Equal(t, domain.RateSourceSecondaryTable, e.Source)
	assert.Equal(t, "11%", e.GeneralRate)
}

func TestResolver_StaticTablePrecedesDocument(t *testing.T) {
	// The document disagrees with the curated table; the table wins because
	// the fallback order is fixed, not an aggregation.
	store := new(mocks.MockDocumentStore)
	store.On("ReadDocument", mock.Anything, testDocID).
		Return("0406.40.44\nBlue-veined cheese\nkg\nFree (AU, BH)\n5%\n", nil).Maybe()

	r := NewResolver(store, testDocID)
	e := r.Resolve(context.Background(), "0406.40.44")
	require.NotNil(t, e)
	assert.Equal(t, "12.8%", e.GeneralRate)
	store.AssertNotCalled(t, "ReadDocument", mock.Anything, mock.Anything)
}

func TestResolver_DocumentExtraction(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	store.On("ReadDocument", mock.Anything, testDocID).Return(scheduleText, nil).Once()

	r := NewResolver(store, testDocID)
	ctx := context.Background()

	e := r.Resolve(ctx, "6208.19.90")
	require.NotNil(t, e)
	assert.Equal(t, "8.7%", e.GeneralRate)
	assert.InDelta(t, 0.087, e.Percentage, 1e-9)
	assert.Equal(t, domain.RateSourceDocument, e.Source)
	assert.Equal(t, domain.ConfidenceMedium, e.Confidence)

	// Second resolution is served from the append-only cache; the store is
	// read at most once per process either way.
	again := r.Resolve(ctx, "6208.19.90")
	assert.Equal(t, e, again)
	store.AssertExpectations(t)
}

func TestResolver_ChapterFallback(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	store.On("ReadDocument", mock.Anything, testDocID).Return(scheduleText, nil)

	r := NewResolver(store, testDocID)
	e := r.Resolve(context.Background(), "6199.99.99")
	require.NotNil(t, e)
	assert.InDelta(t, 0.165, e.Percentage, 1e-9)
	assert.Equal(t, domain.ConfidenceLow, e.Confidence)
	assert.Equal(t, domain.RateSourceNotFound, e.Source)
	assert.Equal(t, 61, e.Chapter)
}

func TestResolver_StoreFailureFallsThrough(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	store.On("ReadDocument", mock.Anything, testDocID).Return("", errors.New("s3 down"))

	r := NewResolver(store, testDocID)
	ctx := context.Background()

	// Document stage fails but the chain continues to the estimator.
	e := r.Resolve(ctx, "6199.99.99")
	require.NotNil(t, e)
	assert.Equal(t, domain.RateSourceNotFound, e.Source)

	// No estimate for chapter 12: the whole chain misses, without an error.
	assert.Nil(t, r.Resolve(ctx, "1234.56.78"))
}

func TestResolver_NilStoreSkipsDocumentStage(t *testing.T) {
	r := NewResolver(nil, "")
	e := r.Resolve(context.Background(), "6199.99.99")
	require.NotNil(t, e)
	assert.Equal(t, domain.RateSourceNotFound, e.Source)
}

func TestResolver_NotFound(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	store.On("ReadDocument", mock.Anything, testDocID).Return(scheduleText, nil)

	r := NewResolver(store, testDocID)
	// Plausible code, absent from both tables and the document, chapter 12
	// has no estimate: a modeled miss, not an error.
	assert.Nil(t, r.Resolve(context.Background(), "1234.56.78"))
}

func TestResolver_ImplausibleInputShortCircuits(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	r := NewResolver(store, testDocID)
	ctx := context.Background()

	assert.Nil(t, r.Resolve(ctx, "12"))
	assert.Nil(t, r.Resolve(ctx, ""))
	assert.Nil(t, r.Resolve(ctx, "no digits here"))

	store.AssertNotCalled(t, "ReadDocument", mock.Anything, mock.Anything)
}

// Every entry the resolver returns keeps chapter == first two code digits.
func TestResolver_ChapterInvariant(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	store.On("ReadDocument", mock.Anything, testDocID).Return(scheduleText, nil)

	r := NewResolver(store, testDocID)
	ctx := context.Background()

	for _, code := range []string{
		"0406.40.44", "8518.30.00", "8712.00.15", "6208.19.90", "6199.99.99",
	} {
		e := r.Resolve(ctx, code)
		require.NotNil(t, e, "code %s", code)
		assert.Equal(t, Chapter(e.HSCode), e.Chapter, "code %s", code)
		assert.NotEmpty(t, e.Source, "code %s", code)
		assert.GreaterOrEqual(t, e.Percentage, 0.0, "code %s", code)
	}
}
