package port

import (
	"context"

	"moogship/internal/domain"
)

// RateResolver resolves an HS code to its duty-rate entry.
// A nil result means "no duty rate available", an expected outcome, never
// surfaced as an error.
type RateResolver interface {
	Resolve(ctx context.Context, hsCode string) *domain.HTSEntry
}
