package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"moogship/internal/domain"
	"moogship/internal/port"
)

// TariffService resolves duty rates for shipment line items.
type TariffService interface {
	GetDutyRate(ctx context.Context, hsCode string) *domain.HTSEntry
}

type tariffService struct {
	resolver port.RateResolver
}

// NewTariffService creates a new TariffService implementation.
func NewTariffService(resolver port.RateResolver) TariffService {
	return &tariffService{resolver: resolver}
}

// GetDutyRate resolves hsCode, tagging each lookup with a request ID for log
// correlation. A nil result means no duty rate is available, not a failure.
func (s *tariffService) GetDutyRate(ctx context.Context, hsCode string) *domain.HTSEntry {
	reqID := uuid.New()
	start := time.Now()

	entry := s.resolver.Resolve(ctx, hsCode)
	if entry == nil {
		log.Printf("service.TariffService: [%s] no duty rate for %q (%s)",
			reqID, hsCode, time.Since(start).Round(time.Microsecond))
		return nil
	}

	log.Printf("service.TariffService: [%s] %q → %s (source=%s confidence=%s) in %s",
		reqID, hsCode, entry.GeneralRate, entry.Source, entry.Confidence,
		time.Since(start).Round(time.Microsecond))
	return entry
}
