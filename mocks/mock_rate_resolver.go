package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moogship/internal/domain"
)

// MockRateResolver is a mock implementation of port.RateResolver.
type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) Resolve(ctx context.Context, hsCode string) *domain.HTSEntry {
	args := m.Called(ctx, hsCode)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.HTSEntry)
}
