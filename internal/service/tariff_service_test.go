package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"moogship/internal/domain"
	"moogship/mocks"
)

func TestTariffService_GetDutyRate(t *testing.T) {
	entry := &domain.HTSEntry{
		HSCode:      "0406.40.44",
		GeneralRate: "12.8%",
		Percentage:  0.128,
		Source:      domain.RateSourcePrimaryTable,
		Confidence:  domain.ConfidenceHigh,
		Chapter:     4,
	}

	t.Run("resolved", func(t *testing.T) {
		resolver := new(mocks.MockRateResolver)
		resolver.On("Resolve", mock.Anything, "0406.40.44").Return(entry).Once()

		svc := NewTariffService(resolver)
		got := svc.GetDutyRate(context.Background(), "0406.40.44")
		require.NotNil(t, got)
		assert.Equal(t, entry, got)
		resolver.AssertExpectations(t)
	})

	t.Run("not_found_passes_through_as_nil", func(t *testing.T) {
		resolver := new(mocks.MockRateResolver)
		resolver.On("Resolve", mock.Anything, "1234.56.78").Return(nil).Once()

		svc := NewTariffService(resolver)
		assert.Nil(t, svc.GetDutyRate(context.Background(), "1234.56.78"))
		resolver.AssertExpectations(t)
	})
}
