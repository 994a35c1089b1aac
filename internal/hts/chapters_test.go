package hts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moogship/internal/domain"
)

func TestEstimateByChapter(t *testing.T) {
	t.Run("knitted_apparel", func(t *testing.T) {
		e := EstimateByChapter("6199.99.99")
		require.NotNil(t, e)
		assert.Equal(t, 61, e.Chapter)
		assert.InDelta(t, 0.165, e.Percentage, 1e-9)
		assert.Equal(t, domain.ConfidenceLow, e.Confidence)
		assert.Equal(t, domain.RateSourceNotFound, e.Source)
	})

	t.Run("electronics_free", func(t *testing.T) {
		e := EstimateByChapter("8599.00.00")
		require.NotNil(t, e)
		assert.Equal(t, "Free", e.GeneralRate)
		assert.Zero(t, e.Percentage)
	})

	t.Run("not_a_catch_all", func(t *testing.T) {
		// Chapter 12 has no estimate on purpose.
		assert.Nil(t, EstimateByChapter("1299.99.99"))
	})

	t.Run("chapter_invariant", func(t *testing.T) {
		for ch := range chapterEstimates {
			code := Normalize(fmtChapterCode(ch))
			e := EstimateByChapter(code)
			require.NotNil(t, e)
			assert.Equal(t, ch, e.Chapter)
			assert.GreaterOrEqual(t, e.Percentage, 0.0)
		}
	})
}

func fmtChapterCode(ch int) string {
	d := byte('0' + ch%10)
	t := byte('0' + ch/10)
	return string([]byte{t, d}) + "999999"
}
