package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	for _, s := range []string{"good", "better", "best"} {
		tier, err := ParseTier(s)
		require.NoError(t, err)
		require.Equal(t, Tier(s), tier)
	}

	_, err := ParseTier("premium")
	require.ErrorIs(t, err, ErrUnknownTier)
	_, err = ParseTier("")
	require.ErrorIs(t, err, ErrUnknownTier)
}

func TestEstimateKitchen(t *testing.T) {
	// 10 lf of good cabinets at $95/lf plus 20 sqft of good countertop at $45/sqft
	est, err := EstimateKitchen(10, 20, TierGood)
	require.NoError(t, err)
	require.Equal(t, int64(95000+90000), est.SubtotalCents)
	require.Equal(t, int64(268250), est.CompetitorCents)
	require.Equal(t, int64(83250), est.SavingsCents)

	_, err = EstimateKitchen(10, 20, Tier("luxury"))
	require.ErrorIs(t, err, ErrUnknownTier)

	_, err = EstimateKitchen(-1, 20, TierGood)
	require.Error(t, err)
	_, err = EstimateKitchen(10, -0.5, TierGood)
	require.Error(t, err)
}

func TestEstimateVanity(t *testing.T) {
	// best vanity base $1400 plus 8 sqft of best countertop at $110/sqft
	est, err := EstimateVanity(8, TierBest)
	require.NoError(t, err)
	require.Equal(t, int64(140000+88000), est.SubtotalCents)
	require.Equal(t, est.SubtotalCents+est.SavingsCents, est.CompetitorCents)

	_, err = EstimateVanity(8, Tier(""))
	require.ErrorIs(t, err, ErrUnknownTier)
	_, err = EstimateVanity(-2, TierGood)
	require.Error(t, err)
}

func TestEstimateFlooring(t *testing.T) {
	est, err := EstimateFlooring(200, TierBetter)
	require.NoError(t, err)
	require.Equal(t, int64(130000), est.SubtotalCents)
	require.Equal(t, int64(188500), est.CompetitorCents)
	require.Equal(t, int64(58500), est.SavingsCents)

	// a zero-area room is a free estimate, not an error
	est, err = EstimateFlooring(0, TierGood)
	require.NoError(t, err)
	require.Zero(t, est.SubtotalCents)
	require.Zero(t, est.SavingsCents)

	_, err = EstimateFlooring(-10, TierBest)
	require.Error(t, err)
}

func TestCompetitorMarkupIsConsistent(t *testing.T) {
	for _, tier := range []Tier{TierGood, TierBetter, TierBest} {
		est, err := EstimateFlooring(100, tier)
		require.NoError(t, err)
		require.Equal(t, est.SubtotalCents*145/100, est.CompetitorCents)
	}
}
