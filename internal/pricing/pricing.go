// Package pricing holds the storefront estimators. The price tables and the
// competitor margin are configuration data carried over from the retail site,
// not derived values; the estimators themselves are pure arithmetic over them.
package pricing

import (
	"errors"
	"fmt"
)

type Tier string

const (
	TierGood   Tier = "good"
	TierBetter Tier = "better"
	TierBest   Tier = "best"
)

// Per-unit prices in cents.
var (
	cabinetPerLinearFoot = map[Tier]int64{
		TierGood:   9500,
		TierBetter: 14500,
		TierBest:   21000,
	}
	countertopPerSquareFoot = map[Tier]int64{
		TierGood:   4500,
		TierBetter: 7500,
		TierBest:   11000,
	}
	flooringPerSquareFoot = map[Tier]int64{
		TierGood:   350,
		TierBetter: 650,
		TierBest:   1100,
	}
	vanityBase = map[Tier]int64{
		TierGood:   45000,
		TierBetter: 85000,
		TierBest:   140000,
	}
)

// competitorMarkupPct is the advertised big-box markup over our price.
const competitorMarkupPct = 45

var ErrUnknownTier = errors.New("unknown pricing tier")

func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierGood, TierBetter, TierBest:
		return Tier(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

type Estimate struct {
	SubtotalCents   int64 `json:"subtotalCents"`
	CompetitorCents int64 `json:"competitorCents"`
	SavingsCents    int64 `json:"savingsCents"`
}

func withSavings(subtotal int64) Estimate {
	competitor := subtotal + subtotal*competitorMarkupPct/100
	return Estimate{
		SubtotalCents:   subtotal,
		CompetitorCents: competitor,
		SavingsCents:    competitor - subtotal,
	}
}

// EstimateKitchen prices a kitchen remodel from cabinet run length and
// countertop area.
func EstimateKitchen(cabinetLinearFeet, countertopSquareFeet float64, tier Tier) (Estimate, error) {
	if _, ok := cabinetPerLinearFoot[tier]; !ok {
		return Estimate{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	if cabinetLinearFeet < 0 || countertopSquareFeet < 0 {
		return Estimate{}, errors.New("dimensions must not be negative")
	}

	subtotal := int64(cabinetLinearFeet*float64(cabinetPerLinearFoot[tier])) +
		int64(countertopSquareFeet*float64(countertopPerSquareFoot[tier]))
	return withSavings(subtotal), nil
}

// EstimateVanity prices a bathroom vanity: a base unit plus countertop area.
func EstimateVanity(countertopSquareFeet float64, tier Tier) (Estimate, error) {
	if _, ok := vanityBase[tier]; !ok {
		return Estimate{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	if countertopSquareFeet < 0 {
		return Estimate{}, errors.New("dimensions must not be negative")
	}

	subtotal := vanityBase[tier] + int64(countertopSquareFeet*float64(countertopPerSquareFoot[tier]))
	return withSavings(subtotal), nil
}

// EstimateFlooring prices a room by floor area.
func EstimateFlooring(squareFeet float64, tier Tier) (Estimate, error) {
	if _, ok := flooringPerSquareFoot[tier]; !ok {
		return Estimate{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	if squareFeet < 0 {
		return Estimate{}, errors.New("dimensions must not be negative")
	}

	return withSavings(int64(squareFeet * float64(flooringPerSquareFoot[tier]))), nil
}
