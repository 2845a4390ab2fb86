package airline

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Personality is the behavioral category reported for a bot airline. The
// thresholds and their evaluation order are a public contract consumed by
// the reporting layer; do not reorder them.
type Personality string

const (
	PersonalityPremium      Personality = "PREMIUM"
	PersonalityBudget       Personality = "BUDGET"
	PersonalityConservative Personality = "CONSERVATIVE"
	PersonalityAggressive   Personality = "AGGRESSIVE"
	PersonalityRegional     Personality = "REGIONAL"
	PersonalityBalanced     Personality = "BALANCED"
)

// AllPersonalities lists every category, in classification order.
var AllPersonalities = []Personality{
	PersonalityPremium,
	PersonalityBudget,
	PersonalityConservative,
	PersonalityAggressive,
	PersonalityRegional,
	PersonalityBalanced,
}

// cashNormalizer converts balance into multiples of 10M for the cash-ratio
// thresholds.
var cashNormalizer = decimal.NewFromInt(10_000_000)

// Classify maps an airline's metrics to a personality. First match wins.
func Classify(balance decimal.Decimal, reputation, serviceQuality float64) Personality {
	cashRatio, _ := balance.Div(cashNormalizer).Float64()

	switch {
	case serviceQuality > 70:
		return PersonalityPremium
	case cashRatio < 2 && reputation < 30:
		return PersonalityBudget
	case reputation > 70:
		return PersonalityConservative
	case cashRatio > 10:
		return PersonalityAggressive
	case serviceQuality < 40:
		return PersonalityRegional
	default:
		return PersonalityBalanced
	}
}

// ClassifyStrings classifies from raw column values. Empty or non-numeric
// inputs coerce to zero, so the function is total and never errors.
func ClassifyStrings(balance, reputation, serviceQuality string) Personality {
	bal, err := decimal.NewFromString(balance)
	if err != nil {
		bal = decimal.Zero
	}
	rep, err := strconv.ParseFloat(reputation, 64)
	if err != nil {
		rep = 0
	}
	sq, err := strconv.ParseFloat(serviceQuality, 64)
	if err != nil {
		sq = 0
	}
	return Classify(bal, rep, sq)
}
