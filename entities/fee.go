package entities

// FeeAmount is a pool fee tier, expressed in hundredths of a bip.
// The set of deployed tiers is fixed; the value doubles as part of the
// packed path encoding for multi-hop quotes.
type FeeAmount uint32

const (
	FeeLowest FeeAmount = 100
	FeeLow    FeeAmount = 500
	FeeMedium FeeAmount = 3000
	FeeHigh   FeeAmount = 10000
)

// Valid reports whether f is one of the deployed fee tiers.
func (f FeeAmount) Valid() bool {
	switch f {
	case FeeLowest, FeeLow, FeeMedium, FeeHigh:
		return true
	default:
		return false
	}
}
