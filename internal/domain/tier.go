package domain

import "errors"

// ErrInvalidTier is returned when a tier name is not one of the known tiers.
var ErrInvalidTier = errors.New("invalid explanation tier")

// Tier identifies the difficulty level of a generated explanation.
type Tier string

// The three explanation tiers, from simplest to most thorough.
const (
	TierPlain Tier = "plain"
	TierMid   Tier = "mid"
	TierDeep  Tier = "deep"
)

// Tiers lists all tiers in ascending difficulty order. The orchestrator
// requests one explanation per entry.
var Tiers = []Tier{TierPlain, TierMid, TierDeep}

// IsValid reports whether t is one of the known tiers.
func (t Tier) IsValid() bool {
	switch t {
	case TierPlain, TierMid, TierDeep:
		return true
	default:
		return false
	}
}
