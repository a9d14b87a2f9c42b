package domain

import "testing"

func TestTierIsValid(t *testing.T) {
	t.Parallel()

	for _, tier := range Tiers {
		if !tier.IsValid() {
			t.Errorf("Expected %q to be valid", tier)
		}
	}

	for _, tier := range []Tier{"", "PLAIN", "advanced"} {
		if tier.IsValid() {
			t.Errorf("Expected %q to be invalid", tier)
		}
	}
}

func TestTiersOrder(t *testing.T) {
	t.Parallel()

	want := []Tier{TierPlain, TierMid, TierDeep}
	if len(Tiers) != len(want) {
		t.Fatalf("Expected %d tiers, got %d", len(want), len(Tiers))
	}
	for i, tier := range want {
		if Tiers[i] != tier {
			t.Errorf("Expected tier %d to be %q, got %q", i, tier, Tiers[i])
		}
	}
}

func TestFallbackScoringResult(t *testing.T) {
	t.Parallel()

	result := FallbackScoringResult()
	if result.ComprehensionScore != 0 {
		t.Errorf("Expected zero score, got %f", result.ComprehensionScore)
	}
	if result.RecommendedHintType != HintUnknown {
		t.Errorf("Expected hint %q, got %q", HintUnknown, result.RecommendedHintType)
	}
}
