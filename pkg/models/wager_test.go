package models_test

import (
	"testing"

	"github.com/XavierBriggs/Scribe/pkg/models"
)

func TestIsParlayFamily(t *testing.T) {
	tests := []struct {
		betType  models.BetType
		expected bool
	}{
		{models.BetTypeParlay, true},
		{models.BetTypeSGP, true},
		{models.BetTypeSGPPlus, true},
		{models.BetTypeSingle, false},
		{models.BetTypeLive, false},
		{models.BetTypeOther, false},
	}

	for _, tt := range tests {
		if got := tt.betType.IsParlayFamily(); got != tt.expected {
			t.Errorf("%s.IsParlayFamily(): expected %v, got %v", tt.betType, tt.expected, got)
		}
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []models.MarketCategory{
		models.CategoryProps, models.CategoryMainMarkets,
		models.CategoryFutures, models.CategoryParlays,
	} {
		if !models.ValidCategory(c) {
			t.Errorf("expected %s valid", c)
		}
	}

	for _, c := range []models.MarketCategory{"", "Unknown", "props", "Other"} {
		if models.ValidCategory(c) {
			t.Errorf("expected %q invalid", c)
		}
	}
}

func TestLeafCount(t *testing.T) {
	w := models.Wager{
		Legs: []models.Leg{
			{Market: "A"},
			{
				IsGroup: true,
				Children: []models.Leg{
					{Market: "B"},
					{
						IsGroup:  true,
						Children: []models.Leg{{Market: "C"}, {Market: "D"}},
					},
				},
			},
		},
	}

	if got := w.LeafCount(); got != 4 {
		t.Errorf("expected 4 leaves, got %d", got)
	}
}

func TestHasGroupLeg(t *testing.T) {
	flat := models.Wager{Legs: []models.Leg{{Market: "A"}, {Market: "B"}}}
	if flat.HasGroupLeg() {
		t.Error("expected no group leg")
	}

	nested := models.Wager{Legs: []models.Leg{{IsGroup: true}}}
	if !nested.HasGroupLeg() {
		t.Error("expected group leg detected")
	}
}
