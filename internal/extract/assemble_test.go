package extract_test

import (
	"testing"

	"github.com/XavierBriggs/Scribe/internal/extract"
	"github.com/XavierBriggs/Scribe/pkg/models"
	"github.com/XavierBriggs/Scribe/pkg/testutil"
)

func TestDetectBetType(t *testing.T) {
	group := testutil.NewTestGroupLeg("Lakers SGP",
		testutil.NewTestLeg("LeBron James Points", "Over 25.5", nil, models.ResultPending))
	leaf := testutil.NewTestLeg("Moneyline", "Lakers", nil, models.ResultPending)

	tests := []struct {
		name     string
		header   string
		legs     []models.Leg
		expected models.BetType
	}{
		{"sgpx text wins", "SGPx 5 Leg", []models.Leg{leaf}, models.BetTypeSGPPlus},
		{"sgp plus text", "Same Game Parlay Plus", []models.Leg{leaf, leaf}, models.BetTypeSGPPlus},
		{"group leg forces sgp plus", "3 Leg Parlay", []models.Leg{group, leaf}, models.BetTypeSGPPlus},
		{"same game parlay", "Same Game Parlay", []models.Leg{leaf, leaf}, models.BetTypeSGP},
		{"plain parlay", "3 Leg Parlay", []models.Leg{leaf, leaf, leaf}, models.BetTypeParlay},
		{"live", "Live Bet", []models.Leg{leaf}, models.BetTypeLive},
		{"multi leg no header", "", []models.Leg{leaf, leaf}, models.BetTypeParlay},
		{"single", "Straight", []models.Leg{leaf}, models.BetTypeSingle},
		{"no legs no header", "", nil, models.BetTypeSingle},
	}

	for _, tt := range tests {
		if got := extract.DetectBetType(tt.header, tt.legs); got != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.expected, got)
		}
	}
}

func TestDetectLeague(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"NBA · Lakers @ Celtics", "NBA"},
		{"Thursday Night NFL Football", "NFL"},
		{"NCAAM Tournament", "NCAAB"},
		{"Premier Darts Championship", "Unknown"},
		{"", "Unknown"},
	}

	for _, tt := range tests {
		if got := extract.DetectLeague(tt.text); got != tt.expected {
			t.Errorf("DetectLeague(%q): expected %s, got %s", tt.text, tt.expected, got)
		}
	}
}

func TestDetectLeague_CrossSportIsDeterministic(t *testing.T) {
	// A cross-sport parlay names several leagues; detection must resolve
	// the same one on every call, not vary with iteration order
	text := "NBA NFL cross-sport parlay"

	first := extract.DetectLeague(text)
	if first != "NBA" {
		t.Fatalf("expected first-listed token NBA, got %s", first)
	}
	for i := 0; i < 200; i++ {
		if got := extract.DetectLeague(text); got != first {
			t.Fatalf("call %d: got %s after %s", i, got, first)
		}
	}
}

func TestAssemble_Single(t *testing.T) {
	leg := models.Leg{
		Market:   "LeBron James Points",
		Target:   "Over 25.5",
		Odds:     testutil.PtrInt(-110),
		StatType: "Pts",
		Entities: []string{"LeBron James"},
		Result:   models.ResultWin,
	}

	w := extract.Assemble(extract.AssembleInput{
		Slip:    extract.SlipMeta{ReferenceID: "R1"},
		Footer:  extract.FooterMeta{Result: models.ResultWin},
		Legs:    []models.Leg{leg},
		League:  "NBA",
		BookKey: "hardrock",
	})

	if w.BetType != models.BetTypeSingle {
		t.Errorf("expected single, got %s", w.BetType)
	}
	if w.Description != "LeBron James Points Over 25.5" {
		t.Errorf("unexpected description: %q", w.Description)
	}
	if w.Odds == nil || *w.Odds != -110 {
		t.Errorf("expected odds inherited from leg, got %v", w.Odds)
	}
	if w.EntityName != "LeBron James" {
		t.Errorf("expected entity inherited from leg, got %q", w.EntityName)
	}
	if w.Type != "Pts" {
		t.Errorf("expected type inherited from leg, got %q", w.Type)
	}
}

func TestAssemble_HeaderOddsWin(t *testing.T) {
	leg := testutil.NewTestLeg("Moneyline", "Lakers", testutil.PtrInt(-110), models.ResultPending)

	w := extract.Assemble(extract.AssembleInput{
		Legs:       []models.Leg{leg},
		HeaderOdds: testutil.PtrInt(-115),
		BookKey:    "hardrock",
	})

	if w.Odds == nil || *w.Odds != -115 {
		t.Errorf("expected header odds to win over leg odds, got %v", w.Odds)
	}
}

func TestAssemble_ParlayFlattensLegs(t *testing.T) {
	legs := []models.Leg{
		testutil.NewTestGroupLeg("Lakers SGP",
			testutil.NewTestLeg("LeBron James Points", "Over 25.5", nil, models.ResultWin),
			testutil.NewTestLeg("Lakers Moneyline", "", nil, models.ResultWin),
		),
		testutil.NewTestLeg("Celtics Moneyline", "", nil, models.ResultWin),
	}

	w := extract.Assemble(extract.AssembleInput{
		Legs:       legs,
		HeaderText: "SGPx 3 Leg",
		BookKey:    "hardrock",
	})

	if w.BetType != models.BetTypeSGPPlus {
		t.Errorf("expected sgp_plus, got %s", w.BetType)
	}

	expected := "LeBron James Points Over 25.5, Lakers Moneyline, Celtics Moneyline"
	if w.Description != expected {
		t.Errorf("expected %q, got %q", expected, w.Description)
	}
}

func TestAssemble_EmptyLegsFallsBackToHeader(t *testing.T) {
	w := extract.Assemble(extract.AssembleInput{
		HeaderText: " Futures Special ",
		BookKey:    "hardrock",
	})

	if w.Description != "Futures Special" {
		t.Errorf("expected header text description, got %q", w.Description)
	}
}
