package extract_test

import (
	"testing"

	"github.com/XavierBriggs/Scribe/internal/extract"
	"github.com/XavierBriggs/Scribe/internal/registry"
	"github.com/XavierBriggs/Scribe/pkg/models"
	"github.com/XavierBriggs/Scribe/sports/basketball"
	"github.com/XavierBriggs/Scribe/sports/football"
)

func newNormalizer(t *testing.T) *extract.Normalizer {
	t.Helper()

	reg := registry.NewSportRegistry()
	if err := reg.Register(basketball.NewModule()); err != nil {
		t.Fatalf("register basketball: %v", err)
	}
	if err := reg.Register(football.NewModule()); err != nil {
		t.Fatalf("register football: %v", err)
	}
	return extract.NewNormalizer(reg)
}

func TestDetectStatType_CombinedBeforeIndividual(t *testing.T) {
	n := newNormalizer(t)

	tests := []struct {
		market   string
		league   string
		expected string
	}{
		{"LeBron James Points + Rebounds + Assists", "NBA", "PRA"},
		{"Points Rebounds Assists Over 40.5", "NBA", "PRA"},
		{"Points + Rebounds", "NBA", "PR"},
		{"LeBron James Points", "NBA", "Pts"},
		{"Rebounds + Assists", "NBA", "RA"},
		{"Steals + Blocks", "NBA", "Stocks"},
		{"Made Threes", "NBA", "3PM"},
		{"Passing Yards", "NFL", "Pass Yds"},
		{"Anytime Touchdown", "NFL", "Anytime TD"},
		{"Strikeouts", "MLB", "K"},
		{"Moneyline", "NBA", ""},
	}

	for _, tt := range tests {
		if got := n.DetectStatType(tt.market, tt.league); got != tt.expected {
			t.Errorf("DetectStatType(%q, %s): expected %q, got %q", tt.market, tt.league, tt.expected, got)
		}
	}
}

func TestDetectStatType_SportSpecificTD(t *testing.T) {
	n := newNormalizer(t)

	// "TD" on a basketball slip is a triple-double, on a football slip it
	// reaches the generic table where no bare "td" entry exists
	if got := n.DetectStatType("TD", "NBA"); got != "TD" {
		t.Errorf("expected basketball TD (triple-double), got %q", got)
	}
	if got := n.DetectStatType("Triple-Double", "NBA"); got != "TD" {
		t.Errorf("expected TD for triple-double, got %q", got)
	}
}

func TestExtractLineAndOU(t *testing.T) {
	tests := []struct {
		text     string
		line     string
		ou       models.OverUnder
	}{
		{"Over 25.5", "25.5", models.OverUnderOver},
		{"Under 235.5", "235.5", models.OverUnderUnder},
		{"over 8.5", "8.5", models.OverUnderOver},
		{"18+", "18+", models.OverUnderOver},
		{"25.5+", "25.5+", models.OverUnderOver},
		{"PHO Suns +2.5", "+2.5", ""},
		{"Lakers -7.5", "-7.5", ""},
		{"Celtics −3.5", "-3.5", ""}, // Unicode minus normalized
		{"Moneyline", "", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		line, ou := extract.ExtractLineAndOU(tt.text)
		if line != tt.line || ou != tt.ou {
			t.Errorf("ExtractLineAndOU(%q): expected (%q, %q), got (%q, %q)",
				tt.text, tt.line, tt.ou, line, ou)
		}
	}
}

func TestExtractEntity(t *testing.T) {
	n := newNormalizer(t)

	tests := []struct {
		name     string
		market   string
		target   string
		expected string
	}{
		{"player from market", "LeBron James Points", "Over 25.5", "LeBron James"},
		{"player before threshold", "Anthony Davis 10+ Rebounds", "", "Anthony Davis"},
		{"team from target", "Moneyline", "PHO Suns", "PHO Suns"},
		{"team minus spread", "Spread", "PHO Suns +2.5", "PHO Suns"},
		{"no entity in total", "Total Points", "Over 235.5", ""},
		{"digits allowed in real team", "Moneyline", "Philadelphia 76ers", "Philadelphia 76ers"},
		{"single token is not a name", "Spread", "Lakers -7.5", "Lakers"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		if got := n.ExtractEntity(tt.market, tt.target, "NBA"); got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, got)
		}
	}
}

func TestNormalizeLeg(t *testing.T) {
	n := newNormalizer(t)

	leg := models.Leg{
		Market: "LeBron James Points + Rebounds + Assists",
		Target: "Over 40.5",
	}
	n.NormalizeLeg(&leg, "NBA")

	if leg.StatType != "PRA" {
		t.Errorf("expected stat type PRA, got %q", leg.StatType)
	}
	if leg.Line != "40.5" {
		t.Errorf("expected line 40.5, got %q", leg.Line)
	}
	if leg.OverUnder != models.OverUnderOver {
		t.Errorf("expected Over, got %q", leg.OverUnder)
	}
	if len(leg.Entities) != 1 || leg.Entities[0] != "LeBron James" {
		t.Errorf("expected entity LeBron James, got %v", leg.Entities)
	}
}

func TestNormalizeLeg_LineFallsBackToMarket(t *testing.T) {
	n := newNormalizer(t)

	// Collapsed-card legs carry the threshold in the market text
	leg := models.Leg{Market: "LeBron James 25+"}
	n.NormalizeLeg(&leg, "NBA")

	if leg.Line != "25+" {
		t.Errorf("expected line 25+, got %q", leg.Line)
	}
	if leg.OverUnder != models.OverUnderOver {
		t.Errorf("expected implicit Over for threshold, got %q", leg.OverUnder)
	}
}

func TestNormalizeLeg_SkipsGroups(t *testing.T) {
	n := newNormalizer(t)

	leg := models.Leg{IsGroup: true, Market: "Lakers SGP"}
	n.NormalizeLeg(&leg, "NBA")

	if leg.StatType != "" || leg.Line != "" || len(leg.Entities) != 0 {
		t.Errorf("expected group leg untouched, got %+v", leg)
	}
}
