package integration_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/XavierBriggs/Scribe/adapters/hardrock"
	"github.com/XavierBriggs/Scribe/internal/classify"
	"github.com/XavierBriggs/Scribe/internal/extract"
	"github.com/XavierBriggs/Scribe/internal/registry"
	"github.com/XavierBriggs/Scribe/pkg/models"
	"github.com/XavierBriggs/Scribe/pkg/testutil"
	"github.com/XavierBriggs/Scribe/sports/basketball"
	"github.com/XavierBriggs/Scribe/sports/football"
)

func newPipeline(t *testing.T) *extract.Pipeline {
	t.Helper()

	reg := registry.NewSportRegistry()
	if err := reg.Register(basketball.NewModule()); err != nil {
		t.Fatalf("register basketball: %v", err)
	}
	if err := reg.Register(football.NewModule()); err != nil {
		t.Fatalf("register football: %v", err)
	}

	engine := classify.NewEngine(reg, classify.DefaultKeywords(), zerolog.Nop())
	return extract.NewPipeline(hardrock.NewAdapter(), reg, engine, zerolog.Nop())
}

func parsePage(t *testing.T, markup string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse fixture page: %v", err)
	}
	return doc
}

// TestExtract_FullHistoryPage runs a saved page holding a single, a parlay
// and a nested same-game-parlay-plus card through the whole pipeline
func TestExtract_FullHistoryPage(t *testing.T) {
	page := testutil.RenderHistoryPage(
		testutil.Card{
			ID:          "bet-card-S1",
			ReceiptID:   "S1",
			PlacedAt:    "March 14, 2025 at 7:30 PM",
			HeaderTitle: "NBA Straight",
			HeaderOdds:  "-110",
			Stake:       "$10.00",
			Payout:      "$19.09",
			Status:      "Won",
			Legs: []testutil.CardLeg{
				{Market: "Moneyline", Target: "PHO Suns", Odds: "-110", Status: "Won"},
			},
		},
		testutil.Card{
			ID:          "bet-card-P1",
			ReceiptID:   "P1",
			PlacedAt:    "March 15, 2025 at 1:05 PM",
			HeaderTitle: "2 Leg Parlay NFL",
			HeaderOdds:  "+264",
			Stake:       "$20.00",
			Payout:      "$0.00",
			Status:      "Lost",
			Legs: []testutil.CardLeg{
				{Market: "Patrick Mahomes Passing Yards", Target: "Over 275.5", Status: "Won"},
				{Market: "Moneyline", Target: "Kansas City Chiefs", Status: "Lost"},
			},
		},
		testutil.Card{
			ID:          "bet-card-X1",
			ReceiptID:   "X1",
			PlacedAt:    "March 16, 2025 at 5:45 PM",
			HeaderTitle: "SGPx NBA",
			HeaderOdds:  "+550",
			Stake:       "$5.00",
			Status:      "Open",
			Legs: []testutil.CardLeg{
				{
					Market: "Lakers Same Game Parlay",
					Odds:   "+250",
					Children: []testutil.CardLeg{
						{Market: "LeBron James Points", Target: "Over 25.5", Odds: "-110", Status: "Pending"},
						{Market: "Anthony Davis Rebounds", Target: "Over 10.5", Odds: "-115", Status: "Pending"},
					},
				},
				{Market: "Moneyline", Target: "Boston Celtics", Odds: "-120", Status: "Pending"},
			},
		},
	)

	wagers, err := newPipeline(t).Extract(parsePage(t, page))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(wagers) != 3 {
		t.Fatalf("expected 3 wagers, got %d", len(wagers))
	}

	single := wagers[0]
	if single.ReferenceID != "S1" {
		t.Errorf("expected document order, got %s first", single.ReferenceID)
	}
	if single.BetType != models.BetTypeSingle {
		t.Errorf("expected single, got %s", single.BetType)
	}
	if single.League != "NBA" {
		t.Errorf("expected NBA, got %s", single.League)
	}
	if single.LeafCount() != 1 {
		t.Errorf("expected 1 leg, got %d", single.LeafCount())
	}
	if single.Result != models.ResultWin {
		t.Errorf("expected win, got %s", single.Result)
	}
	if single.Category != models.CategoryMainMarkets {
		t.Errorf("expected Main Markets, got %s", single.Category)
	}
	if single.Type != "ML" {
		t.Errorf("expected ML, got %q", single.Type)
	}
	if single.Stake == nil || *single.Stake != 10.0 {
		t.Errorf("expected stake 10.0, got %v", single.Stake)
	}
	if single.PlacedAt.IsZero() {
		t.Errorf("expected parsed placed-at, raw %q", single.PlacedAtRaw)
	}

	parlay := wagers[1]
	if parlay.BetType != models.BetTypeParlay {
		t.Errorf("expected parlay, got %s", parlay.BetType)
	}
	if parlay.League != "NFL" {
		t.Errorf("expected NFL, got %s", parlay.League)
	}
	if parlay.LeafCount() != 2 {
		t.Errorf("expected 2 legs, got %d", parlay.LeafCount())
	}
	if parlay.Result != models.ResultLoss {
		t.Errorf("expected loss, got %s", parlay.Result)
	}
	if parlay.Category != models.CategoryParlays {
		t.Errorf("expected Parlays, got %s", parlay.Category)
	}
	// A lost parlay's payout is a real $0.00, not an unparsed nil
	if parlay.Payout == nil || *parlay.Payout != 0 {
		t.Errorf("expected payout 0, got %v", parlay.Payout)
	}

	sgpx := wagers[2]
	if sgpx.BetType != models.BetTypeSGPPlus {
		t.Errorf("expected sgp_plus, got %s", sgpx.BetType)
	}
	if !sgpx.HasGroupLeg() {
		t.Error("expected a nested group leg")
	}
	if sgpx.LeafCount() != 3 {
		t.Errorf("expected 3 leaf legs, got %d", sgpx.LeafCount())
	}
	if sgpx.Result != models.ResultPending {
		t.Errorf("expected pending, got %s", sgpx.Result)
	}
	if sgpx.Category != models.CategoryParlays {
		t.Errorf("expected Parlays, got %s", sgpx.Category)
	}

	for i := range wagers {
		if !models.ValidCategory(wagers[i].Category) {
			t.Errorf("wager %s carries invalid category %q", wagers[i].ReferenceID, wagers[i].Category)
		}
	}
}

// TestExtract_CollapsedParlayCard exercises the summary-line fallback used
// when a parlay card renders with no leg list at all
func TestExtract_CollapsedParlayCard(t *testing.T) {
	page := testutil.RenderHistoryPage(testutil.Card{
		ReceiptID:   "C1",
		HeaderTitle: "NBA Parlay: LeBron James 25+, Anthony Davis 10+",
		HeaderOdds:  "+300",
		Status:      "Won",
	})

	wagers, err := newPipeline(t).Extract(parsePage(t, page))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(wagers) != 1 {
		t.Fatalf("expected 1 wager, got %d", len(wagers))
	}

	w := wagers[0]
	if !w.BetType.IsParlayFamily() {
		t.Fatalf("expected parlay family, got %s", w.BetType)
	}
	if w.LeafCount() < 2 {
		t.Errorf("expected legs recovered from summary, got %d", w.LeafCount())
	}
	for i := range w.Legs {
		if w.Legs[i].Result != models.ResultWin {
			t.Errorf("leg %d: expected inherited win, got %s", i, w.Legs[i].Result)
		}
	}
}

// TestExtract_EmptyDocument verifies a page without bet cards is a valid
// empty result, not an error
func TestExtract_EmptyDocument(t *testing.T) {
	wagers, err := newPipeline(t).Extract(parsePage(t, "<html><body><p>No bets yet</p></body></html>"))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(wagers) != 0 {
		t.Errorf("expected 0 wagers, got %d", len(wagers))
	}
}

func TestExtract_NilDocument(t *testing.T) {
	if _, err := newPipeline(t).Extract(nil); err == nil {
		t.Fatal("expected error for nil document")
	}
}
