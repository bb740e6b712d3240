package football

import (
	"fmt"
	"strings"

	"github.com/XavierBriggs/Scribe/pkg/contracts"
	"github.com/XavierBriggs/Scribe/pkg/models"
	"github.com/XavierBriggs/Scribe/pkg/patterns"
)

// Module implements the SportModule interface for football leagues
type Module struct{}

var _ contracts.SportModule = (*Module)(nil)

// NewModule creates a new football sport module
func NewModule() *Module {
	return &Module{}
}

// SportKey returns the sport identifier
func (m *Module) SportKey() string {
	return "football"
}

// DisplayName returns the human-readable name
func (m *Module) DisplayName() string {
	return "Football"
}

// LeagueCodes returns the leagues this module covers
func (m *Module) LeagueCodes() []string {
	return []string{"NFL", "NCAAF"}
}

// StatPatterns returns football-specific stat patterns. Here "TD" really is
// a touchdown, unlike on basketball slips.
func (m *Module) StatPatterns() []patterns.StatPattern {
	return []patterns.StatPattern{
		{Code: "Anytime TD", Terms: []string{"anytime touchdown", "anytime td"}},
		{Code: "TD", Terms: []string{"touchdowns", "touchdown", "td"}},
		{Code: "Pass Yds", Terms: []string{"passing yards", "pass yds"}},
		{Code: "Rush Yds", Terms: []string{"rushing yards", "rush yds"}},
		{Code: "Rec Yds", Terms: []string{"receiving yards", "rec yds"}},
		{Code: "Rec", Terms: []string{"receptions"}},
		{Code: "Int", Terms: []string{"interceptions"}},
	}
}

// TypeAliases returns football-specific type codes
func (m *Module) TypeAliases() map[string]string {
	return map[string]string{
		"td":                       "TD",
		"anytime touchdown scorer": "Anytime TD",
		"first touchdown scorer":   "First TD",
	}
}

// FuturesMarkets returns football futures type codes
func (m *Module) FuturesMarkets() []patterns.FuturesMarket {
	return []patterns.FuturesMarket{
		{Type: "Super Bowl", Terms: []string{"super bowl"}},
		{Type: "MVP", Terms: []string{"mvp"}},
		{Type: "Win Total", Terms: []string{"win total", "regular season wins"}},
		{Type: "Division", Terms: []string{"division winner", "to win the division"}},
	}
}

// IsTeamName reports whether name is a known football team
func (m *Module) IsTeamName(name string) bool {
	return teamNames[strings.ToLower(strings.TrimSpace(name))]
}

// ValidateWager performs football-specific validation on an extracted wager
func (m *Module) ValidateWager(w *models.Wager) error {
	valid := make(map[string]bool)
	for _, code := range m.LeagueCodes() {
		valid[code] = true
	}
	if !valid[w.League] {
		return fmt.Errorf("invalid league for football: %s", w.League)
	}

	if w.Stake != nil && *w.Stake < 0 {
		return fmt.Errorf("invalid stake: cannot be negative")
	}

	return nil
}
