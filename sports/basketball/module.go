package basketball

import (
	"fmt"

	"github.com/XavierBriggs/Scribe/pkg/contracts"
	"github.com/XavierBriggs/Scribe/pkg/models"
	"github.com/XavierBriggs/Scribe/pkg/patterns"
)

// Module implements the SportModule interface for basketball leagues
type Module struct{}

// Ensure Module implements SportModule
var _ contracts.SportModule = (*Module)(nil)

// NewModule creates a new basketball sport module
func NewModule() *Module {
	return &Module{}
}

// SportKey returns the sport identifier
func (m *Module) SportKey() string {
	return "basketball"
}

// DisplayName returns the human-readable name
func (m *Module) DisplayName() string {
	return "Basketball"
}

// LeagueCodes returns the leagues this module covers
func (m *Module) LeagueCodes() []string {
	return []string{"NBA", "WNBA", "NCAAB"}
}

// StatPatterns returns basketball-specific stat patterns
func (m *Module) StatPatterns() []patterns.StatPattern {
	return statPatterns()
}

// TypeAliases returns basketball-specific type codes
func (m *Module) TypeAliases() map[string]string {
	return typeAliases()
}

// FuturesMarkets returns basketball futures type codes
func (m *Module) FuturesMarkets() []patterns.FuturesMarket {
	return futuresMarkets()
}

// IsTeamName reports whether name is a known basketball team
func (m *Module) IsTeamName(name string) bool {
	return IsTeamName(name)
}

// ValidateWager performs basketball-specific validation on an extracted wager
func (m *Module) ValidateWager(w *models.Wager) error {
	valid := make(map[string]bool)
	for _, code := range m.LeagueCodes() {
		valid[code] = true
	}
	if !valid[w.League] {
		return fmt.Errorf("invalid league for basketball: %s", w.League)
	}

	if w.Stake != nil && *w.Stake < 0 {
		return fmt.Errorf("invalid stake: cannot be negative")
	}

	if w.Odds != nil && *w.Odds > -100 && *w.Odds < 100 {
		return fmt.Errorf("invalid american odds: %d", *w.Odds)
	}

	return nil
}
