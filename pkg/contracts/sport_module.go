package contracts

import (
	"github.com/XavierBriggs/Scribe/pkg/models"
	"github.com/XavierBriggs/Scribe/pkg/patterns"
)

// SportModule defines sport-specific lookup tables for classification.
// This enables Scribe to support multiple sports dynamically: the generic
// pattern tables apply everywhere, a module refines them per league.
type SportModule interface {
	// SportKey returns the unique identifier for this sport (e.g. "basketball")
	SportKey() string

	// DisplayName returns the human-readable name (e.g. "Basketball")
	DisplayName() string

	// LeagueCodes returns the league codes this module covers (e.g. NBA, WNBA)
	LeagueCodes() []string

	// StatPatterns returns sport-specific stat patterns, checked before the
	// generic table so per-sport phrasings win (basketball "TD" is a
	// triple-double, not a touchdown)
	StatPatterns() []patterns.StatPattern

	// TypeAliases returns sport-specific exact-match type codes
	TypeAliases() map[string]string

	// FuturesMarkets returns sport-specific futures type codes
	FuturesMarkets() []patterns.FuturesMarket

	// IsTeamName reports whether name refers to a team in this sport
	IsTeamName(name string) bool

	// ValidateWager performs sport-specific sanity checks on an extracted wager
	ValidateWager(w *models.Wager) error
}
