// Package hardrock adapts Hard Rock Bet's saved "My Bets" markup to the
// extraction pipeline. The container and leg predicates here are the only
// Hard Rock-specific code in Scribe.
package hardrock

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/XavierBriggs/Scribe/pkg/contracts"
)

const (
	// Every wager container carries a data-testid beginning with this
	// literal prefix, e.g. "bet-card-7A2K9QX". This is the stable hook the
	// rest of the page does not share.
	containerPrefix = "bet-card"

	legSelector = `[data-testid="bet-leg"]`
)

// Adapter implements the BookAdapter interface for Hard Rock Bet
type Adapter struct{}

// Ensure Adapter implements BookAdapter
var _ contracts.BookAdapter = (*Adapter)(nil)

// NewAdapter creates a new Hard Rock adapter
func NewAdapter() *Adapter {
	return &Adapter{}
}

// BookKey returns the book identifier
func (a *Adapter) BookKey() string {
	return "hardrock"
}

// FindWagerContainers locates every bet card in document order
func (a *Adapter) FindWagerContainers(doc *goquery.Document) *goquery.Selection {
	return doc.Find(`[data-testid^="` + containerPrefix + `"]`)
}

// FindLegCandidates locates all leg nodes under a container or group node,
// including nested same-game-parlay groups
func (a *Adapter) FindLegCandidates(s *goquery.Selection) *goquery.Selection {
	return s.Find(legSelector)
}

// LegCandidateSelector returns the leg node selector
func (a *Adapter) LegCandidateSelector() string {
	return legSelector
}

// Selectors returns the Hard Rock field selectors
func (a *Adapter) Selectors() contracts.Selectors {
	return contracts.Selectors{
		ReferenceID:  `[data-testid="bet-receipt-id"]`,
		PlacedAt:     `[data-testid="bet-placed-at"]`,
		HeaderTitle:  `[data-testid="bet-header-title"]`,
		HeaderOdds:   `[data-testid="bet-header-odds"]`,
		LegMarket:    `[data-testid="leg-market"]`,
		LegTarget:    `[data-testid="leg-target"]`,
		LegOdds:      `[data-testid="leg-odds"]`,
		LegStatus:    `[data-testid="leg-status"]`,
		Footer:       `[data-testid="bet-footer"]`,
		Stake:        `[data-testid="bet-stake"]`,
		Payout:       `[data-testid="bet-payout"]`,
		FooterStatus: `[data-testid="bet-status"]`,
	}
}
