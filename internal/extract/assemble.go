package extract

import (
	"strings"

	"github.com/XavierBriggs/Scribe/pkg/models"
	"github.com/XavierBriggs/Scribe/pkg/patterns"
)

// DetectBetType resolves the wager's bet type from its header text and built
// legs. Signals can contradict each other (SGPx badge text next to a flat
// leg list), so the priority is fixed: explicit SGPx-style text, then the
// presence of nested leg groups, then the explicit type hint, then the most
// conservative type for what remains. Contradictions never drop a wager.
func DetectBetType(headerText string, legs []models.Leg) models.BetType {
	header := strings.ToLower(headerText)

	if strings.Contains(header, "sgpx") || strings.Contains(header, "sgp+") ||
		strings.Contains(header, "same game parlay plus") {
		return models.BetTypeSGPPlus
	}

	for i := range legs {
		if legs[i].IsGroup {
			return models.BetTypeSGPPlus
		}
	}

	if strings.Contains(header, "same game parlay") || containsWord(header, "sgp") {
		return models.BetTypeSGP
	}
	if containsWord(header, "parlay") {
		return models.BetTypeParlay
	}
	if containsWord(header, "live") {
		return models.BetTypeLive
	}

	if len(legs) > 1 {
		return models.BetTypeParlay
	}
	return models.BetTypeSingle
}

// DetectLeague scans container text for a known league token, returning
// "Unknown" rather than guessing when none is present. The token table is
// ordered and the first match wins, so a slip mentioning two leagues
// resolves the same way on every run.
func DetectLeague(text string) string {
	for _, lt := range patterns.LeagueTokens {
		if containsWord(text, strings.ToLower(lt.Token)) {
			return lt.Code
		}
	}
	return "Unknown"
}

// AssembleInput carries everything the assembler combines into one Wager
type AssembleInput struct {
	Slip       SlipMeta
	Footer     FooterMeta
	Legs       []models.Leg
	HeaderText string
	HeaderOdds *int
	League     string
	BookKey    string
	RawExcerpt string
}

// Assemble combines extracted parts into one immutable Wager record.
// Single bets take their description from the lone leg; parlay-family bets
// flatten the leaf legs into a comma-joined summary.
func Assemble(in AssembleInput) *models.Wager {
	w := &models.Wager{
		ReferenceID: in.Slip.ReferenceID,
		BookKey:     in.BookKey,
		PlacedAt:    in.Slip.PlacedAt,
		PlacedAtRaw: in.Slip.PlacedAtRaw,
		BetType:     DetectBetType(in.HeaderText, in.Legs),
		League:      in.League,
		Odds:        in.HeaderOdds,
		Stake:       in.Footer.Stake,
		Payout:      in.Footer.Payout,
		Result:      in.Footer.Result,
		Legs:        in.Legs,
		RawExcerpt:  in.RawExcerpt,
	}

	if w.BetType.IsParlayFamily() {
		w.Description = flattenLegs(in.Legs)
	} else if len(in.Legs) > 0 {
		leg := &in.Legs[0]
		w.Description = legSummary(leg)
		if w.Odds == nil {
			w.Odds = leg.Odds
		}
		if len(leg.Entities) > 0 {
			w.EntityName = leg.Entities[0]
		}
		if leg.StatType != "" {
			w.Type = leg.StatType
		}
	}

	if w.Description == "" {
		w.Description = strings.TrimSpace(in.HeaderText)
	}

	return w
}

// legSummary renders one leaf leg as display text
func legSummary(leg *models.Leg) string {
	parts := make([]string, 0, 2)
	if leg.Market != "" {
		parts = append(parts, leg.Market)
	}
	if leg.Target != "" && leg.Target != leg.Market {
		parts = append(parts, leg.Target)
	}
	return strings.Join(parts, " ")
}

// flattenLegs joins every leaf leg in the tree, depth first
func flattenLegs(legs []models.Leg) string {
	var parts []string
	var walk func(l *models.Leg)
	walk = func(l *models.Leg) {
		if l.IsGroup {
			for i := range l.Children {
				walk(&l.Children[i])
			}
			return
		}
		if s := legSummary(l); s != "" {
			parts = append(parts, s)
		}
	}
	for i := range legs {
		walk(&legs[i])
	}
	return strings.Join(parts, ", ")
}
