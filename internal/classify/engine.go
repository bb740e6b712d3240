// Package classify assigns each wager a market category and fine type code.
// Classification is deterministic rule matching in a fixed order: the same
// wager always classifies the same way, and the result is always a member of
// the closed category enumeration.
package classify

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/XavierBriggs/Scribe/internal/registry"
	"github.com/XavierBriggs/Scribe/pkg/contracts"
	"github.com/XavierBriggs/Scribe/pkg/models"
	"github.com/XavierBriggs/Scribe/pkg/patterns"
)

// Engine is the classification engine
type Engine struct {
	reg *registry.SportRegistry
	kw  Keywords
	log zerolog.Logger
}

// Ensure Engine implements the shared classifier contract
var _ contracts.BetClassifier = (*Engine)(nil)

// NewEngine creates a classification engine over the sport registry
func NewEngine(reg *registry.SportRegistry, kw Keywords, log zerolog.Logger) *Engine {
	return &Engine{reg: reg, kw: kw, log: log}
}

// Classify assigns the market category for a wager. The decision order is
// fixed and first-match-wins:
//
//  1. any parlay-family bet type is Parlays, regardless of leg content
//  2. futures keywords in the description make it Futures
//  3. main-market keywords make it Main Markets, unless a strong prop
//     keyword also matches or the resolved entity is not a recognized team —
//     "Player Over 25.5 Points" must not classify as a game total
//  4. any prop signal makes it Props
//  5. everything else is Main Markets; there is no "unknown"
func (e *Engine) Classify(w *models.Wager) models.MarketCategory {
	if w.BetType.IsParlayFamily() {
		return models.CategoryParlays
	}

	desc := w.Description

	if matchesAnyPhrase(desc, e.kw.Futures) {
		return models.CategoryFutures
	}

	entity := w.EntityName
	if entity == "" {
		entity = resolveEntity(desc)
	}

	if matchesAnyPhrase(desc, e.kw.MainMarkets) && !matchesAnyPhrase(desc, e.kw.StrongProps) {
		if entity == "" || e.reg.IsTeamName(w.League, entity) {
			return models.CategoryMainMarkets
		}
		// Entity present but not a team: ambiguous, fall through to the
		// prop check below.
	}

	if entity != "" && !e.reg.IsTeamName(w.League, entity) {
		return models.CategoryProps
	}
	if e.hasPropSignal(w) {
		return models.CategoryProps
	}

	return models.CategoryMainMarkets
}

// ClassifyBet assigns category and type in one pass. This is the single
// interface the pipeline and the storage migration share.
func (e *Engine) ClassifyBet(w *models.Wager) (models.MarketCategory, string) {
	category := e.Classify(w)

	source := w.Type
	if source == "" {
		if leaf := firstLeaf(w.Legs); leaf != nil {
			source = leaf.Market
		}
	}
	if source == "" {
		source = w.Description
	}

	return category, e.DetermineType(source, category, w.League)
}

// ClassifyLeg categorizes a bare market string for legacy legs that lack
// full wager context
func (e *Engine) ClassifyLeg(marketText, sport string) models.MarketCategory {
	if matchesAnyPhrase(marketText, e.kw.Futures) {
		return models.CategoryFutures
	}
	if matchesAnyPhrase(marketText, e.kw.StrongProps) || e.detectStat(marketText, sport) != "" {
		return models.CategoryProps
	}
	return models.CategoryMainMarkets
}

// DetermineType resolves the fine type code for a market text within a
// category. The direct alias map wins (compound props like first-basket and
// triple-double), then the sport-specific stat table, then category-level
// keywords. When nothing matches the original text comes back unmodified, so
// a manually corrected type survives re-classification.
func (e *Engine) DetermineType(marketText string, category models.MarketCategory, league string) string {
	key := aliasKey(marketText)

	if sport, ok := e.reg.ForLeague(league); ok {
		if code, ok := sport.TypeAliases()[key]; ok {
			return code
		}
	}
	if code, ok := patterns.TypeAliases[key]; ok {
		return code
	}

	if category == models.CategoryFutures {
		if sport, ok := e.reg.ForLeague(league); ok {
			for _, fm := range sport.FuturesMarkets() {
				if matchesAnyPhrase(marketText, fm.Terms) {
					return fm.Type
				}
			}
		}
		for _, fm := range patterns.FuturesMarkets {
			if matchesAnyPhrase(marketText, fm.Terms) {
				return fm.Type
			}
		}
	}

	if category == models.CategoryMainMarkets {
		switch {
		case matchesAnyPhrase(marketText, []string{"moneyline", "money line"}):
			return "ML"
		case matchesAnyPhrase(marketText, []string{"spread", "point spread", "run line", "puck line"}):
			return "Spread"
		case matchesAnyPhrase(marketText, []string{"total", "over", "under"}):
			return "Total"
		}
	}

	if code := e.detectStat(marketText, league); code != "" {
		return code
	}

	return marketText
}

// hasPropSignal reports any evidence that a wager is a player prop: a
// resolved entity, a resolved type, any leg carrying entities, or a strong
// prop keyword in the description
func (e *Engine) hasPropSignal(w *models.Wager) bool {
	if w.EntityName != "" || w.Type != "" {
		return true
	}
	for i := range w.Legs {
		if legHasEntities(&w.Legs[i]) {
			return true
		}
	}
	return matchesAnyPhrase(w.Description, e.kw.StrongProps)
}

// detectStat matches the sport stat tables then the generic table, in order
func (e *Engine) detectStat(marketText, league string) string {
	norm := normalizePhrase(marketText)
	if norm == "" {
		return ""
	}

	if sport, ok := e.reg.ForLeague(league); ok {
		for _, p := range sport.StatPatterns() {
			if matchesAnyNorm(norm, p.Terms) {
				return p.Code
			}
		}
	}
	for _, p := range patterns.StatPatterns {
		if matchesAnyNorm(norm, p.Terms) {
			return p.Code
		}
	}
	return ""
}

func legHasEntities(l *models.Leg) bool {
	if len(l.Entities) > 0 {
		return true
	}
	for i := range l.Children {
		if legHasEntities(&l.Children[i]) {
			return true
		}
	}
	return false
}

func firstLeaf(legs []models.Leg) *models.Leg {
	for i := range legs {
		if !legs[i].IsGroup {
			return &legs[i]
		}
		if leaf := firstLeaf(legs[i].Children); leaf != nil {
			return leaf
		}
	}
	return nil
}

// entityStopWords are the single words that end the name portion of a
// description: main-market vocabulary plus over/under
var entityStopWords = func() map[string]bool {
	stops := map[string]bool{"over": true, "under": true, "vs": true, "at": true}
	for _, phrase := range patterns.MainMarketKeywords {
		for _, w := range strings.Fields(strings.ToLower(phrase)) {
			stops[w] = true
		}
	}
	return stops
}()

// resolveEntity derives a player/team name from a description when the
// extraction pass did not resolve one: take the leading tokens up to the
// first stat word, market word or number, and accept them only when they
// look like a name (two or more capitalized tokens)
func resolveEntity(desc string) string {
	var kept []string
	for _, f := range strings.Fields(desc) {
		tok := strings.ToLower(strings.Trim(f, ".,:;"))
		if entityStopWords[tok] || patterns.StatWords[tok] {
			break
		}
		if strings.ContainsAny(tok, "0123456789") {
			break
		}
		kept = append(kept, f)
	}
	if len(kept) < 2 {
		return ""
	}
	for _, f := range kept {
		r := []rune(f)[0]
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return ""
		}
	}
	return strings.Join(kept, " ")
}

// aliasKey normalizes a market text for exact alias lookup: lowercase with
// collapsed whitespace
func aliasKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// normalizePhrase lowercases and collapses everything except letters, digits
// and '+' to single spaces
func normalizePhrase(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// matchesAnyPhrase reports whether text contains any phrase on a word
// boundary, case-insensitively
func matchesAnyPhrase(text string, phrases []string) bool {
	return matchesAnyNorm(normalizePhrase(text), phrases)
}

func matchesAnyNorm(norm string, phrases []string) bool {
	padded := " " + norm + " "
	for _, phrase := range phrases {
		p := normalizePhrase(phrase)
		if p == "" {
			continue
		}
		if strings.Contains(padded, " "+p+" ") {
			return true
		}
	}
	return false
}
