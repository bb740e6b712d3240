package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/XavierBriggs/Scribe/pkg/contracts"
	"github.com/XavierBriggs/Scribe/pkg/models"
)

const (
	// MaxLegDepth bounds recursion into nested leg groups. Malformed or
	// adversarially deep markup terminates with a sentinel leg instead of
	// unbounded recursion.
	MaxLegDepth = 10

	// SentinelMarket is the market text of the depth-exceeded sentinel leg
	SentinelMarket = "Additional selections unavailable"
)

// Status icon colors. Hard Rock renders a green check or red cross whose
// stroke/fill carries these values; some page variants put the color on the
// fill instead of the stroke, so both attributes are checked.
const (
	winColor  = "#31a24c"
	lossColor = "#e0245e"
)

// resultRule is one (predicate, result) entry of the leg result inference
// list. Rules are evaluated in fixed order with a final default, so a new
// visual encoding is a new entry, not new control flow.
type resultRule struct {
	name   string
	pred   func(status *goquery.Selection) bool
	result models.BetResult
}

// legResultRules is the inference order: semantic status tokens first, then
// the two-color icon convention. Different rendering variants of the same
// book encode status differently, so every tier is attempted before falling
// back to the inherited default.
var legResultRules = []resultRule{
	{name: "token-win", pred: statusHasToken("win", "won"), result: models.ResultWin},
	{name: "token-loss", pred: statusHasToken("loss", "lost", "lose"), result: models.ResultLoss},
	{name: "token-push", pred: statusHasToken("push", "void", "voided"), result: models.ResultPush},
	{name: "token-pending", pred: statusHasToken("pending", "open"), result: models.ResultPending},
	{name: "icon-win-color", pred: statusHasColor(winColor), result: models.ResultWin},
	{name: "icon-loss-color", pred: statusHasColor(lossColor), result: models.ResultLoss},
}

// LegTreeBuilder recursively builds the leg hierarchy of one wager container
type LegTreeBuilder struct {
	adapter contracts.BookAdapter
	log     zerolog.Logger
}

// NewLegTreeBuilder creates a leg tree builder for one book adapter
func NewLegTreeBuilder(adapter contracts.BookAdapter, log zerolog.Logger) *LegTreeBuilder {
	return &LegTreeBuilder{adapter: adapter, log: log}
}

// Build returns the top-level legs of a wager container. defaultResult is the
// footer result, inherited by any leg whose own visual state is unreadable.
func (b *LegTreeBuilder) Build(container *goquery.Selection, defaultResult models.BetResult) []models.Leg {
	candidates := b.directCandidates(container)

	legs := make([]models.Leg, 0, candidates.Length())
	candidates.Each(func(_ int, s *goquery.Selection) {
		legs = append(legs, b.buildLeg(s, defaultResult, 0))
	})
	return legs
}

// buildLeg builds one leg, recursing into nested groups
func (b *LegTreeBuilder) buildLeg(s *goquery.Selection, defaultResult models.BetResult, depth int) models.Leg {
	if depth >= MaxLegDepth {
		b.log.Warn().Int("depth", depth).Msg("leg nesting exceeds depth cap, emitting sentinel")
		return models.Leg{Market: SentinelMarket, Result: defaultResult}
	}

	nested := b.directCandidates(s)
	if nested.Length() > 0 {
		return b.buildGroup(s, nested, defaultResult, depth)
	}
	return b.buildLeaf(s, defaultResult)
}

// buildLeaf extracts market, target, odds and result for one leaf leg
func (b *LegTreeBuilder) buildLeaf(s *goquery.Selection, defaultResult models.BetResult) models.Leg {
	sel := b.adapter.Selectors()

	return models.Leg{
		Market: b.ownText(s, sel.LegMarket),
		Target: b.ownText(s, sel.LegTarget),
		Odds:   ParseAmericanOdds(b.ownText(s, sel.LegOdds)),
		Result: b.inferResult(s, defaultResult),
	}
}

// buildGroup builds a nested leg group. The group's summary label is stored
// in the market field, not the target field; downstream code depends on that
// asymmetry to tell group summaries from leaf targets.
func (b *LegTreeBuilder) buildGroup(s *goquery.Selection, nested *goquery.Selection, defaultResult models.BetResult, depth int) models.Leg {
	sel := b.adapter.Selectors()

	group := models.Leg{
		IsGroup: true,
		Market:  b.ownText(s, sel.LegMarket),
	}

	nested.Each(func(_ int, child *goquery.Selection) {
		group.Children = append(group.Children, b.buildLeg(child, defaultResult, depth+1))
	})

	group.Result = AggregateGroupResult(group.Children, defaultResult)

	// A group carrying its own combined odds owns the price for the whole
	// group; per-leg odds on its direct leaf children are display noise.
	// A group without parsed odds must not blank out legitimate leg odds.
	if odds := ParseAmericanOdds(b.ownText(s, sel.LegOdds)); odds != nil {
		group.Odds = odds
		for i := range group.Children {
			if !group.Children[i].IsGroup {
				group.Children[i].Odds = nil
			}
		}
	}

	return group
}

// AggregateGroupResult computes a group's result from its children.
// Loss dominates, then pending, then win (everything win-or-push with at
// least one win), then push (everything push). The order matters: a group
// with a lost child is lost even if another child is still pending.
func AggregateGroupResult(children []models.Leg, defaultResult models.BetResult) models.BetResult {
	if len(children) == 0 {
		return defaultResult
	}

	anyWin := false
	anyPush := 0
	for _, c := range children {
		switch c.Result {
		case models.ResultLoss:
			return models.ResultLoss
		case models.ResultWin:
			anyWin = true
		case models.ResultPush:
			anyPush++
		}
	}

	for _, c := range children {
		if c.Result == models.ResultPending {
			return models.ResultPending
		}
	}

	if anyWin {
		return models.ResultWin
	}
	if anyPush == len(children) {
		return models.ResultPush
	}
	return defaultResult
}

// inferResult runs the ordered rule list against the leg's status node,
// inheriting defaultResult when no rule matches
func (b *LegTreeBuilder) inferResult(s *goquery.Selection, defaultResult models.BetResult) models.BetResult {
	status := s.Find(b.adapter.Selectors().LegStatus).First()
	if status.Length() == 0 {
		return defaultResult
	}

	for _, rule := range legResultRules {
		if rule.pred(status) {
			return rule.result
		}
	}
	return defaultResult
}

// statusHasToken matches any of the given tokens in the status node's class
// attribute or visible text
func statusHasToken(tokens ...string) func(*goquery.Selection) bool {
	return func(status *goquery.Selection) bool {
		class, _ := status.Attr("class")
		haystack := class + " " + status.Text()
		for _, tok := range tokens {
			if containsWord(haystack, tok) {
				return true
			}
		}
		return false
	}
}

// statusHasColor matches the status icon's stroke or fill, on the node
// itself or any descendant (the color sits on an inner path in some variants)
func statusHasColor(color string) func(*goquery.Selection) bool {
	return func(status *goquery.Selection) bool {
		if nodeHasColor(status, color) {
			return true
		}
		found := false
		status.Find("*").EachWithBreak(func(_ int, n *goquery.Selection) bool {
			if nodeHasColor(n, color) {
				found = true
				return false
			}
			return true
		})
		return found
	}
}

func nodeHasColor(s *goquery.Selection, color string) bool {
	if v, ok := s.Attr("stroke"); ok && strings.EqualFold(strings.TrimSpace(v), color) {
		return true
	}
	if v, ok := s.Attr("fill"); ok && strings.EqualFold(strings.TrimSpace(v), color) {
		return true
	}
	return false
}

// directCandidates returns leg nodes under s that have no other leg node
// between themselves and s, i.e. the next level of the tree only
func (b *LegTreeBuilder) directCandidates(s *goquery.Selection) *goquery.Selection {
	legSel := b.adapter.LegCandidateSelector()
	return b.adapter.FindLegCandidates(s).FilterFunction(func(_ int, c *goquery.Selection) bool {
		return c.ParentsUntilSelection(s).Filter(legSel).Length() == 0
	})
}

// ownText returns the trimmed text of the first node matching selector that
// belongs to s itself rather than to a nested leg
func (b *LegTreeBuilder) ownText(s *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	legSel := b.adapter.LegCandidateSelector()
	own := s.Find(selector).FilterFunction(func(_ int, n *goquery.Selection) bool {
		return n.ParentsUntilSelection(s).Filter(legSel).Length() == 0
	})
	return strings.TrimSpace(own.First().Text())
}

// summaryFragment matches the "(prefix)? (number)(+)?" shape of one fragment
// of a collapsed card's summary line, e.g. "LeBron James 25+" or "3 leg 250".
var summaryFragment = regexp.MustCompile(`^(?:(.*\S)\s+)?(\d+(?:\.\d+)?\+?)$`)

// LegsFromSummary reconstructs minimal legs from a wager's single summary
// text line. Collapsed card renderings of parlays never expose a leg list;
// splitting the summary on commas recovers at least market and target text.
func LegsFromSummary(summary string, defaultResult models.BetResult) []models.Leg {
	var legs []models.Leg
	for _, fragment := range strings.Split(summary, ",") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		leg := models.Leg{Market: fragment, Result: defaultResult}
		if m := summaryFragment.FindStringSubmatch(fragment); m != nil {
			leg.Market = m[1]
			leg.Target = m[2]
		}
		legs = append(legs, leg)
	}
	return legs
}
