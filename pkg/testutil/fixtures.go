package testutil

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/XavierBriggs/Scribe/pkg/models"
)

// NewTestWager creates a test wager
func NewTestWager(refID string, betType models.BetType, legs ...models.Leg) models.Wager {
	return models.Wager{
		ReferenceID: refID,
		BookKey:     "hardrock",
		PlacedAt:    time.Date(2025, 3, 14, 19, 30, 0, 0, time.UTC),
		BetType:     betType,
		League:      "NBA",
		Result:      models.ResultPending,
		Legs:        legs,
	}
}

// NewTestLeg creates a test leaf leg
func NewTestLeg(market, target string, odds *int, result models.BetResult) models.Leg {
	return models.Leg{
		Market: market,
		Target: target,
		Odds:   odds,
		Result: result,
	}
}

// NewTestGroupLeg creates a test group leg with the given children
func NewTestGroupLeg(label string, children ...models.Leg) models.Leg {
	return models.Leg{
		IsGroup:  true,
		Market:   label,
		Children: children,
	}
}

// PtrInt creates a pointer to int
func PtrInt(val int) *int {
	return &val
}

// PtrFloat64 creates a pointer to float64
func PtrFloat64(val float64) *float64 {
	return &val
}

// CardLeg describes one leg of a synthetic bet card. A leg with Children is
// rendered as a nested group node.
type CardLeg struct {
	Market      string
	Target      string
	Odds        string
	Status      string // visible status text, e.g. "Won"
	StatusClass string // class tokens on the status node, e.g. "leg-won"
	IconColor   string // stroke color of the status icon, when set
	Children    []CardLeg
}

// Card describes one synthetic Hard Rock bet card
type Card struct {
	ID          string // suffix of the container data-testid
	ReceiptID   string
	PlacedAt    string
	HeaderTitle string
	HeaderOdds  string
	Stake       string
	Payout      string
	Status      string
	Legs        []CardLeg
}

// RenderHistoryPage renders a full saved-page document containing the given
// bet cards, using the data-testid conventions the hardrock adapter expects
func RenderHistoryPage(cards ...Card) string {
	var b strings.Builder
	b.WriteString("<html><body><div data-testid=\"bet-history\">\n")
	for i, c := range cards {
		renderCard(&b, c, i)
	}
	b.WriteString("</div></body></html>\n")
	return b.String()
}

func renderCard(b *strings.Builder, c Card, index int) {
	id := c.ID
	if id == "" {
		id = fmt.Sprintf("bet-card-%d", index)
	}

	fmt.Fprintf(b, "<div data-testid=%q>\n", id)
	writeField(b, "bet-receipt-id", c.ReceiptID)
	writeField(b, "bet-placed-at", c.PlacedAt)
	writeField(b, "bet-header-title", c.HeaderTitle)
	writeField(b, "bet-header-odds", c.HeaderOdds)

	for _, leg := range c.Legs {
		renderLeg(b, leg)
	}

	b.WriteString("<div data-testid=\"bet-footer\">\n")
	writeField(b, "bet-stake", c.Stake)
	writeField(b, "bet-payout", c.Payout)
	writeField(b, "bet-status", c.Status)
	b.WriteString("</div>\n")

	b.WriteString("</div>\n")
}

func renderLeg(b *strings.Builder, leg CardLeg) {
	b.WriteString("<div data-testid=\"bet-leg\">\n")
	writeField(b, "leg-market", leg.Market)
	writeField(b, "leg-target", leg.Target)
	writeField(b, "leg-odds", leg.Odds)

	if leg.Status != "" || leg.StatusClass != "" || leg.IconColor != "" {
		fmt.Fprintf(b, "<span data-testid=\"leg-status\" class=%q>", leg.StatusClass)
		if leg.IconColor != "" {
			fmt.Fprintf(b, "<svg><path stroke=%q fill=\"none\"></path></svg>", leg.IconColor)
		}
		b.WriteString(html.EscapeString(leg.Status))
		b.WriteString("</span>\n")
	}

	for _, child := range leg.Children {
		renderLeg(b, child)
	}

	b.WriteString("</div>\n")
}

// NestedCardLegs builds a leg chain nested to the given depth, for exercising
// the recursion cap. Each level wraps one deeper leg plus a leaf sibling.
func NestedCardLegs(depth int) CardLeg {
	leg := CardLeg{Market: "Innermost", Target: "Leaf 1+", Status: "Pending"}
	for i := depth - 1; i >= 0; i-- {
		leg = CardLeg{
			Market: fmt.Sprintf("Group level %d", i),
			Children: []CardLeg{
				leg,
				{Market: fmt.Sprintf("Sibling %d", i), Target: "Over 1.5", Status: "Pending"},
			},
		}
	}
	return leg
}

func writeField(b *strings.Builder, testid, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "<span data-testid=%q>%s</span>\n", testid, html.EscapeString(value))
}
