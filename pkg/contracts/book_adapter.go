package contracts

import (
	"github.com/PuerkitoBio/goquery"
)

// Selectors names the text regions inside one wager container. The extraction
// pipeline is generic over these; only the selectors differ per book family.
type Selectors struct {
	ReferenceID  string // node whose text is the book-issued reference id
	PlacedAt     string // displayed placement timestamp
	HeaderTitle  string // slip summary line (bet type badge + description)
	HeaderOdds   string // slip-level American odds
	LegMarket    string // leaf leg market text / group summary label
	LegTarget    string // leaf leg target or line text
	LegOdds      string // per-leg odds
	LegStatus    string // status icon or label used for result inference
	Footer       string // settlement footer region
	Stake        string // stake amount inside the footer
	Payout       string // payout amount inside the footer
	FooterStatus string // displayed status word inside the footer
}

// BookAdapter is the only book-specific piece of the pipeline: it knows how
// a given sportsbook's saved bet-history markup identifies wager containers
// and leg nodes. Everything else is shared.
type BookAdapter interface {
	// BookKey returns the adapter's book identifier (e.g. "hardrock")
	BookKey() string

	// FindWagerContainers locates every wager container in document order
	FindWagerContainers(doc *goquery.Document) *goquery.Selection

	// FindLegCandidates locates all leg-candidate nodes under a container
	// or group node, including nested ones
	FindLegCandidates(s *goquery.Selection) *goquery.Selection

	// LegCandidateSelector returns the selector used by FindLegCandidates,
	// so the tree builder can separate direct children from nested ones
	LegCandidateSelector() string

	// Selectors returns the field selectors for this book family
	Selectors() Selectors
}
