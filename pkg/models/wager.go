package models

import "time"

// BetResult is the settlement outcome of a wager or a single leg
type BetResult string

const (
	ResultWin     BetResult = "win"
	ResultLoss    BetResult = "loss"
	ResultPush    BetResult = "push"
	ResultPending BetResult = "pending"
)

// BetType identifies the structural family of a wager
type BetType string

const (
	BetTypeSingle  BetType = "single"
	BetTypeParlay  BetType = "parlay"
	BetTypeSGP     BetType = "sgp"
	BetTypeSGPPlus BetType = "sgp_plus"
	BetTypeLive    BetType = "live"
	BetTypeOther   BetType = "other"
)

// IsParlayFamily returns true for any multi-leg bet type
func (t BetType) IsParlayFamily() bool {
	return t == BetTypeParlay || t == BetTypeSGP || t == BetTypeSGPPlus
}

// MarketCategory is the four-way classification bucket.
// Classification must always commit to one of these; there is no "unknown".
type MarketCategory string

const (
	CategoryProps       MarketCategory = "Props"
	CategoryMainMarkets MarketCategory = "Main Markets"
	CategoryFutures     MarketCategory = "Futures"
	CategoryParlays     MarketCategory = "Parlays"
)

// ValidCategory reports whether c is a member of the closed enumeration.
// Stored wagers failing this check must be re-classified before being trusted.
func ValidCategory(c MarketCategory) bool {
	switch c {
	case CategoryProps, CategoryMainMarkets, CategoryFutures, CategoryParlays:
		return true
	}
	return false
}

// OverUnder marks which side of a line a leg takes
type OverUnder string

const (
	OverUnderOver  OverUnder = "Over"
	OverUnderUnder OverUnder = "Under"
)

// Leg is one selection within a wager. Legs form a tree: a leaf carries
// market/target/result, a group carries children and an aggregated result.
type Leg struct {
	Market    string
	Target    string
	Line      string
	OverUnder OverUnder
	StatType  string
	Odds      *int // nil when unparsed, or cleared under a combined-odds group
	Result    BetResult
	Entities  []string
	IsGroup   bool
	Children  []Leg // populated only when IsGroup
}

// Wager is one complete bet slip, built once per extraction pass and
// never mutated afterwards. Re-extraction produces a new Wager.
type Wager struct {
	ReferenceID string
	BookKey     string

	PlacedAt    time.Time // zero when the displayed timestamp did not parse
	PlacedAtRaw string    // displayed text, always retained
	SettledAt   *time.Time

	BetType     BetType
	League      string // "Unknown" when undetectable
	Description string
	Odds        *int // signed American odds, nil when unparsed

	Stake  *float64 // nil means "could not parse", which is not 0
	Payout *float64

	Result BetResult
	Legs   []Leg

	Category   MarketCategory
	Type       string
	EntityName string

	RawExcerpt string // first few hundred chars of container text, diagnostics only
}

// LeafCount returns the number of leaf legs across the whole tree
func (w *Wager) LeafCount() int {
	n := 0
	for i := range w.Legs {
		n += leafCount(&w.Legs[i])
	}
	return n
}

func leafCount(l *Leg) int {
	if !l.IsGroup {
		return 1
	}
	n := 0
	for i := range l.Children {
		n += leafCount(&l.Children[i])
	}
	return n
}

// HasGroupLeg reports whether any top-level leg is a nested group
func (w *Wager) HasGroupLeg() bool {
	for i := range w.Legs {
		if w.Legs[i].IsGroup {
			return true
		}
	}
	return false
}
