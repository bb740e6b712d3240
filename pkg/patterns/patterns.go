// Package patterns holds the static ordered keyword and pattern tables that
// the extraction and classification pipeline matches against. It is pure
// data: matching behavior lives with the consumers.
package patterns

import "strings"

// StatPattern maps market-text phrasings to a short stat code.
type StatPattern struct {
	Code  string
	Terms []string // lowercase substrings, any match wins
}

// StatPatterns is the ordered stat-type table. Combined stats come before
// individual ones: "points" is a substring of every combined phrasing and
// would shadow the more specific code if checked first.
var StatPatterns = []StatPattern{
	// Combined basketball stats
	{Code: "PRA", Terms: []string{"points + rebounds + assists", "pts + rebs + asts", "points, rebounds and assists", "points rebounds assists", "pts+reb+ast"}},
	{Code: "PR", Terms: []string{"points + rebounds", "pts + rebs", "points rebounds", "pts+reb"}},
	{Code: "PA", Terms: []string{"points + assists", "pts + asts", "points assists", "pts+ast"}},
	{Code: "RA", Terms: []string{"rebounds + assists", "rebs + asts", "rebounds assists", "reb+ast"}},
	{Code: "Stocks", Terms: []string{"steals + blocks", "stls + blks"}},

	// Individual basketball stats
	{Code: "Pts", Terms: []string{"points", "pts"}},
	{Code: "Reb", Terms: []string{"rebounds", "rebs"}},
	{Code: "Ast", Terms: []string{"assists", "asts"}},
	{Code: "3PM", Terms: []string{"threes", "3-pointers", "three pointers", "3pt made", "made threes"}},
	{Code: "Stl", Terms: []string{"steals", "stls"}},
	{Code: "Blk", Terms: []string{"blocks", "blks"}},
	{Code: "TO", Terms: []string{"turnovers"}},

	// Football
	{Code: "Pass Yds", Terms: []string{"passing yards", "pass yds"}},
	{Code: "Rush Yds", Terms: []string{"rushing yards", "rush yds"}},
	{Code: "Rec Yds", Terms: []string{"receiving yards", "rec yds"}},
	{Code: "Rec", Terms: []string{"receptions"}},
	{Code: "Pass TD", Terms: []string{"passing touchdowns", "passing tds"}},
	{Code: "Anytime TD", Terms: []string{"anytime touchdown", "anytime td"}},

	// Baseball / hockey
	{Code: "K", Terms: []string{"strikeouts"}},
	{Code: "TB", Terms: []string{"total bases"}},
	{Code: "HR", Terms: []string{"home runs", "home run"}},
	{Code: "SOG", Terms: []string{"shots on goal"}},
	{Code: "Sv", Terms: []string{"saves"}},
	{Code: "G", Terms: []string{"goals scored", "anytime goal"}},
}

// StatWords is every individual word appearing in a stat pattern term,
// derived once at init. Consumers use it to find where a market text stops
// naming a player and starts naming a stat.
var StatWords = func() map[string]bool {
	words := make(map[string]bool)
	for _, p := range StatPatterns {
		for _, term := range p.Terms {
			for _, w := range strings.Fields(term) {
				w = strings.ToLower(strings.Trim(w, "+,"))
				if w != "" {
					words[w] = true
				}
			}
		}
	}
	return words
}()

// TypeAlias is an exact-match (case-insensitive, whitespace-normalized)
// market name mapped directly to a type code. Checked before any pattern
// table so compound props never fall into the stat patterns above.
var TypeAliases = map[string]string{
	"first basket":             "First Basket",
	"first field goal":         "First Basket",
	"double-double":            "DD",
	"double double":            "DD",
	"triple-double":            "TD",
	"triple double":            "TD",
	"anytime touchdown scorer": "Anytime TD",
	"first touchdown scorer":   "First TD",
}

// FuturesMarket maps description phrasings to a futures type code.
type FuturesMarket struct {
	Type  string
	Terms []string
}

// FuturesMarkets is checked in order; more specific award names come before
// the generic "to win" catch-alls.
var FuturesMarkets = []FuturesMarket{
	{Type: "NBA Finals", Terms: []string{"nba finals", "nba championship"}},
	{Type: "Super Bowl", Terms: []string{"super bowl"}},
	{Type: "World Series", Terms: []string{"world series"}},
	{Type: "Stanley Cup", Terms: []string{"stanley cup"}},
	{Type: "MVP", Terms: []string{"mvp", "most valuable player"}},
	{Type: "ROY", Terms: []string{"rookie of the year"}},
	{Type: "DPOY", Terms: []string{"defensive player of the year"}},
	{Type: "Win Total", Terms: []string{"win total", "regular season wins"}},
	{Type: "Division", Terms: []string{"to win the division", "division winner"}},
	{Type: "Conference", Terms: []string{"to win the conference", "conference winner"}},
	{Type: "Futures", Terms: []string{"to win", "champion", "futures"}},
}

// FuturesKeywords are the signals that push a wager into the Futures bucket.
var FuturesKeywords = []string{
	"to win", "mvp", "win total", "champion", "futures",
	"rookie of the year", "finals", "super bowl", "world series",
	"stanley cup", "division winner", "conference winner",
}

// MainMarketKeywords indicate a moneyline/spread/total game market. "over",
// "under", "total" and "points" appear in prop text too, so a main-market
// match alone is never conclusive; see the strong-prop exclusion below.
var MainMarketKeywords = []string{
	"moneyline", "money line", "spread", "point spread", "total",
	"over", "under", "to cover", "run line", "puck line",
}

// DefaultStrongPropKeywords are phrases that only occur in player prop
// markets. Deliberately absent: "points", "total", "over", "under" — those
// appear in game totals as well and must not force a Props classification.
// The live list is configuration (classify.Keywords), these are defaults.
var DefaultStrongPropKeywords = []string{
	"rebounds", "assists", "threes", "3-pointers", "steals", "blocks",
	"turnovers", "double-double", "triple-double", "first basket",
	"passing yards", "rushing yards", "receiving yards", "receptions",
	"passing touchdowns", "anytime touchdown", "touchdown scorer",
	"strikeouts", "total bases", "home runs", "shots on goal", "saves",
	"player points", "player props",
}

// LeagueToken pairs displayed league text with its canonical league code.
type LeagueToken struct {
	Token string
	Code  string
}

// LeagueTokens maps displayed league text to the canonical league code,
// checked as whole tokens against container text. The order is fixed:
// detection is first-match-wins, so a cross-sport slip naming two leagues
// always resolves to the same one.
var LeagueTokens = []LeagueToken{
	{Token: "NBA", Code: "NBA"},
	{Token: "WNBA", Code: "WNBA"},
	{Token: "NCAAB", Code: "NCAAB"},
	{Token: "NCAAM", Code: "NCAAB"},
	{Token: "NFL", Code: "NFL"},
	{Token: "NCAAF", Code: "NCAAF"},
	{Token: "MLB", Code: "MLB"},
	{Token: "NHL", Code: "NHL"},
	{Token: "UFC", Code: "UFC"},
	{Token: "EPL", Code: "EPL"},
	{Token: "MLS", Code: "MLS"},
}
