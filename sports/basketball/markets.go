package basketball

import "github.com/XavierBriggs/Scribe/pkg/patterns"

// statPatterns returns basketball-specific stat phrasings checked before the
// generic table. "TD" on a basketball slip is a triple-double, never a
// touchdown, so it must be resolved here.
func statPatterns() []patterns.StatPattern {
	return []patterns.StatPattern{
		{Code: "TD", Terms: []string{"triple-double", "triple double", "td"}},
		{Code: "DD", Terms: []string{"double-double", "double double", "dd"}},
		{Code: "First Basket", Terms: []string{"first basket", "first field goal"}},
		{Code: "3PM", Terms: []string{"3pm", "threes made"}},
	}
}

// typeAliases returns exact-match basketball type codes
func typeAliases() map[string]string {
	return map[string]string{
		"td":            "TD",
		"dd":            "DD",
		"triple-double": "TD",
		"double-double": "DD",
		"first basket":  "First Basket",
	}
}

// futuresMarkets returns basketball futures type codes
func futuresMarkets() []patterns.FuturesMarket {
	return []patterns.FuturesMarket{
		{Type: "NBA Finals", Terms: []string{"nba finals", "nba championship"}},
		{Type: "Eastern Conference", Terms: []string{"eastern conference"}},
		{Type: "Western Conference", Terms: []string{"western conference"}},
		{Type: "MVP", Terms: []string{"mvp"}},
		{Type: "ROY", Terms: []string{"rookie of the year"}},
		{Type: "Win Total", Terms: []string{"win total", "regular season wins"}},
	}
}
