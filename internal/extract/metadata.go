package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/XavierBriggs/Scribe/pkg/contracts"
	"github.com/XavierBriggs/Scribe/pkg/models"
)

// SlipMeta is a wager's identity: the book-issued reference id and the
// displayed placement timestamp
type SlipMeta struct {
	ReferenceID string
	PlacedAt    time.Time // zero when PlacedAtRaw did not parse
	PlacedAtRaw string
}

// FooterMeta is the settlement footer of a wager container
type FooterMeta struct {
	Stake     *float64
	Payout    *float64
	Result    models.BetResult
	SettledAt *time.Time
}

// placedAtLayouts covers the calendar formats Hard Rock renders: month name,
// day, year, 12-hour clock with AM/PM, in a few punctuation variants.
var placedAtLayouts = []string{
	"January 2, 2006 at 3:04 PM",
	"January 2, 2006, 3:04 PM",
	"January 2, 2006 3:04 PM",
	"Jan 2, 2006 at 3:04 PM",
	"Jan 2, 2006, 3:04 PM",
	"Jan 2, 2006 3:04 PM",
	"1/2/2006 3:04 PM",
}

// ExtractSlipMeta pulls the reference id and placement timestamp out of one
// wager container. An unparsable timestamp keeps the raw displayed string and
// a zero PlacedAt rather than fabricating a time, so callers can detect the
// failure via PlacedAt.IsZero().
func ExtractSlipMeta(s *goquery.Selection, sel contracts.Selectors) SlipMeta {
	meta := SlipMeta{
		ReferenceID: nodeText(s, sel.ReferenceID),
		PlacedAtRaw: nodeText(s, sel.PlacedAt),
	}

	if t, ok := parseDisplayedTime(meta.PlacedAtRaw); ok {
		meta.PlacedAt = t
	}

	return meta
}

// ExtractFooterMeta pulls stake, payout and the displayed result out of the
// settlement footer. Unparsable money is nil, never 0: a zero payout on a
// lost bet and a payout that failed to parse are different facts.
func ExtractFooterMeta(s *goquery.Selection, sel contracts.Selectors) FooterMeta {
	footer := s.Find(sel.Footer).First()
	if footer.Length() == 0 {
		footer = s
	}

	return FooterMeta{
		Stake:  ParseMoney(nodeText(footer, sel.Stake)),
		Payout: ParseMoney(nodeText(footer, sel.Payout)),
		Result: FooterResult(nodeText(footer, sel.FooterStatus)),
	}
}

// FooterResult maps the footer's displayed status word onto a settlement
// result. The vocabulary is closed: won, lost and void are recognized,
// anything else (including empty) defaults to pending so an unknown status
// never drops a wager.
func FooterResult(status string) models.BetResult {
	switch {
	case containsWord(status, "won"):
		return models.ResultWin
	case containsWord(status, "lost"):
		return models.ResultLoss
	case containsWord(status, "void"), containsWord(status, "voided"):
		return models.ResultPush
	default:
		return models.ResultPending
	}
}

var moneyStrip = regexp.MustCompile(`[^0-9.\-]`)

// ParseMoney parses a displayed currency amount, stripping every character
// except digits, sign and decimal point. Returns nil when nothing parsable
// remains.
func ParseMoney(raw string) *float64 {
	cleaned := moneyStrip.ReplaceAllString(raw, "")
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return nil
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseAmericanOdds parses displayed American odds. Sportsbooks render the
// Unicode minus (U+2212) instead of ASCII, and prefix positive odds with "+";
// both are normalized before parsing. Returns nil on failure.
func ParseAmericanOdds(raw string) *int {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "−", "-")
	cleaned = strings.TrimPrefix(cleaned, "+")
	if cleaned == "" {
		return nil
	}

	v, err := strconv.Atoi(cleaned)
	if err != nil {
		return nil
	}
	return &v
}

// parseDisplayedTime tries each known calendar layout in order
func parseDisplayedTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range placedAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// nodeText returns the trimmed text of the first node matching selector
func nodeText(s *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return strings.TrimSpace(s.Find(selector).First().Text())
}

// containsWord reports whether text contains word as a standalone token,
// case-insensitively
func containsWord(text, word string) bool {
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if tok == word {
			return true
		}
	}
	return false
}
