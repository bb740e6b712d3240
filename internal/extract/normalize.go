package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/XavierBriggs/Scribe/internal/registry"
	"github.com/XavierBriggs/Scribe/pkg/models"
	"github.com/XavierBriggs/Scribe/pkg/patterns"
)

// Normalizer converts a leaf leg's free-text market and target strings into
// the canonical (statType, entity, line, overUnder) tuple
type Normalizer struct {
	reg *registry.SportRegistry
}

// NewNormalizer creates a normalizer backed by the sport registry
func NewNormalizer(reg *registry.SportRegistry) *Normalizer {
	return &Normalizer{reg: reg}
}

// NormalizeLeg fills the derived fields of one leaf leg in place
func (n *Normalizer) NormalizeLeg(leg *models.Leg, league string) {
	if leg.IsGroup {
		return
	}

	leg.StatType = n.DetectStatType(leg.Market, league)

	line, ou := ExtractLineAndOU(leg.Target)
	if line == "" {
		line, ou = ExtractLineAndOU(leg.Market)
	}
	leg.Line = line
	leg.OverUnder = ou

	if entity := n.ExtractEntity(leg.Market, leg.Target, league); entity != "" {
		leg.Entities = []string{entity}
	}
}

// DetectStatType returns the stat code for a market text. Sport-specific
// patterns are consulted first (basketball "TD" is a triple-double), then the
// generic ordered table, where combined stats precede the individual stats
// they contain. First match wins; no match returns "".
func (n *Normalizer) DetectStatType(marketText, league string) string {
	norm := normalizePhrase(marketText)
	if norm == "" {
		return ""
	}

	if sport, ok := n.reg.ForLeague(league); ok {
		for _, p := range sport.StatPatterns() {
			if matchesAny(norm, p.Terms) {
				return p.Code
			}
		}
	}

	for _, p := range patterns.StatPatterns {
		if matchesAny(norm, p.Terms) {
			return p.Code
		}
	}
	return ""
}

var (
	overUnderRe      = regexp.MustCompile(`(?i)\b(over|under)\s+(\d+(?:\.\d+)?)`)
	propThresholdRe  = regexp.MustCompile(`\b\d+(?:\.\d+)?\+`)
	trailingSpreadRe = regexp.MustCompile(`([+\-−]\d+(?:\.\d+)?)\s*$`)
)

// ExtractLineAndOU pulls the line and over/under side out of a target text.
// The checks are ordered: an explicit "Over N"/"Under N" first, then the
// prop-threshold shape "N+" (an implicit Over), then a trailing signed
// decimal treated as a spread with no side. "18+" and "+2.5" are
// syntactically close and must not cross-match, which this order guarantees.
func ExtractLineAndOU(text string) (string, models.OverUnder) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ""
	}

	if m := overUnderRe.FindStringSubmatch(text); m != nil {
		if strings.EqualFold(m[1], "over") {
			return m[2], models.OverUnderOver
		}
		return m[2], models.OverUnderUnder
	}

	if m := propThresholdRe.FindString(text); m != "" {
		return m, models.OverUnderOver
	}

	if m := trailingSpreadRe.FindStringSubmatch(text); m != nil {
		return strings.ReplaceAll(m[1], "−", "-"), ""
	}

	return "", ""
}

// ExtractEntity recovers the player or team a leg concerns. The market text
// is stripped of stat suffixes and numeric thresholds; what remains is
// accepted as a name only when it looks like one (two or more capitalized
// tokens). Otherwise the target text is tried as a team name, minus any
// trailing spread, and never "Over"/"Under".
func (n *Normalizer) ExtractEntity(marketText, targetText, league string) string {
	if name := stripStatSuffix(marketText); looksLikeName(name) {
		return name
	}

	team := strings.TrimSpace(trailingSpreadRe.ReplaceAllString(targetText, ""))
	if team == "" {
		return ""
	}
	first := strings.ToLower(strings.Fields(team)[0])
	if first == "over" || first == "under" {
		return ""
	}
	// Leftover digits mean a line, not a name ("Over 235.5" minus nothing),
	// unless the digits belong to a real team like the 76ers
	if strings.ContainsAny(team, "0123456789") && !n.reg.IsTeamName(league, team) {
		return ""
	}
	return team
}

// stripStatSuffix cuts a market text at the first stat word, over/under
// token or numeric threshold, leaving the leading name portion
func stripStatSuffix(text string) string {
	fields := strings.Fields(text)
	var kept []string
	for _, f := range fields {
		tok := strings.ToLower(strings.Trim(f, ".,:;"))
		if tok == "over" || tok == "under" || tok == "+" {
			break
		}
		if strings.ContainsAny(tok, "0123456789") {
			break
		}
		if patterns.StatWords[tok] {
			break
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// looksLikeName requires at least two whitespace-separated capitalized tokens
func looksLikeName(s string) bool {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return false
	}
	for _, f := range fields {
		r := []rune(f)[0]
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// normalizePhrase lowercases and collapses everything except letters, digits
// and '+' to single spaces, so phrasings compare on word boundaries
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

// matchesAny reports whether the normalized text contains any term on a
// word boundary
func matchesAny(norm string, terms []string) bool {
	padded := " " + norm + " "
	for _, term := range terms {
		t := normalizePhrase(term)
		if t == "" {
			continue
		}
		if strings.Contains(padded, " "+t+" ") {
			return true
		}
	}
	return false
}
