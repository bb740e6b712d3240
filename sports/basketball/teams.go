package basketball

import "strings"

// teamNames holds every NBA and WNBA team under its full name plus the
// abbreviated forms sportsbooks display on bet slips.
var teamNames = map[string]bool{}

func init() {
	full := []string{
		"Atlanta Hawks", "Boston Celtics", "Brooklyn Nets", "Charlotte Hornets",
		"Chicago Bulls", "Cleveland Cavaliers", "Dallas Mavericks", "Denver Nuggets",
		"Detroit Pistons", "Golden State Warriors", "Houston Rockets", "Indiana Pacers",
		"Los Angeles Clippers", "Los Angeles Lakers", "Memphis Grizzlies", "Miami Heat",
		"Milwaukee Bucks", "Minnesota Timberwolves", "New Orleans Pelicans",
		"New York Knicks", "Oklahoma City Thunder", "Orlando Magic",
		"Philadelphia 76ers", "Phoenix Suns", "Portland Trail Blazers",
		"Sacramento Kings", "San Antonio Spurs", "Toronto Raptors", "Utah Jazz",
		"Washington Wizards",
		"Las Vegas Aces", "New York Liberty", "Connecticut Sun", "Seattle Storm",
		"Minnesota Lynx", "Phoenix Mercury", "Chicago Sky", "Indiana Fever",
	}
	short := []string{
		"Hawks", "Celtics", "Nets", "Hornets", "Bulls", "Cavaliers", "Cavs",
		"Mavericks", "Mavs", "Nuggets", "Pistons", "Warriors", "Rockets",
		"Pacers", "Clippers", "Lakers", "Grizzlies", "Heat", "Bucks",
		"Timberwolves", "Wolves", "Pelicans", "Knicks", "Thunder", "Magic",
		"76ers", "Sixers", "Suns", "Trail Blazers", "Blazers", "Kings",
		"Spurs", "Raptors", "Jazz", "Wizards",
		"LA Lakers", "LA Clippers", "NY Knicks", "GS Warriors", "SA Spurs",
		"OKC Thunder", "NO Pelicans", "PHO Suns", "PHI 76ers", "BKN Nets",
	}
	for _, n := range full {
		teamNames[strings.ToLower(n)] = true
	}
	for _, n := range short {
		teamNames[strings.ToLower(n)] = true
	}
}

// IsTeamName reports whether name matches a known basketball team
func IsTeamName(name string) bool {
	return teamNames[strings.ToLower(strings.TrimSpace(name))]
}

// NormalizeTeamName standardizes team names from slip text.
// Handles variations like "LA Lakers" vs "Los Angeles Lakers".
func NormalizeTeamName(name string) string {
	name = strings.TrimSpace(name)

	replacements := map[string]string{
		"LA Lakers":   "Los Angeles Lakers",
		"LA Clippers": "Los Angeles Clippers",
		"NY Knicks":   "New York Knicks",
		"GS Warriors": "Golden State Warriors",
		"SA Spurs":    "San Antonio Spurs",
		"OKC Thunder": "Oklahoma City Thunder",
		"NO Pelicans": "New Orleans Pelicans",
		"PHO Suns":    "Phoenix Suns",
		"PHI 76ers":   "Philadelphia 76ers",
		"BKN Nets":    "Brooklyn Nets",
	}

	if normalized, ok := replacements[name]; ok {
		return normalized
	}

	return name
}
