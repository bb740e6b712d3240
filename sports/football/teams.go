package football

import "strings"

var teamNames = map[string]bool{}

func init() {
	names := []string{
		"Arizona Cardinals", "Atlanta Falcons", "Baltimore Ravens", "Buffalo Bills",
		"Carolina Panthers", "Chicago Bears", "Cincinnati Bengals", "Cleveland Browns",
		"Dallas Cowboys", "Denver Broncos", "Detroit Lions", "Green Bay Packers",
		"Houston Texans", "Indianapolis Colts", "Jacksonville Jaguars",
		"Kansas City Chiefs", "Las Vegas Raiders", "Los Angeles Chargers",
		"Los Angeles Rams", "Miami Dolphins", "Minnesota Vikings",
		"New England Patriots", "New Orleans Saints", "New York Giants",
		"New York Jets", "Philadelphia Eagles", "Pittsburgh Steelers",
		"San Francisco 49ers", "Seattle Seahawks", "Tampa Bay Buccaneers",
		"Tennessee Titans", "Washington Commanders",
		// Short forms seen on slips
		"Cardinals", "Falcons", "Ravens", "Bills", "Panthers", "Bears",
		"Bengals", "Browns", "Cowboys", "Broncos", "Lions", "Packers",
		"Texans", "Colts", "Jaguars", "Chiefs", "Raiders", "Chargers",
		"Rams", "Dolphins", "Vikings", "Patriots", "Saints", "Giants",
		"Jets", "Eagles", "Steelers", "49ers", "Seahawks", "Buccaneers",
		"Titans", "Commanders", "KC Chiefs", "SF 49ers", "TB Buccaneers",
		"NE Patriots", "LV Raiders",
	}
	for _, n := range names {
		teamNames[strings.ToLower(n)] = true
	}
}
