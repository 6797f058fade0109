package league

// Teams is the fixed 32-team league table.
var Teams = []Team{
	// AFC East
	{ID: "BUF", Name: "Buffalo Bills", City: "Buffalo", Conference: "AFC", Division: "East"},
	{ID: "MIA", Name: "Miami Dolphins", City: "Miami", Conference: "AFC", Division: "East"},
	{ID: "NE", Name: "New England Patriots", City: "New England", Conference: "AFC", Division: "East"},
	{ID: "NYJ", Name: "New York Jets", City: "New York", Conference: "AFC", Division: "East"},

	// AFC North
	{ID: "BAL", Name: "Baltimore Ravens", City: "Baltimore", Conference: "AFC", Division: "North"},
	{ID: "CIN", Name: "Cincinnati Bengals", City: "Cincinnati", Conference: "AFC", Division: "North"},
	{ID: "CLE", Name: "Cleveland Browns", City: "Cleveland", Conference: "AFC", Division: "North"},
	{ID: "PIT", Name: "Pittsburgh Steelers", City: "Pittsburgh", Conference: "AFC", Division: "North"},

	// AFC South
	{ID: "HOU", Name: "Houston Texans", City: "Houston", Conference: "AFC", Division: "South"},
	{ID: "IND", Name: "Indianapolis Colts", City: "Indianapolis", Conference: "AFC", Division: "South"},
	{ID: "JAX", Name: "Jacksonville Jaguars", City: "Jacksonville", Conference: "AFC", Division: "South"},
	{ID: "TEN", Name: "Tennessee Titans", City: "Tennessee", Conference: "AFC", Division: "South"},

	// AFC West
	{ID: "DEN", Name: "Denver Broncos", City: "Denver", Conference: "AFC", Division: "West"},
	{ID: "KC", Name: "Kansas City Chiefs", City: "Kansas City", Conference: "AFC", Division: "West"},
	{ID: "LV", Name: "Las Vegas Raiders", City: "Las Vegas", Conference: "AFC", Division: "West"},
	{ID: "LAC", Name: "Los Angeles Chargers", City: "Los Angeles", Conference: "AFC", Division: "West"},

	// NFC East
	{ID: "DAL", Name: "Dallas Cowboys", City: "Dallas", Conference: "NFC", Division: "East"},
	{ID: "NYG", Name: "New York Giants", City: "New York", Conference: "NFC", Division: "East"},
	{ID: "PHI", Name: "Philadelphia Eagles", City: "Philadelphia", Conference: "NFC", Division: "East"},
	{ID: "WAS", Name: "Washington Commanders", City: "Washington", Conference: "NFC", Division: "East"},

	// NFC North
	{ID: "CHI", Name: "Chicago Bears", City: "Chicago", Conference: "NFC", Division: "North"},
	{ID: "DET", Name: "Detroit Lions", City: "Detroit", Conference: "NFC", Division: "North"},
	{ID: "GB", Name: "Green Bay Packers", City: "Green Bay", Conference: "NFC", Division: "North"},
	{ID: "MIN", Name: "Minnesota Vikings", City: "Minnesota", Conference: "NFC", Division: "North"},

	// NFC South
	{ID: "ATL", Name: "Atlanta Falcons", City: "Atlanta", Conference: "NFC", Division: "South"},
	{ID: "CAR", Name: "Carolina Panthers", City: "Carolina", Conference: "NFC", Division: "South"},
	{ID: "NO", Name: "New Orleans Saints", City: "New Orleans", Conference: "NFC", Division: "South"},
	{ID: "TB", Name: "Tampa Bay Buccaneers", City: "Tampa Bay", Conference: "NFC", Division: "South"},

	// NFC West
	{ID: "ARI", Name: "Arizona Cardinals", City: "Arizona", Conference: "NFC", Division: "West"},
	{ID: "LAR", Name: "Los Angeles Rams", City: "Los Angeles", Conference: "NFC", Division: "West"},
	{ID: "SF", Name: "San Francisco 49ers", City: "San Francisco", Conference: "NFC", Division: "West"},
	{ID: "SEA", Name: "Seattle Seahawks", City: "Seattle", Conference: "NFC", Division: "West"},
}

// TeamByID looks a team up in the static table.
func TeamByID(id string) (Team, bool) {
	for _, t := range Teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// ConferenceTeams returns the ids of every team in a conference, in table
// order.
func ConferenceTeams(conference string) []string {
	ids := make([]string, 0, 16)
	for _, t := range Teams {
		if t.Conference == conference {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
