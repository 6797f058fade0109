package gamesim

// PlayType labels what was called/what happened on a snap.
type PlayType string

const (
	PlayRun          PlayType = "Run"
	PlayShortPass    PlayType = "Short Pass"
	PlayMediumPass   PlayType = "Medium Pass"
	PlaySack         PlayType = "Sack"
	PlayInterception PlayType = "Interception"
	PlayFumble       PlayType = "Fumble"
	PlayPunt         PlayType = "Punt"
	PlayFieldGoal    PlayType = "Field Goal"
	PlayExtraPoint   PlayType = "Extra Point"
	PlayMissedXP     PlayType = "Missed XP"
)

// PlayResult is the state-machine outcome of a snap.
type PlayResult string

const (
	ResultGain       PlayResult = "GAIN"
	ResultFirstDown  PlayResult = "FIRST_DOWN"
	ResultIncomplete PlayResult = "INCOMPLETE"
	ResultSack       PlayResult = "SACK"
	ResultTurnover   PlayResult = "TURNOVER"
	ResultTouchdown  PlayResult = "TOUCHDOWN"
	ResultFieldGoal  PlayResult = "FIELD_GOAL"
	ResultPunt       PlayResult = "PUNT"
)

// Play is one resolved snap in the play-by-play log.
type Play struct {
	Quarter     int        `json:"quarter"`
	Down        int        `json:"down,omitempty"`
	YardsToGo   int        `json:"yards_to_go,omitempty"`
	YardLine    int        `json:"yard_line,omitempty"`
	Offense     string     `json:"offense"`
	Type        PlayType   `json:"type"`
	Yards       int        `json:"yards"`
	Result      PlayResult `json:"result"`
	Description string     `json:"description"`
}
