package league

// PositionInfo describes a roster slot.
type PositionInfo struct {
	Name     string
	Category string
}

// Positions maps every slot to its description.
var Positions = map[Position]PositionInfo{
	QB: {Name: "Quarterback", Category: "Offense"},
	RB: {Name: "Running Back", Category: "Offense"},
	FB: {Name: "Fullback", Category: "Offense"},
	WR: {Name: "Wide Receiver", Category: "Offense"},
	TE: {Name: "Tight End", Category: "Offense"},
	LT: {Name: "Left Tackle", Category: "Offense"},
	LG: {Name: "Left Guard", Category: "Offense"},
	C:  {Name: "Center", Category: "Offense"},
	RG: {Name: "Right Guard", Category: "Offense"},
	RT: {Name: "Right Tackle", Category: "Offense"},
	DE: {Name: "Defensive End", Category: "Defense"},
	DT: {Name: "Defensive Tackle", Category: "Defense"},
	LB: {Name: "Linebacker", Category: "Defense"},
	CB: {Name: "Cornerback", Category: "Defense"},
	S:  {Name: "Safety", Category: "Defense"},
	K:  {Name: "Kicker", Category: "Special Teams"},
	P:  {Name: "Punter", Category: "Special Teams"},
}

// AllPositions lists every slot in a stable order.
var AllPositions = []Position{
	QB, RB, FB, WR, TE, LT, LG, C, RG, RT,
	DE, DT, LB, CB, S, K, P,
}

// DefensivePositions are the slots credited with tackles, sacks, and picks.
var DefensivePositions = []Position{DE, DT, LB, CB, S}
