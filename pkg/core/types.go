package core

// League scoring constants.
const (
	// PointsWin is awarded to the winning side of a game.
	PointsWin = 3
	// PointsDraw is awarded to both sides of a drawn game.
	PointsDraw = 1
	// PointsLoss is awarded to the losing side of a game.
	PointsLoss = 0
)

// Game represents one parsed match result: two team names with their scores.
// It is created by the parser and never mutated afterwards.
type Game struct {
	// HomeTeam is the first team named on the input line.
	HomeTeam string
	// HomeScore is the first team's score (non-negative).
	HomeScore int
	// AwayTeam is the second team named on the input line.
	AwayTeam string
	// AwayScore is the second team's score (non-negative).
	AwayScore int
}

// Draw reports whether the game ended with both teams scoring equally.
func (g Game) Draw() bool {
	return g.HomeScore == g.AwayScore
}

// Winner returns the name of the winning team, or "" for a draw.
func (g Game) Winner() string {
	switch {
	case g.HomeScore > g.AwayScore:
		return g.HomeTeam
	case g.HomeScore < g.AwayScore:
		return g.AwayTeam
	default:
		return ""
	}
}

// Standing is one ranked entry in the final league table.
// Tied teams share a rank number; the next distinct team's rank equals its
// 1-based position in the sorted order (competition ranking, "1224" style).
type Standing struct {
	Rank   int    `json:"rank"`
	Team   string `json:"team"`
	Points int    `json:"points"`
}
