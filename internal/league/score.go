// Package league turns parsed games into ranked standings. It owns the
// scoring rules (3/1/0) and the competition-ranking order of the final table.
package league

import (
	"github.com/leapstack-labs/leaguerank/pkg/core"
)

// Points maps a team name to its accumulated league points. Team names are
// case-sensitive and whitespace-trimmed by the parser; every team that
// appears in any game has exactly one entry.
type Points map[string]int

// Tally folds a sequence of games into a Points map. Both teams of a game
// get an entry before the outcome is applied, so a team that only ever loses
// still shows up with 0 points. Repeated fixtures accumulate independently.
func Tally(games []core.Game) Points {
	points := make(Points, len(games)*2)

	for _, game := range games {
		// Explicit insert-or-default so losers enter the table too.
		if _, ok := points[game.HomeTeam]; !ok {
			points[game.HomeTeam] = 0
		}
		if _, ok := points[game.AwayTeam]; !ok {
			points[game.AwayTeam] = 0
		}

		if game.Draw() {
			points[game.HomeTeam] += core.PointsDraw
			points[game.AwayTeam] += core.PointsDraw
		} else {
			points[game.Winner()] += core.PointsWin
		}
	}

	return points
}
