package league

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/leapstack-labs/leaguerank/pkg/core"
)

// Rank orders a Points map into ranked standings: descending points, ties
// broken by ascending team name (case-sensitive). Rank numbers follow
// competition ranking ("1224"): teams on equal points share a rank, and the
// next distinct team's rank is its 1-based position, so ranks skip rather
// than compact after a tie block.
func Rank(points Points) []core.Standing {
	standings := make([]core.Standing, 0, len(points))
	for team, pts := range points {
		standings = append(standings, core.Standing{Team: team, Points: pts})
	}

	slices.SortFunc(standings, func(a, b core.Standing) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.Team, b.Team)
	})

	lastPoints := -1
	rank := 0
	for i := range standings {
		if i == 0 || standings[i].Points != lastPoints {
			rank = i + 1
		}
		standings[i].Rank = rank
		lastPoints = standings[i].Points
	}

	return standings
}

// FormatStandings renders standings as the canonical output lines, one per
// team: "1. Tarantulas, 6 pts". Exactly one point renders the singular "pt".
func FormatStandings(standings []core.Standing) []string {
	lines := make([]string, len(standings))
	for i, s := range standings {
		lines[i] = fmt.Sprintf("%d. %s, %d %s", s.Rank, s.Team, s.Points, pointsUnit(s.Points))
	}
	return lines
}

func pointsUnit(points int) string {
	if points == 1 {
		return "pt"
	}
	return "pts"
}
