package league

import (
	"github.com/leapstack-labs/leaguerank/internal/parser"
	"github.com/leapstack-labs/leaguerank/pkg/core"
)

// Standings runs parse -> tally -> rank over raw input lines and returns the
// ranked table. The pipeline is a pure one-shot batch: no state survives a
// call, and identical input always produces identical output.
func Standings(lines []string) ([]core.Standing, error) {
	games, err := parser.ParseLines(lines)
	if err != nil {
		return nil, err
	}
	return Rank(Tally(games)), nil
}

// Run is Standings plus the canonical text rendering, one line per team.
func Run(lines []string) ([]string, error) {
	standings, err := Standings(lines)
	if err != nil {
		return nil, err
	}
	return FormatStandings(standings), nil
}
