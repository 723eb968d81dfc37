// Package parser converts raw match result lines into core.Game records.
// It handles the "<Team A> <score>, <Team B> <score>" line format with
// arbitrary surrounding whitespace and multi-word team names.
package parser

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/leapstack-labs/leaguerank/pkg/core"
)

// ErrNegativeScore is returned when a line carries a score below zero.
// Scores are league goals; a negative value is always bad input.
var ErrNegativeScore = errors.New("scores must be non-negative")

// LineError wraps a parse failure with the 1-based number of the input line
// that caused it. Batch parsing is fail-fast: the first bad line aborts the
// whole run.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseLine parses a single match result line, e.g. "Lions 3, Snakes 2".
//
// The line is split on commas and the first two segments are taken as the
// home and away sides. Each side is split on its last whitespace run so team
// names may contain spaces ("FC Awesome 1"). Extra whitespace around names,
// scores, and the comma is ignored.
func ParseLine(line string) (core.Game, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return core.Game{}, fmt.Errorf("invalid result line %q: expected \"<team> <score>, <team> <score>\"", strings.TrimSpace(line))
	}

	homeTeam, homeScore, err := splitSide(parts[0])
	if err != nil {
		return core.Game{}, err
	}
	awayTeam, awayScore, err := splitSide(parts[1])
	if err != nil {
		return core.Game{}, err
	}

	if homeScore < 0 || awayScore < 0 {
		return core.Game{}, ErrNegativeScore
	}

	return core.Game{
		HomeTeam:  homeTeam,
		HomeScore: homeScore,
		AwayTeam:  awayTeam,
		AwayScore: awayScore,
	}, nil
}

// ParseLines parses a batch of result lines in input order. Blank and
// whitespace-only lines are skipped. The first failing line aborts the batch
// and is reported as a LineError.
func ParseLines(lines []string) ([]core.Game, error) {
	games := make([]core.Game, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		game, err := ParseLine(line)
		if err != nil {
			return nil, &LineError{Line: i + 1, Err: err}
		}
		games = append(games, game)
	}
	return games, nil
}

// ParseFile reads a results file and parses its lines.
func ParseFile(path string) ([]core.Game, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	return ParseLines(strings.Split(string(content), "\n"))
}

// splitSide separates a "<team> <score>" segment into its name and score.
// The split happens on the last whitespace run so multi-word names survive.
// Score tokens go through strconv.Atoi, so a leading sign is accepted here
// and negativity is rejected by the caller.
func splitSide(side string) (string, int, error) {
	side = strings.TrimSpace(side)

	cut := strings.LastIndexFunc(side, unicode.IsSpace)
	if cut < 0 {
		return "", 0, fmt.Errorf("missing score in %q: expected \"<team> <score>\"", side)
	}

	name := strings.TrimSpace(side[:cut])
	token := strings.TrimSpace(side[cut+1:])

	score, err := strconv.Atoi(token)
	if err != nil {
		return "", 0, fmt.Errorf("invalid score %q: %w", token, err)
	}

	return name, score, nil
}
