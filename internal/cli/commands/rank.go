package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leaguerank/internal/league"
	"github.com/leapstack-labs/leaguerank/internal/parser"
)

// NewRankCommand creates the rank command.
func NewRankCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <input-file>",
		Short: "Compute league standings from a results file",
		Long: `Read match results from a file and print the ranked league table.

Each non-blank line must be "<Team A> <score>, <Team B> <score>". Blank
lines are skipped; any malformed line or negative score aborts the run.

By default the ranked table is printed as plain standings lines, one team
per line, whether on a terminal or piped. Use --output to override:
text, markdown, json, table, or auto (TTY=text, piped=markdown).`,
		Example: `  # Rank a season's results
  leaguerank rank results.txt

  # Standings as JSON
  leaguerank rank results.txt --output json

  # Styled terminal table
  leaguerank rank results.txt --output table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd, args[0])
		},
	}

	return cmd
}

func runRank(cmd *cobra.Command, inputPath string) error {
	cmdCtx := NewCommandContext(cmd)
	logger := cmdCtx.Logger.With("run_id", uuid.New().String())

	games, err := parser.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", inputPath, err)
	}
	logger.Debug("parsed results", "file", inputPath, "games", len(games))

	standings := league.Rank(league.Tally(games))
	logger.Debug("computed standings", "teams", len(standings))

	return cmdCtx.Renderer.Standings(standings)
}
