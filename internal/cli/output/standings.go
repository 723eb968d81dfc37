package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/leaguerank/internal/league"
	"github.com/leapstack-labs/leaguerank/pkg/core"
)

// Standings renders a ranked league table in the renderer's effective mode.
// Text mode is the canonical contract: exactly one "<rank>. <team>, <points>
// pt(s)" line per team, nothing else.
func (r *Renderer) Standings(standings []core.Standing) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.standingsJSON(standings)
	case ModeTable:
		return r.standingsTable(standings)
	case ModeMarkdown:
		return r.standingsMarkdown(standings)
	default:
		return r.standingsText(standings)
	}
}

func (r *Renderer) standingsText(standings []core.Standing) error {
	for _, line := range league.FormatStandings(standings) {
		r.Println(line)
	}
	return nil
}

func (r *Renderer) standingsTable(standings []core.Standing) error {
	if len(standings) == 0 {
		r.Println("(no games)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Rank", "Team", "Points"})
	for _, s := range standings {
		t.AppendRow(table.Row{s.Rank, s.Team, s.Points})
	}

	t.Render()
	return nil
}

func (r *Renderer) standingsMarkdown(standings []core.Standing) error {
	if len(standings) == 0 {
		return nil
	}

	r.Println("| Rank | Team | Points |")
	r.Println("| --- | --- | --- |")
	for _, s := range standings {
		r.Printf("| %d | %s | %d |\n", s.Rank, escapeMarkdown(s.Team), s.Points)
	}
	return nil
}

func (r *Renderer) standingsJSON(standings []core.Standing) error {
	if standings == nil {
		standings = []core.Standing{}
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(standings)
}

func escapeMarkdown(s string) string {
	if strings.Contains(s, "|") {
		return strings.ReplaceAll(s, "|", "\\|")
	}
	return s
}

// StandingsHeader writes a styled header above the table in watch mode.
func (r *Renderer) StandingsHeader(source string, suffix string) {
	title := fmt.Sprintf("League standings: %s", source)
	r.Println(r.styles.Header1.Render(title))
	if suffix != "" {
		r.Println(r.styles.Muted.Render(suffix))
	}
	r.Println("")
}
