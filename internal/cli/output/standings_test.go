package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaguerank/pkg/core"
)

var sampleStandings = []core.Standing{
	{Rank: 1, Team: "Tarantulas", Points: 6},
	{Rank: 2, Team: "Lions", Points: 5},
	{Rank: 3, Team: "FC Awesome", Points: 1},
	{Rank: 3, Team: "Snakes", Points: 1},
	{Rank: 5, Team: "Grouches", Points: 0},
}

func renderWith(t *testing.T, mode Mode, standings []core.Standing) string {
	t.Helper()
	buf := new(bytes.Buffer)
	r := NewRenderer(buf, new(bytes.Buffer), mode)
	require.NoError(t, r.Standings(standings))
	return buf.String()
}

func TestStandings_Text(t *testing.T) {
	out := renderWith(t, ModeText, sampleStandings)

	assert.Equal(t, strings.Join([]string{
		"1. Tarantulas, 6 pts",
		"2. Lions, 5 pts",
		"3. FC Awesome, 1 pt",
		"3. Snakes, 1 pt",
		"5. Grouches, 0 pts",
	}, "\n")+"\n", out)
}

func TestStandings_Text_Empty(t *testing.T) {
	assert.Empty(t, renderWith(t, ModeText, nil))
}

func TestStandings_Markdown(t *testing.T) {
	out := renderWith(t, ModeMarkdown, sampleStandings)

	assert.Contains(t, out, "| Rank | Team | Points |")
	assert.Contains(t, out, "| 1 | Tarantulas | 6 |")
	assert.Contains(t, out, "| 5 | Grouches | 0 |")
}

func TestStandings_JSON(t *testing.T) {
	out := renderWith(t, ModeJSON, sampleStandings)

	var decoded []core.Standing
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, sampleStandings, decoded)
}

func TestStandings_JSON_Empty(t *testing.T) {
	out := renderWith(t, ModeJSON, nil)
	assert.Equal(t, "[]\n", out)
}

func TestStandings_Table(t *testing.T) {
	out := renderWith(t, ModeTable, sampleStandings)

	assert.Contains(t, out, "Tarantulas")
	assert.Contains(t, out, "RANK")
}

func TestEffectiveMode(t *testing.T) {
	// A bytes.Buffer is not a terminal, so auto resolves to markdown.
	r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), ModeAuto)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())

	r = NewRenderer(new(bytes.Buffer), new(bytes.Buffer), ModeJSON)
	assert.Equal(t, ModeJSON, r.EffectiveMode())
}

func TestNewRenderer_UnknownModeFallsBackToText(t *testing.T) {
	r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), Mode("bogus"))
	assert.Equal(t, ModeText, r.EffectiveMode())

	r = NewRenderer(new(bytes.Buffer), new(bytes.Buffer), Mode(""))
	assert.Equal(t, ModeText, r.EffectiveMode())
}
