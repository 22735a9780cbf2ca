/* report.go
 * Contains the read only renderers for a tournament: the HTML tournament report and the plain text standings used
 * by the console and the bot
 */

package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"chess-tournament/api/tournament"
)

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"inc":    func(i int) int { return i + 1 },
	"points": FormatPoints,
}).Parse(`<html>
<head>
<title>Tournament Report - {{.Name}}</title>
</head>
<body>
<h1>Tournament Report: {{.Name}}</h1>
<p class="dates">Dates: {{.StartDate}} to {{.EndDate}}</p>
<p class="venue">Venue: {{.Venue}}</p>
<p class="round">Current Round: {{.CurrentRound}}/{{.MaxRound}}</p>
<h2>Players (sorted by points)</h2>
<ul class="players">
{{- range .Rankings}}
<li data-chess-id="{{.ChessID}}">{{.Name}} (Points: {{points .Points}})</li>
{{- end}}
</ul>
<h2>Rounds and Matches</h2>
{{- range $i, $round := .Rounds}}
<h3>Round {{inc $i}}</h3>
<ul class="round-matches">
{{- range $round}}
<li>Match: {{.Player1.Name}} vs {{.Player2.Name}}, {{if .IsPlayed}}Result: {{.Result}}{{else}}Not played yet{{end}}</li>
{{- end}}
</ul>
{{- end}}
</body>
</html>
`))

type reportData struct {
	*tournament.Tournament
	Rankings []*tournament.Player
}

// RenderHTML renders the tournament report
// Preconditions: receives a tournament, which is only read
// Postconditions: returns the HTML document, or an error if rendering fails
func RenderHTML(t *tournament.Tournament) (string, error) {
	var buf bytes.Buffer
	data := reportData{Tournament: t, Rankings: t.Rankings()}
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report for %s: %w", t.Name, err)
	}
	return buf.String(), nil
}

// Standings returns one line per player, ranked by points, e.g. "1. Alice (AA00001): 2.5 points"
func Standings(t *tournament.Tournament) string {
	var res strings.Builder
	for i, p := range t.Rankings() {
		res.WriteString(fmt.Sprintf("%d. %s (%s): %s points\n", i+1, p.Name, p.ChessID, FormatPoints(p.Points)))
	}
	return res.String()
}

// Pairings returns one line per match of the current round, numbered from 1, with the result if it has been recorded
func Pairings(t *tournament.Tournament) string {
	matches := t.CurrentMatches()
	if len(matches) == 0 {
		return "No round has been played yet\n"
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("Round %d of %d:\n", t.CurrentRound, t.MaxRound))
	for i, m := range matches {
		res.WriteString(fmt.Sprintf("Match %d: %s vs %s", i+1, m.Player1.Name, m.Player2.Name))
		if m.IsPlayed() {
			res.WriteString(fmt.Sprintf(" [%s]", describeResult(m)))
		}
		res.WriteString("\n")
	}
	return res.String()
}

// FormatPoints prints whole points without decimals and half points with one, e.g. 2 and 1.5
func FormatPoints(points float64) string {
	return fmt.Sprintf("%g", points)
}

func describeResult(m *tournament.Match) string {
	if w := m.Winner(); w != nil {
		return w.Name + " won"
	}
	return "draw"
}
