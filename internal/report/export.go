package report

import (
	"encoding/json"
	"io"
	"os"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"poker-night/internal/identity"
	"poker-night/internal/ledger"
)

// Point is one (time, profit) pair of an exported series.
type Point struct {
	Time   time.Time       `json:"time"`
	Profit decimal.Decimal `json:"profit"`
}

type Series struct {
	Player string  `json:"player"`
	Points []Point `json:"points"`
}

// Chart is what the plotter consumes.
type Chart struct {
	Title           string   `json:"title"`
	ShowEventPoints bool     `json:"show_event_points"`
	Series          []Series `json:"series"`
}

// NewChart converts per-player entries into a chart, players sorted by name.
func NewChart(title string, showPoints bool, entries map[identity.Identity][]ledger.Entry) Chart {
	players := make([]identity.Identity, 0, len(entries))
	for p := range entries {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i] < players[j] })

	c := Chart{Title: title, ShowEventPoints: showPoints, Series: make([]Series, 0, len(players))}
	for _, p := range players {
		s := Series{Player: string(p), Points: make([]Point, 0, len(entries[p]))}
		for _, e := range entries[p] {
			s.Points = append(s.Points, Point{Time: e.Time, Profit: Amount(e.Profit)})
		}
		c.Series = append(c.Series, s)
	}
	return c
}

func WriteChart(w io.Writer, c Chart) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// SaveChart writes the chart to path, replacing any previous file.
func SaveChart(path string, c Chart) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteChart(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
