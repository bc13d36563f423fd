package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"

	"poker-night/internal/hand"
	"poker-night/internal/identity"
	"poker-night/internal/ledger"
	"poker-night/internal/night"
	"poker-night/internal/stats"
)

func TestDollars(t *testing.T) {
	cases := map[int64]string{0: "0.00", 5: "0.05", 1234: "12.34", -1500: "-15.00", 100000: "1000.00"}
	for in, want := range cases {
		if got := Dollars(in); got != want {
			t.Fatalf("Dollars(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(2.0 / 3.0); got != "66.7%" {
		t.Fatalf("Percent(2/3) = %q", got)
	}
	if got := Percent(0); got != "0.0%" {
		t.Fatalf("Percent(0) = %q", got)
	}
}

func at(sec int64) time.Time {
	return time.Unix(1657233660+sec, 0).UTC()
}

func sampleLedger() *ledger.Ledger {
	return &ledger.Ledger{Entries: []ledger.Entry{
		{Player: "Bob", Profit: 0, Time: at(0)},
		{Player: "Alice", Profit: 0, Time: at(0)},
		{Player: "Bob", Profit: -250, Time: at(60)},
		{Player: "Alice", Profit: 250, Time: at(60)},
		{Player: "Bob", Profit: 100, Time: at(120)},
		{Player: "Alice", Profit: -100, Time: at(120)},
	}}
}

func TestLedgerTable(t *testing.T) {
	data := LedgerTable(sampleLedger())
	want := pterm.TableData{
		{"Player", "Result", "High", "Low", "Points"},
		{"Bob", "1.00", "1.00", "-2.50", "3"},
		{"Alice", "-1.00", "2.50", "-1.00", "3"},
	}
	if len(data) != len(want) {
		t.Fatalf("rows = %v", data)
	}
	for i := range want {
		if strings.Join(data[i], "|") != strings.Join(want[i], "|") {
			t.Fatalf("row %d = %v, want %v", i, data[i], want[i])
		}
	}
}

func sampleSummary() stats.Summary {
	return stats.Summary{
		Hands: 3,
		Players: []stats.PlayerStats{
			{
				Player: "Alice", Rounds: 3, Wins: 2,
				Folds:     map[hand.Street]int{hand.StreetPreFlop: 1},
				AllIns:    map[hand.Street]int{hand.StreetRiver: 2},
				AllInWins: map[hand.Street]int{hand.StreetRiver: 1},
			},
			{Player: "Bob", Folds: map[hand.Street]int{}, AllIns: map[hand.Street]int{}, AllInWins: map[hand.Street]int{}},
		},
		MostWins: "Alice", MostWinCount: 2, HasMostWins: true,
		MostWinsBest: stats.Win{Player: "Alice", Hand: 2, Amount: 1960, Description: "Flush"},
		Largest:      stats.Win{Player: "Alice", Hand: 2, Amount: 1960}, HasLargest: true,
		Categories:  []stats.CategoryCount{{Category: "Flush", Count: 1}},
		Uncontested: 1,
	}
}

func TestStatsTables(t *testing.T) {
	s := sampleSummary()

	rows := StatsTable(s)
	alice := strings.Join(rows[1], "|")
	if alice != "Alice|3|2|66.7%|33.3%|1|0|0|0|2|50.0%" {
		t.Fatalf("Alice row = %s", alice)
	}
	if bob := strings.Join(rows[2], "|"); bob != "Bob|0|0|0.0%|0.0%|0|0|0|0|0|0.0%" {
		t.Fatalf("Bob row = %s", bob)
	}

	allIns := AllInTable(s)
	if len(allIns) != 2 || allIns[1][0] != "Alice" {
		t.Fatalf("AllInTable() = %v", allIns)
	}

	cats := CategoryTable(s)
	if len(cats) != 3 || cats[1][0] != "Flush" || cats[2][1] != "1" {
		t.Fatalf("CategoryTable() = %v", cats)
	}

	lines := Highlights(s)
	if len(lines) != 2 || !strings.Contains(lines[0], "19.60") {
		t.Fatalf("Highlights() = %v", lines)
	}
}

func TestTotalsTable(t *testing.T) {
	merged := map[identity.Identity][]ledger.Entry{
		"Carol": {{Profit: 500}},
		"Alice": {{Profit: 100}, {Profit: -300}},
		"Bob":   {{Profit: 500}},
	}
	data := TotalsTable(merged)
	got := []string{data[1][0], data[2][0], data[3][0]}
	if strings.Join(got, ",") != "Bob,Carol,Alice" {
		t.Fatalf("order = %v", got)
	}
	if data[3][1] != "2" || data[3][2] != "-3.00" {
		t.Fatalf("Alice row = %v", data[3])
	}
}

func TestWriteSession(t *testing.T) {
	pterm.DisableColor()
	res := &night.Result{
		Path:     "poker_night_20220707.csv",
		Date:     time.Date(2022, 7, 7, 0, 0, 0, 0, time.UTC),
		Ledger:   sampleLedger(),
		Stats:    sampleSummary(),
		Balanced: true,
	}
	var buf bytes.Buffer
	if err := WriteSession(&buf, res); err != nil {
		t.Fatalf("WriteSession() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"2022/07/07", "Alice", "Bob", "-2.50", "Flush", "won the most hands"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "warning") {
		t.Fatal("balanced session printed a warning")
	}
}

func TestChartExport(t *testing.T) {
	series := sampleLedger().Series()
	c := NewChart("Profit for 2022/07/07", true, series)
	if len(c.Series) != 2 || c.Series[0].Player != "Alice" {
		t.Fatalf("series = %+v", c.Series)
	}

	path := filepath.Join(t.TempDir(), "chart.json")
	if err := SaveChart(path, c); err != nil {
		t.Fatalf("SaveChart() error = %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Title           string `json:"title"`
		ShowEventPoints bool   `json:"show_event_points"`
		Series          []struct {
			Player string `json:"player"`
			Points []struct {
				Time   time.Time `json:"time"`
				Profit string    `json:"profit"`
			} `json:"points"`
		} `json:"series"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, raw)
	}
	if !decoded.ShowEventPoints || decoded.Title != c.Title {
		t.Fatalf("decoded header = %+v", decoded)
	}
	alice := decoded.Series[0].Points
	if len(alice) != 3 || alice[1].Profit != "2.5" || !alice[1].Time.Equal(at(60)) {
		t.Fatalf("Alice points = %+v", alice)
	}
}
