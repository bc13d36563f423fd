package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pterm/pterm"

	"poker-night/internal/hand"
	"poker-night/internal/identity"
	"poker-night/internal/ledger"
	"poker-night/internal/night"
	"poker-night/internal/stats"
)

// LedgerTable lists each player's session result, best first.
func LedgerTable(l *ledger.Ledger) pterm.TableData {
	final := l.Final()
	players := l.Players()
	sort.SliceStable(players, func(i, j int) bool {
		return final[players[i]].Profit > final[players[j]].Profit
	})

	series := l.Series()
	data := pterm.TableData{{"Player", "Result", "High", "Low", "Points"}}
	for _, p := range players {
		high, low := extremes(series[p])
		data = append(data, []string{
			string(p),
			Dollars(final[p].Profit),
			Dollars(high),
			Dollars(low),
			strconv.Itoa(len(series[p])),
		})
	}
	return data
}

func extremes(es []ledger.Entry) (high, low int64) {
	for i, e := range es {
		if i == 0 || e.Profit > high {
			high = e.Profit
		}
		if i == 0 || e.Profit < low {
			low = e.Profit
		}
	}
	return high, low
}

func StatsTable(s stats.Summary) pterm.TableData {
	header := []string{"Player", "Rounds", "Won", "Win %", "Fold %"}
	for _, st := range hand.Streets {
		header = append(header, "Fold "+string(st))
	}
	header = append(header, "All-ins", "All-in win %")

	data := pterm.TableData{header}
	for _, p := range s.Players {
		row := []string{
			string(p.Player),
			strconv.Itoa(p.Rounds),
			strconv.Itoa(p.Wins),
			Percent(p.WinRate()),
			Percent(p.FoldRate()),
		}
		for _, st := range hand.Streets {
			row = append(row, strconv.Itoa(p.Folds[st]))
		}
		row = append(row, strconv.Itoa(p.TotalAllIns()), Percent(p.TotalAllInWinRate()))
		data = append(data, row)
	}
	return data
}

// AllInTable breaks all-ins down by the street they were made on.
func AllInTable(s stats.Summary) pterm.TableData {
	header := []string{"Player"}
	for _, st := range hand.Streets {
		header = append(header, string(st), string(st)+" won")
	}
	data := pterm.TableData{header}
	for _, p := range s.Players {
		if p.TotalAllIns() == 0 {
			continue
		}
		row := []string{string(p.Player)}
		for _, st := range hand.Streets {
			row = append(row, strconv.Itoa(p.AllIns[st]), Percent(p.AllInWinRate(st)))
		}
		data = append(data, row)
	}
	return data
}

func CategoryTable(s stats.Summary) pterm.TableData {
	data := pterm.TableData{{"Winning hand", "Count"}}
	for _, c := range s.Categories {
		data = append(data, []string{c.Category, strconv.Itoa(c.Count)})
	}
	data = append(data, []string{"(no showdown)", strconv.Itoa(s.Uncontested)})
	return data
}

// Highlights are the one-line facts printed under the tables.
func Highlights(s stats.Summary) []string {
	var out []string
	if s.HasMostWins {
		best := s.MostWinsBest
		out = append(out, fmt.Sprintf("%s won the most hands (%d), biggest pot %s in hand #%d with %s",
			s.MostWins, s.MostWinCount, Dollars(best.Amount), best.Hand, best.Description))
	}
	if s.HasLargest {
		out = append(out, fmt.Sprintf("Largest pot: %s by %s in hand #%d",
			Dollars(s.Largest.Amount), s.Largest.Player, s.Largest.Hand))
	}
	if s.HasStrongest {
		sh := s.Strongest.Shown
		out = append(out, fmt.Sprintf("Strongest hand shown: %s by %s (%s) in hand #%d",
			sh.Description, sh.Player, sh.Text, s.Strongest.Hand))
	}
	return out
}

// TotalsTable is the all-time standings after merging sessions.
func TotalsTable(merged map[identity.Identity][]ledger.Entry) pterm.TableData {
	players := make([]identity.Identity, 0, len(merged))
	for p := range merged {
		players = append(players, p)
	}
	last := func(p identity.Identity) int64 {
		es := merged[p]
		return es[len(es)-1].Profit
	}
	sort.Slice(players, func(i, j int) bool {
		if a, b := last(players[i]), last(players[j]); a != b {
			return a > b
		}
		return players[i] < players[j]
	})

	data := pterm.TableData{{"Player", "Sessions", "All-time"}}
	for _, p := range players {
		data = append(data, []string{string(p), strconv.Itoa(len(merged[p])), Dollars(last(p))})
	}
	return data
}

func renderTable(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func section(w io.Writer, title string) error {
	_, err := fmt.Fprint(w, pterm.DefaultSection.Sprint(title))
	return err
}

// WriteSession prints one night's ledger and stats.
func WriteSession(w io.Writer, res *night.Result) error {
	title := "Session " + res.Date.Format("2006/01/02")
	if res.Date.IsZero() {
		title = "Session " + res.Path
	}
	if err := section(w, title); err != nil {
		return err
	}
	if err := renderTable(w, LedgerTable(res.Ledger)); err != nil {
		return err
	}
	if !res.Balanced {
		if _, err := fmt.Fprintf(w, "warning: results are off by %s\n", Dollars(res.Ledger.Imbalance())); err != nil {
			return err
		}
	}

	if err := section(w, fmt.Sprintf("Play (%d hands)", res.Stats.Hands)); err != nil {
		return err
	}
	for _, data := range []pterm.TableData{StatsTable(res.Stats), AllInTable(res.Stats), CategoryTable(res.Stats)} {
		if len(data) < 2 {
			continue
		}
		if err := renderTable(w, data); err != nil {
			return err
		}
	}
	for _, line := range Highlights(res.Stats) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteTotals prints the merged standings of several sessions.
func WriteTotals(w io.Writer, results []*night.Result, merged map[identity.Identity][]ledger.Entry) error {
	title := fmt.Sprintf("All time (%d sessions)", len(results))
	if n := len(results); n > 0 && !results[n-1].Date.IsZero() {
		title += " as of " + results[n-1].Date.Format("2006/01/02")
	}
	if err := section(w, title); err != nil {
		return err
	}
	return renderTable(w, TotalsTable(merged))
}
