package stats

import (
	"sort"
	"time"

	"poker-night/internal/hand"
	"poker-night/internal/identity"
)

// PlayerStats counts one player's play across a session. Street maps are
// keyed by the street open when the action was taken.
type PlayerStats struct {
	Player    identity.Identity
	Rounds    int
	Wins      int
	Folds     map[hand.Street]int
	AllIns    map[hand.Street]int
	AllInWins map[hand.Street]int
}

func newPlayerStats(p identity.Identity) *PlayerStats {
	return &PlayerStats{
		Player:    p,
		Folds:     map[hand.Street]int{},
		AllIns:    map[hand.Street]int{},
		AllInWins: map[hand.Street]int{},
	}
}

func (p PlayerStats) WinRate() float64 {
	return ratio(p.Wins, p.Rounds)
}

func (p PlayerStats) FoldRate() float64 {
	return ratio(total(p.Folds), p.Rounds)
}

// AllInWinRate is the share of all-ins on st that ended in a won hand.
func (p PlayerStats) AllInWinRate(st hand.Street) float64 {
	return ratio(p.AllInWins[st], p.AllIns[st])
}

func (p PlayerStats) TotalAllIns() int {
	return total(p.AllIns)
}

func (p PlayerStats) TotalAllInWinRate() float64 {
	return ratio(total(p.AllInWins), total(p.AllIns))
}

// Win is one player's take from one hand.
type Win struct {
	Player identity.Identity
	Hand   int
	Amount int64
	Time   time.Time
	// Description is the winning hand text, HandUnknown when nobody showed.
	Description string
}

type CategoryCount struct {
	Category string
	Count    int
}

// Strongest is the best evaluated showdown of the session.
type Strongest struct {
	Hand  int
	Shown hand.Shown
}

type Summary struct {
	Hands   int
	Players []PlayerStats

	MostWins     identity.Identity
	MostWinCount int
	MostWinsBest Win
	HasMostWins  bool

	Largest    Win
	HasLargest bool

	Categories  []CategoryCount
	Uncontested int

	Strongest    Strongest
	HasStrongest bool
}

// Player returns the stats for p, if p played.
func (s Summary) Player(p identity.Identity) (PlayerStats, bool) {
	for _, ps := range s.Players {
		if ps.Player == p {
			return ps, true
		}
	}
	return PlayerStats{}, false
}

// Summarize walks the hands once. Players are listed in the order they
// first show up, and every tie goes to whoever was seen first.
func Summarize(records []hand.Record) Summary {
	sum := Summary{Hands: len(records)}

	var order []identity.Identity
	players := map[identity.Identity]*PlayerStats{}
	get := func(p identity.Identity) *PlayerStats {
		ps, ok := players[p]
		if !ok {
			ps = newPlayerStats(p)
			players[p] = ps
			order = append(order, p)
		}
		return ps
	}

	var winners []identity.Identity
	winsBy := map[identity.Identity][]Win{}
	categories := map[string]int{}
	var categoryOrder []string

	for i := range records {
		rec := &records[i]
		for _, b := range rec.Balances {
			get(b.Player).Rounds++
		}

		for _, a := range rec.Actions {
			ps := get(a.Player)
			st := rec.Board.StreetAt(a.Order)
			if a.Kind == hand.ActionFold {
				ps.Folds[st]++
			}
			if a.AllIn {
				ps.AllIns[st]++
				if rec.Won(a.Player) {
					ps.AllInWins[st]++
				}
			}
		}

		wins := handWins(rec)
		if len(wins) > 0 && !contested(rec) {
			sum.Uncontested++
		}
		for _, w := range wins {
			get(w.Player).Wins++
			if _, ok := winsBy[w.Player]; !ok {
				winners = append(winners, w.Player)
			}
			winsBy[w.Player] = append(winsBy[w.Player], w)
			if !sum.HasLargest || w.Amount > sum.Largest.Amount {
				sum.Largest, sum.HasLargest = w, true
			}
			if w.Description == hand.HandUnknown {
				continue
			}
			c := Category(w.Description)
			if _, ok := categories[c]; !ok {
				categoryOrder = append(categoryOrder, c)
			}
			categories[c]++
		}

		for _, sh := range rec.Shown {
			if !sh.Evaluated {
				continue
			}
			if !sum.HasStrongest || sh.Score > sum.Strongest.Shown.Score {
				sum.Strongest = Strongest{Hand: rec.Number, Shown: sh}
				sum.HasStrongest = true
			}
		}
	}

	for _, p := range winners {
		if n := len(winsBy[p]); !sum.HasMostWins || n > sum.MostWinCount {
			sum.MostWins, sum.MostWinCount, sum.HasMostWins = p, n, true
		}
	}
	if sum.HasMostWins {
		sum.MostWinsBest = biggest(winsBy[sum.MostWins])
	}

	for _, p := range order {
		sum.Players = append(sum.Players, *players[p])
	}
	for _, c := range categoryOrder {
		sum.Categories = append(sum.Categories, CategoryCount{Category: c, Count: categories[c]})
	}
	sort.SliceStable(sum.Categories, func(i, j int) bool {
		return sum.Categories[i].Count > sum.Categories[j].Count
	})
	return sum
}

// handWins folds the winner list into one Win per player, in the order the
// pots were collected. Side pots won by the same player add up.
func handWins(rec *hand.Record) []Win {
	var out []Win
	for _, w := range rec.Winners {
		i := indexOf(out, w.Player)
		if i < 0 {
			out = append(out, Win{
				Player:      w.Player,
				Hand:        rec.Number,
				Time:        rec.Start,
				Description: hand.HandUnknown,
			})
			i = len(out) - 1
		}
		out[i].Amount += w.Amount
		if w.HasHand && out[i].Description == hand.HandUnknown {
			out[i].Description = w.Hand
		}
	}
	return out
}

func indexOf(ws []Win, p identity.Identity) int {
	for i, w := range ws {
		if w.Player == p {
			return i
		}
	}
	return -1
}

// contested reports whether any pot went to a shown hand.
func contested(rec *hand.Record) bool {
	for _, w := range rec.Winners {
		if w.HasHand {
			return true
		}
	}
	return false
}

func biggest(ws []Win) Win {
	var best Win
	for i, w := range ws {
		if i == 0 || w.Amount > best.Amount {
			best = w
		}
	}
	return best
}

// ByStreet buckets a hand's actions by betting street. A street whose card
// never came out gets nothing.
func ByStreet(rec hand.Record) map[hand.Street][]hand.Action {
	out := make(map[hand.Street][]hand.Action, len(hand.Streets))
	for _, a := range rec.Actions {
		st := rec.Board.StreetAt(a.Order)
		out[st] = append(out[st], a)
	}
	return out
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func total(m map[hand.Street]int) int {
	var n int
	for _, v := range m {
		n += v
	}
	return n
}
