package ledger

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"poker-night/internal/hand"
	"poker-night/internal/identity"
)

// Step applies one hand to the session state and returns the new state with
// the entries the hand produced. The input state is not modified.
//
// Order matters: joins logged before the snapshot count toward this hand's
// buy-in, exits from the previous hand are settled once we know the player
// did not come back, and admin corrections recorded here only reach the
// next hand's profit. Corrections logged before the first hand are already
// in its snapshot and apply right away.
func Step(prev SessionState, rec hand.Record) (SessionState, []Entry, error) {
	s := prev.Clone()
	var out []Entry

	for _, j := range rec.Joins {
		if j.Order < rec.StartOrder {
			s.join(j)
		}
	}
	for _, a := range rec.PriorAdjustments {
		s.adjust(a)
	}

	pending := s.PendingExits
	s.PendingExits = nil
	for _, ex := range pending {
		p := s.Players[ex.Player]
		if p.Seated {
			continue
		}
		if !p.Joined {
			return prev, nil, fmt.Errorf("%w: %s left hand before #%d", ErrNoBuyIn, ex.Player, rec.Number)
		}
		// Valued like a stack: admin chips in the exit amount are not winnings.
		out = append(out, Entry{Player: ex.Player, Profit: p.profit(ex.Amount), Order: rec.StartOrder, Time: rec.Start})
	}

	for _, b := range rec.Balances {
		p := s.Players[b.Player]
		if !p.Joined {
			return prev, nil, fmt.Errorf("%w: %s has a stack in hand #%d", ErrNoBuyIn, b.Player, rec.Number)
		}
		out = append(out, Entry{Player: b.Player, Profit: p.profit(b.Stack), Order: rec.StartOrder, Time: rec.Start})
	}

	for _, m := range rec.SitDowns {
		s.seat(m.Player, true)
		s.dropExit(m.Player)
	}

	// A join at the same moment as a sit-down is the same money.
	for _, j := range rec.Joins {
		if j.Order >= rec.StartOrder && !s.Players[j.Player].Seated {
			s.join(j)
		}
	}

	for _, m := range rec.StandUps {
		s.seat(m.Player, false)
	}

	for _, m := range rec.Exits {
		s.seat(m.Player, false)
		s.queueExit(m)
	}

	for _, a := range rec.Adjustments {
		s.adjust(a)
	}

	return s, out, nil
}

// Ledger is the result of replaying a session.
type Ledger struct {
	Entries []Entry
	State   SessionState
}

// Reconstruct folds Step over the hands in order.
func Reconstruct(records []hand.Record) (*Ledger, error) {
	state := NewSessionState()
	var entries []Entry
	for _, rec := range records {
		next, out, err := Step(state, rec)
		if err != nil {
			return nil, err
		}
		state = next
		entries = append(entries, out...)
	}
	return &Ledger{Entries: entries, State: state}, nil
}

// Finish settles exits still pending after the last hand, at that hand's end.
func Finish(l *Ledger, last hand.Record) error {
	for _, ex := range l.State.PendingExits {
		p := l.State.Players[ex.Player]
		if p.Seated {
			continue
		}
		if !p.Joined {
			return fmt.Errorf("%w: %s left after the last hand", ErrNoBuyIn, ex.Player)
		}
		l.Entries = append(l.Entries, Entry{Player: ex.Player, Profit: p.profit(ex.Amount), Order: last.EndOrder, Time: last.End})
	}
	l.State.PendingExits = nil
	return nil
}

// Players lists identities in order of their first entry.
func (l *Ledger) Players() []identity.Identity {
	seen := map[identity.Identity]bool{}
	var out []identity.Identity
	for _, e := range l.Entries {
		if !seen[e.Player] {
			seen[e.Player] = true
			out = append(out, e.Player)
		}
	}
	return out
}

func (l *Ledger) Series() map[identity.Identity][]Entry {
	out := map[identity.Identity][]Entry{}
	for _, e := range l.Entries {
		out[e.Player] = append(out[e.Player], e)
	}
	return out
}

// Final returns each player's last entry.
func (l *Ledger) Final() map[identity.Identity]Entry {
	out := map[identity.Identity]Entry{}
	for _, e := range l.Entries {
		out[e.Player] = e
	}
	return out
}

// CheckConservation logs a warning when the session does not net to zero.
// Only meaningful once every player has left.
func (l *Ledger) CheckConservation(log zerolog.Logger) bool {
	diff := l.Imbalance()
	if diff == 0 {
		return true
	}
	log.Warn().Int64("imbalance", diff).Int("players", len(l.Players())).Msg("ledger does not net to zero")
	return false
}

// Imbalance is the sum of every player's latest profit. Chips are
// conserved, so anything but zero means the log and the ledger disagree.
func (l *Ledger) Imbalance() int64 {
	var sum int64
	for _, e := range l.Final() {
		sum += e.Profit
	}
	return sum
}

// Session is one reconstructed night as seen by the all-time fold.
type Session struct {
	Date   time.Time
	Ledger *Ledger
}

// Merge folds sessions oldest-first into one cumulative point per player per
// session they played, stamped with their final entry's time.
func Merge(sessions []Session) map[identity.Identity][]Entry {
	out := map[identity.Identity][]Entry{}
	for _, sess := range sessions {
		final := sess.Ledger.Final()
		for _, id := range sess.Ledger.Players() {
			e := final[id]
			if prior := out[id]; len(prior) > 0 {
				e.Profit += prior[len(prior)-1].Profit
			}
			out[id] = append(out[id], e)
		}
	}
	return out
}
