package ledger

import (
	"time"

	"poker-night/internal/hand"
	"poker-night/internal/identity"
)

// Entry is one point of a player's profit series, in minor units.
type Entry struct {
	Player identity.Identity
	Profit int64
	Order  int64
	Time   time.Time
}

// PlayerState is what the ledger carries for one identity across hands.
// BuyIn only grows and is never reset within a session. AdminDelta is the
// running sum of admin corrections from earlier hands; those chips sit in
// every later snapshot, so the sum stays applied.
type PlayerState struct {
	Joined     bool
	Seated     bool
	BuyIn      int64
	AdminDelta int64
}

// profit values a stack against what the player put in. Chips an admin
// added are part of the stack but not winnings.
func (p PlayerState) profit(stack int64) int64 {
	return (stack - p.AdminDelta) - p.BuyIn
}

// SessionState is the fold accumulator. PendingExits holds exits whose
// final entry is written at the start of the next hand, in exit order.
type SessionState struct {
	Players      map[identity.Identity]PlayerState
	PendingExits []hand.Movement
}

func NewSessionState() SessionState {
	return SessionState{Players: map[identity.Identity]PlayerState{}}
}

func (s SessionState) Clone() SessionState {
	out := SessionState{
		Players:      make(map[identity.Identity]PlayerState, len(s.Players)),
		PendingExits: append([]hand.Movement(nil), s.PendingExits...),
	}
	for k, v := range s.Players {
		out.Players[k] = v
	}
	return out
}

func (s *SessionState) join(m hand.Movement) {
	p := s.Players[m.Player]
	p.Joined = true
	p.Seated = true
	p.BuyIn += m.Amount
	s.Players[m.Player] = p
	s.dropExit(m.Player)
}

func (s *SessionState) seat(id identity.Identity, seated bool) {
	p := s.Players[id]
	p.Seated = seated
	s.Players[id] = p
}

func (s *SessionState) dropExit(id identity.Identity) {
	kept := s.PendingExits[:0]
	for _, m := range s.PendingExits {
		if m.Player != id {
			kept = append(kept, m)
		}
	}
	s.PendingExits = kept
}

func (s *SessionState) queueExit(m hand.Movement) {
	s.dropExit(m.Player)
	s.PendingExits = append(s.PendingExits, m)
}

func (s *SessionState) adjust(a hand.Adjustment) {
	p := s.Players[a.Player]
	p.AdminDelta += a.Delta
	s.Players[a.Player] = p
}
