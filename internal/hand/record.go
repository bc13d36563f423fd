package hand

import (
	"time"

	"poker-night/internal/event"
	"poker-night/internal/identity"
)

// HandUnknown stands in for a winning hand nobody had to show.
const HandUnknown = "unknown"

type MovementKind string

const (
	MoveJoin    MovementKind = "join"
	MoveSitDown MovementKind = "sit_down"
	MoveStandUp MovementKind = "stand_up"
	MoveExit    MovementKind = "exit"
)

type Movement struct {
	Kind   MovementKind
	Player identity.Identity
	Amount int64
	Order  int64
	Time   time.Time
}

type ActionKind string

const (
	ActionBlind ActionKind = "blind"
	ActionBet   ActionKind = "bet"
	ActionRaise ActionKind = "raise"
	ActionCall  ActionKind = "call"
	ActionCheck ActionKind = "check"
	ActionFold  ActionKind = "fold"
)

// Action is an in-hand betting action. Raise amounts are raise-to totals.
type Action struct {
	Kind   ActionKind
	Blind  event.BlindKind
	Player identity.Identity
	Amount int64
	AllIn  bool
	Order  int64
	Time   time.Time
}

type SeatBalance struct {
	Seat   int
	Player identity.Identity
	Stack  int64
}

type Adjustment struct {
	Player identity.Identity
	Delta  int64
}

type Winner struct {
	Player  identity.Identity
	Amount  int64
	Hand    string
	HasHand bool
}

// Shown is a player's revealed hole cards. Score and Description are set
// when the board was complete and the cards could be evaluated.
type Shown struct {
	Player      identity.Identity
	Text        string
	Cards       []string
	Evaluated   bool
	Score       int16
	Description string
}

// Board holds the table cards and the ordering key of each reveal.
type Board struct {
	Cards []string

	HasFlop    bool
	FlopOrder  int64
	HasTurn    bool
	TurnOrder  int64
	HasRiver   bool
	RiverOrder int64
}

type Record struct {
	Number int

	// Start comes from the stacks snapshot when there is one: late joiners
	// are logged between the hand marker and the snapshot.
	StartOrder int64
	Start      time.Time
	EndOrder   int64
	End        time.Time

	HasSnapshot bool
	Balances    []SeatBalance

	// Adjustments recorded in this hand take effect in the next one.
	Adjustments []Adjustment
	// PriorAdjustments were logged before the first hand marker. The
	// snapshot already holds those chips, so they count from this hand.
	PriorAdjustments []Adjustment

	Joins    []Movement
	SitDowns []Movement
	StandUps []Movement
	Exits    []Movement

	Actions []Action
	Board   Board
	Undealt []string
	Shown   []Shown
	Winners []Winner
}

func (r *Record) Balance(p identity.Identity) (int64, bool) {
	for _, b := range r.Balances {
		if b.Player == p {
			return b.Stack, true
		}
	}
	return 0, false
}

func (r *Record) Won(p identity.Identity) bool {
	for _, w := range r.Winners {
		if w.Player == p {
			return true
		}
	}
	return false
}

// ShownBy returns the last reveal by p.
func (r *Record) ShownBy(p identity.Identity) (Shown, bool) {
	for _, s := range r.Shown {
		if s.Player == p {
			return s, true
		}
	}
	return Shown{}, false
}
