package event

import (
	"poker-night/internal/logline"
)

type Kind int

const (
	KindInert Kind = iota
	KindHandStart
	KindHandEnd
	KindStacks
	KindFlop
	KindTurn
	KindRiver
	KindUndealt
	KindAdminAdjust
	KindJoin
	KindSitDown
	KindStandUp
	KindExit
	KindBlind
	KindBet
	KindRaise
	KindCall
	KindCheck
	KindFold
	KindShow
	KindCollect
)

var kindNames = map[Kind]string{
	KindInert:       "inert",
	KindHandStart:   "hand_start",
	KindHandEnd:     "hand_end",
	KindStacks:      "stacks",
	KindFlop:        "flop",
	KindTurn:        "turn",
	KindRiver:       "river",
	KindUndealt:     "undealt",
	KindAdminAdjust: "admin_adjust",
	KindJoin:        "join",
	KindSitDown:     "sit_down",
	KindStandUp:     "stand_up",
	KindExit:        "exit",
	KindBlind:       "blind",
	KindBet:         "bet",
	KindRaise:       "raise",
	KindCall:        "call",
	KindCheck:       "check",
	KindFold:        "fold",
	KindShow:        "show",
	KindCollect:     "collect",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsMovement reports whether the kind changes a player's seat or buy-in.
func (k Kind) IsMovement() bool {
	return k == KindJoin || k == KindSitDown || k == KindStandUp || k == KindExit
}

// IsAction reports whether the kind is an in-hand betting action.
func (k Kind) IsAction() bool {
	return k >= KindBlind && k <= KindFold
}

type BlindKind string

const (
	BlindSmall    BlindKind = "small"
	BlindBig      BlindKind = "big"
	BlindStraddle BlindKind = "straddle"
)

// SeatStack is one entry of a "Player stacks" snapshot.
type SeatStack struct {
	Seat   int
	Player string
	Stack  int64
}

// Event is the typed reading of one line. Player names are raw display
// names; normalisation happens when hands are built. Only the fields that
// belong to Kind are set.
type Event struct {
	Kind Kind
	Line logline.RawLine

	HandNumber int
	Player     string
	Amount     int64
	AllIn      bool
	Blind      BlindKind

	// Admin stack correction, To-From is the delta.
	From int64
	To   int64

	Stacks []SeatStack
	Cards  []string

	// Winning hand description on a collect line.
	HandText string
	HasHand  bool
}

// Delta is the signed admin correction carried by a KindAdminAdjust event.
func (e Event) Delta() int64 {
	return e.To - e.From
}
