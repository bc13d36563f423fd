package hand

import (
	"fmt"
	"strings"

	"github.com/paulhankin/poker"
)

type Suit int

type Rank int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

type Card struct {
	Rank Rank
	Suit Suit
}

var rankSymbols = map[string]Rank{
	"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven, "8": Eight, "9": Nine,
	"10": Ten, "T": Ten, "J": Jack, "Q": Queen, "K": King, "A": Ace,
}

var suitSymbols = map[string]Suit{
	"♠": Spades, "s": Spades,
	"♥": Hearts, "h": Hearts,
	"♦": Diamonds, "d": Diamonds,
	"♣": Clubs, "c": Clubs,
}

func (c Card) String() string {
	r := map[Rank]string{
		Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8", Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
	}[c.Rank]
	s := map[Suit]string{Spades: "s", Hearts: "h", Diamonds: "d", Clubs: "c"}[c.Suit]
	return r + s
}

// ParseCard reads the log's card notation: "10♥", "J♠", "Ad".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	for sym, suit := range suitSymbols {
		if !strings.HasSuffix(s, sym) {
			continue
		}
		rank, ok := rankSymbols[strings.ToUpper(strings.TrimSuffix(s, sym))]
		if !ok {
			break
		}
		return Card{Rank: rank, Suit: suit}, nil
	}
	return Card{}, fmt.Errorf("%w: %q", ErrBadCard, s)
}

func ParseCards(ss []string) ([]Card, error) {
	out := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (c Card) toEval() (poker.Card, error) {
	r := poker.Rank(c.Rank)
	if c.Rank == Ace {
		r = 1
	}
	var s poker.Suit
	switch c.Suit {
	case Spades:
		s = poker.Spade
	case Hearts:
		s = poker.Heart
	case Diamonds:
		s = poker.Diamond
	default:
		s = poker.Club
	}
	return poker.MakeCard(s, r)
}

// Evaluate scores two hole cards against a complete five card board.
// Higher scores are stronger hands.
func Evaluate(hole, board []Card) (int16, string, error) {
	if len(hole) != 2 || len(board) != 5 {
		return 0, "", fmt.Errorf("%w: need 2 hole and 5 board cards, got %d and %d", ErrBadCard, len(hole), len(board))
	}
	var seven [7]poker.Card
	for i, c := range append(append([]Card{}, board...), hole...) {
		pc, err := c.toEval()
		if err != nil {
			return 0, "", fmt.Errorf("%w: %s: %v", ErrBadCard, c, err)
		}
		seven[i] = pc
	}
	desc, err := poker.Describe(seven[:])
	if err != nil {
		return 0, "", err
	}
	return poker.Eval7(&seven), desc, nil
}
