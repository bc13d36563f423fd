package event

import (
	"errors"
	"testing"

	"poker-night/internal/logline"
)

func row(t *testing.T, text string) logline.RawLine {
	t.Helper()
	l, err := logline.New(1, text+",2022-06-09T23:01:00.000Z,165481566000000")
	if err != nil {
		t.Fatalf("logline.New(%q) error = %v", text, err)
	}
	return l
}

func TestClassifyCurrentDialect(t *testing.T) {
	c := NewClassifier(DialectCurrent)
	tests := []struct {
		name   string
		text   string
		kind   Kind
		player string
		amount int64
		allIn  bool
	}{
		{name: "hand start", text: `"-- starting hand #12 (id: abc)  No Limit Texas Hold'em (dealer: ""Bob @ b2"") --"`, kind: KindHandStart},
		{name: "hand end", text: `"-- ending hand #12 --"`, kind: KindHandEnd},
		{name: "join", text: `"The player ""Alice @ a1"" joined the game with a stack of 1000."`, kind: KindJoin, player: "Alice", amount: 1000},
		{name: "sit down", text: `"The player ""Alice @ a1"" sit back with the stack of 850."`, kind: KindSitDown, player: "Alice", amount: 850},
		{name: "stand up", text: `"The player ""Alice @ a1"" stand up with the stack of 850."`, kind: KindStandUp, player: "Alice", amount: 850},
		{name: "exit", text: `"The player ""Alice @ a1"" quits the game with a stack of 0."`, kind: KindExit, player: "Alice", amount: 0},
		{name: "small blind", text: `"""Alice @ a1"" posts a small blind of 10"`, kind: KindBlind, player: "Alice", amount: 10},
		{name: "bet", text: `"""Bob @ b2"" bets 40"`, kind: KindBet, player: "Bob", amount: 40},
		{name: "bet all in", text: `"""Bob @ b2"" bets 40 and go all in"`, kind: KindBet, player: "Bob", amount: 40, allIn: true},
		{name: "raise all in parenthesised", text: `"""Bob @ b2"" raises to 400 (and go all in)"`, kind: KindRaise, player: "Bob", amount: 400, allIn: true},
		{name: "call two quotes", text: `""Bob @ b2"" calls 20"`, kind: KindCall, player: "Bob", amount: 20},
		{name: "check", text: `"""Bob @ b2"" checks"`, kind: KindCheck, player: "Bob"},
		{name: "fold", text: `"""Carol D @ c3"" folds"`, kind: KindFold, player: "Carol D"},
		{name: "name with odd characters", text: `"""st3vo-iPad (2) @ x9"" checks"`, kind: KindCheck, player: "st3vo-iPad (2)"},
		{name: "verb inside name is not a tag", text: `"""Ray bets big @ r1"" folds"`, kind: KindFold, player: "Ray bets big"},
		{name: "cosmetic", text: `"The player ""Alice @ a1"" requested a seat."`, kind: KindInert},
		{name: "legacy approval is inert", text: `"The admin approved the player ""Alice @ a1"" participation with a stack of 1000."`, kind: KindInert},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := c.Classify(row(t, tt.text))
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if ev.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", ev.Kind, tt.kind)
			}
			if ev.Player != tt.player || ev.Amount != tt.amount || ev.AllIn != tt.allIn {
				t.Fatalf("got player=%q amount=%d allIn=%v, want %q %d %v", ev.Player, ev.Amount, ev.AllIn, tt.player, tt.amount, tt.allIn)
			}
		})
	}
}

func TestClassifyHandNumberAndBlindKinds(t *testing.T) {
	c := NewClassifier(DialectCurrent)
	ev, err := c.Classify(row(t, `"-- starting hand #37 (id: zz) --"`))
	if err != nil || ev.HandNumber != 37 {
		t.Fatalf("hand start = %+v, %v", ev, err)
	}

	for text, want := range map[string]BlindKind{
		`"""A @ a"" posts a small blind of 5"`:         BlindSmall,
		`"""A @ a"" posts a big blind of 10"`:          BlindBig,
		`"""A @ a"" posts a straddle of 20"`:           BlindStraddle,
		`"""A @ a"" posts a missing small blind of 5"`: BlindSmall,
	} {
		ev, err := c.Classify(row(t, text))
		if err != nil {
			t.Fatalf("Classify(%q) error = %v", text, err)
		}
		if ev.Blind != want {
			t.Fatalf("Classify(%q) blind = %s, want %s", text, ev.Blind, want)
		}
	}
}

func TestClassifyStacks(t *testing.T) {
	c := NewClassifier(DialectCurrent)
	ev, err := c.Classify(row(t, `"Player stacks: #1 ""Alice @ a1"" (1200) | #4 ""Bob @ b2"" (800)"`))
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if ev.Kind != KindStacks || len(ev.Stacks) != 2 {
		t.Fatalf("stacks = %+v", ev)
	}
	if ev.Stacks[0] != (SeatStack{Seat: 1, Player: "Alice", Stack: 1200}) {
		t.Fatalf("first seat = %+v", ev.Stacks[0])
	}
	if ev.Stacks[1] != (SeatStack{Seat: 4, Player: "Bob", Stack: 800}) {
		t.Fatalf("second seat = %+v", ev.Stacks[1])
	}
}

func TestClassifyCardsAndShowdown(t *testing.T) {
	c := NewClassifier(DialectCurrent)

	flop, err := c.Classify(row(t, `"Flop:  [10♥, 5♦, 2♣]"`))
	if err != nil || flop.Kind != KindFlop || len(flop.Cards) != 3 || flop.Cards[0] != "10♥" {
		t.Fatalf("flop = %+v, %v", flop, err)
	}
	turn, err := c.Classify(row(t, `"Turn: 10♥, 5♦, 2♣ [J♠]"`))
	if err != nil || turn.Kind != KindTurn || len(turn.Cards) != 1 || turn.Cards[0] != "J♠" {
		t.Fatalf("turn = %+v, %v", turn, err)
	}
	river, err := c.Classify(row(t, `"River: 10♥, 5♦, 2♣, J♠ [3♦]"`))
	if err != nil || river.Kind != KindRiver || river.Cards[0] != "3♦" {
		t.Fatalf("river = %+v, %v", river, err)
	}
	undealt, err := c.Classify(row(t, `"Undealt cards: 10♥, 5♦, 2♣ [J♠, 3♦]"`))
	if err != nil || undealt.Kind != KindUndealt || len(undealt.Cards) != 2 {
		t.Fatalf("undealt = %+v, %v", undealt, err)
	}

	show, err := c.Classify(row(t, `"""Alice @ a1"" shows a 10♠, 10♦."`))
	if err != nil || show.Kind != KindShow || show.HandText != "10♠, 10♦" || len(show.Cards) != 2 {
		t.Fatalf("show = %+v, %v", show, err)
	}

	won, err := c.Classify(row(t, `"""Alice @ a1"" collected 360 from pot with Three of a Kind, 10's (combination: 10♠, 10♦, 10♥, J♠, 5♦)"`))
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if won.Kind != KindCollect || won.Amount != 360 || !won.HasHand {
		t.Fatalf("collect = %+v", won)
	}
	if won.HandText != "Three of a Kind, 10's (combination: 10♠, 10♦, 10♥, J♠, 5♦)" {
		t.Fatalf("hand text = %q", won.HandText)
	}

	uncontested, err := c.Classify(row(t, `"""Bob @ b2"" collected 30 from pot"`))
	if err != nil || uncontested.HasHand || uncontested.Amount != 30 {
		t.Fatalf("uncontested = %+v, %v", uncontested, err)
	}
}

func TestClassifyAdminAdjust(t *testing.T) {
	c := NewClassifier(DialectCurrent)
	ev, err := c.Classify(row(t, `"The admin updated the player ""Alice @ a1"" stack from 1000 to 1500."`))
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if ev.Kind != KindAdminAdjust || ev.Player != "Alice" || ev.Delta() != 500 {
		t.Fatalf("admin = %+v", ev)
	}
}

func TestClassifyLegacyDialect(t *testing.T) {
	c := NewClassifier(DialectLegacy)

	join, err := c.Classify(row(t, `"The admin approved the player ""Alice @ a1"" participation with a stack of 1000."`))
	if err != nil || join.Kind != KindJoin || join.Amount != 1000 {
		t.Fatalf("approval = %+v, %v", join, err)
	}
	topUp, err := c.Classify(row(t, `"WARNING: the admin queued the stack change for the player ""Alice @ a1"" adding 1000 chips in the next hand."`))
	if err != nil || topUp.Kind != KindAdminAdjust || topUp.Delta() != 1000 {
		t.Fatalf("queued change = %+v, %v", topUp, err)
	}
	joined, err := c.Classify(row(t, `"The player ""Alice @ a1"" joined the game with a stack of 1000."`))
	if err != nil || joined.Kind != KindInert {
		t.Fatalf("join line in legacy dialect = %+v, %v", joined, err)
	}
}

func TestClassifyMalformedTaggedLine(t *testing.T) {
	c := NewClassifier(DialectCurrent)
	tests := []string{
		`"The player ""Alice @ a1"" joined the game with a stack of lots."`,
		`"Player stacks: nobody"`,
		`"""Bob @ b2"" raises to everything"`,
		`"-- starting hand #x --"`,
	}
	for _, text := range tests {
		_, err := c.Classify(row(t, text))
		if !errors.Is(err, ErrMalformedLine) {
			t.Fatalf("Classify(%q) err = %v, want ErrMalformedLine", text, err)
		}
	}
}

func TestDetectDialect(t *testing.T) {
	legacy := []logline.RawLine{
		row(t, `"The admin approved the player ""Alice @ a1"" participation with a stack of 1000."`),
	}
	if got := DetectDialect(legacy); got != DialectLegacy {
		t.Fatalf("DetectDialect(legacy) = %s", got)
	}
	current := append(legacy, row(t, `"The player ""Alice @ a1"" joined the game with a stack of 1000."`))
	if got := DetectDialect(current); got != DialectCurrent {
		t.Fatalf("DetectDialect(current) = %s", got)
	}
	if got := DetectDialect(nil); got != DialectCurrent {
		t.Fatalf("DetectDialect(nil) = %s", got)
	}
}

func TestClassifierKeepsItsDialect(t *testing.T) {
	for _, d := range []Dialect{DialectCurrent, DialectLegacy} {
		if got := NewClassifier(d).Dialect(); got != d {
			t.Fatalf("NewClassifier(%s).Dialect() = %s", d, got)
		}
	}
}

func TestKindIsAction(t *testing.T) {
	tests := map[Kind]bool{
		KindBlind:       true,
		KindBet:         true,
		KindRaise:       true,
		KindCall:        true,
		KindCheck:       true,
		KindFold:        true,
		KindExit:        false,
		KindShow:        false,
		KindCollect:     false,
		KindAdminAdjust: false,
		KindInert:       false,
	}
	for k, want := range tests {
		if got := k.IsAction(); got != want {
			t.Fatalf("%s.IsAction() = %v, want %v", k, got, want)
		}
	}
}

func TestClassifyAllStopsOnMalformed(t *testing.T) {
	c := NewClassifier(DialectCurrent)
	lines := []logline.RawLine{
		row(t, `"-- starting hand #1 (id: a) --"`),
		row(t, `"""Bob @ b2"" bets much"`),
	}
	if _, err := c.ClassifyAll(lines); !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("ClassifyAll() err = %v", err)
	}
}
