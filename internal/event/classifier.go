package event

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"poker-night/internal/logline"
)

// Dialect selects which grammars apply. The legacy export counted buy-ins
// from admin approvals; the current export logs those approvals as well as
// the join itself, so the two sets must never be active together.
type Dialect int

const (
	DialectCurrent Dialect = iota
	DialectLegacy
)

func (d Dialect) String() string {
	if d == DialectLegacy {
		return "legacy"
	}
	return "current"
}

const currentDialectMarker = " joined the game with a stack of "

// DetectDialect picks the dialect of a whole session.
func DetectDialect(lines []logline.RawLine) Dialect {
	for _, l := range lines {
		if strings.Contains(l.Text, currentDialectMarker) {
			return DialectCurrent
		}
	}
	for _, l := range lines {
		if strings.Contains(l.Text, "The admin approved the player") {
			return DialectLegacy
		}
	}
	return DialectCurrent
}

type tagMode int

const (
	// tagPrefix matches the start of the row.
	tagPrefix tagMode = iota
	// tagAfterName matches anywhere after the first "@", which is where a
	// player-bearing row's verb lives. Names never contain "@".
	tagAfterName
)

type rule struct {
	kind     Kind
	dialects []Dialect
	mode     tagMode
	tag      string
	re       *regexp.Regexp
	extract  func(m []string, ev *Event) error
}

func (r rule) tagged(text string) bool {
	switch r.mode {
	case tagPrefix:
		return strings.HasPrefix(text, r.tag)
	default:
		at := strings.IndexByte(text, '@')
		return at >= 0 && strings.Contains(text[at:], r.tag)
	}
}

func (r rule) active(d Dialect) bool {
	if len(r.dialects) == 0 {
		return true
	}
	for _, x := range r.dialects {
		if x == d {
			return true
		}
	}
	return false
}

const (
	// Two or three quotes, depending on the export revision.
	actor  = `^"{2,3}([^@]+?) @ [^"\s]+"{1,2} `
	// A player quoted inside a sentence.
	quoted = `"{1,2}([^@]+?) @ [^"\s]+"{1,2} `
	allIn  = `( \(?and go all in\)?)?`
)

var rules = []rule{
	{kind: KindHandStart, mode: tagPrefix, tag: `"-- starting hand `,
		re: regexp.MustCompile(`^"-- starting hand #(\d+)`), extract: handNumber},
	{kind: KindHandEnd, mode: tagPrefix, tag: `"-- ending hand `,
		re: regexp.MustCompile(`^"-- ending hand #(\d+)`), extract: handNumber},
	{kind: KindStacks, mode: tagPrefix, tag: `"Player stacks`,
		re: regexp.MustCompile(`^"Player stacks:`), extract: stacks},
	{kind: KindFlop, mode: tagPrefix, tag: `"Flop:`,
		re: regexp.MustCompile(`^"Flop:\s+\[([^\]]*)\]`), extract: cardsAt(1)},
	{kind: KindTurn, mode: tagPrefix, tag: `"Turn:`,
		re: regexp.MustCompile(`^"Turn:.*?\[([^\]]*)\]`), extract: cardsAt(1)},
	{kind: KindRiver, mode: tagPrefix, tag: `"River:`,
		re: regexp.MustCompile(`^"River:.*?\[([^\]]*)\]`), extract: cardsAt(1)},
	{kind: KindUndealt, mode: tagPrefix, tag: `"Undealt cards:`,
		re: regexp.MustCompile(`^"Undealt cards:.*?\[([^\]]*)\]`), extract: cardsAt(1)},

	{kind: KindAdminAdjust, dialects: []Dialect{DialectCurrent}, mode: tagPrefix, tag: `"The admin updated the player `,
		re: regexp.MustCompile(`^"The admin updated the player ` + quoted + `stack from (\d+) to (\d+)`), extract: adminUpdate},
	{kind: KindAdminAdjust, dialects: []Dialect{DialectLegacy}, mode: tagPrefix, tag: `"WARNING: the admin queued the stack change`,
		re: regexp.MustCompile(`^"WARNING: the admin queued the stack change for the player ` + quoted + `adding (\d+) chips`), extract: adminAdding},
	{kind: KindJoin, dialects: []Dialect{DialectLegacy}, mode: tagPrefix, tag: `"The admin approved the player `,
		re: regexp.MustCompile(`^"The admin approved the player ` + quoted + `participation with a stack of (\d+)`), extract: playerAmount},

	{kind: KindJoin, dialects: []Dialect{DialectCurrent}, mode: tagAfterName, tag: currentDialectMarker,
		re: regexp.MustCompile(`^"The player ` + quoted + `joined the game with a stack of (\d+)`), extract: playerAmount},
	{kind: KindSitDown, mode: tagAfterName, tag: " sit back with the stack of ",
		re: regexp.MustCompile(`^"The player ` + quoted + `sit back with the stack of (\d+)`), extract: playerAmount},
	{kind: KindStandUp, mode: tagAfterName, tag: " stand up with the stack of ",
		re: regexp.MustCompile(`^"The player ` + quoted + `stand up with the stack of (\d+)`), extract: playerAmount},
	{kind: KindExit, mode: tagAfterName, tag: " quits the game with a stack of ",
		re: regexp.MustCompile(`^"The player ` + quoted + `quits the game with a stack of (\d+)`), extract: playerAmount},

	{kind: KindBlind, mode: tagAfterName, tag: `" posts a`,
		re: regexp.MustCompile(actor + `posts an? (?:missing |missed )?(small blind|big blind|straddle) of (\d+)` + allIn), extract: blind},
	{kind: KindBet, mode: tagAfterName, tag: `" bets `,
		re: regexp.MustCompile(actor + `bets (\d+)` + allIn), extract: wager},
	{kind: KindRaise, mode: tagAfterName, tag: `" raises to `,
		re: regexp.MustCompile(actor + `raises to (\d+)` + allIn), extract: wager},
	{kind: KindCall, mode: tagAfterName, tag: `" calls `,
		re: regexp.MustCompile(actor + `calls (\d+)` + allIn), extract: wager},
	{kind: KindCheck, mode: tagAfterName, tag: `" checks`,
		re: regexp.MustCompile(actor + `checks`), extract: playerOnly},
	{kind: KindFold, mode: tagAfterName, tag: `" folds`,
		re: regexp.MustCompile(actor + `folds`), extract: playerOnly},
	{kind: KindShow, mode: tagAfterName, tag: `" shows a `,
		re: regexp.MustCompile(actor + `shows a ([^."]+)`), extract: show},
	{kind: KindCollect, mode: tagAfterName, tag: `" collected `,
		re: regexp.MustCompile(actor + `collected (\d+) from pot(?: with ([^"]*))?`), extract: collect},
}

var stackEntry = regexp.MustCompile(`#(\d+) "{1,2}([^@]+?) @ [^"\s]+"{1,2} \((\d+)\)`)

// Classifier maps rows to events with an ordered rule table. The first rule
// whose tag matches owns the row: if its pattern then fails the row is
// malformed, never silently inert.
type Classifier struct {
	dialect Dialect
	rules   []rule
}

func NewClassifier(d Dialect) *Classifier {
	active := make([]rule, 0, len(rules))
	for _, r := range rules {
		if r.active(d) {
			active = append(active, r)
		}
	}
	return &Classifier{dialect: d, rules: active}
}

func (c *Classifier) Dialect() Dialect {
	return c.dialect
}

func (c *Classifier) Classify(line logline.RawLine) (Event, error) {
	ev := Event{Kind: KindInert, Line: line}
	for _, r := range c.rules {
		if !r.tagged(line.Text) {
			continue
		}
		m := r.re.FindStringSubmatch(line.Text)
		if m == nil {
			return ev, malformed(line, r.kind, "pattern did not match")
		}
		ev.Kind = r.kind
		if err := r.extract(m, &ev); err != nil {
			return ev, malformed(line, r.kind, err.Error())
		}
		return ev, nil
	}
	return ev, nil
}

// ClassifyAll classifies a whole session, stopping at the first malformed row.
func (c *Classifier) ClassifyAll(lines []logline.RawLine) ([]Event, error) {
	out := make([]Event, 0, len(lines))
	for _, l := range lines {
		ev, err := c.Classify(l)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

func malformed(line logline.RawLine, k Kind, why string) error {
	return fmt.Errorf("%w: %s row %d (%s): %q", ErrMalformedLine, k, line.Index, why, line.Text)
}

func parseAmount(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func handNumber(m []string, ev *Event) error {
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return err
	}
	ev.HandNumber = n
	return nil
}

func cardsAt(i int) func(m []string, ev *Event) error {
	return func(m []string, ev *Event) error {
		ev.Cards = SplitCards(m[i])
		return nil
	}
}

// SplitCards splits "10♥, 5♦, 2♣" style lists.
func SplitCards(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func playerOnly(m []string, ev *Event) error {
	ev.Player = m[1]
	return nil
}

func playerAmount(m []string, ev *Event) error {
	amount, err := parseAmount(m[2])
	if err != nil {
		return err
	}
	ev.Player = m[1]
	ev.Amount = amount
	return nil
}

func adminUpdate(m []string, ev *Event) error {
	from, err := parseAmount(m[2])
	if err != nil {
		return err
	}
	to, err := parseAmount(m[3])
	if err != nil {
		return err
	}
	ev.Player, ev.From, ev.To = m[1], from, to
	return nil
}

func adminAdding(m []string, ev *Event) error {
	added, err := parseAmount(m[2])
	if err != nil {
		return err
	}
	ev.Player, ev.From, ev.To = m[1], 0, added
	return nil
}

func blind(m []string, ev *Event) error {
	amount, err := parseAmount(m[3])
	if err != nil {
		return err
	}
	ev.Player = m[1]
	ev.Amount = amount
	ev.AllIn = m[4] != ""
	switch m[2] {
	case "small blind":
		ev.Blind = BlindSmall
	case "big blind":
		ev.Blind = BlindBig
	default:
		ev.Blind = BlindStraddle
	}
	return nil
}

func wager(m []string, ev *Event) error {
	if err := playerAmount(m, ev); err != nil {
		return err
	}
	ev.AllIn = m[3] != ""
	return nil
}

func show(m []string, ev *Event) error {
	ev.Player = m[1]
	ev.HandText = strings.TrimSpace(m[2])
	ev.Cards = SplitCards(ev.HandText)
	return nil
}

func collect(m []string, ev *Event) error {
	if err := playerAmount(m, ev); err != nil {
		return err
	}
	if desc := strings.TrimSpace(m[3]); desc != "" {
		ev.HandText = desc
		ev.HasHand = true
	}
	return nil
}

func stacks(_ []string, ev *Event) error {
	for _, m := range stackEntry.FindAllStringSubmatch(ev.Line.Text, -1) {
		seat, err := strconv.Atoi(m[1])
		if err != nil {
			return err
		}
		stack, err := parseAmount(m[3])
		if err != nil {
			return err
		}
		ev.Stacks = append(ev.Stacks, SeatStack{Seat: seat, Player: m[2], Stack: stack})
	}
	if len(ev.Stacks) == 0 {
		return fmt.Errorf("no seat entries")
	}
	return nil
}
