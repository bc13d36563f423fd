package hand

import (
	"fmt"

	"github.com/rs/zerolog"

	"poker-night/internal/event"
	"poker-night/internal/identity"
)

// Builder turns one hand's events into a Record. Every player name is
// resolved through the normalizer; an unresolvable name fails the build.
type Builder struct {
	norm *identity.Normalizer
	log  zerolog.Logger
}

func NewBuilder(norm *identity.Normalizer, log zerolog.Logger) *Builder {
	return &Builder{norm: norm, log: log}
}

func (b *Builder) Build(group []event.Event) (Record, error) {
	if len(group) == 0 || group[0].Kind != event.KindHandStart {
		return Record{}, ErrNotHandStart
	}
	head, last := group[0], group[len(group)-1]
	rec := Record{
		Number:     head.HandNumber,
		StartOrder: head.Line.Order,
		Start:      head.Line.Time,
		EndOrder:   last.Line.Order,
		End:        last.Line.Time,
	}

	extractors := []func(*Record, []event.Event) error{
		b.startingBalances,
		b.adjustments,
		b.movements,
		b.actions,
		b.tableCards,
		b.showdown,
	}
	for _, extract := range extractors {
		if err := extract(&rec, group); err != nil {
			return Record{}, fmt.Errorf("hand #%d: %w", rec.Number, err)
		}
	}
	b.evaluateShown(&rec)

	if !rec.HasSnapshot {
		b.log.Warn().Int("hand", rec.Number).Msg("hand has no player stacks snapshot")
	}
	return rec, nil
}

// BuildAll builds every group in order.
func (b *Builder) BuildAll(groups [][]event.Event) ([]Record, error) {
	out := make([]Record, 0, len(groups))
	for _, g := range groups {
		rec, err := b.Build(g)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// AttachPrelude folds the seat movements and admin corrections logged
// before the first hand into that hand. They all precede its snapshot, so
// the corrections go to PriorAdjustments rather than waiting a hand.
func (b *Builder) AttachPrelude(rec *Record, prelude []event.Event) error {
	pre := Record{Number: rec.Number}
	if err := b.movements(&pre, prelude); err != nil {
		return fmt.Errorf("before hand #%d: %w", rec.Number, err)
	}
	if err := b.adjustments(&pre, prelude); err != nil {
		return fmt.Errorf("before hand #%d: %w", rec.Number, err)
	}

	rec.Joins = append(pre.Joins, rec.Joins...)
	for _, m := range rec.SitDowns {
		pre.SitDowns = lastWins(pre.SitDowns, m)
	}
	for _, m := range rec.StandUps {
		pre.StandUps = lastWins(pre.StandUps, m)
	}
	for _, m := range rec.Exits {
		pre.Exits = lastWins(pre.Exits, m)
	}
	rec.SitDowns, rec.StandUps, rec.Exits = pre.SitDowns, pre.StandUps, pre.Exits

	for _, a := range pre.Adjustments {
		rec.PriorAdjustments = addAdjustment(rec.PriorAdjustments, a.Player, a.Delta)
	}
	return nil
}

func (b *Builder) resolve(ev event.Event) (identity.Identity, error) {
	id, err := b.norm.Resolve(ev.Player)
	if err != nil {
		return "", fmt.Errorf("row %d: %w", ev.Line.Index, err)
	}
	return id, nil
}

// startingBalances reads the first snapshot only.
func (b *Builder) startingBalances(rec *Record, group []event.Event) error {
	for _, ev := range group {
		if ev.Kind != event.KindStacks {
			continue
		}
		for _, s := range ev.Stacks {
			id, err := b.norm.Resolve(s.Player)
			if err != nil {
				return fmt.Errorf("row %d: %w", ev.Line.Index, err)
			}
			rec.Balances = append(rec.Balances, SeatBalance{Seat: s.Seat, Player: id, Stack: s.Stack})
		}
		rec.HasSnapshot = true
		rec.StartOrder = ev.Line.Order
		rec.Start = ev.Line.Time
		return nil
	}
	return nil
}

// adjustments sums repeated corrections per player.
func (b *Builder) adjustments(rec *Record, group []event.Event) error {
	for _, ev := range group {
		if ev.Kind != event.KindAdminAdjust {
			continue
		}
		id, err := b.resolve(ev)
		if err != nil {
			return err
		}
		rec.Adjustments = addAdjustment(rec.Adjustments, id, ev.Delta())
	}
	return nil
}

func addAdjustment(as []Adjustment, p identity.Identity, delta int64) []Adjustment {
	for i := range as {
		if as[i].Player == p {
			as[i].Delta += delta
			return as
		}
	}
	return append(as, Adjustment{Player: p, Delta: delta})
}

// movements keeps every join, since a player can leave and rejoin within a
// hand; for the other kinds the last one per player wins.
func (b *Builder) movements(rec *Record, group []event.Event) error {
	for _, ev := range group {
		if !ev.Kind.IsMovement() {
			continue
		}
		id, err := b.resolve(ev)
		if err != nil {
			return err
		}
		m := Movement{Player: id, Amount: ev.Amount, Order: ev.Line.Order, Time: ev.Line.Time}
		switch ev.Kind {
		case event.KindJoin:
			m.Kind = MoveJoin
			if i, left := find(rec.Exits, id); left && rec.Exits[i].Order < m.Order {
				b.log.Warn().Int("hand", rec.Number).Str("player", string(id)).Int("row", ev.Line.Index).Msg("player rejoined after leaving in the same hand")
			}
			rec.Joins = append(rec.Joins, m)
		case event.KindSitDown:
			m.Kind = MoveSitDown
			rec.SitDowns = lastWins(rec.SitDowns, m)
		case event.KindStandUp:
			m.Kind = MoveStandUp
			if _, dup := find(rec.StandUps, id); dup {
				b.log.Warn().Int("hand", rec.Number).Str("player", string(id)).Int("row", ev.Line.Index).Msg("player stood up twice in one hand")
			}
			rec.StandUps = lastWins(rec.StandUps, m)
		case event.KindExit:
			m.Kind = MoveExit
			rec.Exits = lastWins(rec.Exits, m)
		}
	}
	return nil
}

func find(ms []Movement, p identity.Identity) (int, bool) {
	for i, m := range ms {
		if m.Player == p {
			return i, true
		}
	}
	return -1, false
}

func lastWins(ms []Movement, m Movement) []Movement {
	if i, ok := find(ms, m.Player); ok {
		ms[i] = m
		return ms
	}
	return append(ms, m)
}

var actionKinds = map[event.Kind]ActionKind{
	event.KindBlind: ActionBlind,
	event.KindBet:   ActionBet,
	event.KindRaise: ActionRaise,
	event.KindCall:  ActionCall,
	event.KindCheck: ActionCheck,
	event.KindFold:  ActionFold,
}

func (b *Builder) actions(rec *Record, group []event.Event) error {
	for _, ev := range group {
		if !ev.Kind.IsAction() {
			continue
		}
		kind := actionKinds[ev.Kind]
		id, err := b.resolve(ev)
		if err != nil {
			return err
		}
		rec.Actions = append(rec.Actions, Action{
			Kind:   kind,
			Blind:  ev.Blind,
			Player: id,
			Amount: ev.Amount,
			AllIn:  ev.AllIn,
			Order:  ev.Line.Order,
			Time:   ev.Line.Time,
		})
	}
	return nil
}

func (b *Builder) tableCards(rec *Record, group []event.Event) error {
	board := &rec.Board
	for _, ev := range group {
		switch ev.Kind {
		case event.KindFlop:
			board.Cards = append([]string{}, ev.Cards...)
			board.HasFlop = true
			board.FlopOrder = ev.Line.Order
		case event.KindTurn:
			board.Cards = append(board.Cards, ev.Cards...)
			board.HasTurn = true
			board.TurnOrder = ev.Line.Order
		case event.KindRiver:
			board.Cards = append(board.Cards, ev.Cards...)
			board.HasRiver = true
			board.RiverOrder = ev.Line.Order
		case event.KindUndealt:
			rec.Undealt = append([]string{}, ev.Cards...)
		}
	}
	return nil
}

func (b *Builder) showdown(rec *Record, group []event.Event) error {
	for _, ev := range group {
		switch ev.Kind {
		case event.KindShow:
			id, err := b.resolve(ev)
			if err != nil {
				return err
			}
			s := Shown{Player: id, Text: ev.HandText, Cards: ev.Cards}
			replaced := false
			for i := range rec.Shown {
				if rec.Shown[i].Player == id {
					rec.Shown[i] = s
					replaced = true
					break
				}
			}
			if !replaced {
				rec.Shown = append(rec.Shown, s)
			}
		case event.KindCollect:
			id, err := b.resolve(ev)
			if err != nil {
				return err
			}
			w := Winner{Player: id, Amount: ev.Amount, Hand: HandUnknown}
			if ev.HasHand {
				w.Hand = ev.HandText
				w.HasHand = true
			}
			rec.Winners = append(rec.Winners, w)
		}
	}
	return nil
}

// evaluateShown scores revealed hands once the board is complete. Cards the
// parser does not understand leave the reveal unevaluated.
func (b *Builder) evaluateShown(rec *Record) {
	if len(rec.Board.Cards) != 5 || len(rec.Shown) == 0 {
		return
	}
	board, err := ParseCards(rec.Board.Cards)
	if err != nil {
		b.log.Debug().Err(err).Int("hand", rec.Number).Msg("board not evaluable")
		return
	}
	for i := range rec.Shown {
		hole, err := ParseCards(rec.Shown[i].Cards)
		if err != nil {
			b.log.Debug().Err(err).Int("hand", rec.Number).Msg("shown cards not evaluable")
			continue
		}
		score, desc, err := Evaluate(hole, board)
		if err != nil {
			b.log.Debug().Err(err).Int("hand", rec.Number).Msg("shown cards not evaluable")
			continue
		}
		rec.Shown[i].Evaluated = true
		rec.Shown[i].Score = score
		rec.Shown[i].Description = desc
	}
}
