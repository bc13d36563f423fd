package hand

type Street string

const (
	StreetPreFlop Street = "preflop"
	StreetFlop    Street = "flop"
	StreetTurn    Street = "turn"
	StreetRiver   Street = "river"
)

var Streets = []Street{StreetPreFlop, StreetFlop, StreetTurn, StreetRiver}

// StreetAt places an ordering key on the betting street that was open at
// that moment. A street only starts once its card is on the table, so a
// hand that ended on the flop keeps every later action on the flop.
func (b Board) StreetAt(order int64) Street {
	switch {
	case !b.HasFlop || order < b.FlopOrder:
		return StreetPreFlop
	case !b.HasTurn || order < b.TurnOrder:
		return StreetFlop
	case !b.HasRiver || order < b.RiverOrder:
		return StreetTurn
	default:
		return StreetRiver
	}
}
