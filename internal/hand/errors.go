package hand

import "errors"

var (
	ErrBadCard      = errors.New("bad_card")
	ErrNotHandStart = errors.New("not_hand_start")
)
