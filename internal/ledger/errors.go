package ledger

import "errors"

var ErrNoBuyIn = errors.New("no_buy_in")
