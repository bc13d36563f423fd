package event

import "errors"

var ErrMalformedLine = errors.New("malformed_line")
