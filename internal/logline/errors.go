package logline

import "errors"

var (
	ErrMalformedRow = errors.New("malformed_row")
	ErrBadFileName  = errors.New("bad_session_file_name")
)
