package night

import "errors"

var (
	ErrNoSessions = errors.New("no_sessions")
	ErrBadRunID   = errors.New("bad_run_id")
)
