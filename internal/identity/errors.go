package identity

import "errors"

var (
	ErrUnknownAlias = errors.New("unknown_alias")
	ErrBadAliasFile = errors.New("bad_alias_file")
)
