package npc

import "errors"

var (
	ErrMissingDependency = errors.New("missing dependency")
	ErrInvalidConfig     = errors.New("invalid npc config")
)
