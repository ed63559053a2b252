package fastpane

import "errors"

var (
	ErrInvalidSize = errors.New("relative size must be a positive finite number")
	ErrNoChildren  = errors.New("container needs at least one child")
	ErrNilProvider = errors.New("window needs a provider")
	ErrNilNode     = errors.New("container child is nil")
)
