package pure

import (
	"errors"

	"github.com/on-the-ground/underbar_go/shared/helper"
)

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownMethod   = errors.New("unknown method")
	ErrCyclicStructure = errors.New("cyclic structure")
	ErrUnexpectedType  = helper.ErrUnexpectedType
)
