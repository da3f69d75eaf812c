package ordmap

import (
	"github.com/xaionaro-go/ordmap/errors"
)

var (
	NotFound                     = errors.NotFound
	UnsupportedKeyType           = errors.UnsupportedKeyType
	TypeConstraintViolation      = errors.TypeConstraintViolation
	InternalConsistencyViolation = errors.InternalConsistencyViolation
	UnknownTypeDeclaration       = errors.UnknownTypeDeclaration
)

type (
	UnsupportedKeyTypeError = errors.UnsupportedKeyTypeError
	TypeConstraintError     = errors.TypeConstraintError
)
