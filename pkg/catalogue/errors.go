package catalogue

import "errors"

var (
	ErrUnknownLabel = errors.New("unknown label")
	ErrUnknownKind  = errors.New("unknown catalogue kind")
)
