package common

import "errors"

// ErrEmptyList is returned when the last element of an empty list is requested.
var ErrEmptyList = errors.New("list is empty")
