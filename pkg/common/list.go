package common

import (
	"iter"
	"slices"

	"github.com/spicery/titles/pkg/catalogue"
)

// List is an append-only sequence of catalogue values kept in insertion
// order. The zero value is an empty list ready for use. A List is not safe
// for concurrent use.
type List[T catalogue.Value] struct {
	items []T
}

// NewList returns a list holding values in the order given.
func NewList[T catalogue.Value](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.Add(v)
	}
	return l
}

// Add appends item as the new last element. Running out of memory while
// the backing slice grows is a fatal runtime error, so there is nothing to
// return here.
func (l *List[T]) Add(item T) {
	l.items = append(l.items, item)
}

// Last returns the most recently added element, or ErrEmptyList.
func (l *List[T]) Last() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	return l.items[len(l.items)-1], nil
}

// MustLast is Last for callers that have already checked the list is not
// empty. It panics with ErrEmptyList otherwise.
func (l *List[T]) MustLast() T {
	item, err := l.Last()
	if err != nil {
		panic(err)
	}
	return item
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) IsEmpty() bool {
	return len(l.items) == 0
}

// Items returns a copy of the elements in insertion order.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// All yields each element with its position, oldest first.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}
