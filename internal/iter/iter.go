package iter

import (
	"gopkg.ucum.org/parser.go/internal/optional"
)

// Iterator yields values until exhausted. Parsing is synchronous and
// in-memory, so there is no close or cancellation concept.
type Iterator[T any] interface {
	Next() optional.Optional[T]
}

// Lookahead is an Iterator that can additionally peek at the next n values
// without consuming them.
type Lookahead[T any] interface {
	Iterator[T]
	Lookahead(n uint8) optional.Optional[T]
}

// NewSlice converts a slice of values into an Iterator implementation.
func NewSlice[T any](vs []T) Iterator[T] {
	return &iteratorSlice[T]{slice: vs, offset: -1}
}

type iteratorSlice[T any] struct {
	slice  []T
	offset int
}

func (it *iteratorSlice[T]) Next() optional.Optional[T] {
	it.offset = it.offset + 1
	if it.offset >= len(it.slice) {
		return optional.None[T]()
	}
	return optional.Some(it.slice[it.offset])
}

// NewLookahead wraps an iterator in a Lookahead implementation to enable
// peeking at the next n values.
func NewLookahead[T any](it Iterator[T], n uint8) Lookahead[T] {
	return &lookahead[T]{
		iter: it,
		n:    n,
	}
}

type lookahead[T any] struct {
	iter  Iterator[T]
	n     uint8
	peeks []optional.Optional[T]
}

func (look *lookahead[T]) init() {
	if look.peeks == nil {
		look.peeks = make([]optional.Optional[T], look.n+1)
		for x := 0; x <= int(look.n); x = x + 1 {
			look.peeks[x] = look.iter.Next()
		}
	}
}

func (look *lookahead[T]) Next() optional.Optional[T] {
	if look.peeks == nil {
		look.init()
		return look.peeks[0]
	}
	copy(look.peeks, look.peeks[1:])
	look.peeks[len(look.peeks)-1] = look.iter.Next()
	return look.peeks[0]
}

func (look *lookahead[T]) Lookahead(n uint8) optional.Optional[T] {
	if look.peeks == nil {
		look.init()
	}
	if n > look.n {
		return optional.None[T]()
	}
	return look.peeks[n]
}
