// Package list implements persistent list.
//
// A list is a chain of immutable nodes, each holding one element and a
// pointer to the rest of the list. The nil *List is the empty list, and every
// method can be called on it.
package list

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"
)

// List is a persistent singly-linked list. Once constructed, a node never
// changes, so lists can share tails freely and be read from multiple
// goroutines without locking.
type List[T any] struct {
	head  T
	tail  *List[T]
	count int
}

// Of returns a list containing the given elements in the same order. It
// returns the empty list when called without arguments.
func Of[T any](elems ...T) *List[T] {
	var l *List[T]
	for i := len(elems) - 1; i >= 0; i-- {
		l = l.Cons(elems[i])
	}
	return l
}

// Cons returns a new list with an additional value in the front.
func (l *List[T]) Cons(v T) *List[T] {
	return &List[T]{v, l, l.Len() + 1}
}

// First returns the first value in the list, or the zero value of T if the
// list is empty.
func (l *List[T]) First() T {
	if l == nil {
		var zero T
		return zero
	}
	return l.head
}

// Rest returns the list after the first value. The rest of an empty list is
// empty.
func (l *List[T]) Rest() *List[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

// IsEmpty reports whether the list has no values.
func (l *List[T]) IsEmpty() bool { return l == nil }

// Map returns a new list where each value is the result of applying f to the
// corresponding value of l. The original list is left untouched.
//
// Map is eager: f is called exactly once for each value, from the first to
// the last, before Map returns.
func Map[T, U any](l *List[T], f func(T) U) *List[U] {
	if l == nil {
		return nil
	}
	head := f(l.head)
	return &List[U]{head, Map(l.tail, f), l.count}
}

// All returns an iterator over the values of the list. Each call returns a
// fresh iterator that starts from the first value.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := l; pos != nil; pos = pos.tail {
			if !yield(pos.head) {
				return
			}
		}
	}
}

// Cursor returns a new cursor positioned before the first value of the list.
func (l *List[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{l}
}

// Find returns the first value for which pred returns true. The second return
// value is false if there is no such value.
func (l *List[T]) Find(pred func(T) bool) (T, bool) {
	for v := range l.All() {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Slice returns the values of the list in a newly allocated slice.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	for v := range l.All() {
		s = append(s, v)
	}
	return s
}

// String returns a parenthesized, space-separated representation of the
// list, like "(3 4 5)".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for pos := l; pos != nil; pos = pos.tail {
		if pos != l {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, pos.head)
	}
	sb.WriteByte(')')
	return sb.String()
}

// MarshalJSON encodes the list as a JSON array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Slice())
}

// Cursor walks a list from front to back. A Cursor is not safe for
// concurrent use, but any number of cursors can walk the same list.
type Cursor[T any] struct {
	pos *List[T]
}

// Next returns the value at the cursor and advances it. The second return
// value is false once the end of the list has been reached.
func (c *Cursor[T]) Next() (T, bool) {
	if c.pos == nil {
		var zero T
		return zero, false
	}
	v := c.pos.head
	c.pos = c.pos.tail
	return v, true
}
