/*
Package josephus implements a circular doubly linked list with positional access
and the Josephus elimination game played on it.
*/
package josephus

import (
	"iter"

	"github.com/pkg/errors"
)

// CircularList is a circular doubly linked list.
// The zero value is a ready to use empty list.
//
// Index 0 is the head of the ring. The tail always precedes the head.
type CircularList[T comparable] struct {
	head  *element[T]
	tail  *element[T]
	len   int
	equal func(a, b T) bool
}

// New creates an empty list.
func New[T comparable](opts ...Option[T]) *CircularList[T] {
	var o listOptions[T]
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &CircularList[T]{
		equal: o.equal,
	}
}

// FromSlice creates a list holding items in order.
// It returns ErrEmptyInput if items is empty.
func FromSlice[T comparable](items []T, opts ...Option[T]) (*CircularList[T], error) {
	if len(items) == 0 {
		return nil, errors.Wrap(ErrEmptyInput, "josephus: cannot build a ring")
	}

	l := New(opts...)
	l.AddAll(items)

	return l, nil
}

// Len returns the number of elements in the list.
func (l *CircularList[T]) Len() int {
	return l.len
}

// Front returns the head value.
func (l *CircularList[T]) Front() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.head.value, true
}

// Back returns the tail value.
func (l *CircularList[T]) Back() (value T, ok bool) {
	if l.tail == nil {
		return value, false
	}
	return l.tail.value, true
}

// Add inserts v at the back of the list, just before the head.
func (l *CircularList[T]) Add(v T) {
	l.pushBack(new(element[T]).init(v))
}

// AddAll inserts items at the back of the list in order.
func (l *CircularList[T]) AddAll(items []T) {
	for _, v := range items {
		l.Add(v)
	}
}

// AddSeq inserts every value of seq at the back of the list in order.
func (l *CircularList[T]) AddSeq(seq iter.Seq[T]) {
	for v := range seq {
		l.Add(v)
	}
}

// Get returns the value at index i.
func (l *CircularList[T]) Get(i int) (value T, err error) {
	if i < 0 || i >= l.len {
		return value, l.errIndex(i)
	}
	return l.at(i).value, nil
}

// Set replaces the value at index i and returns the previous value.
func (l *CircularList[T]) Set(i int, v T) (old T, err error) {
	if i < 0 || i >= l.len {
		return old, l.errIndex(i)
	}

	e := l.at(i)
	old = e.value
	e.value = v

	return old, nil
}

// IndexOf returns the lowest index holding a value equal to v, or -1.
//
// The scan stops before the last position: a value held only by the
// tail is reported as -1. Use Contains for a full scan.
func (l *CircularList[T]) IndexOf(v T) int {
	e := l.head
	for i := 0; i < l.len-1; i++ {
		if l.eq(e.value, v) {
			return i
		}
		e = e.next
	}
	return -1
}

// Contains reports whether any element is equal to v.
func (l *CircularList[T]) Contains(v T) bool {
	return l.find(v) != nil
}

// Insert inserts v so that it becomes the element at index i.
// Valid indexes are [0, Len()]; inserting at Len() is the same as Add.
func (l *CircularList[T]) Insert(i int, v T) error {
	if i < 0 || i > l.len {
		return l.errIndex(i)
	}

	e := new(element[T]).init(v)

	if i == l.len {
		l.pushBack(e)
		return nil
	}

	l.at(i).prev.link(e)
	if i == 0 {
		l.head = e
	}
	l.len++

	return nil
}

// RemoveAt removes the element at index i and returns its value.
//
// The bound is inclusive of Len(): index Len() walks once around the
// ring and removes the head.
func (l *CircularList[T]) RemoveAt(i int) (value T, err error) {
	if i < 0 || i > l.len || l.len == 0 {
		return value, l.errIndex(i)
	}
	return l.remove(l.at(i)), nil
}

// Remove removes the first element equal to v.
func (l *CircularList[T]) Remove(v T) error {
	e := l.find(v)
	if e == nil {
		return errors.Wrapf(ErrNotFound, "value %v", v)
	}

	l.remove(e)

	return nil
}

// Do calls function f on each value of the list, in forward order from the head.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *CircularList[T]) Do(f func(v T) bool) {
	e := l.head
	if e == nil {
		return
	}

	if !f(e.value) {
		return
	}

	for p := e.next; p != l.head; p = p.next {
		if !f(p.value) {
			return
		}
	}
}

// All returns an iterator over index-value pairs in forward order.
func (l *CircularList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		e := l.head
		for i := 0; i < l.len; i++ {
			if !yield(i, e.value) {
				return
			}
			e = e.next
		}
	}
}

// Values returns an iterator over values in forward order.
func (l *CircularList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.Do(yield)
	}
}

// Backward returns an iterator over values from the tail back to the head.
func (l *CircularList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		e := l.tail
		for i := 0; i < l.len; i++ {
			if !yield(e.value) {
				return
			}
			e = e.prev
		}
	}
}

// Slice returns the values in forward order.
func (l *CircularList[T]) Slice() []T {
	s := make([]T, 0, l.len)
	l.Do(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

func (l *CircularList[T]) pushBack(e *element[T]) {
	if l.head == nil {
		l.head = e
	} else {
		l.tail.link(e)
	}
	l.tail = e
	l.len++
}

// remove unlinks e and returns its value. e must belong to l.
func (l *CircularList[T]) remove(e *element[T]) T {
	switch {
	case l.len == 1:
		l.head = nil
		l.tail = nil
	case e == l.head:
		l.head = e.next
	case e == l.tail:
		l.tail = e.prev
	}

	l.len--

	return e.unlink()
}

// at walks to index i, where 0 <= i <= l.len. Index l.len wraps to the head.
func (l *CircularList[T]) at(i int) *element[T] {
	if l.head == nil {
		panic("josephus: walk on empty ring")
	}

	e := l.head
	if i <= l.len/2 {
		for range i {
			e = e.next
		}
	} else {
		for range l.len - i {
			e = e.prev
		}
	}

	return e
}

func (l *CircularList[T]) find(v T) *element[T] {
	e := l.head
	for range l.len {
		if l.eq(e.value, v) {
			return e
		}
		e = e.next
	}
	return nil
}

func (l *CircularList[T]) eq(a, b T) bool {
	if l.equal != nil {
		return l.equal(a, b)
	}
	return a == b
}
