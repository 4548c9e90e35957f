package josephus

import "github.com/pkg/errors"

// Iterator traverses a list once forward and once backward.
//
// The forward and backward cursors move independently and each is exhausted
// after one lap of the ring, or earlier when the element under it is removed
// from the list. Iterator does not support modification: Add, Set,
// Remove, NextIndex and PreviousIndex return ErrUnsupported.
type Iterator[T comparable] struct {
	forward  cursor[T]
	backward cursor[T]
}

// cursor walks the ring in one direction for at most left steps.
type cursor[T any] struct {
	e    *element[T]
	left int
}

func (c *cursor[T]) exhausted() bool {
	// Unlinked elements have nil links.
	return c.left == 0 || c.e == nil || c.e.next == nil
}

func (c *cursor[T]) step(next *element[T]) {
	c.e = next
	c.left--
}

// Iterator returns an iterator positioned at the head.
// Forward traversal starts at the head, backward traversal at the tail.
func (l *CircularList[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		forward: cursor[T]{
			e:    l.head,
			left: l.len,
		},
		backward: cursor[T]{
			e:    l.tail,
			left: l.len,
		},
	}
}

// HasNext reports whether Next returns a value.
func (it *Iterator[T]) HasNext() bool {
	return !it.forward.exhausted()
}

// Next returns the next value in forward order.
func (it *Iterator[T]) Next() (value T, err error) {
	c := &it.forward
	if c.exhausted() {
		return value, errors.Wrap(ErrExhausted, "next")
	}

	value = c.e.value
	c.step(c.e.next)

	return value, nil
}

// HasPrevious reports whether Previous returns a value.
func (it *Iterator[T]) HasPrevious() bool {
	return !it.backward.exhausted()
}

// Previous returns the next value in backward order.
func (it *Iterator[T]) Previous() (value T, err error) {
	c := &it.backward
	if c.exhausted() {
		return value, errors.Wrap(ErrExhausted, "previous")
	}

	value = c.e.value
	c.step(c.e.prev)

	return value, nil
}

// NextIndex is not supported.
func (it *Iterator[T]) NextIndex() (int, error) {
	return -1, errors.Wrap(ErrUnsupported, "next index")
}

// PreviousIndex is not supported.
func (it *Iterator[T]) PreviousIndex() (int, error) {
	return -1, errors.Wrap(ErrUnsupported, "previous index")
}

// Add is not supported.
func (it *Iterator[T]) Add(T) error {
	return errors.Wrap(ErrUnsupported, "add")
}

// Set is not supported.
func (it *Iterator[T]) Set(T) error {
	return errors.Wrap(ErrUnsupported, "set")
}

// Remove is not supported.
func (it *Iterator[T]) Remove() error {
	return errors.Wrap(ErrUnsupported, "remove")
}
