package josephus

import "github.com/pkg/errors"

// SetStartPosition rotates the ring so that the element at index i becomes the head.
// The order of elements is unchanged. Index Len() is accepted and leaves the head in place.
func (l *CircularList[T]) SetStartPosition(i int) error {
	if i < 0 || i > l.len {
		return l.errIndex(i)
	}

	if l.len == 0 {
		return nil
	}

	l.head = l.at(i)
	l.tail = l.head.prev

	return nil
}

// Winner plays the Josephus game on the list and returns the survivor.
// See Eliminate.
func (l *CircularList[T]) Winner() (T, error) {
	return l.Eliminate(nil)
}

// Eliminate plays the Josephus game: the element following the head is removed
// and the turn passes to the element after it, until one element remains.
// If f is not nil, it is called with each eliminated value in order.
// f must not change l.
//
// The list is left holding only the survivor, which is returned.
func (l *CircularList[T]) Eliminate(f func(eliminated T)) (survivor T, err error) {
	if l.len == 0 {
		return survivor, errors.Wrap(ErrEmptyList, "josephus: no participants")
	}

	for l.len > 1 {
		v := l.remove(l.head.next)
		if f != nil {
			f(v)
		}

		l.head = l.head.next
		l.tail = l.head.prev
	}

	return l.head.value, nil
}
