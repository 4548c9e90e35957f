package josephus

import "github.com/pkg/errors"

// CheckRing verifies the linkage of the ring against the list length.
func CheckRing[T comparable](l *CircularList[T]) error {
	if l.len == 0 {
		if l.head != nil || l.tail != nil {
			return errors.New("empty list with head or tail set")
		}
		return nil
	}

	if l.head == nil || l.tail == nil {
		return errors.Errorf("list of length %d without head or tail", l.len)
	}

	if l.tail.next != l.head || l.head.prev != l.tail {
		return errors.New("ring not closed between tail and head")
	}

	if (l.len == 1) != (l.head == l.tail) {
		return errors.Errorf("head == tail: %t with length %d", l.head == l.tail, l.len)
	}

	e := l.head
	for i := 0; i < l.len; i++ {
		if e.next.prev != e || e.prev.next != e {
			return errors.Errorf("broken links at position %d", i)
		}
		if e = e.next; e == l.head && i < l.len-1 {
			return errors.Errorf("forward lap of %d elements, expected %d", i+1, l.len)
		}
	}
	if e != l.head {
		return errors.New("forward lap longer than length")
	}

	for i := 0; i < l.len; i++ {
		e = e.prev
	}
	if e != l.head {
		return errors.New("backward lap does not return to head")
	}

	return nil
}
