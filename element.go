package josephus

// element is a node in the ring.
type element[T any] struct {
	next, prev *element[T]
	value      T
}

// init makes e a ring of one holding v.
func (e *element[T]) init(v T) *element[T] {
	e.value = v
	e.next = e
	e.prev = e
	return e
}

// link inserts s after e.
func (e *element[T]) link(s *element[T]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

// unlink removes e from its ring and returns its value.
// An unlinked element has nil links.
func (e *element[T]) unlink() T {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil

	v := e.value
	var zero T
	e.value = zero

	return v
}
