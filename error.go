package josephus

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange indicates an index outside the valid range of an operation.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotFound indicates no element is equal to the given value.
	ErrNotFound = errors.New("element not found")

	// ErrEmptyInput indicates a list was constructed from an empty sequence.
	ErrEmptyInput = errors.New("empty input")

	// ErrEmptyList indicates the game was played on an empty list.
	ErrEmptyList = errors.New("empty list")

	// ErrUnsupported indicates a mutating call through an Iterator.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrExhausted indicates an iterator cursor has passed the end of the ring.
	ErrExhausted = errors.New("iterator exhausted")
)

func (l *CircularList[T]) errIndex(i int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, l.len)
}
