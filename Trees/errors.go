package Trees

import "fmt"

// InvalidSliceError is the panic value of From and FromC when the keys given aren't strictly
// ascending. Prev is found at Index-1 and Next at Index.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("keys aren't strictly ascending at index %d: %v, %v", e.Index, e.Prev, e.Next)
}

// LengthMismatchError is the panic value of From and FromC when there isn't exactly one value per key.
type LengthMismatchError struct {
	Keys, Values int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("%d keys but %d values", e.Keys, e.Values)
}

// CapacityError is the panic value of Insert when the tree already holds Max entries, the most its index type can
// address, and of From and FromC when given more keys than that.
type CapacityError struct {
	Max uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("tree can't hold more than %d entries", e.Max)
}
