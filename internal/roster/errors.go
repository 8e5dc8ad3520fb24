package roster

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned for a room that cannot hold a student.
var ErrInvalidCapacity = errors.New("room capacity must be positive")

// ErrCapacityMismatch is matched by every CapacityMismatchError.
var ErrCapacityMismatch = errors.New("capacity mismatch")

// CapacityMismatchError reports that room capacities do not add up to the student count.
type CapacityMismatchError struct {
	Expected int // number of students
	Got      int // sum of room capacities
}

func (e *CapacityMismatchError) Error() string {
	return fmt.Sprintf("capacity mismatch: expected %d, got %d", e.Expected, e.Got)
}

func (e *CapacityMismatchError) Is(target error) bool {
	return target == ErrCapacityMismatch
}
