// Copyright (c) 2025 Visvasity LLC

package pod

import (
	"errors"
	"fmt"
)

// ErrSize matches every *SizeError with errors.Is.
var ErrSize = errors.New("pod: size mismatch")

// SizeError reports a byte buffer whose length is not exactly the size of the
// target type. It is the only error this package returns. Want is -1 when the
// requested element count is negative or its byte size overflows an int.
type SizeError struct {
	Want int
	Got  int
}

func (e *SizeError) Error() string {
	if e.Want < 0 {
		return fmt.Sprintf("pod: buffer has %d bytes, element count is out of range", e.Got)
	}
	return fmt.Sprintf("pod: buffer has %d bytes, want exactly %d", e.Got, e.Want)
}

func (e *SizeError) Is(target error) bool {
	return target == ErrSize
}

func checkSize(got, want int) error {
	if got != want {
		return &SizeError{Want: want, Got: got}
	}
	return nil
}
