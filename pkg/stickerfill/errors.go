package stickerfill

import "fmt"

// FillError reports a fatal failure while filling one shape.
type FillError struct {
	Sticker int
	Shape   string
	Err     error
}

func (e *FillError) Error() string {
	return fmt.Sprintf("sticker %02d, shape %q: %v", e.Sticker, e.Shape, e.Err)
}

func (e *FillError) Unwrap() error {
	return e.Err
}
