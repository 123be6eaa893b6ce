package core

import "fmt"

// Wrap moves v by offset along an axis of the given width and folds the result
// back into [0, width). v must already lie on the axis and the offset must be
// strictly shorter than the axis; anything else is a programming error and
// panics.
func Wrap(v, offset, width int) int {
	if width <= 0 {
		panic(fmt.Sprintf("core.Wrap: non-positive width %d", width))
	}
	if v < 0 || v >= width {
		panic(fmt.Sprintf("core.Wrap: index %d outside [0,%d)", v, width))
	}
	if offset <= -width || offset >= width {
		panic(fmt.Sprintf("core.Wrap: offset %d not shorter than width %d", offset, width))
	}
	return (v + offset + width) % width
}

// WrapAny folds an arbitrary index onto an axis of the given width. Unlike Wrap
// it accepts any distance, so a pattern larger than the grid can wind around
// the torus several times.
func WrapAny(v, width int) int {
	if width <= 0 {
		panic(fmt.Sprintf("core.WrapAny: non-positive width %d", width))
	}
	return (v%width + width) % width
}
