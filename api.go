package pixpack

import (
	"fmt"
	"strings"
)

// PixelBuffer is a two-dimensional grid of 8-bit pixels stored as a single
// row-major run of bytes. The codec only ever touches images through this
// interface.
//
// Indexes are linear: pixel (x, y) lives at index y*Width() + x. Get and Set may
// panic if the index is not in [0, Size()).
type PixelBuffer interface {
	Width() uint32
	Height() uint32
	// Size returns the total number of pixels. It must always be equal to
	// Width() * Height().
	Size() uint32
	Get(index uint32) byte
	Set(index uint32, value byte)
}

// Direction is the order in which the pixels of an image are visited.
type Direction uint8

const (
	// Horizontal scans left to right, then top to bottom (row-major).
	Horizontal Direction = iota
	// Vertical scans top to bottom, then left to right (column-major).
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts "horizontal" or "vertical" (case-insensitive, or
// their first letters) into a [Direction].
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, ErrInvalidArgument.WithMessage(
		fmt.Sprintf("unknown scan direction %q", name))
}

// Options controls how an image is encoded.
type Options struct {
	// Model enables the first-difference predictive model before run-length
	// encoding.
	Model bool
	// Direction is the scan order. It's ignored if Adaptive is set.
	Direction Direction
	// Adaptive picks whichever direction has fewer value changes between
	// adjacent pixels, overriding Direction.
	Adaptive bool
}

func (opts Options) String() string {
	return fmt.Sprintf(
		"model=%t direction=%s adaptive=%t", opts.Model, opts.Direction, opts.Adaptive)
}
