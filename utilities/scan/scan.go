// Package scan linearizes images in either of the two supported scan orders
// and picks the order most likely to give long runs.
//
// Both the predictive model and the run-length coder operate on the pixel
// sequence produced here, so the two stages always agree on which pixel is
// "previous".
package scan

import (
	"fmt"

	"github.com/dargueta/pixpack"
)

// Index converts a position in the scan sequence to the pixel's linear
// (row-major) index in the image.
func Index(direction pixpack.Direction, width, height, position uint32) uint32 {
	if direction == pixpack.Vertical {
		column := position / height
		row := position % height
		return row*width + column
	}
	return position
}

// Linearize copies the pixels of `image` into a new slice in scan order.
func Linearize(image pixpack.PixelBuffer, direction pixpack.Direction) []byte {
	sequence := make([]byte, image.Size())
	if direction != pixpack.Vertical {
		for i := range sequence {
			sequence[i] = image.Get(uint32(i))
		}
		return sequence
	}

	width := image.Width()
	position := 0
	for column := uint32(0); column < width; column++ {
		for index := column; index < image.Size(); index += width {
			sequence[position] = image.Get(index)
			position++
		}
	}
	return sequence
}

// Delinearize writes a scan-order sequence back into `image`. The sequence
// must contain exactly one byte per pixel.
func Delinearize(
	sequence []byte, image pixpack.PixelBuffer, direction pixpack.Direction,
) error {
	if uint64(len(sequence)) != uint64(image.Size()) {
		return pixpack.ErrDimensionMismatch.WithMessage(
			fmt.Sprintf(
				"got %d pixels for a %dx%d image",
				len(sequence),
				image.Width(),
				image.Height(),
			),
		)
	}

	width := image.Width()
	height := image.Height()
	for position, value := range sequence {
		image.Set(Index(direction, width, height, uint32(position)), value)
	}
	return nil
}
