package scan

import (
	"github.com/dargueta/pixpack"
)

// CountChanges returns the number of positions in the scan sequence where a
// pixel differs from the one visited immediately before it.
//
// For vertical scans the last pixel of one column and the first pixel of the
// next are adjacent in the sequence, so a difference between them counts too.
func CountChanges(image pixpack.PixelBuffer, direction pixpack.Direction) uint32 {
	size := image.Size()
	if size == 0 {
		return 0
	}

	width := image.Width()
	height := image.Height()
	changeCount := uint32(0)
	previous := image.Get(Index(direction, width, height, 0))

	for position := uint32(1); position < size; position++ {
		current := image.Get(Index(direction, width, height, position))
		if current != previous {
			changeCount++
		}
		previous = current
	}
	return changeCount
}

// ChooseDirection picks the scan direction with the fewest value changes, since
// fewer changes means longer runs for the run-length coder. Ties go to
// [pixpack.Horizontal].
//
// This is only a heuristic. Nothing is actually encoded to compare sizes.
func ChooseDirection(image pixpack.PixelBuffer) pixpack.Direction {
	horizontalChanges := CountChanges(image, pixpack.Horizontal)
	verticalChanges := CountChanges(image, pixpack.Vertical)

	if verticalChanges < horizontalChanges {
		return pixpack.Vertical
	}
	return pixpack.Horizontal
}
