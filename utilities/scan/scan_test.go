package scan_test

import (
	"testing"

	"github.com/dargueta/pixpack"
	"github.com/dargueta/pixpack/rawimage"
	"github.com/dargueta/pixpack/utilities/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1100
// 0000
func newBinaryImage(t *testing.T) *rawimage.Image {
	image, err := rawimage.FromBytes([]byte{1, 1, 0, 0, 0, 0, 0, 0}, 4)
	require.NoError(t, err)
	return image
}

func TestCountChanges__BinaryImage(t *testing.T) {
	image := newBinaryImage(t)
	assert.EqualValues(t, 1, scan.CountChanges(image, pixpack.Horizontal))
	assert.EqualValues(t, 3, scan.CountChanges(image, pixpack.Vertical))
}

func TestChooseDirection(t *testing.T) {
	tests := []struct {
		Name     string
		Data     []byte
		Width    uint32
		Expected pixpack.Direction
	}{
		{"binary image", []byte{1, 1, 0, 0, 0, 0, 0, 0}, 4, pixpack.Horizontal},
		// 12
		// 12
		// 12
		{"vertical stripes", []byte{1, 2, 1, 2, 1, 2}, 2, pixpack.Vertical},
		// 1 changes in either direction.
		{"tie", []byte{5, 5, 5, 9}, 2, pixpack.Horizontal},
		{"single pixel", []byte{42}, 1, pixpack.Horizontal},
		{"uniform", []byte{7, 7, 7, 7, 7, 7}, 3, pixpack.Horizontal},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			image, err := rawimage.FromBytes(test.Data, test.Width)
			require.NoError(t, err)
			assert.Equal(t, test.Expected, scan.ChooseDirection(image))
		})
	}
}

func TestLinearize(t *testing.T) {
	// 0 1 2
	// 3 4 5
	image, err := rawimage.FromBytes([]byte{0, 1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)

	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5}, scan.Linearize(image, pixpack.Horizontal))
	assert.Equal(t, []byte{0, 3, 1, 4, 2, 5}, scan.Linearize(image, pixpack.Vertical))
}

func TestIndexMatchesLinearize(t *testing.T) {
	data := make([]byte, 35)
	for i := range data {
		data[i] = byte(i * 7)
	}
	image, err := rawimage.FromBytes(data, 5)
	require.NoError(t, err)

	for _, direction := range []pixpack.Direction{pixpack.Horizontal, pixpack.Vertical} {
		sequence := scan.Linearize(image, direction)
		for position, value := range sequence {
			index := scan.Index(direction, 5, 7, uint32(position))
			assert.Equal(t, data[index], value, "%s position %d", direction, position)
		}
	}
}

func TestDelinearizeRoundTrip(t *testing.T) {
	data := []byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 11, 12}

	for _, direction := range []pixpack.Direction{pixpack.Horizontal, pixpack.Vertical} {
		t.Run(direction.String(), func(t *testing.T) {
			source, err := rawimage.FromBytes(data, 4)
			require.NoError(t, err)

			sequence := scan.Linearize(source, direction)
			restored := rawimage.New(4, 3)
			require.NoError(t, scan.Delinearize(sequence, restored, direction))
			assert.Equal(t, data, restored.Bytes())
		})
	}
}

func TestDelinearize__WrongLength(t *testing.T) {
	err := scan.Delinearize([]byte{1, 2, 3}, rawimage.New(2, 2), pixpack.Vertical)
	assert.ErrorIs(t, err, pixpack.ErrDimensionMismatch)
}
