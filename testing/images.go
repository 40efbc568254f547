package testing

import (
	"crypto/rand"
	mathrand "math/rand"
	"testing"

	"github.com/dargueta/pixpack/rawimage"
	"github.com/stretchr/testify/require"
)

// CreateRandomImage creates an image of the given size filled with random
// pixels. It is guaranteed to either return a valid image or fail the test and
// abort.
func CreateRandomImage(width, height uint32, t *testing.T) *rawimage.Image {
	image := rawimage.New(width, height)

	_, err := rand.Read(image.Bytes())
	require.NoErrorf(
		t,
		err,
		"failed to initialize %dx%d image with random bytes",
		width,
		height,
	)
	return image
}

// CreateGradientImage creates an image whose pixels increase by `step` along
// each row and by `rowStep` down each column, wrapping around at 256. Gradients
// are what the predictive model is for.
func CreateGradientImage(width, height uint32, step, rowStep int) *rawimage.Image {
	image := rawimage.New(width, height)
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			image.Set(y*width+x, byte(int(x)*step+int(y)*rowStep))
		}
	}
	return image
}

// CreateStripedImage creates an image of vertical stripes `stripeWidth` pixels
// wide, alternating between the given values.
func CreateStripedImage(width, height, stripeWidth uint32, values ...byte) *rawimage.Image {
	image := rawimage.New(width, height)
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			image.Set(y*width+x, values[(x/stripeWidth)%uint32(len(values))])
		}
	}
	return image
}

// CreateBlobImage creates a mostly flat image with a few rectangles of other
// values, roughly what a scanned document or a synthetic mask looks like. The
// same seed always gives the same image.
func CreateBlobImage(width, height uint32, seed int64) *rawimage.Image {
	rng := mathrand.New(mathrand.NewSource(seed))
	image := rawimage.New(width, height)

	background := byte(rng.Intn(256))
	for i := range image.Bytes() {
		image.Bytes()[i] = background
	}

	for blob := 0; blob < 8; blob++ {
		left := uint32(rng.Intn(int(width)))
		top := uint32(rng.Intn(int(height)))
		right := left + uint32(rng.Intn(int(width-left))) + 1
		bottom := top + uint32(rng.Intn(int(height-top))) + 1
		value := byte(rng.Intn(256))

		for y := top; y < bottom; y++ {
			for x := left; x < right; x++ {
				image.Set(y*width+x, value)
			}
		}
	}
	return image
}
