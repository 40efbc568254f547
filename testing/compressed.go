package testing

import (
	"io"
	"testing"

	"github.com/dargueta/pixpack/codec"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// LoadCompressedImage takes a compressed image and returns a stream to access
// the uncompressed pixels, in row-major order.
//
//   - Writes to the stream do not affect `compressedImageBytes`.
//   - While the stream can be written to, its size is fixed to `width * height`.
//     Attempting to write past the end of this buffer will trigger an error.
func LoadCompressedImage(
	t *testing.T, compressedImageBytes []byte, width, height uint32,
) io.ReadWriteSeeker {
	require.Greater(t, len(compressedImageBytes), 0, "compressed image is empty")

	image, err := codec.Decompress(compressedImageBytes)
	require.NoError(t, err)

	require.Equal(t, width, image.Width(), "uncompressed image is wrong width")
	require.Equal(t, height, image.Height(), "uncompressed image is wrong height")
	require.Equal(
		t,
		uint64(width)*uint64(height),
		uint64(len(image.Bytes())),
		"uncompressed image is wrong size",
	)
	return bytesextra.NewReadWriteSeeker(image.Bytes())
}
