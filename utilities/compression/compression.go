package compression

import (
	"bytes"

	"github.com/dargueta/pixpack"
	"github.com/dargueta/pixpack/utilities/scan"
)

// EncodeBytes run-length encodes a pixel sequence that's already in scan order.
func EncodeBytes(sequence []byte) ([]byte, error) {
	var output bytes.Buffer
	output.Grow(len(sequence)/2 + 16)

	_, err := CompressRLE3(bytes.NewReader(sequence), &output)
	if err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

// DecodeBytes expands a token stream produced by [EncodeBytes].
func DecodeBytes(tokens []byte) ([]byte, error) {
	var output bytes.Buffer
	output.Grow(len(tokens) * 2)

	_, err := DecompressRLE3(bytes.NewReader(tokens), &output)
	if err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

// EncodePixels run-length encodes the pixels of `image`, visiting them in the
// given scan order.
func EncodePixels(image pixpack.PixelBuffer, direction pixpack.Direction) ([]byte, error) {
	return EncodeBytes(scan.Linearize(image, direction))
}

// DecodePixels expands `tokens` into `image`, which determines the expected
// dimensions. The token stream must decode to exactly one byte per pixel.
func DecodePixels(
	tokens []byte, image pixpack.PixelBuffer, direction pixpack.Direction,
) error {
	sequence, err := DecodeBytes(tokens)
	if err != nil {
		return err
	}
	return scan.Delinearize(sequence, image, direction)
}
