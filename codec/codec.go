// Package codec ties the stages of the compressor together.
//
// Compression runs the pixels through, in order:
//
//  1. scan order selection (fixed, or chosen per image if adaptive),
//  2. the optional first-difference model,
//  3. run-length encoding,
//  4. adaptive Huffman coding,
//  5. the container header.
//
// Decompression undoes each stage in reverse. Every call is an independent
// session with its own Huffman tree, so separate images can be compressed in
// parallel. A single image never is.
package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dargueta/pixpack"
	"github.com/dargueta/pixpack/container"
	"github.com/dargueta/pixpack/huffman"
	"github.com/dargueta/pixpack/rawimage"
	"github.com/dargueta/pixpack/utilities/compression"
	"github.com/dargueta/pixpack/utilities/predict"
	"github.com/dargueta/pixpack/utilities/scan"
)

// ResolveOptions returns the options that will actually be used to encode
// `image`: if adaptive selection is on, Direction is replaced by the direction
// [scan.ChooseDirection] picks.
func ResolveOptions(image pixpack.PixelBuffer, opts pixpack.Options) pixpack.Options {
	if opts.Adaptive {
		opts.Direction = scan.ChooseDirection(image)
	}
	return opts
}

// Compress encodes `image` into a complete compressed file.
func Compress(image pixpack.PixelBuffer, opts pixpack.Options) ([]byte, error) {
	var output bytes.Buffer
	if _, err := CompressTo(&output, image, opts); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

// CompressTo encodes `image` and writes the compressed file to `output`. It
// returns the number of bytes written.
func CompressTo(
	output io.Writer, image pixpack.PixelBuffer, opts pixpack.Options,
) (int64, error) {
	if err := checkDimensions(image); err != nil {
		return 0, err
	}

	opts = ResolveOptions(image, opts)
	if opts.Direction != pixpack.Horizontal && opts.Direction != pixpack.Vertical {
		return 0, pixpack.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("unknown scan direction %d", opts.Direction))
	}

	sequence := scan.Linearize(image, opts.Direction)
	if opts.Model {
		predict.Forward(sequence)
	}

	tokens, err := compression.EncodeBytes(sequence)
	if err != nil {
		return 0, err
	}

	payload, err := huffman.Encode(tokens)
	if err != nil {
		return 0, err
	}

	header := container.Header{
		Width:   image.Width(),
		Height:  image.Height(),
		Options: pixpack.Options{Model: opts.Model, Direction: opts.Direction},
	}
	return container.Write(output, header, payload)
}

// Decompress decodes a complete compressed file held in memory.
//
// Any inconsistency in the data is an error wrapping [pixpack.ErrFormat], and
// no image is returned: the code stream must end with EOF, and the pixels it
// decodes to must exactly fill the image the header describes.
func Decompress(data []byte) (*rawimage.Image, error) {
	header, payload, err := container.Split(data)
	if err != nil {
		return nil, err
	}
	return decode(header, payload)
}

// DecompressFrom reads a compressed file from `input` until EOF and decodes
// it.
func DecompressFrom(input io.Reader) (*rawimage.Image, error) {
	header, payload, err := container.Read(input)
	if err != nil {
		return nil, err
	}
	return decode(header, payload)
}

func decode(header container.Header, payload []byte) (*rawimage.Image, error) {
	if header.Width == 0 || header.Height == 0 {
		return nil, pixpack.ErrFormat.WithMessage(
			fmt.Sprintf("invalid image size %dx%d", header.Width, header.Height))
	}
	if header.Pixels() > 0xffffffff {
		return nil, pixpack.ErrFormat.WithMessage(
			fmt.Sprintf("image size %dx%d is too large", header.Width, header.Height))
	}

	decoder := huffman.NewDecoder()
	tokens, err := decoder.Decode(payload)
	if err != nil {
		return nil, err
	}
	if !decoder.ReachedEOF() {
		return nil, pixpack.ErrFormat.WithMessage("code stream ended without EOF")
	}

	sequence, err := compression.DecodeBytes(tokens)
	if err != nil {
		return nil, err
	}
	if uint64(len(sequence)) != header.Pixels() {
		return nil, pixpack.ErrFormat.Wrap(
			pixpack.ErrDimensionMismatch.WithMessage(
				fmt.Sprintf(
					"decoded %d pixels for a %dx%d image",
					len(sequence),
					header.Width,
					header.Height,
				),
			),
		)
	}

	if header.Options.Model {
		predict.Inverse(sequence)
	}

	image := rawimage.New(header.Width, header.Height)
	if err = scan.Delinearize(sequence, image, header.Options.Direction); err != nil {
		return nil, err
	}
	return image, nil
}

func checkDimensions(image pixpack.PixelBuffer) error {
	width := image.Width()
	height := image.Height()

	if width == 0 || height == 0 {
		return pixpack.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("image must be at least 1x1, got %dx%d", width, height))
	}
	if uint64(width)*uint64(height) != uint64(image.Size()) {
		return pixpack.ErrDimensionMismatch.WithMessage(
			fmt.Sprintf(
				"image is %dx%d but holds %d pixels",
				width,
				height,
				image.Size(),
			),
		)
	}
	return nil
}
