// Package rawimage provides an in-memory 8-bit raster that satisfies
// [pixpack.PixelBuffer], along with loading and saving headerless raw pixel
// files.
//
// A raw file is nothing but the pixel bytes in row-major order. The width isn't
// stored anywhere, so it must be supplied when loading; the height is derived
// from the file size.
package rawimage

import (
	"fmt"
	"io"
	"os"

	"github.com/dargueta/pixpack"
)

type Image struct {
	width  uint32
	height uint32
	pixels []byte
}

// New creates a zero-filled image with the given dimensions.
func New(width, height uint32) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]byte, uint64(width)*uint64(height)),
	}
}

// FromBytes wraps `data` as an image `width` pixels wide. The slice is used
// directly, not copied. `data` must contain a whole number of rows, and at
// least one.
func FromBytes(data []byte, width uint32) (*Image, error) {
	if width < 1 {
		return nil, pixpack.ErrInvalidArgument.WithMessage("image width must be at least 1")
	}
	if len(data) == 0 || uint64(len(data))%uint64(width) != 0 {
		return nil, pixpack.ErrDimensionMismatch.WithMessage(
			fmt.Sprintf(
				"%d bytes isn't a positive multiple of the width %d",
				len(data),
				width,
			),
		)
	}

	height := uint64(len(data)) / uint64(width)
	if height > 0xffffffff {
		return nil, pixpack.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("image height %d doesn't fit in 32 bits", height))
	}

	return &Image{width: width, height: uint32(height), pixels: data}, nil
}

// Read reads a raw image from a stream until EOF.
func Read(input io.Reader, width uint32) (*Image, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}
	return FromBytes(data, width)
}

// Load reads a raw image from the file at `path`.
func Load(path string, width uint32) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromBytes(data, width)
}

// Copy creates a new image holding a copy of the pixels of any PixelBuffer.
func Copy(source pixpack.PixelBuffer) *Image {
	image := New(source.Width(), source.Height())
	for i := uint32(0); i < source.Size(); i++ {
		image.pixels[i] = source.Get(i)
	}
	return image
}

func (image *Image) Width() uint32 {
	return image.width
}

func (image *Image) Height() uint32 {
	return image.height
}

func (image *Image) Size() uint32 {
	return uint32(len(image.pixels))
}

func (image *Image) Get(index uint32) byte {
	return image.pixels[index]
}

func (image *Image) Set(index uint32, value byte) {
	image.pixels[index] = value
}

// Bytes returns the pixels in row-major order. The slice aliases the image's
// storage.
func (image *Image) Bytes() []byte {
	return image.pixels
}

// WriteTo writes the raw pixel data to `output`.
func (image *Image) WriteTo(output io.Writer) (int64, error) {
	n, err := output.Write(image.pixels)
	return int64(n), err
}

// Save writes the image to a raw file at `path`, replacing it if it exists.
func (image *Image) Save(path string) error {
	return os.WriteFile(path, image.pixels, 0o644)
}
