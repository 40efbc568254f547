// Package container frames a coded image: a fixed 9-byte header followed by
// the Huffman-coded payload.
//
//	offset  size  field
//	0       4     width, big-endian
//	4       4     height, big-endian
//	8       1     options (bit 0: model, bit 1: vertical scan)
//	9       ...   payload, up to the end of the file
package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/dargueta/pixpack"
)

// HeaderSize is the size of the fixed header, in bytes.
const HeaderSize = 9

type Header struct {
	Width   uint32
	Height  uint32
	Options pixpack.Options
}

// Pixels returns the number of pixels the header describes.
func (h Header) Pixels() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}

// MarshalBinary encodes the header. It never fails.
func (h Header) MarshalBinary() ([]byte, error) {
	data := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(data[0:4], h.Width)
	binary.BigEndian.PutUint32(data[4:8], h.Height)
	data[8] = h.Options.Flags()
	return data, nil
}

// UnmarshalBinary decodes a header from the first [HeaderSize] bytes of
// `data`. Any bytes after that are ignored.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return pixpack.ErrTruncatedHeader.WithMessage(
			fmt.Sprintf("need %d bytes, got %d", HeaderSize, len(data)))
	}

	opts, err := pixpack.OptionsFromFlags(data[8])
	if err != nil {
		return err
	}

	h.Width = binary.BigEndian.Uint32(data[0:4])
	h.Height = binary.BigEndian.Uint32(data[4:8])
	h.Options = opts
	return nil
}

// WriteHeader writes the header to `output`.
func WriteHeader(output io.Writer, header Header) error {
	data, _ := header.MarshalBinary()
	_, err := output.Write(data)
	return err
}

// ReadHeader reads exactly one header from `input`.
func ReadHeader(input io.Reader) (Header, error) {
	var data [HeaderSize]byte
	n, err := io.ReadFull(input, data[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, pixpack.ErrTruncatedHeader.WithMessage(
				fmt.Sprintf("need %d bytes, got %d", HeaderSize, n))
		}
		return Header{}, err
	}

	var header Header
	err = header.UnmarshalBinary(data[:])
	return header, err
}

// Write writes a complete file: the header, then the payload. It returns the
// total number of bytes written.
func Write(output io.Writer, header Header, payload []byte) (int64, error) {
	if err := WriteHeader(output, header); err != nil {
		return 0, err
	}
	n, err := output.Write(payload)
	return int64(HeaderSize + n), err
}

// Read reads a complete file from `input`, taking everything after the header
// as the payload.
func Read(input io.Reader) (Header, []byte, error) {
	header, err := ReadHeader(input)
	if err != nil {
		return Header{}, nil, err
	}

	payload, err := io.ReadAll(input)
	if err != nil {
		return Header{}, nil, err
	}
	return header, payload, nil
}

// Split parses an in-memory file. The returned payload aliases `data`.
func Split(data []byte) (Header, []byte, error) {
	var header Header
	if err := header.UnmarshalBinary(data); err != nil {
		return Header{}, nil, err
	}
	return header, data[HeaderSize:], nil
}
