// Package bitstream provides bit-granular reading and writing on top of an
// in-memory bitmap.
//
// Bit i of a stream is stored in byte i/8 at bit position i%8, counting from
// the least significant bit. Multi-bit values are written most significant bit
// first, so a code read back bit by bit comes out in the order it was written.
package bitstream

import (
	"io"

	"github.com/boljen/go-bitmap"
)

// Writer accumulates bits in a growable bitmap.
type Writer struct {
	bits   bitmap.Bitmap
	length int
}

// NewWriter creates an empty writer with room for `capacityHint` bits before it
// needs to grow.
func NewWriter(capacityHint int) *Writer {
	return &Writer{bits: bitmap.New(capacityHint)[:0]}
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(bit bool) {
	if w.length/8 >= len(w.bits) {
		w.bits = append(w.bits, 0)
	}
	w.bits.Set(w.length, bit)
	w.length++
}

// WriteBits appends the lowest `count` bits of `value`, most significant first.
func (w *Writer) WriteBits(value uint32, count uint) {
	for i := count; i > 0; i-- {
		w.WriteBit((value>>(i-1))&1 != 0)
	}
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return w.length
}

// Bytes returns a copy of the stream padded with zero bits to a whole number
// of bytes.
func (w *Writer) Bytes() []byte {
	output := make([]byte, len(w.bits))
	copy(output, w.bits)
	return output
}

// Reset discards all written bits, keeping the allocated storage.
func (w *Writer) Reset() {
	w.bits = w.bits[:0]
	w.length = 0
}

// Reader reads bits from a byte slice laid out by [Writer].
type Reader struct {
	bits     bitmap.Bitmap
	length   int
	position int
}

// NewReader creates a reader over all of the bits in `data`, including any
// padding at the end.
func NewReader(data []byte) *Reader {
	return &Reader{bits: bitmap.Bitmap(data), length: len(data) * 8}
}

// ReadBit returns the next bit, or io.EOF if the stream is exhausted.
func (r *Reader) ReadBit() (bool, error) {
	if r.position >= r.length {
		return false, io.EOF
	}
	bit := r.bits.Get(r.position)
	r.position++
	return bit, nil
}

// ReadBits reads `count` bits (at most 32) and returns them as an integer, the
// first bit read being the most significant.
//
// If the stream runs out partway through, the bits already consumed are lost
// and io.ErrUnexpectedEOF is returned. If it was already exhausted, the error
// is io.EOF.
func (r *Reader) ReadBits(count uint) (uint32, error) {
	if count == 0 {
		return 0, nil
	}
	if r.position >= r.length {
		return 0, io.EOF
	}
	if r.Remaining() < int(count) {
		r.position = r.length
		return 0, io.ErrUnexpectedEOF
	}

	var result uint32
	for i := uint(0); i < count; i++ {
		result <<= 1
		if r.bits.Get(r.position) {
			result |= 1
		}
		r.position++
	}
	return result, nil
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return r.length - r.position
}

// Position returns the number of bits consumed so far.
func (r *Reader) Position() int {
	return r.position
}
