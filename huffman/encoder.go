package huffman

import (
	"fmt"

	"github.com/dargueta/pixpack"
	"github.com/dargueta/pixpack/utilities/bitstream"
)

// Encoder codes a sequence of symbols into a bit stream, adapting its code to
// the symbols seen so far. The zero value isn't usable; create encoders with
// [NewEncoder].
type Encoder struct {
	tree   *Tree
	output *bitstream.Writer
	closed bool
}

func NewEncoder() *Encoder {
	return &Encoder{
		tree:   NewTree(),
		output: bitstream.NewWriter(4096),
	}
}

// Insert appends the code for `symbol` to the stream and updates the tree.
//
// Inserting [EOF] terminates the stream; anything inserted after it fails with
// [pixpack.ErrStreamClosed]. Symbols outside the alphabet fail with
// [pixpack.ErrInvalidKey] and leave the stream untouched.
func (e *Encoder) Insert(symbol Symbol) error {
	if e.closed {
		return pixpack.ErrStreamClosed
	}
	if int(symbol) >= AlphabetSize {
		return pixpack.ErrInvalidKey.WithMessage(
			fmt.Sprintf("%d not in [0, %d]", symbol, EOF))
	}

	if e.tree.Contains(symbol) {
		e.tree.writeCode(e.output, e.tree.leaves[symbol])
	} else {
		if e.tree.Empty() {
			// The root has no path to it. Send a lone 0 so the stream always
			// starts with a known bit.
			e.output.WriteBit(false)
		} else {
			e.tree.writeCode(e.output, e.tree.nyt)
		}
		e.output.WriteBits(uint32(symbol), RawSymbolBits)
	}

	e.tree.Update(symbol)
	if symbol == EOF {
		e.closed = true
	}
	return nil
}

// Write inserts every byte of `p` as a symbol. It implements io.Writer.
func (e *Encoder) Write(p []byte) (int, error) {
	for i, value := range p {
		if err := e.Insert(Symbol(value)); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Close terminates the stream by inserting [EOF]. Closing an already closed
// encoder does nothing.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	return e.Insert(EOF)
}

// Bytes returns the coded stream so far, padded with zero bits to a whole
// number of bytes.
func (e *Encoder) Bytes() []byte {
	return e.output.Bytes()
}

// Bits returns the length of the coded stream in bits, without padding.
func (e *Encoder) Bits() int {
	return e.output.Len()
}

// Tree gives read access to the encoder's code tree.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// Reset discards the stream and the tree so the encoder can start a new,
// independent session.
func (e *Encoder) Reset() {
	e.tree.Reset()
	e.output.Reset()
	e.closed = false
}

// Encode is a convenience function that codes `data` followed by [EOF] in a
// fresh session and returns the padded stream.
func Encode(data []byte) ([]byte, error) {
	encoder := NewEncoder()
	if _, err := encoder.Write(data); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return encoder.Bytes(), nil
}
