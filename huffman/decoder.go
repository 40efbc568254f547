package huffman

import (
	"fmt"

	"github.com/dargueta/pixpack"
	"github.com/dargueta/pixpack/utilities/bitstream"
)

// Decoder reverses [Encoder]. Each decoder runs a single session; call
// [Decoder.Reset] before decoding another stream with it.
type Decoder struct {
	tree       *Tree
	reachedEOF bool
}

func NewDecoder() *Decoder {
	return &Decoder{tree: NewTree()}
}

// Decode decodes a complete coded stream and returns the bytes in it.
//
// Decoding stops at the EOF symbol. If the input runs out before that, the
// bytes decoded so far are returned without an error, and [Decoder.ReachedEOF]
// reports false. Callers needing a complete stream must check it.
//
// The tree must be fresh, or [pixpack.ErrTreeNotEmpty] is returned. A stream
// whose first bit isn't 0 fails with [pixpack.ErrFirstBitNotZero], and a raw
// symbol that the tree already knows fails with [pixpack.ErrFormat].
func (d *Decoder) Decode(payload []byte) ([]byte, error) {
	if !d.tree.Empty() || d.reachedEOF {
		return nil, pixpack.ErrTreeNotEmpty
	}

	input := bitstream.NewReader(payload)
	output := make([]byte, 0, len(payload)*2)

	firstBit, err := input.ReadBit()
	if err != nil {
		// Nothing at all to decode.
		return output, nil
	}
	if firstBit {
		return nil, pixpack.ErrFirstBitNotZero
	}

	for {
		var leaf nodeIndex
		if d.tree.Empty() {
			// The lone 0 bit for the empty tree was consumed above.
			leaf = d.tree.root
		} else {
			leaf, err = d.tree.walk(input)
			if err != nil {
				return output, nil
			}
		}

		var symbol Symbol
		if leaf == d.tree.nyt {
			raw, err := input.ReadBits(RawSymbolBits)
			if err != nil {
				return output, nil
			}
			if raw&uint32(EOF) != 0 {
				d.reachedEOF = true
				return output, nil
			}

			symbol = Symbol(raw)
			if d.tree.Contains(symbol) {
				return nil, pixpack.ErrFormat.WithMessage(
					fmt.Sprintf(
						"symbol %d sent as new at bit %d but it's already known",
						symbol,
						input.Position(),
					),
				)
			}
		} else {
			symbol = d.tree.nodes[leaf].key
			if symbol == EOF {
				d.reachedEOF = true
				return output, nil
			}
		}

		output = append(output, byte(symbol))
		d.tree.Update(symbol)
	}
}

// ReachedEOF returns true if the last call to [Decoder.Decode] stopped at the
// EOF symbol rather than at the end of its input.
func (d *Decoder) ReachedEOF() bool {
	return d.reachedEOF
}

// Tree gives read access to the decoder's code tree.
func (d *Decoder) Tree() *Tree {
	return d.tree
}

// Reset prepares the decoder for a new stream.
func (d *Decoder) Reset() {
	d.tree.Reset()
	d.reachedEOF = false
}

// Decode is a convenience function that decodes `payload` in a fresh session.
// Unlike [Decoder.Decode], it fails with [pixpack.ErrFormat] if the stream
// isn't terminated by EOF.
func Decode(payload []byte) ([]byte, error) {
	decoder := NewDecoder()
	output, err := decoder.Decode(payload)
	if err != nil {
		return nil, err
	}
	if !decoder.ReachedEOF() {
		return nil, pixpack.ErrFormat.WithMessage("code stream ended without EOF")
	}
	return output, nil
}
