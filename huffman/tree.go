package huffman

import (
	"github.com/dargueta/pixpack/utilities/bitstream"
)

// Symbol is a member of the coding alphabet: a byte value, or [EOF].
type Symbol uint16

const (
	// EOF marks the end of the coded stream.
	EOF Symbol = 256
	// AlphabetSize is the number of distinct symbols that can be coded.
	AlphabetSize = int(EOF) + 1
	// RawSymbolBits is the width of a symbol sent after the NYT code.
	RawSymbolBits = 9
)

const (
	keyNYT      Symbol = 300
	keyInternal Symbol = 400
)

// The tree never holds more than every symbol plus the NYT leaf.
const maxNodes = 2*(AlphabetSize+1) - 1

type nodeIndex int

const noNode nodeIndex = -1

type node struct {
	key    Symbol
	weight uint32
	number int
	parent nodeIndex
	left   nodeIndex
	right  nodeIndex
}

// Tree is the adaptive code tree shared by [Encoder] and [Decoder]. It isn't
// safe for concurrent use, and it's only consistent between whole-symbol
// updates.
type Tree struct {
	nodes []node
	root  nodeIndex
	nyt   nodeIndex
	// leaves maps a symbol to its leaf, or noNode if it hasn't been seen yet.
	leaves [AlphabetSize]nodeIndex
	// byNumber maps a node number to the node currently holding it.
	byNumber [maxNodes + 1]nodeIndex
	path     []bool
}

// NewTree returns a tree holding only the NYT leaf.
func NewTree() *Tree {
	tree := &Tree{nodes: make([]node, 0, maxNodes)}
	tree.Reset()
	return tree
}

// Reset discards everything the tree has learned.
func (t *Tree) Reset() {
	t.nodes = t.nodes[:0]
	for i := range t.leaves {
		t.leaves[i] = noNode
	}
	for i := range t.byNumber {
		t.byNumber[i] = noNode
	}
	t.root = t.newNode(keyNYT, maxNodes, noNode)
	t.nyt = t.root
}

// Empty returns true if no symbol has been added since the tree was created or
// last reset.
func (t *Tree) Empty() bool {
	return t.root == t.nyt
}

// Total returns the number of symbols added to the tree.
func (t *Tree) Total() uint32 {
	return t.nodes[t.root].weight
}

// Contains returns true if `symbol` has its own leaf in the tree.
func (t *Tree) Contains(symbol Symbol) bool {
	return int(symbol) < AlphabetSize && t.leaves[symbol] != noNode
}

// Weight returns the number of times `symbol` has been added.
func (t *Tree) Weight(symbol Symbol) uint32 {
	if !t.Contains(symbol) {
		return 0
	}
	return t.nodes[t.leaves[symbol]].weight
}

// Update adds one occurrence of `symbol` to the tree, giving it a leaf first if
// it's new, and restores the sibling property. The symbol must be valid.
func (t *Tree) Update(symbol Symbol) {
	leaf := t.leaves[symbol]
	if leaf == noNode {
		leaf = t.splitNYT(symbol)
	}
	t.increment(leaf)
}

func (t *Tree) newNode(key Symbol, number int, parent nodeIndex) nodeIndex {
	t.nodes = append(
		t.nodes,
		node{
			key:    key,
			number: number,
			parent: parent,
			left:   noNode,
			right:  noNode,
		},
	)
	index := nodeIndex(len(t.nodes) - 1)
	t.byNumber[number] = index
	return index
}

func (t *Tree) isLeaf(index nodeIndex) bool {
	return t.nodes[index].left == noNode
}

// splitNYT turns the NYT leaf into an internal node keeping its place and
// number. Its left child is the new NYT leaf and its right child is a new leaf
// for `symbol`, both with weight zero. It returns the new symbol leaf.
func (t *Tree) splitNYT(symbol Symbol) nodeIndex {
	parent := t.nyt
	number := t.nodes[parent].number

	leaf := t.newNode(symbol, number-1, parent)
	newNYT := t.newNode(keyNYT, number-2, parent)

	t.nodes[parent].key = keyInternal
	t.nodes[parent].left = newNYT
	t.nodes[parent].right = leaf

	t.nyt = newNYT
	t.leaves[symbol] = leaf
	return leaf
}

// increment walks from `current` up to the root. Each node on the way is first
// swapped with the highest-numbered node of the same weight, then has its
// weight bumped, which keeps the numbering ordered by weight.
func (t *Tree) increment(current nodeIndex) {
	for current != noNode {
		leader := t.blockLeader(current)
		if leader != current {
			t.swap(current, leader)
		}
		t.nodes[current].weight++
		current = t.nodes[current].parent
	}
}

// blockLeader returns the highest-numbered node having the same weight as
// `current`, other than its parent. Since weights never decrease as numbers go
// up, the block is the run of equal weights directly above `current`.
func (t *Tree) blockLeader(current nodeIndex) nodeIndex {
	weight := t.nodes[current].weight
	parent := t.nodes[current].parent
	leader := current

	for number := t.nodes[current].number + 1; number <= maxNodes; number++ {
		candidate := t.byNumber[number]
		if candidate == noNode || t.nodes[candidate].weight != weight {
			break
		}
		if candidate != parent {
			leader = candidate
		}
	}
	return leader
}

// swap exchanges the positions of two nodes in the tree, along with the
// subtrees under them and their node numbers. Neither node may be an ancestor
// of the other.
func (t *Tree) swap(a, b nodeIndex) {
	parentA := t.nodes[a].parent
	parentB := t.nodes[b].parent

	if parentA == parentB {
		t.nodes[parentA].left, t.nodes[parentA].right =
			t.nodes[parentA].right, t.nodes[parentA].left
	} else {
		t.replaceChild(parentA, a, b)
		t.replaceChild(parentB, b, a)
		t.nodes[a].parent = parentB
		t.nodes[b].parent = parentA
	}

	t.nodes[a].number, t.nodes[b].number = t.nodes[b].number, t.nodes[a].number
	t.byNumber[t.nodes[a].number] = a
	t.byNumber[t.nodes[b].number] = b
}

func (t *Tree) replaceChild(parent, oldChild, newChild nodeIndex) {
	if t.nodes[parent].left == oldChild {
		t.nodes[parent].left = newChild
	} else {
		t.nodes[parent].right = newChild
	}
}

// writeCode appends the path from the root to `target` to `output`, 0 for each
// left branch and 1 for each right branch. The root's code is empty.
func (t *Tree) writeCode(output *bitstream.Writer, target nodeIndex) {
	t.path = t.path[:0]
	for current := target; t.nodes[current].parent != noNode; {
		parent := t.nodes[current].parent
		t.path = append(t.path, t.nodes[parent].right == current)
		current = parent
	}

	for i := len(t.path) - 1; i >= 0; i-- {
		output.WriteBit(t.path[i])
	}
}

// walk follows bits from the root until it reaches a leaf, and returns it.
func (t *Tree) walk(input *bitstream.Reader) (nodeIndex, error) {
	current := t.root
	for !t.isLeaf(current) {
		bit, err := input.ReadBit()
		if err != nil {
			return noNode, err
		}
		if bit {
			current = t.nodes[current].right
		} else {
			current = t.nodes[current].left
		}
	}
	return current, nil
}
