package huffman

import (
	"fmt"
)

// Validate checks the structure of the tree and returns an error describing the
// first problem found. A tree built only through [Tree.Update] always passes;
// this is meant for tests and debugging.
//
// The checks are:
//
//   - every node is reachable from the root, and parent links agree with child
//     links;
//   - node numbers form a contiguous range ending at the root's number, and
//     the number index agrees with the nodes;
//   - children are numbered consecutively, left below right, and below their
//     parent;
//   - internal weights are the sum of their children's;
//   - weights never decrease as node numbers increase;
//   - there is exactly one NYT leaf, with weight zero, and the symbol index
//     points at the right leaves.
func (t *Tree) Validate() error {
	if t.nodes[t.root].parent != noNode {
		return fmt.Errorf("root %d has parent %d", t.root, t.nodes[t.root].parent)
	}

	reached, err := t.validateSubtree(t.root)
	if err != nil {
		return err
	}
	if reached != len(t.nodes) {
		return fmt.Errorf("%d of %d nodes are reachable from the root", reached, len(t.nodes))
	}

	lowest := maxNodes - len(t.nodes) + 1
	for number := 0; number <= maxNodes; number++ {
		index := t.byNumber[number]
		if number < lowest {
			if index != noNode {
				return fmt.Errorf("unused number %d is mapped to node %d", number, index)
			}
			continue
		}
		if index == noNode {
			return fmt.Errorf("number %d in [%d, %d] has no node", number, lowest, maxNodes)
		}
		if t.nodes[index].number != number {
			return fmt.Errorf(
				"number %d maps to node %d, which has number %d",
				number,
				index,
				t.nodes[index].number,
			)
		}
		if number > lowest {
			below := t.nodes[t.byNumber[number-1]].weight
			if t.nodes[index].weight < below {
				return fmt.Errorf(
					"sibling property violated: node #%d has weight %d but #%d has %d",
					number,
					t.nodes[index].weight,
					number-1,
					below,
				)
			}
		}
	}

	nytCount := 0
	for i, n := range t.nodes {
		switch {
		case n.key == keyNYT:
			nytCount++
			if nodeIndex(i) != t.nyt {
				return fmt.Errorf("node %d is a stray NYT leaf", i)
			}
			if n.weight != 0 {
				return fmt.Errorf("NYT leaf has weight %d", n.weight)
			}
		case n.key == keyInternal:
		case int(n.key) < AlphabetSize:
			if t.leaves[n.key] != nodeIndex(i) {
				return fmt.Errorf("symbol %d is at node %d but indexed at %d", n.key, i, t.leaves[n.key])
			}
		default:
			return fmt.Errorf("node %d has invalid key %d", i, n.key)
		}
	}
	if nytCount != 1 {
		return fmt.Errorf("found %d NYT leaves", nytCount)
	}
	return nil
}

// validateSubtree checks the links, numbering and weights below `index` and
// returns the number of nodes in the subtree.
func (t *Tree) validateSubtree(index nodeIndex) (int, error) {
	current := t.nodes[index]
	if current.left == noNode && current.right == noNode {
		if current.key == keyInternal {
			return 0, fmt.Errorf("internal node %d has no children", index)
		}
		return 1, nil
	}
	if current.left == noNode || current.right == noNode {
		return 0, fmt.Errorf("node %d has only one child", index)
	}
	if current.key != keyInternal {
		return 0, fmt.Errorf("leaf key %d on internal node %d", current.key, index)
	}

	left := t.nodes[current.left]
	right := t.nodes[current.right]
	if left.parent != index || right.parent != index {
		return 0, fmt.Errorf("children of node %d don't point back to it", index)
	}
	if right.number != left.number+1 {
		return 0, fmt.Errorf(
			"children of node #%d aren't adjacent: #%d and #%d",
			current.number,
			left.number,
			right.number,
		)
	}
	if right.number >= current.number {
		return 0, fmt.Errorf(
			"child #%d isn't numbered below its parent #%d", right.number, current.number)
	}
	if current.weight != left.weight+right.weight {
		return 0, fmt.Errorf(
			"node #%d has weight %d, children sum to %d",
			current.number,
			current.weight,
			left.weight+right.weight,
		)
	}

	leftCount, err := t.validateSubtree(current.left)
	if err != nil {
		return 0, err
	}
	rightCount, err := t.validateSubtree(current.right)
	if err != nil {
		return 0, err
	}
	return 1 + leftCount + rightCount, nil
}
