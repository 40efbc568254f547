// Package huffman implements one-pass adaptive Huffman coding using the FGK
// (Faller-Gallager-Knuth) algorithm.
//
// Encoder and decoder both start from a tree holding nothing but the NYT ("not
// yet transmitted") leaf and update it identically after every symbol, so no
// frequency table is ever transmitted. The first occurrence of a symbol is sent
// as the code of the NYT leaf followed by the symbol's raw 9-bit value; every
// later occurrence is sent as the symbol's current code.
//
// The alphabet is the 256 byte values plus [EOF]. EOF's raw value is 256, so the
// high bit of the 9-bit raw value tells the decoder the stream has ended; it
// never has to rely on the length of the buffer, and the zero bits padding the
// last byte are never mistaken for data.
//
// The tree is held in an arena. Nodes refer to each other by their index in it,
// and every node also has a node number. Numbers are handed out from the top
// down as the NYT leaf splits, and the tree is kept so that ordering the nodes
// by number also orders them by weight, with siblings numbered consecutively
// (the sibling property). Swapping two nodes exchanges their places in the tree
// and their numbers; weights and keys stay with the nodes.
package huffman
