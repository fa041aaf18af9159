// Package gen generates Go source for chain type aliases from flat,
// append-ordered type lists.
//
// Spelling out a nested chain type by hand is verbose and reads backwards:
// the first object appended sits innermost. Expand takes the list in the
// natural front-to-back order, reverses it and folds it into the nested
// type expression, so
//
//	[uint8, uint16, uint32]
//
// becomes
//
//	chain.Link[uint32, chain.Link[uint16, chain.Terminal[uint8]]]
//
// File renders a complete, gofmt-formatted source file of such aliases,
// ready to check in next to the code that uses them. Generation is the
// only place this system can reject input: an empty type list or an
// invalid alias name fails generation, never the generated program.
package gen
