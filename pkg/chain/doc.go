// Package chain builds static chains of objects with different types.
//
// A chain starts (or ends, depending on your view) with a Terminal element
// and grows through any number of Links. The shape of a chain is fixed at
// compile time: every position has a concrete type, nothing is boxed, and
// nothing is allocated beyond the nested values themselves.
//
// Key operations:
// - New: wrap a value into a single-element chain
// - Append: grow a chain by one element, consuming the old chain value
// - Len: number of objects linked into an element, itself included
// - Get/GetMut: read or mutate the payload an element directly owns
//
// The basic contract only exposes length and own-payload access. Consumers
// that want richer behavior, such as access by index through a common
// interface, implement their own traversal interface for both element
// shapes; the traversal test in the tests package shows the pattern.
package chain
