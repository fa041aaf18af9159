package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bugadani/object-chain/pkg/chain"
)

// The chain package only exposes length and own-payload access. Access by
// index goes through a consumer-defined traversal interface implemented
// for both element shapes; this test shows the pattern.

// asByte is the common interface all payloads in the chain must share.
type asByte interface {
	AsByte() byte
}

type u8 uint8

func (v u8) AsByte() byte { return byte(v) }

type u16 uint16

func (v u16) AsByte() byte { return byte(v) }

// byteReader is the traversal contract. Index 0 is the terminal payload;
// the most recently appended payload sits at the highest index.
type byteReader interface {
	chain.Element
	At(index int) asByte
}

type readTerm[V asByte] struct {
	chain.Terminal[V]
}

func (r readTerm[V]) At(index int) asByte {
	if index != 0 {
		panic("chain index out of range")
	}
	return r.Object
}

type readLink[V asByte, C byteReader] struct {
	chain.Link[V, C]
}

func (r readLink[V, C]) At(index int) asByte {
	if index == r.Len()-1 {
		return r.Object
	}
	// parent indices are a prefix of this element's indices
	return r.Parent.At(index)
}

func readable[V asByte](object V) readTerm[V] {
	return readTerm[V]{Terminal: chain.New(object)}
}

func appendReadable[V asByte, C byteReader](parent C, object V) readLink[V, C] {
	return readLink[V, C]{Link: chain.Append[V, C](parent, object)}
}

func TestAccessByIndexThroughCommonInterface(t *testing.T) {
	t.Parallel()

	c := appendReadable(readable(u8(1)), u16(2))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, byte(2), c.At(1).AsByte())
	assert.Equal(t, byte(1), c.At(0).AsByte())
}

func TestAccessByIndexDeepChain(t *testing.T) {
	t.Parallel()

	c := appendReadable(appendReadable(readable(u8(10)), u16(20)), u8(30))

	assert.Equal(t, 3, c.Len())
	for i, want := range []byte{10, 20, 30} {
		assert.Equal(t, want, c.At(i).AsByte(), "index %d", i)
	}
}

func TestAccessByIndexGenericConsumer(t *testing.T) {
	t.Parallel()

	// consumers only need the traversal contract, not the concrete nesting
	last := func(r byteReader) byte {
		return r.At(r.Len() - 1).AsByte()
	}

	assert.Equal(t, byte(2), last(appendReadable(readable(u8(1)), u16(2))))
	assert.Equal(t, byte(1), last(readable(u8(1))))
}

func TestAccessByIndexOutOfRange(t *testing.T) {
	t.Parallel()

	c := readable(u8(1))

	assert.Panics(t, func() { c.At(1) })
}
