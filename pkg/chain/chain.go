package chain

// Element is the contract shared by every chain element. Exactly two types
// implement it: Terminal and Link. The unexported method keeps the set
// closed, so code generic over Element may assume one of those two shapes.
type Element interface {
	// Len returns the number of objects linked into this element,
	// counting the element itself and all of its parents.
	Len() int

	sealed()
}

// Accessor is the typed view of an Element whose own payload type is V.
// Use it as a constraint when generic code needs the payload of the
// element it was handed:
//
//	func label[V fmt.Stringer, C chain.Accessor[V]](c C) string {
//		return c.Get().String()
//	}
type Accessor[V any] interface {
	Element

	// Get returns the payload owned directly by this element, never a
	// parent's payload.
	Get() V
}
