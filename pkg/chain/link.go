package chain

// Link attaches one object to an existing chain element. The parent is
// held by value, so a Link owns its whole tail and cycles are impossible.
type Link[V any, C Element] struct {
	// Parent is the rest of the chain.
	Parent C

	// Object is the payload attached by this link.
	Object V
}

// Append grows a chain by one object. It consumes element and returns a
// new Link holding object, with element as its parent. Go methods cannot
// introduce type parameters, so Append is a package-level function rather
// than a method:
//
//	c := chain.Append(chain.Append(chain.New(uint8(0)), uint16(1)), uint32(2))
//
// Append cannot fail; the resulting type is fully determined at compile
// time.
func Append[T any, C Element](element C, object T) Link[T, C] {
	return Link[T, C]{
		Parent: element,
		Object: object,
	}
}

func (l Link[V, C]) Len() int {
	return l.Parent.Len() + 1
}

// Get returns the object attached by this link, not a parent's object.
// Reaching an ancestor's payload requires navigating Parent explicitly.
func (l Link[V, C]) Get() V {
	return l.Object
}

// GetMut returns a pointer to the object attached by this link.
func (l *Link[V, C]) GetMut() *V {
	return &l.Object
}

func (Link[V, C]) sealed() {}
