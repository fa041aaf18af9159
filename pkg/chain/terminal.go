package chain

// Terminal marks the end of a chain. It wraps exactly one object and
// always reports length 1.
type Terminal[V any] struct {
	// Object is the wrapped payload.
	Object V
}

// New creates a Terminal by wrapping the given object. Any type can be
// wrapped; Terminal is the base case of every chain.
func New[V any](object V) Terminal[V] {
	return Terminal[V]{Object: object}
}

func (Terminal[V]) Len() int {
	return 1
}

// Get returns the wrapped object.
func (t Terminal[V]) Get() V {
	return t.Object
}

// GetMut returns a pointer to the wrapped object for in-place mutation.
// The chain's shape and length are unaffected.
func (t *Terminal[V]) GetMut() *V {
	return &t.Object
}

func (Terminal[V]) sealed() {}
