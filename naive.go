package anyeq

import (
	"fmt"
	"hash/maphash"

	"github.com/anyeq/anyeq/variant"
)

// NaiveValue is a type erasing wrapper that captures its comparison behavior
// at construction time, bound to the static type its constructor was
// instantiated with.
//
// It is kept as a counterexample to Value. When two NaiveValue wrappers box
// sibling subtypes of a common comparable ancestor, the captured closure
// asserts the other operand to its own static type, the assertion fails, and
// the comparison silently reports not equal, even though comparing the
// values directly, or through Value, reports equal. The compiler has nothing
// to object to; only the wrong boolean at runtime gives it away.
type NaiveValue struct {
	boxed  ErasedVariant
	equals func(other ErasedVariant) bool
	hash   func(h *maphash.Hash)
}

// NaiveOf boxes the given value the naive way: the equality closure
// downcasts the other operand to the type T inferred at this call site and
// compares through the comparable ancestor of T, both fixed here and now.
//
// The only way to make wrappers of two different subtypes comparable is to
// upcast both values to the common ancestor before boxing, for example
// NaiveOf(v.Coin) instead of NaiveOf(v). That workaround has to be repeated
// at every call site and nothing enforces it; leave it out once and the
// comparison quietly degrades to false again.
func NaiveOf[T IsVariant[T]](value T) NaiveValue {
	// resolved once against the static type, never against the runtime
	// types meeting at the comparison
	anchor := variant.TypeOf[T]().EqualAnchor

	return NaiveValue{
		boxed: value,

		equals: func(other ErasedVariant) bool {
			otherValue, ok := other.(T)
			if !ok {
				// sibling subtypes land here: the dynamic type of other is
				// not T, even when both upcast to the same ancestor
				return false
			}

			if anchor == nil {
				return false
			}

			return anchor.Equal(
				variant.UpcastTo(value, anchor),
				variant.UpcastTo(otherValue, anchor),
			)
		},

		hash: func(h *maphash.Hash) {
			variant.AppendHash(value, h)
		},
	}
}

// Equal applies the comparison closure captured when this wrapper was
// constructed to the other wrapper's boxed value.
func (n NaiveValue) Equal(other NaiveValue) bool {
	return n.equals(other.boxed)
}

// AppendHash writes the hash contribution captured at construction time.
func (n NaiveValue) AppendHash(h *maphash.Hash) {
	n.hash(h)
}

// Hash returns the one shot hash of the boxed value.
func (n NaiveValue) Hash() HashValue {
	return variant.HashOf(n.boxed)
}

// Unwrap returns the boxed value behind its erased interface.
func (n NaiveValue) Unwrap() ErasedVariant {
	return n.boxed
}

func (n NaiveValue) String() string {
	return fmt.Sprintf("NaiveOf(%s)", n.boxed.VariantType())
}
