package anyeq

import (
	"fmt"
	"hash/maphash"

	"github.com/anyeq/anyeq/variant"
)

// Value boxes a variant value behind its runtime tag. Comparing two Value
// instances behaves exactly like comparing the unwrapped values directly:
// the equality implementation is looked up at comparison time on the most
// specific common ancestor of the two dynamic types, no matter which static
// types the values had when they were boxed.
//
// A Value is immutable after construction and exclusively owns its boxed
// value.
type Value struct {
	boxed ErasedVariant
	tag   *VariantType
}

// Of boxes the given variant value.
func Of[T IsVariant[T]](value T) Value {
	return Value{
		boxed: value,
		tag:   value.VariantType(),
	}
}

// Unwrap returns the boxed value behind its erased interface.
func (v Value) Unwrap() ErasedVariant {
	return v.boxed
}

// Type returns the runtime tag of the boxed value.
func (v Value) Type() *VariantType {
	return v.tag
}

// Equal reports whether the two boxed values compare equal as their most
// specific common ancestor type. If the dynamic types share no ancestor that
// implements the equality capability, the values are not equal. Equal never
// panics, whatever types meet here.
func (v Value) Equal(other Value) bool {
	common := variant.CommonComparable(v.tag, other.tag)
	if common == nil {
		return false
	}

	return common.Equal(
		variant.UpcastTo(v.boxed, common),
		variant.UpcastTo(other.boxed, common),
	)
}

// AppendHash writes the boxed value's hash contribution to h. Two values
// that compare Equal write identical contributions, because both resolve to
// the hash of the same ancestor type.
//
// The zero Value writes nothing, which is consistent with the zero Value
// never comparing equal to anything, itself included.
func (v Value) AppendHash(h *maphash.Hash) {
	if v.boxed == nil {
		return
	}

	variant.AppendHash(v.boxed, h)
}

// Hash returns the one shot hash of the boxed value. The zero Value hashes
// to zero.
func (v Value) Hash() HashValue {
	if v.boxed == nil {
		return 0
	}

	return variant.HashOf(v.boxed)
}

func (v Value) String() string {
	return fmt.Sprintf("Of(%s)", v.tag)
}
