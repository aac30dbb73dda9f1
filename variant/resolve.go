package variant

import "fmt"

// CommonComparable returns the tag of the most specific type that is shared
// by the ancestor chains of both a and b and that implements the equality
// capability. It returns nil if the chains never meet or meet only in types
// that do not compare. It never panics.
//
// The lookup runs against the tags as they are at call time, so it always
// reflects the dynamic types of the two operands, never the static types
// they were erased through.
func CommonComparable(a, b *VariantType) *VariantType {
	for a != nil && b != nil {
		switch {
		case a.Depth > b.Depth:
			a = a.Parent

		case b.Depth > a.Depth:
			b = b.Parent

		case a == b:
			// the chains above the meeting point coincide, so the nearest
			// comparable tag at or above it is the meeting point's anchor
			return a.EqualAnchor

		default:
			a, b = a.Parent, b.Parent
		}
	}

	return nil
}

// UpcastTo converts an erased value to the ancestor type tagged by to, by
// extracting embedded ancestor values one level at a time. The target tag
// must be in the value's ancestor chain.
func UpcastTo(v ErasedVariant, to *VariantType) ErasedVariant {
	tag := v.VariantType()

	for tag != to {
		if tag.AsParent == nil {
			panic(fmt.Sprintf("%s is not an ancestor of %s", to, v.VariantType()))
		}

		v = tag.AsParent(v)
		tag = tag.Parent
	}

	return v
}
