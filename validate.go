package anyeq

import (
	"fmt"

	"github.com/anyeq/anyeq/internal/set"
	"github.com/anyeq/anyeq/variant"
)

// ValidateVariant should be called to verify that the IsVariant interface is
// correctly implemented.
//
//	type Coin struct {
//	   Variant[Coin]
//	   Value int
//	}
//
//	var _ = ValidateVariant[Coin]()
//
// This identifies mistakes in the type passed to Variant or SubVariant during
// compile time. It also registers the type eagerly, so a subvariant that does
// not embed its ancestor value fails at init time instead of at the first
// comparison, and it rejects declarations that would break the consistency
// of hashing with equality.
func ValidateVariant[T IsVariant[T]]() struct{} {
	ty := variant.TypeOf[T]()

	// topEqual is the rootmost tag in the chain that implements equality.
	// A comparison against a value of another subtype can resolve at any
	// comparable tag of the chain up to this one.
	var topEqual *variant.VariantType

	var seen set.Set[*variant.VariantType]

	for tag := ty; tag != nil; tag = tag.Parent {
		if !seen.Insert(tag) {
			panic(fmt.Sprintf("variant %s has a cyclic ancestor chain", ty))
		}

		if tag.Equal != nil {
			topEqual = tag
		}
	}

	if ty.HashAnchor != nil {
		if topEqual == nil {
			panic(fmt.Sprintf(
				"variant %s hashes but nothing in its ancestor chain implements Equatable",
				ty,
			))
		}

		// a hash introduced below the rootmost equality would let values
		// compare equal through an ancestor while hashing differently
		if ty.HashAnchor.Depth > topEqual.Depth {
			panic(fmt.Sprintf(
				"variant %s anchors its hash at %s, below the equality of its ancestor %s",
				ty, ty.HashAnchor, topEqual,
			))
		}
	}

	return struct{}{}
}
