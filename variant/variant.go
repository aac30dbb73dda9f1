package variant

import "hash/maphash"

type isVariantMarker struct{}

// ErasedVariant holds a value of some variant type behind its runtime tag.
//
// Values of this type are plain struct values, never pointers. The tag
// returned by VariantType is the tag of the value's concrete type, not the
// tag of whatever static type the value was last assigned through.
type ErasedVariant interface {
	VariantType() *VariantType
	isVariant(isVariantMarker)
}

// IsVariant can be used in a type parameter to ensure that type T is a
// variant type.
//
// To implement the IsVariant interface for a type, you must embed either the
// Variant or the SubVariant type.
type IsVariant[T any] interface {
	ErasedVariant
	IsVariant(T)
}

// Variant is a zero sized type that may be embedded into a struct to turn
// that struct into the root of a variant hierarchy (see IsVariant).
type Variant[T IsVariant[T]] struct{}

func (Variant[T]) IsVariant(T) {}

func (Variant[T]) isVariant(isVariantMarker) {}

func (Variant[T]) VariantType() *VariantType {
	return rootVariantTypeOf[T]()
}

// SubVariant is a zero sized type that may be embedded into a struct to turn
// that struct into a variant derived from the ancestor variant P. The struct
// must also embed a P value; that embedded value carries the inherited state
// and is what an upcast to P extracts.
type SubVariant[T IsVariant[T], P IsVariant[P]] struct{}

func (SubVariant[T, P]) IsVariant(T) {}

func (SubVariant[T, P]) isVariant(isVariantMarker) {}

func (SubVariant[T, P]) VariantType() *VariantType {
	return subVariantTypeOf[T, P]()
}

// Equatable is the equality capability of a variant type. Comparison between
// erased values resolves to the most specific common ancestor implementing
// this interface.
//
// A method promoted from an embedded ancestor has the ancestor's signature
// and therefore does not satisfy Equatable for the embedding type; such a
// type inherits its ancestor's equality instead of supplying its own.
type Equatable[T any] interface {
	IsEqual(other T) bool
}

// Hashable is the hash capability of a variant type. Implementations must
// write identical contributions for values that compare equal through IsEqual
// at the same level of the hierarchy.
type Hashable interface {
	AppendHash(h *maphash.Hash)
}
