package anyeq

import (
	"github.com/anyeq/anyeq/variant"
)

// IsVariant can be used in a type parameter to ensure that type T is a variant type.
//
// To implement the IsVariant interface for a type, you must embed either the
// Variant or the SubVariant type.
type IsVariant[T any] = variant.IsVariant[T]

// Variant is a zero sized type that may be embedded into a struct to turn that
// struct into the root of a variant hierarchy (see IsVariant).
type Variant[T IsVariant[T]] = variant.Variant[T]

// SubVariant is a zero sized type that may be embedded into a struct to turn that
// struct into a variant derived from P (see IsVariant). The struct must also embed
// a P value carrying the inherited state.
type SubVariant[T IsVariant[T], P IsVariant[P]] = variant.SubVariant[T, P]

// ErasedVariant indicates a type erased variant value.
//
// The tag reachable through an ErasedVariant is always the tag of the value's
// concrete type, independent of the static type the value was erased through.
type ErasedVariant = variant.ErasedVariant

// VariantType is the runtime tag of a registered variant type.
type VariantType = variant.VariantType

// HashValue is the one shot hash of an erased value.
type HashValue = variant.HashValue

// Equatable is the equality capability consumed by the wrappers. A variant
// type that implements it takes part in comparison; a variant type that only
// embeds an Equatable ancestor inherits the ancestor's equality.
type Equatable[T any] = variant.Equatable[T]

// Hashable is the hash capability consumed by the wrappers.
type Hashable = variant.Hashable
