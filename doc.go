// Package anyeq provides type erased equality and hashing over closed
// variant hierarchies.
//
// A Value boxes any variant value and compares and hashes it with the same
// semantics as comparing the unwrapped values directly: the comparison is
// resolved at comparison time against the most specific common ancestor of
// the two runtime types that implements the equality capability. Two values
// without such an ancestor are simply not equal; no comparison ever fails.
//
// The package also keeps NaiveValue, a wrapper that binds its comparison to
// the static type of its construction site. It reproduces a common bug in
// hand written erasure wrappers and exists as a counterexample; see its
// documentation before reaching for it.
//
// Variant types must uphold one contract for hashing to stay consistent with
// equality: a type's IsEqual must refine the equality of its ancestors, it
// may distinguish values its ancestors consider equal but must never equate
// values its ancestors distinguish.
package anyeq
