package variant

import (
	"hash/maphash"

	"github.com/anyeq/anyeq/internal/typedpool"
)

type HashValue uint64

// AppendHash writes the hash contribution of an erased value to h.
//
// The contribution is computed as the rootmost hashable ancestor of the
// value's dynamic type, prefixed with that ancestor's tag id. Since every
// member of a hierarchy resolves to the same anchor, values that compare
// equal through any common ancestor write identical contributions.
func AppendHash(v ErasedVariant, h *maphash.Hash) {
	tag := v.VariantType()

	anchor := tag.HashAnchor
	if anchor == nil {
		// nothing in the chain hashes. Values of such a hierarchy all land
		// in the bucket of their root, which is consistent because they can
		// only ever compare equal among themselves.
		maphash.WriteComparable(h, tag.Root().Id)
		return
	}

	maphash.WriteComparable(h, anchor.Id)
	anchor.Hash(UpcastTo(v, anchor), h)
}

var hashPool = typedpool.New[maphash.Hash]()

// HashOf is the one shot form of AppendHash using the package seed.
func HashOf(v ErasedVariant) HashValue {
	h := hashPool.Get()
	defer hashPool.Put(h)

	// SetSeed also resets the hash state
	h.SetSeed(seed)
	AppendHash(v, h)

	return HashValue(h.Sum64())
}
