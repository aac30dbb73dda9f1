package variant

import (
	"fmt"
	"hash/maphash"
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/anyeq/anyeq/internal/assert"
	"github.com/anyeq/anyeq/internal/refl"
)

var seed = maphash.MakeSeed()

type VariantTypeId uint16

// VariantType is the reified runtime tag of a variant type. Tags are
// registered lazily, once per type, and are compared by pointer identity.
type VariantType struct {
	Name string
	Type reflect.Type

	// Parent is the tag of the ancestor variant, nil for hierarchy roots.
	Parent *VariantType

	// Equal compares two erased values as this variant type. Both values
	// must hold exactly this type. It is nil if the type does not implement
	// the equality capability itself; comparison then falls through to the
	// nearest ancestor that does.
	Equal func(a, b ErasedVariant) bool

	// Hash writes the hash contribution of an erased value as this variant
	// type. Nil if the type does not implement Hashable directly.
	Hash func(v ErasedVariant, h *maphash.Hash)

	// AsParent extracts the embedded ancestor value. Nil for roots.
	AsParent func(v ErasedVariant) ErasedVariant

	// EqualAnchor is the most specific tag in the ancestor chain, including
	// this one, with a non nil Equal. Nil if nothing in the chain compares.
	EqualAnchor *VariantType

	// HashAnchor is the rootmost tag in the ancestor chain, including this
	// one, with a non nil Hash. All members of a hierarchy below the anchor
	// share it, which keeps hashing consistent with ancestor level equality.
	HashAnchor *VariantType

	// Depth of the tag within its hierarchy. Roots have depth 0.
	Depth int

	// The Id of the tag
	Id VariantTypeId
}

func (t *VariantType) String() string {
	return t.Name
}

func (t *VariantType) New() ErasedVariant {
	return reflect.New(t.Type).Elem().Interface().(ErasedVariant)
}

// Root returns the tag at the top of this tag's ancestor chain.
func (t *VariantType) Root() *VariantType {
	for t.Parent != nil {
		t = t.Parent
	}

	return t
}

// TypeOf returns the registered runtime tag of the variant type T.
func TypeOf[T IsVariant[T]]() *VariantType {
	var zeroValue T

	//goland:noinspection GoDfaNilDereference
	return zeroValue.VariantType()
}

var variantTypes atomic.Pointer[map[unsafe.Pointer]*VariantType]

func init() {
	// initialize the lookup table
	variantTypes.Store(&map[unsafe.Pointer]*VariantType{})
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains an abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}

func ensureVariantType(ptrToType unsafe.Pointer, makeType func(id VariantTypeId) *VariantType) *VariantType {
	for {
		previousTypes := variantTypes.Load()
		if cached, ok := (*previousTypes)[ptrToType]; ok {
			return cached
		}

		newTypeId := VariantTypeId(len(*previousTypes) + 1)

		newType := makeType(newTypeId)

		newTypes := maps.Clone(*previousTypes)
		newTypes[ptrToType] = newType

		if variantTypes.CompareAndSwap(previousTypes, &newTypes) {
			slog.Debug(
				"New variant type registered",
				slog.String("name", newType.Name),
				slog.Int("id", int(newType.Id)),
			)

			return newType
		}
	}
}

func rootVariantTypeOf[T IsVariant[T]]() *VariantType {
	ptrToType := abiTypePointerTo(reflect.TypeFor[T]())

	if cached, ok := (*variantTypes.Load())[ptrToType]; ok {
		return cached
	}

	return ensureVariantType(ptrToType, func(id VariantTypeId) *VariantType {
		return makeVariantType[T](id, nil)
	})
}

func subVariantTypeOf[T IsVariant[T], P IsVariant[P]]() *VariantType {
	reflectType := reflect.TypeFor[T]()
	ptrToType := abiTypePointerTo(reflectType)

	if cached, ok := (*variantTypes.Load())[ptrToType]; ok {
		return cached
	}

	// register the ancestor first, the tag of T links to it
	parent := TypeOf[P]()

	fieldIndex, ok := refl.AnonymousFieldOfType(reflectType, reflect.TypeFor[P]())
	if !ok {
		panic(fmt.Sprintf("variant %s must embed its ancestor %s", reflectType, parent))
	}

	return ensureVariantType(ptrToType, func(id VariantTypeId) *VariantType {
		ty := makeVariantType[T](id, parent)

		ty.AsParent = func(v ErasedVariant) ErasedVariant {
			return reflect.ValueOf(v).Field(fieldIndex).Interface().(ErasedVariant)
		}

		return ty
	})
}

func makeVariantType[T IsVariant[T]](id VariantTypeId, parent *VariantType) *VariantType {
	reflectType := reflect.TypeFor[T]()
	assert.IsStructType(reflectType)

	ty := &VariantType{
		Id:     id,
		Type:   reflectType,
		Name:   reflectType.String(),
		Parent: parent,
	}

	if parent != nil {
		ty.Depth = parent.Depth + 1
		ty.EqualAnchor = parent.EqualAnchor
		ty.HashAnchor = parent.HashAnchor
	}

	var zeroValue T

	// a promoted IsEqual of an embedded ancestor takes the ancestor type and
	// does not satisfy Equatable[T], so matching here means T supplies its
	// own equality
	if _, ok := any(zeroValue).(Equatable[T]); ok {
		ty.Equal = func(a, b ErasedVariant) bool {
			return any(a).(Equatable[T]).IsEqual(any(b).(T))
		}

		ty.EqualAnchor = ty
	}

	// promoted AppendHash methods keep the same signature, so directness is
	// checked structurally instead
	if refl.ImplementsInterfaceDirectly[Hashable](reflectType) {
		ty.Hash = func(v ErasedVariant, h *maphash.Hash) {
			any(v).(Hashable).AppendHash(h)
		}

		if ty.HashAnchor == nil {
			ty.HashAnchor = ty
		}
	}

	return ty
}
