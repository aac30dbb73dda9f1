package refl

import (
	"iter"
	"reflect"
)

func IterFields(ty reflect.Type) iter.Seq[reflect.StructField] {
	return func(yield func(reflect.StructField) bool) {
		for idx := range ty.NumField() {
			if !yield(ty.Field(idx)) {
				return
			}
		}
	}
}

// ImplementsInterfaceDirectly reports whether ty implements the interface If
// itself, as opposed to through a method promoted from an embedded field.
func ImplementsInterfaceDirectly[If any](ty reflect.Type) bool {
	iface := reflect.TypeFor[If]()

	if !ty.Implements(iface) {
		return false
	}

	for ty.Kind() == reflect.Pointer {
		ty = ty.Elem()
	}

	for field := range IterFields(ty) {
		if !field.Anonymous {
			continue
		}

		if field.Type.Implements(iface) {
			return false
		}

		if reflect.PointerTo(field.Type).Implements(iface) {
			return false
		}
	}

	return true
}

// AnonymousFieldOfType returns the index of the embedded field of type want
// within the struct type ty.
func AnonymousFieldOfType(ty, want reflect.Type) (int, bool) {
	for field := range IterFields(ty) {
		if field.Anonymous && field.Type == want {
			return field.Index[0], true
		}
	}

	return 0, false
}
