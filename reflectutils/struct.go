package reflectutils

import (
	"reflect"

	"github.com/a-peyrard/instance/fn"
)

// FieldVisitor is called for every visited value, with the path of exported field names leading to it.
type FieldVisitor = fn.TriConsumer[reflect.Value, reflect.Type, []string]

// WalkStruct visits element and, recursively, every exported field reachable from it.
func WalkStruct[T any](element T, visitor FieldVisitor) {
	walk(reflect.ValueOf(element), nil, visitor)
}

func walk(val reflect.Value, path []string, visitor FieldVisitor) {
	if !val.IsValid() {
		return
	}
	visitor(val, val.Type(), path)

	val = Deref(val)
	if !val.IsValid() || val.Kind() != reflect.Struct {
		return
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		// copy the path, siblings must not share the backing array
		fieldPath := make([]string, len(path), len(path)+1)
		copy(fieldPath, path)
		walk(val.Field(i), append(fieldPath, field.Name), visitor)
	}
}

// Deref follows pointers and interfaces until it reaches a concrete value.
func Deref(value reflect.Value) reflect.Value {
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		value = value.Elem()
	}
	return value
}

// CreateNilStructs allocates nil pointers to structs, so nested fields become reachable.
func CreateNilStructs(val reflect.Value, typ reflect.Type, _ []string) {
	if typ.Kind() == reflect.Pointer &&
		val.IsNil() &&
		typ.Elem().Kind() == reflect.Struct &&
		val.CanSet() {

		val.Set(reflect.New(typ.Elem()))
	}
}
