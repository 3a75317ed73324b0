package instance

import (
	"fmt"
	"reflect"
)

var (
	StringType     = TypeOf[string]()
	ErrorType      = TypeOf[error]()
	DescriptorType = TypeOf[*Descriptor]()
)

// TypeOf returns the reflect.Type of I, interfaces included.
func TypeOf[I any]() reflect.Type {
	return reflect.TypeOf((*I)(nil)).Elem()
}

func checkStructPointer(typ reflect.Type) error {
	if typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("hooks can only be attached to pointers to structs, got %s", typ)
	}
	return nil
}
