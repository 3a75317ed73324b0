package instance

import (
	"fmt"
	"reflect"
)

type (
	// Descriptor describes a method member. Method actions receive it as their third parameter,
	// fields have no descriptor.
	Descriptor struct {
		// Name of the method.
		Name string
		// Type is the signature of the method, receiver excluded.
		Type reflect.Type
		// Method is the method as found in the method set of the decorated type.
		Method reflect.Method
	}

	// member is a resolved field or method of a decorated type.
	member struct {
		name       string
		index      []int // field index, nil for methods
		typ        reflect.Type
		descriptor *Descriptor
	}
)

// Bind returns the method bound to instance, ready to be called.
func (d *Descriptor) Bind(instance any) reflect.Value {
	return reflect.ValueOf(instance).MethodByName(d.Name)
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s%s", d.Name, d.Type.String()[len("func"):])
}

func (m member) isField() bool {
	return m.index != nil
}

// resolveMember finds name in typ, a pointer to a struct.
//
// Methods (pointer or value receivers) win over fields, func typed fields are plain fields.
func resolveMember(typ reflect.Type, name string) (member, error) {
	if method, found := typ.MethodByName(name); found {
		return member{
			name: name,
			typ:  method.Type,
			descriptor: &Descriptor{
				Name:   name,
				Type:   withoutReceiver(method.Type),
				Method: method,
			},
		}, nil
	}

	if field, found := typ.Elem().FieldByName(name); found {
		if !field.IsExported() {
			return member{}, fmt.Errorf("field %s of %s is not exported:\n\t%w", name, typ, ErrMemberNotFound)
		}
		return member{
			name:  name,
			index: field.Index,
			typ:   field.Type,
		}, nil
	}

	return member{}, fmt.Errorf("%s has no field or method named %s:\n\t%w", typ, name, ErrMemberNotFound)
}

func withoutReceiver(method reflect.Type) reflect.Type {
	in := make([]reflect.Type, 0, method.NumIn()-1)
	for i := 1; i < method.NumIn(); i++ {
		in = append(in, method.In(i))
	}
	out := make([]reflect.Type, method.NumOut())
	for i := range out {
		out[i] = method.Out(i)
	}
	return reflect.FuncOf(in, out, method.IsVariadic())
}
