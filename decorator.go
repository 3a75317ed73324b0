package instance

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
)

// Kind tells which members a decorator is made for.
type Kind int

const (
	// KindProperty actions take (instance, name) and decorate fields.
	KindProperty Kind = iota + 1
	// KindMethod actions take (instance, name, descriptor) and decorate methods, or fields.
	KindMethod
)

func (k Kind) String() string {
	switch k {
	case KindProperty:
		return "property"
	case KindMethod:
		return "method"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) plural() string {
	if k == KindProperty {
		return "properties"
	}
	return "methods"
}

type (
	// Decorator wraps an action so it can be attached to a member of a type.
	//
	// The action never runs when the decorator is attached, only when instances are constructed.
	Decorator interface {
		Kind() Kind
		bind(target reflect.Type, m member) (*hook, error)

		fmt.Stringer
	}

	// PropertyAction receives the freshly constructed instance and the field name.
	// A non nil result is assigned to the field.
	PropertyAction[T any] func(instance T, name string) any

	// MethodAction receives the freshly constructed instance, the member name and its descriptor,
	// which is nil when the member is a field. A non nil result is assigned to the member.
	MethodAction[T any] func(instance T, name string, descriptor *Descriptor) any

	actionDecorator struct {
		kind   Kind
		action reflect.Value
		name   string
	}
)

// Property creates a decorator for fields.
func Property[T any](action PropertyAction[T]) Decorator {
	return newActionDecorator(KindProperty, reflect.ValueOf(action), "")
}

// Method creates a decorator for methods.
func Method[T any](action MethodAction[T]) Decorator {
	return newActionDecorator(KindMethod, reflect.ValueOf(action), "")
}

// NewDecorator creates a decorator from any function, its kind is deduced from its parameters:
//
//	func(instance T, name string) R                          -> property decorator
//	func(instance T, name string, descriptor *Descriptor) R  -> method decorator
//
// R is either nothing, a single value, or a value and an error.
// A Decorator given as action is returned as is.
func NewDecorator(action any) (Decorator, error) {
	if d, ok := action.(Decorator); ok {
		return d, nil
	}
	return decoratorFromFunc(reflect.ValueOf(action), "")
}

// MustNewDecorator is NewDecorator panicking on error.
func MustNewDecorator(action any) Decorator {
	d, err := NewDecorator(action)
	if err != nil {
		panic(fmt.Sprintf("failed to create decorator from %T:\n\t%v", action, err))
	}
	return d
}

// FromMethod turns the method name of holder into a decorator, the method stays bound to holder.
//
// It fails with ErrMethodsOnly when name is a field of holder.
func FromMethod(holder any, name string) (Decorator, error) {
	if holder == nil {
		return nil, errors.New("cannot read a decorator from a nil holder")
	}

	holderValue := reflect.ValueOf(holder)
	if method := holderValue.MethodByName(name); method.IsValid() {
		return decoratorFromFunc(method, fmt.Sprintf("%T.%s", holder, name))
	}

	holderStruct := holderValue
	for holderStruct.Kind() == reflect.Pointer && !holderStruct.IsNil() {
		holderStruct = holderStruct.Elem()
	}
	if holderStruct.Kind() == reflect.Struct {
		if _, found := holderStruct.Type().FieldByName(name); found {
			return nil, fmt.Errorf("%s of %T is a field:\n\t%w", name, holder, ErrMethodsOnly)
		}
	}

	return nil, fmt.Errorf("%T has no method named %s:\n\t%w", holder, name, ErrMemberNotFound)
}

func decoratorFromFunc(action reflect.Value, name string) (Decorator, error) {
	if !action.IsValid() || action.Kind() != reflect.Func {
		return nil, fmt.Errorf("decorator action must be a function, got %s", describeValue(action))
	}
	if action.IsNil() {
		return nil, errors.New("decorator action cannot be a nil function")
	}

	t := action.Type()
	if t.IsVariadic() || (t.NumIn() != 2 && t.NumIn() != 3) {
		return nil, fmt.Errorf("invalid action %s with %d parameters:\n\t%w", t, t.NumIn(), ErrInvalidArity)
	}
	if t.In(1) != StringType {
		return nil, fmt.Errorf("the second parameter of action %s must be the member name (string), got %s", t, t.In(1))
	}
	kind := KindProperty
	if t.NumIn() == 3 {
		if t.In(2) != DescriptorType {
			return nil, fmt.Errorf("the third parameter of action %s must be a %s, got %s", t, DescriptorType, t.In(2))
		}
		kind = KindMethod
	}
	if err := checkResults(t); err != nil {
		return nil, fmt.Errorf("invalid action %s:\n\t%w", t, err)
	}

	return newActionDecorator(kind, action, name), nil
}

func checkResults(t reflect.Type) error {
	switch t.NumOut() {
	case 0, 1:
		return nil
	case 2:
		if t.Out(1) != ErrorType {
			return errors.New("if an action returns two elements, the second one must be an error")
		}
		return nil
	default:
		return errors.New("an action returns either nothing, a value, or a value and an error")
	}
}

func newActionDecorator(kind Kind, action reflect.Value, name string) *actionDecorator {
	if name == "" && action.IsValid() && !action.IsNil() {
		name = runtime.FuncForPC(action.Pointer()).Name()
	}
	return &actionDecorator{
		kind:   kind,
		action: action,
		name:   name,
	}
}

func (d *actionDecorator) Kind() Kind {
	return d.kind
}

func (d *actionDecorator) bind(target reflect.Type, m member) (*hook, error) {
	if d.action.IsNil() {
		return nil, errors.New("decorator action cannot be a nil function")
	}
	if d.kind == KindProperty && m.descriptor != nil {
		return nil, &MisuseError{Kind: d.kind, Type: target, Member: m.name}
	}
	if expected := d.action.Type().In(0); !target.AssignableTo(expected) {
		return nil, fmt.Errorf("action %s expects instances of %s, cannot receive %s", d, expected, target)
	}

	return &hook{
		decorator: d,
		member:    m,
	}, nil
}

func (d *actionDecorator) String() string {
	return fmt.Sprintf("%sDecorator(%s)", d.kind, d.name)
}

func describeValue(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}
