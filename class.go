package instance

import (
	"fmt"
	"reflect"

	"github.com/a-peyrard/instance/option"
)

// Class gives access to the hooks of T, a pointer to a struct.
type Class[T any] struct {
	registry *Registry
	class    *class
}

// For returns the hooks of T in r.
func For[T any](r *Registry) (*Class[T], error) {
	typ := TypeOf[T]()
	if err := checkStructPointer(typ); err != nil {
		return nil, err
	}
	return &Class[T]{
		registry: r,
		class:    r.classOf(typ),
	}, nil
}

// MustFor is For panicking on error.
func MustFor[T any](r *Registry) *Class[T] {
	c, err := For[T](r)
	if err != nil {
		panic(fmt.Sprintf("failed to get hooks of %s:\n\t%v", TypeOf[T](), err))
	}
	return c
}

// Decorate attaches action to the member of T, to run after every construction of T.
//
// action is either a Decorator or a function accepted by NewDecorator. Property decorators are
// rejected on methods with a *MisuseError.
func (c *Class[T]) Decorate(memberName string, action any, opts ...option.Option[HookOptions]) error {
	decorator, err := NewDecorator(action)
	if err != nil {
		return fmt.Errorf("failed to decorate %s.%s:\n\t%w", c.class.typ, memberName, err)
	}

	m, err := resolveMember(c.class.typ, memberName)
	if err != nil {
		return fmt.Errorf("failed to decorate %s.%s:\n\t%w", c.class.typ, memberName, err)
	}

	h, err := decorator.bind(c.class.typ, m)
	if err != nil {
		return fmt.Errorf("failed to decorate %s.%s with %s:\n\t%w", c.class.typ, memberName, decorator, err)
	}
	options := option.Build(&HookOptions{}, opts...)
	h.priority = options.priority
	h.description = options.description

	return c.class.add(h)
}

// MustDecorate is Decorate panicking on error, it returns c to chain registrations.
func (c *Class[T]) MustDecorate(memberName string, action any, opts ...option.Option[HookOptions]) *Class[T] {
	if err := c.Decorate(memberName, action, opts...); err != nil {
		panic(err.Error())
	}
	return c
}

// Property attaches a property action to a field of T.
func (c *Class[T]) Property(field string, action PropertyAction[T], opts ...option.Option[HookOptions]) error {
	return c.Decorate(field, Property(action), opts...)
}

// Method attaches a method action to a method of T.
func (c *Class[T]) Method(method string, action MethodAction[T], opts ...option.Option[HookOptions]) error {
	return c.Decorate(method, Method(action), opts...)
}

// HookCount returns the number of hooks registered for T.
func (c *Class[T]) HookCount() int {
	return c.class.hooks.Len()
}

// Sealed tells if an instance of T was already constructed.
func (c *Class[T]) Sealed() bool {
	return c.class.isSealed()
}

// Type returns the decorated type.
func (c *Class[T]) Type() reflect.Type {
	return c.class.typ
}

// HookCount returns the number of hooks registered for T in r.
func HookCount[T any](r *Registry) int {
	c, err := For[T](r)
	if err != nil {
		return 0
	}
	return c.HookCount()
}
