package instance

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrMethodsOnly is returned when a member without descriptor is turned into a decorator.
	ErrMethodsOnly = errors.New("this decorator is for methods")

	// ErrInvalidArity is returned when an action does not take 2 or 3 parameters.
	ErrInvalidArity = errors.New("decorator has to have 2 (target, name) or 3 (target, name, descriptor) parameters")

	// ErrWrongMemberKind matches every *MisuseError.
	ErrWrongMemberKind = errors.New("the decorator was not used for what it was made for")

	ErrMemberNotFound = errors.New("member not found")
	ErrSealed         = errors.New("hooks are read-only once an instance has been constructed")
	ErrNotAssignable  = errors.New("member cannot receive the value returned by the hook")
	ErrNilInstance    = errors.New("constructor returned a nil instance")
)

// MisuseError is returned when a decorator is applied to a member it was not made for.
type MisuseError struct {
	Kind   Kind
	Type   reflect.Type
	Member string
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("the decorator was not used for what it was made for (%s)", e.Kind.plural())
}

func (e *MisuseError) Is(target error) bool {
	return target == ErrWrongMemberKind
}
