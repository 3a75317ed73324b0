package instance

import (
	"fmt"
	"reflect"

	"github.com/a-peyrard/instance/fn"
	"github.com/a-peyrard/instance/option"
	"github.com/a-peyrard/instance/reflectutils"
)

type (
	// hook is a decorator bound to one member of a type, replayed on every construction.
	hook struct {
		decorator *actionDecorator
		member    member

		priority    int
		description string
	}

	HookOptions struct {
		priority    int
		description string
	}
)

// Priority orders hooks of a type, higher priorities run first. Hooks sharing a priority run in
// registration order. The default priority is 0.
func Priority(priority int) option.Option[HookOptions] {
	return func(opts *HookOptions) {
		opts.priority = priority
	}
}

// Description documents a hook, it shows up in Registry.Describe.
func Description(description string) option.Option[HookOptions] {
	return func(opts *HookOptions) {
		opts.description = description
	}
}

// apply runs the action against inst and assigns its result, if any, to the member.
// inst is returned untouched, only its member may change.
func (h *hook) apply(inst reflect.Value) (reflect.Value, error) {
	args := []reflect.Value{inst, reflect.ValueOf(h.member.name)}
	if h.decorator.kind == KindMethod {
		args = append(args, reflect.ValueOf(h.member.descriptor))
	}

	results, err := h.call(args)
	if err != nil {
		return inst, err
	}
	if len(results) == 2 && !results[1].IsNil() {
		return inst, results[1].Interface().(error)
	}
	if len(results) == 0 || reflectutils.IsAbsent(results[0]) {
		return inst, nil
	}

	return inst, h.assign(inst, results[0])
}

func (h *hook) call(args []reflect.Value) (results []reflect.Value, err error) {
	// `Call` panics if the action panics
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic calling %s on %s: %v", h.decorator, h.member.name, r)
		}
	}()
	return h.decorator.action.Call(args), nil
}

func (h *hook) assign(inst reflect.Value, value reflect.Value) error {
	if value.Kind() == reflect.Interface {
		value = value.Elem()
	}
	if !h.member.isField() {
		return fmt.Errorf("%s is a method, it cannot be replaced by a %s:\n\t%w", h.member.name, value.Type(), ErrNotAssignable)
	}

	field, err := inst.Elem().FieldByIndexErr(h.member.index)
	if err != nil {
		return fmt.Errorf("cannot reach field %s:\n\t%w", h.member.name, err)
	}
	coerced, ok := reflectutils.Coerce(value, field.Type())
	if !ok {
		return fmt.Errorf("field %s of type %s cannot receive a %s:\n\t%w", h.member.name, field.Type(), value.Type(), ErrNotAssignable)
	}
	field.Set(coerced)

	return nil
}

func (h *hook) String() string {
	return fmt.Sprintf("%s -> %s (priority=%d)", h.member.name, h.decorator, h.priority)
}

func compareHooksByPriority(h1, h2 *hook) fn.ComparisonResult {
	return fn.CompareInts(h1.priority, h2.priority)
}
