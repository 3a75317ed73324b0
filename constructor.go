package instance

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime"

	"github.com/a-peyrard/instance/reflectutils"
	"github.com/a-peyrard/instance/slices"
	"golang.org/x/sync/errgroup"
)

// Constructor builds instances of T and runs the hooks of T on each of them before returning it.
type Constructor[T any] struct {
	class   *class
	factory reflect.Value
	name    string
}

// Intercept wraps factory, a function returning T or (T, error), into a Constructor of T.
// factory may take any parameters, they are given to New.
func Intercept[T any](r *Registry, factory any) (*Constructor[T], error) {
	c, err := For[T](r)
	if err != nil {
		return nil, err
	}
	return c.Intercept(factory)
}

// MustIntercept is Intercept panicking on error.
func MustIntercept[T any](r *Registry, factory any) *Constructor[T] {
	ctor, err := Intercept[T](r, factory)
	if err != nil {
		panic(fmt.Sprintf("failed to intercept constructor of %s:\n\t%v", TypeOf[T](), err))
	}
	return ctor
}

// Intercept wraps factory into a Constructor of T, see the package level Intercept.
func (c *Class[T]) Intercept(factory any) (*Constructor[T], error) {
	t := reflect.TypeOf(factory)
	if t == nil || t.Kind() != reflect.Func {
		return nil, fmt.Errorf("constructor of %s must be a function, got %T", c.class.typ, factory)
	}
	factoryValue := reflect.ValueOf(factory)
	if factoryValue.IsNil() {
		return nil, fmt.Errorf("constructor of %s cannot be a nil function", c.class.typ)
	}
	if t.NumOut() != 1 && t.NumOut() != 2 {
		return nil, errors.New("constructor must either return the instance and an error, or just the instance")
	}
	if t.NumOut() == 2 && t.Out(1) != ErrorType {
		return nil, errors.New("if constructor returns two elements, it must return an error as the second element")
	}
	if !t.Out(0).AssignableTo(c.class.typ) {
		return nil, fmt.Errorf("constructor returns %s, expected %s", t.Out(0), c.class.typ)
	}

	return &Constructor[T]{
		class:   c.class,
		factory: factoryValue,
		name:    runtime.FuncForPC(factoryValue.Pointer()).Name(),
	}, nil
}

// New calls the wrapped constructor with args, then runs every hook of T, in order, on the instance.
// The returned instance is the one built by the wrapped constructor.
func (c *Constructor[T]) New(args ...any) (T, error) {
	var zero T

	params, err := c.arguments(args)
	if err != nil {
		return zero, fmt.Errorf("invalid arguments for %s:\n\t%w", c, err)
	}

	results, err := c.call(params)
	if err != nil {
		return zero, err
	}
	if len(results) == 2 && !results[1].IsNil() {
		return zero, results[1].Interface().(error)
	}

	return c.replay(results[0])
}

// MustNew is New panicking on error.
func (c *Constructor[T]) MustNew(args ...any) T {
	inst, err := c.New(args...)
	if err != nil {
		panic(fmt.Sprintf("failed to construct %s:\n\t%v", c.class.typ, err))
	}
	return inst
}

// NewN builds n instances concurrently, with the same args. Instances are returned in creation
// index order, the first error cancels ctx and is returned.
func (c *Constructor[T]) NewN(ctx context.Context, n int, args ...any) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot construct %d instances of %s", n, c.class.typ)
	}
	instances := make([]T, n)

	group, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			inst, err := c.New(args...)
			if err != nil {
				return fmt.Errorf("failed to construct instance %d of %s:\n\t%w", i, c.class.typ, err)
			}
			instances[i] = inst
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return instances, nil
}

// Apply runs the hooks of T on an instance built outside of the constructor.
func (c *Constructor[T]) Apply(inst T) (T, error) {
	return c.replay(reflect.ValueOf(&inst).Elem())
}

func (c *Constructor[T]) replay(built reflect.Value) (T, error) {
	var zero T
	if reflectutils.IsAbsent(built) {
		return zero, fmt.Errorf("%s returned no %s:\n\t%w", c, c.class.typ, ErrNilInstance)
	}
	if built.Kind() == reflect.Interface {
		built = built.Elem()
	}

	hooks := c.class.snapshot()
	for _, h := range hooks {
		var err error
		if built, err = h.apply(built); err != nil {
			return zero, fmt.Errorf("failed to run hook %s on %s:\n\t%w", h, c.class.typ, err)
		}
	}
	c.class.logger.Trace().Int("hooks", len(hooks)).Msg("instance constructed")

	inst, ok := built.Interface().(T)
	if !ok {
		return zero, fmt.Errorf("value %v is not of type %s", built, c.class.typ)
	}
	return inst, nil
}

func (c *Constructor[T]) arguments(args []any) ([]reflect.Value, error) {
	t := c.factory.Type()
	if t.IsVariadic() {
		if len(args) < t.NumIn()-1 {
			return nil, fmt.Errorf("expected at least %d arguments, got %d", t.NumIn()-1, len(args))
		}
	} else if len(args) != t.NumIn() {
		return nil, fmt.Errorf("expected %d arguments, got %d", t.NumIn(), len(args))
	}

	return slices.UnsafeMap(args, func(i int, arg any) (reflect.Value, error) {
		paramTyp := parameterType(t, i)
		if arg == nil {
			if !reflectutils.CanBeNil(paramTyp.Kind()) {
				return reflect.Value{}, fmt.Errorf("argument %d cannot be nil, expected %s", i, paramTyp)
			}
			return reflect.Zero(paramTyp), nil
		}
		value, ok := reflectutils.Coerce(reflect.ValueOf(arg), paramTyp)
		if !ok {
			return reflect.Value{}, fmt.Errorf("argument %d is a %T, expected %s", i, arg, paramTyp)
		}
		return value, nil
	})
}

func parameterType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}

func (c *Constructor[T]) call(params []reflect.Value) (results []reflect.Value, err error) {
	// `Call` panics if the constructor panics
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic calling constructor %s: %v", c, r)
		}
	}()
	return c.factory.Call(params), nil
}

func (c *Constructor[T]) String() string {
	return fmt.Sprintf("Constructor(%s, %s)", c.class.typ, c.name)
}
