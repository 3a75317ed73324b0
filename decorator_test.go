package instance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecorator(t *testing.T) {
	t.Run("it should create a property decorator from a two parameters function", func(t *testing.T) {
		// WHEN
		d, err := NewDecorator(func(w *Widget, name string) any { return nil })

		// THEN
		require.NoError(t, err)
		assert.Equal(t, KindProperty, d.Kind())
	})

	t.Run("it should create a method decorator from a three parameters function", func(t *testing.T) {
		// WHEN
		d, err := NewDecorator(func(w *Widget, name string, descriptor *Descriptor) any { return nil })

		// THEN
		require.NoError(t, err)
		assert.Equal(t, KindMethod, d.Kind())
	})

	t.Run("it should accept actions returning nothing, a value, or a value and an error", func(t *testing.T) {
		actions := []any{
			func(w *Widget, name string) {},
			func(w *Widget, name string) int { return 0 },
			func(w *Widget, name string) (int, error) { return 0, nil },
		}
		for _, action := range actions {
			_, err := NewDecorator(action)
			assert.NoError(t, err)
		}
	})

	t.Run("it should reject actions with an invalid number of parameters", func(t *testing.T) {
		actions := []any{
			func() {},
			func(w *Widget) {},
			func(w *Widget, name string, d *Descriptor, extra int) {},
			func(w *Widget, names ...string) {},
		}
		for _, action := range actions {
			// WHEN
			_, err := NewDecorator(action)

			// THEN
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArity), "unexpected error: %v", err)
			assert.Contains(t, err.Error(), "decorator has to have 2 (target, name) or 3 (target, name, descriptor) parameters")
		}
	})

	t.Run("it should reject a second parameter which is not the member name", func(t *testing.T) {
		// WHEN
		_, err := NewDecorator(func(w *Widget, index int) {})

		// THEN
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be the member name")
	})

	t.Run("it should reject a third parameter which is not a descriptor", func(t *testing.T) {
		// WHEN
		_, err := NewDecorator(func(w *Widget, name string, other string) {})

		// THEN
		require.Error(t, err)
		assert.Contains(t, err.Error(), "third parameter")
	})

	t.Run("it should reject invalid results", func(t *testing.T) {
		_, err := NewDecorator(func(w *Widget, name string) (int, string) { return 0, "" })
		assert.Error(t, err)

		_, err = NewDecorator(func(w *Widget, name string) (int, int, error) { return 0, 0, nil })
		assert.Error(t, err)
	})

	t.Run("it should reject values which are not functions", func(t *testing.T) {
		_, err := NewDecorator("not a function")
		assert.Error(t, err)

		_, err = NewDecorator(nil)
		assert.Error(t, err)

		var nilAction func(w *Widget, name string)
		_, err = NewDecorator(nilAction)
		assert.Error(t, err)
	})

	t.Run("it should return decorators as is", func(t *testing.T) {
		// GIVEN
		d := Property[*Widget](func(w *Widget, name string) any { return nil })

		// WHEN
		same, err := NewDecorator(d)

		// THEN
		require.NoError(t, err)
		assert.Same(t, d, same)
	})

	t.Run("it should panic with MustNewDecorator on invalid actions", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNewDecorator(func() {})
		})
	})
}

func TestTypedDecorators(t *testing.T) {
	t.Run("it should tag property and method decorators explicitly", func(t *testing.T) {
		// WHEN
		property := Property[*Widget](func(w *Widget, name string) any { return nil })
		method := Method[*Widget](func(w *Widget, name string, d *Descriptor) any { return nil })

		// THEN
		assert.Equal(t, KindProperty, property.Kind())
		assert.Equal(t, KindMethod, method.Kind())
		assert.Contains(t, property.String(), "propertyDecorator")
		assert.Contains(t, method.String(), "methodDecorator")
	})
}

func TestFromMethod(t *testing.T) {
	t.Run("it should turn a method of a holder into a method decorator", func(t *testing.T) {
		// WHEN
		d, err := FromMethod(&Holder{}, "Stamp")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, KindMethod, d.Kind())
		assert.Contains(t, d.String(), "*instance.Holder.Stamp")
	})

	t.Run("it should turn a method of a holder into a property decorator", func(t *testing.T) {
		// WHEN
		d, err := FromMethod(&Holder{}, "Rename")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, KindProperty, d.Kind())
	})

	t.Run("it should refuse fields", func(t *testing.T) {
		// WHEN
		_, err := FromMethod(&Holder{}, "Prefix")

		// THEN
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMethodsOnly))
		assert.Contains(t, err.Error(), "this decorator is for methods")
	})

	t.Run("it should refuse unknown members", func(t *testing.T) {
		// WHEN
		_, err := FromMethod(&Holder{}, "Unknown")

		// THEN
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMemberNotFound))
	})

	t.Run("it should validate the arity of the method", func(t *testing.T) {
		// WHEN
		_, err := FromMethod(&Holder{}, "TooMany")

		// THEN
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArity))
	})

	t.Run("it should refuse nil holders", func(t *testing.T) {
		_, err := FromMethod(nil, "Stamp")
		assert.Error(t, err)
	})
}

func TestKind(t *testing.T) {
	assert.Equal(t, "property", KindProperty.String())
	assert.Equal(t, "method", KindMethod.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
