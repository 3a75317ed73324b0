package instance

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Describe(t *testing.T) {
	t.Run("it should describe every type and its hooks", func(t *testing.T) {
		// GIVEN
		registry := NewRegistry()
		MustFor[*Widget](registry).
			MustDecorate("X", func(w *Widget, name string) any { return nil }, Priority(5), Description("bump x")).
			MustDecorate("M", func(w *Widget, name string, d *Descriptor) any { return nil })
		MustFor[*Gadget](registry).
			MustDecorate("Label", func(g *Gadget, name string) any { return nil })
		MustIntercept[*Gadget](registry, func() *Gadget { return &Gadget{} }).MustNew()

		// WHEN
		description := registry.Describe()

		// THEN
		lines := strings.Split(strings.TrimSuffix(description, "\n"), "\n")
		require.Len(t, lines, 7)
		assert.Equal(t, "* Types:", lines[0])
		assert.Equal(t, "\t- *instance.Gadget (sealed=true)", lines[1])
		assert.Contains(t, lines[2], "Label -> propertyDecorator(")
		assert.Equal(t, "\t- *instance.Widget (sealed=false)", lines[3])
		assert.Contains(t, lines[4], "X -> propertyDecorator(")
		assert.Contains(t, lines[4], "(priority=5)")
		assert.Equal(t, "\t\t\tdescription: bump x", lines[5])
		assert.Contains(t, lines[6], "M -> methodDecorator(")
	})
}

func TestRegistry_Types(t *testing.T) {
	t.Run("it should list known types sorted by name", func(t *testing.T) {
		// GIVEN
		registry := NewRegistry()
		MustFor[*Widget](registry)
		MustFor[*Holder](registry)
		MustFor[*Gadget](registry)

		// WHEN
		types := registry.Types()

		// THEN
		require.Len(t, types, 3)
		assert.Equal(t, TypeOf[*Gadget](), types[0])
		assert.Equal(t, TypeOf[*Holder](), types[1])
		assert.Equal(t, TypeOf[*Widget](), types[2])
	})
}

func TestRegistry_Logger(t *testing.T) {
	t.Run("it should log registrations and sealing", func(t *testing.T) {
		// GIVEN
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
		registry := NewRegistry(WithLogger(logger))

		// WHEN
		MustFor[*Widget](registry).MustDecorate("X", func(w *Widget, name string) any { return nil }, Priority(3))
		MustIntercept[*Widget](registry, NewWidget).MustNew()
		MustIntercept[*Widget](registry, NewWidget).MustNew()

		// THEN
		output := buf.String()
		assert.Contains(t, output, `"message":"hook registered"`)
		assert.Contains(t, output, `"member":"X"`)
		assert.Contains(t, output, `"kind":"property"`)
		assert.Contains(t, output, `"priority":3`)
		assert.Contains(t, output, `"type":"*instance.Widget"`)
		assert.Equal(t, 1, strings.Count(output, `"message":"type sealed"`))
	})

	t.Run("it should be silent by default", func(t *testing.T) {
		// GIVEN
		registry := NewRegistry()

		// WHEN & THEN
		assert.NotPanics(t, func() {
			MustFor[*Widget](registry).MustDecorate("X", func(w *Widget, name string) any { return nil })
			MustIntercept[*Widget](registry, NewWidget).MustNew()
		})
	})
}

func TestEmptyRegistry(t *testing.T) {
	t.Run("it should register nothing", func(t *testing.T) {
		registry := NewRegistry()

		err := EmptyRegistry{}.Register(registry)

		assert.NoError(t, err)
		assert.Empty(t, registry.Types())
	})
}
