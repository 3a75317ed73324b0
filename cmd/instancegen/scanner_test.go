package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetSource = `package widgets

type Widget struct {
	X     int    // @decorate with=Increment priority=1
	Name  string // a plain comment
	// Label is shown to users.
	// @decorate with="Fallback()"
	Label string
	hidden int // @decorate with=Increment
}

// Render draws the widget.
//
// @decorate with=Trace
// @decorate with=Count priority=-1 description="count renders"
func (w *Widget) Render() string { return "" }

// @decorate with=Trace
func (w *Widget) private() {}

// @decorate priority=3
func (w Widget) Size() int { return 0 }

// NotAMethod is ignored.
//
// @decorate with=Trace
func NotAMethod() {}
`

func parse(t *testing.T, source string) *ast.File {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "widgets.go", source, parser.ParseComments)
	require.NoError(t, err)
	return file
}

func Test_scanFile(t *testing.T) {
	t.Run("it should find decorated fields and methods", func(t *testing.T) {
		// GIVEN
		logger := zerolog.Nop()
		file := parse(t, widgetSource)

		// WHEN
		hooks := scanFile(&logger, file, "example.com/app/widgets")

		// THEN
		require.Len(t, hooks, 4)

		assert.Equal(t, HookDefinition{
			TypeName:   "Widget",
			Member:     "X",
			ImportPath: "example.com/app/widgets",
			With:       "Increment",
			Priority:   1,
		}, hooks[0])

		assert.Equal(t, "Label", hooks[1].Member)
		assert.Equal(t, "Fallback()", hooks[1].With)
		assert.Equal(t, "Label is shown to users.", hooks[1].Description)
		assert.False(t, hooks[1].Method)

		assert.Equal(t, "Render", hooks[2].Member)
		assert.True(t, hooks[2].Method)
		assert.Equal(t, "Trace", hooks[2].With)
		assert.Equal(t, "Render draws the widget.", hooks[2].Description)

		assert.Equal(t, "Render", hooks[3].Member)
		assert.Equal(t, "Count", hooks[3].With)
		assert.Equal(t, -1, hooks[3].Priority)
		assert.Equal(t, "count renders", hooks[3].Description)
	})
}

func Test_findRegistry(t *testing.T) {
	t.Run("it should find the struct embedding the empty registry", func(t *testing.T) {
		// GIVEN
		file := parse(t, `package main

import "github.com/a-peyrard/instance"

//go:generate go run github.com/a-peyrard/instance/cmd/instancegen
type Registry struct {
	instance.EmptyRegistry
}
`)

		// WHEN
		registry := findRegistry(file, "example.com/app")

		// THEN
		require.NotNil(t, registry)
		assert.Equal(t, RegistryDefinition{
			PackageName: "main",
			StructName:  "Registry",
			ImportPath:  "example.com/app",
		}, *registry)
	})

	t.Run("it should return nil without registry", func(t *testing.T) {
		// GIVEN
		file := parse(t, widgetSource)

		// WHEN
		registry := findRegistry(file, "example.com/app/widgets")

		// THEN
		assert.Nil(t, registry)
	})
}
