package reflectutils

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTo(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		typ      reflect.Type
		expected any
	}{
		{"string to int", "12", reflect.TypeOf(0), int64(12)},
		{"string to uint8", "200", reflect.TypeOf(uint8(0)), uint64(200)},
		{"string to bool", "true", reflect.TypeOf(false), true},
		{"string to float", "1.5", reflect.TypeOf(float32(0)), 1.5},
		{"string to duration", "2s", reflect.TypeOf(time.Duration(0)), 2 * time.Second},
		{"int to string", 42, reflect.TypeOf(""), "42"},
		{"words to string slice", "a b", reflect.TypeOf([]string{}), []string{"a", "b"}},
		{"any slice to string slice", []any{"a", 1}, reflect.TypeOf([]string{}), []string{"a", "1"}},
		{"map to string map", map[string]any{"k": 1}, reflect.TypeOf(map[string]string{}), map[string]string{"k": "1"}},
	}
	for _, tt := range tests {
		t.Run("it should convert "+tt.name, func(t *testing.T) {
			// WHEN
			converted, err := ConvertTo(tt.value, tt.typ)

			// THEN
			require.NoError(t, err)
			assert.Equal(t, tt.expected, converted)
		})
	}

	t.Run("it should pass assignable values through", func(t *testing.T) {
		// GIVEN
		type point struct{ X, Y int }

		// WHEN
		converted, err := ConvertTo(point{1, 2}, reflect.TypeOf(point{}))

		// THEN
		require.NoError(t, err)
		assert.Equal(t, point{1, 2}, converted)
	})

	t.Run("it should fail on invalid values", func(t *testing.T) {
		// WHEN
		_, errInt := ConvertTo("twelve", reflect.TypeOf(0))
		_, errStruct := ConvertTo("x", reflect.TypeOf(struct{}{}))

		// THEN
		assert.Error(t, errInt)
		assert.ErrorContains(t, errStruct, "unable to convert")
	})
}
