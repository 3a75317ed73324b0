package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Run("it should deduplicate values", func(t *testing.T) {
		// WHEN
		s := NewWithValues("a", "b", "a")

		// THEN
		assert.Equal(t, 2, s.Size())
		assert.True(t, s.Contains("a"))
		assert.False(t, s.Contains("c"))
	})

	t.Run("it should add values", func(t *testing.T) {
		// GIVEN
		s := New[int]()

		// WHEN
		s.Add(1)
		s.Add(1)

		// THEN
		assert.Equal(t, 1, s.Size())
		assert.True(t, s.Contains(1))
	})
}
