package pantry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "olive oil", Normalize("  Olive Oil "))
	assert.Equal(t, "", Normalize("   "))
}

func TestAddNormalizesAndDedupes(t *testing.T) {
	s := New()

	require.True(t, s.Add(" Eggs "))
	require.True(t, s.Add("milk"))
	assert.False(t, s.Add("EGGS"), "duplicate after normalization")
	assert.False(t, s.Add("   "), "blank input")

	assert.Equal(t, []string{"eggs", "milk"}, s.Items())
	assert.Equal(t, 2, s.Len())
}

func TestRemovePreservesOrder(t *testing.T) {
	s := New()
	s.Add("a")
	s.Add("b")
	s.Add("c")

	require.True(t, s.Remove(1))
	assert.Equal(t, []string{"a", "c"}, s.Items())

	assert.False(t, s.Remove(5))
	assert.False(t, s.Remove(-1))
}

func TestRemoveLast(t *testing.T) {
	s := New()
	_, ok := s.RemoveLast()
	assert.False(t, ok)

	s.Add("flour")
	s.Add("sugar")
	last, ok := s.RemoveLast()
	require.True(t, ok)
	assert.Equal(t, "sugar", last)
	assert.Equal(t, []string{"flour"}, s.Items())
}

func TestClear(t *testing.T) {
	s := New()
	s.Add("salt")
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Items())
}

func TestItemsReturnsCopy(t *testing.T) {
	s := New()
	s.Add("salt")

	items := s.Items()
	items[0] = "mutated"
	assert.Equal(t, []string{"salt"}, s.Items())
}
