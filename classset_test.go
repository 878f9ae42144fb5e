package cssdrift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassSet_AddDedupAndOrder(t *testing.T) {
	set := NewClassSet()
	set.Add("b")
	set.Add("a")
	set.Add("b")
	set.Add("")

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"b", "a"}, set.Values())
	assert.Equal(t, []string{"a", "b"}, set.Sorted())
	assert.True(t, set.Has("a"))
	assert.False(t, set.Has(""))
}

func TestClassSet_AddAll(t *testing.T) {
	set := NewClassSet("a", "b")
	set.AddAll(NewClassSet("b", "c"))
	set.AddAll(nil)

	assert.Equal(t, []string{"a", "b", "c"}, set.Values())
}

func TestClassSet_EmptyValuesIsNonNil(t *testing.T) {
	// Empty sets must serialize as [] rather than null.
	assert.NotNil(t, NewClassSet().Values())
	assert.Empty(t, NewClassSet().Values())
}
