package generics

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceMap(t *testing.T) {
	got := SliceMap([]int{1, 2, 3}, func(e int) string { return string(rune('a' + e - 1)) })
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Empty(t, SliceMap([]int(nil), func(e int) int { return e }))
}

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := MakeSet[int](10)
	assert.Len(t, s, 0)

	// Check inserting and recovery.
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	s.Insert(5, 3)
	assert.Len(t, s, 3)
	assert.Equal(t, []int{3, 5, 7}, s.Sorted(cmp.Compare[int]))

	delete(s, 7)
	assert.Len(t, s, 2)
	assert.False(t, s.Has(7))
}

func TestDedup(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, Dedup([]int{3, 1, 3, 2, 1}))
	assert.Empty(t, Dedup([]string{}))
}
