package memctx

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/attrbridge/internal/attrctx"
)

func TestStore_ScalarRoundTrip(t *testing.T) {
	t.Parallel()
	s := New()
	s.PutInt("count", 42)
	s.PutDouble("score", 3.14)
	s.PutString("label", "abc")

	assert.Equal(t, int64(42), s.GetInt("count", 0))
	assert.Equal(t, 3.14, s.GetDouble("score", 0))
	assert.Equal(t, "abc", s.GetString("label", ""))
}

func TestStore_AbsentScalarsResolveToDefault(t *testing.T) {
	t.Parallel()
	s := New()

	assert.Equal(t, int64(7), s.GetInt("missing", 7))
	assert.Equal(t, 2.5, s.GetDouble("missing", 2.5))
	assert.Equal(t, "dflt", s.GetString("missing", "dflt"))
}

func TestStore_KindMismatchBehavesLikeAbsence(t *testing.T) {
	t.Parallel()
	s := New()
	s.PutDouble("score", 3.14)

	// No coercion: an int read of a double attribute yields the default.
	assert.Equal(t, int64(7), s.GetInt("score", 7))
	assert.Equal(t, "x", s.GetString("score", "x"))
	assert.Len(t, s.GetIntList("score"), 0)
}

func TestStore_ListRoundTripPreservesOrder(t *testing.T) {
	t.Parallel()
	s := New()
	s.PutIntList("ids", []int64{3, 1, 2})
	s.PutDoubleList("weights", []float64{0.5, 0.25})
	s.PutStringList("tags", []string{"b", "a"})

	assert.Equal(t, []int64{3, 1, 2}, s.GetIntList("ids"))
	assert.Equal(t, []float64{0.5, 0.25}, s.GetDoubleList("weights"))
	assert.Equal(t, []string{"b", "a"}, s.GetStringList("tags"))
}

func TestStore_AbsentListsAreEmpty(t *testing.T) {
	t.Parallel()
	s := New()

	assert.Len(t, s.GetIntList("missing"), 0)
	assert.Len(t, s.GetDoubleList("missing"), 0)
	assert.Len(t, s.GetStringList("missing"), 0)
}

func TestStore_ListResultsAreCopies(t *testing.T) {
	t.Parallel()
	s := New()
	s.PutIntList("ids", []int64{1, 2, 3})

	got := s.GetIntList("ids")
	got[0] = 99
	assert.Equal(t, []int64{1, 2, 3}, s.GetIntList("ids"), "mutating a returned list must not touch the store")
}

func TestStore_ItemCount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, New().GetItemCount())
	assert.Equal(t, 3, NewWithItems(3).GetItemCount())

	s := New()
	idx := s.AddItem()
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, s.GetItemCount())
}

func TestStore_AssignerWritesOnlyItsItem(t *testing.T) {
	t.Parallel()
	s := NewWithItems(4)

	a := s.GetItemAttrAssigner(2)
	require.Equal(t, attrctx.StatusOK, a.SetInt("flag", 1))
	require.Equal(t, attrctx.StatusOK, a.SetDouble("weight", 0.5))
	require.Equal(t, attrctx.StatusOK, a.SetString("tag", "hot"))

	assert.Equal(t, int64(1), s.ItemInt(2, "flag", 0))
	assert.Equal(t, 0.5, s.ItemDouble(2, "weight", 0))
	assert.Equal(t, "hot", s.ItemString(2, "tag", ""))

	// Neighboring items stay untouched.
	for _, i := range []int{0, 1, 3} {
		assert.Equal(t, int64(0), s.ItemInt(i, "flag", 0), "item %d must be unaffected", i)
		assert.Equal(t, "", s.ItemString(i, "tag", ""), "item %d must be unaffected", i)
	}

	// The context's own attributes are a separate namespace.
	assert.Equal(t, int64(0), s.GetInt("flag", 0))
}

func TestStore_OutOfRangeAssignerRejectsWrites(t *testing.T) {
	t.Parallel()
	s := NewWithItems(2)

	for _, index := range []int{-1, 2, 100} {
		a := s.GetItemAttrAssigner(index)
		require.NotNil(t, a)
		assert.Equal(t, attrctx.StatusBadIndex, a.SetInt("flag", 1), "index %d", index)
	}
	for i := 0; i < 2; i++ {
		assert.Equal(t, int64(0), s.ItemInt(i, "flag", 0), "rejected write must not land anywhere")
	}
}

func TestStore_SetIntReadBack(t *testing.T) {
	t.Parallel()
	s := New()

	require.Equal(t, attrctx.StatusOK, s.SetInt("flag", 1))
	assert.Equal(t, int64(1), s.GetInt("flag", 0))
}

func TestReadOnly_WritesFailAndChangeNothing(t *testing.T) {
	t.Parallel()
	s := NewWithItems(1)
	s.PutInt("flag", 5)
	c := ReadOnly(s)

	assert.Equal(t, attrctx.StatusReadOnly, c.SetInt("flag", 1))
	assert.Equal(t, int64(5), c.GetInt("flag", 0), "failed write must leave the attribute unchanged")

	a := c.GetItemAttrAssigner(0)
	assert.Equal(t, attrctx.StatusReadOnly, a.SetInt("flag", 1))
	assert.Equal(t, int64(0), s.ItemInt(0, "flag", 0))

	// Reads pass through.
	assert.Equal(t, 1, c.GetItemCount())
}

// TestStore_ConcurrentAccess verifies the store can be driven by many
// goroutines simultaneously without data races or lost writes.
func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	const numGoroutines = 100
	s := NewWithItems(numGoroutines)
	var wg sync.WaitGroup

	// Phase 1: concurrent writes, one attribute and one item per goroutine.
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			s.PutInt(fmt.Sprintf("attr-%d", i), int64(i))
			a := s.GetItemAttrAssigner(i)
			a.SetInt("id", int64(i))
		}(i)
	}
	wg.Wait()

	// Phase 2: concurrent reads verify every write landed.
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			assert.Equal(t, int64(i), s.GetInt(fmt.Sprintf("attr-%d", i), -1), "mismatched attr for goroutine %d", i)
			assert.Equal(t, int64(i), s.ItemInt(i, "id", -1), "mismatched item attr for goroutine %d", i)
		}(i)
	}
	wg.Wait()
}
