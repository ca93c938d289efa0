package attrctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase_ScalarGettersReturnDefault(t *testing.T) {
	t.Parallel()
	var c Context = Base{}

	assert.Equal(t, int64(7), c.GetInt("missing", 7))
	assert.Equal(t, int64(-1), c.GetInt("missing", -1))
	assert.Equal(t, 3.25, c.GetDouble("missing", 3.25))
	assert.Equal(t, "fallback", c.GetString("missing", "fallback"))
	assert.Equal(t, "", c.GetString("missing", ""))
}

func TestBase_ListGettersReturnEmpty(t *testing.T) {
	t.Parallel()
	var c Context = Base{}

	assert.Len(t, c.GetIntList("missing"), 0)
	assert.Len(t, c.GetDoubleList("missing"), 0)
	assert.Len(t, c.GetStringList("missing"), 0)
}

func TestBase_ItemCountIsZero(t *testing.T) {
	t.Parallel()
	var c Context = Base{}
	assert.Equal(t, 0, c.GetItemCount())
}

func TestBase_IgnoresStoredValues(t *testing.T) {
	t.Parallel()
	// A provider that overrides only GetDouble. The un-overridden GetInt
	// must still treat "score" as absent and hand back the default, even
	// though a double attribute of that name exists.
	c := scoreOnly{}

	assert.Equal(t, 3.14, c.GetDouble("score", 0))
	assert.Equal(t, int64(7), c.GetInt("score", 7))
}

func TestBase_AssignerIsSafeToInvoke(t *testing.T) {
	t.Parallel()
	var c Context = Base{}

	a := c.GetItemAttrAssigner(0)
	require.NotNil(t, a)
	assert.Equal(t, StatusOK, a.SetInt("flag", 1))
	assert.Equal(t, StatusOK, a.SetDouble("weight", 0.5))
	assert.Equal(t, StatusOK, a.SetString("tag", "a"))

	// Out-of-range on a non-collection is still a safe handle.
	a = c.GetItemAttrAssigner(99)
	require.NotNil(t, a)
	assert.Equal(t, StatusOK, a.SetInt("flag", 1))
}

func TestBase_SetIntReportsSuccess(t *testing.T) {
	t.Parallel()
	var c Context = Base{}
	assert.Equal(t, StatusOK, c.SetInt("flag", 1))
}

// scoreOnly backs a single double attribute and nothing else.
type scoreOnly struct {
	Base
}

func (scoreOnly) GetDouble(attr string, def float64) float64 {
	if attr == "score" {
		return 3.14
	}
	return def
}
