package memctx

import "github.com/vk/attrbridge/internal/attrctx"

// ReadOnly wraps a Context so that every write path fails with
// StatusReadOnly while all reads pass through unchanged. Useful for
// embedding hosts that hand scripts a context they must not mutate, and
// for exercising the write-failure contract in tests.
func ReadOnly(c attrctx.Context) attrctx.Context {
	return readOnly{c}
}

type readOnly struct {
	attrctx.Context
}

func (r readOnly) SetInt(attr string, value int64) int {
	return attrctx.StatusReadOnly
}

func (r readOnly) GetItemAttrAssigner(index int) attrctx.Assigner {
	return rejectAssigner{}
}

// rejectAssigner fails every write with StatusReadOnly.
type rejectAssigner struct{}

func (rejectAssigner) SetInt(attr string, value int64) int { return attrctx.StatusReadOnly }
func (rejectAssigner) SetDouble(attr string, value float64) int { return attrctx.StatusReadOnly }
func (rejectAssigner) SetString(attr string, value string) int { return attrctx.StatusReadOnly }
