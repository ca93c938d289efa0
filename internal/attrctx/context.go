package attrctx

// Status codes shared by all write operations. Zero is success; any
// non-zero value is a failure the caller must check for explicitly.
const (
	StatusOK       = 0
	StatusReadOnly = 1
	StatusBadIndex = 2
)

// Context is the read/write surface a concrete attribute source must
// implement. Attribute names are caller-supplied keys; no schema
// validation happens at this layer. The zero-value semantics of every
// method are provided by Base, so a provider only overrides what it
// actually backs.
//
// A Context is externally owned. This package never copies or retains
// one, and assumes at most one logical caller drives a given instance at
// a time; providers that want more add their own synchronization.
type Context interface {
	// GetInt returns the integer attribute named attr, or def if the
	// attribute is absent.
	GetInt(attr string, def int64) int64

	// GetDouble returns the floating-point attribute named attr, or def
	// if the attribute is absent.
	GetDouble(attr string, def float64) float64

	// GetString returns the string attribute named attr, or def if the
	// attribute is absent. The returned string shares the provider's
	// backing storage semantics; providers that hand out views must
	// document their lifetime.
	GetString(attr string, def string) string

	// GetIntList returns the integer-list attribute named attr, or an
	// empty sequence if absent. Absent and present-but-empty are
	// indistinguishable through this interface.
	GetIntList(attr string) []int64

	// GetDoubleList is GetIntList in the floating-point domain.
	GetDoubleList(attr string) []float64

	// GetStringList is GetIntList in the string domain.
	GetStringList(attr string) []string

	// GetItemCount reports how many items the context holds when viewed
	// as a collection of records. Non-collection contexts report 0.
	GetItemCount() int

	// GetItemAttrAssigner returns a handle for writing attributes on the
	// item at index. The handle is a first-class value the runtime may
	// retain and invoke later; the provider must keep the referenced
	// item stable for the handle's lifetime. An out-of-range index
	// yields a handle whose writes fail, never one that corrupts a
	// neighboring item.
	GetItemAttrAssigner(index int) Assigner

	// SetInt writes an integer attribute on the context itself and
	// returns a status code, non-zero on failure.
	SetInt(attr string, value int64) int
}

// Assigner is a deferred write handle bound to one item of a
// collection-shaped Context. Every method returns a status code with the
// same zero/non-zero convention as Context.SetInt.
type Assigner interface {
	SetInt(attr string, value int64) int
	SetDouble(attr string, value float64) int
	SetString(attr string, value string) int
}

// Base implements every Context method as the documented safe default: it
// ignores stored values entirely, so every scalar read resolves to the
// caller's default and every list read to an empty sequence. It is the
// fallback for partially-implemented providers, not a usable data
// source. Embed it and override the methods your source backs.
type Base struct{}

var _ Context = Base{}

func (Base) GetInt(attr string, def int64) int64 { return def }
func (Base) GetDouble(attr string, def float64) float64 { return def }
func (Base) GetString(attr string, def string) string { return def }
func (Base) GetIntList(attr string) []int64 { return nil }
func (Base) GetDoubleList(attr string) []float64 { return nil }
func (Base) GetStringList(attr string) []string { return nil }
func (Base) GetItemCount() int { return 0 }
func (Base) GetItemAttrAssigner(index int) Assigner { return discardAssigner{} }
func (Base) SetInt(attr string, value int64) int { return StatusOK }

// discardAssigner accepts and drops every write. It is what Base hands
// out so that even a completely un-overridden Context yields a handle
// that is safe to invoke.
type discardAssigner struct{}

func (discardAssigner) SetInt(attr string, value int64) int { return StatusOK }
func (discardAssigner) SetDouble(attr string, value float64) int { return StatusOK }
func (discardAssigner) SetString(attr string, value string) int { return StatusOK }
