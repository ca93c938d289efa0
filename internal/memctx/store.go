// Package memctx provides an ephemeral, thread-safe, in-memory
// implementation of the attrctx.Context interface.
//
// # Purpose
//
// This package is the reference attribute provider: it backs the full
// Context surface with plain maps so that embedding examples and the
// builtin dispatch tests have a real data source to run against. It is
// not a production store; a real deployment adapts its own record type
// to attrctx.Context instead.
//
// # Type policy
//
// Attributes are stored discriminated by kind, and lookup is strict: a
// request whose accessor kind differs from the stored kind behaves
// exactly like absence. GetInt("score", 7) on a double-valued "score"
// returns 7, it does not coerce. Providers that prefer coercion are free
// to implement it, but this one makes the no-coercion policy explicit
// and tested.
//
// # Concurrency Model
//
// A single RWMutex guards the whole store. The workload is tiny point
// lookups and writes, so fine-grained locking buys nothing here; the
// mutex also keeps item assigners and context reads mutually consistent,
// which per-attribute locking would not.
package memctx

import (
	"sync"

	"github.com/vk/attrbridge/internal/attrctx"
)

type kind uint8

const (
	kindInt kind = iota
	kindDouble
	kindString
	kindIntList
	kindDoubleList
	kindStringList
)

// attrValue is one stored attribute, discriminated by kind. Only the
// field matching the kind is meaningful.
type attrValue struct {
	kind kind
	i    int64
	d    float64
	s    string
	il   []int64
	dl   []float64
	sl   []string
}

// Store is a map-backed Context. The zero value is not usable; construct
// with New or NewWithItems.
type Store struct {
	mu    sync.RWMutex
	attrs map[string]attrValue
	items []map[string]attrValue
}

var _ attrctx.Context = (*Store)(nil)

// New creates an empty store with no items (GetItemCount reports 0).
func New() *Store {
	return &Store{attrs: make(map[string]attrValue)}
}

// NewWithItems creates a store holding n empty items.
func NewWithItems(n int) *Store {
	s := New()
	for i := 0; i < n; i++ {
		s.AddItem()
	}
	return s
}

// AddItem appends an empty item and returns its index.
func (s *Store) AddItem() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, make(map[string]attrValue))
	return len(s.items) - 1
}

// --- fixture population -------------------------------------------------

// PutInt stores an integer attribute on the context itself.
func (s *Store) PutInt(attr string, v int64) {
	s.put(attr, attrValue{kind: kindInt, i: v})
}

// PutDouble stores a floating-point attribute on the context itself.
func (s *Store) PutDouble(attr string, v float64) {
	s.put(attr, attrValue{kind: kindDouble, d: v})
}

// PutString stores a string attribute on the context itself.
func (s *Store) PutString(attr string, v string) {
	s.put(attr, attrValue{kind: kindString, s: v})
}

// PutIntList stores an integer-list attribute, preserving element order.
func (s *Store) PutIntList(attr string, v []int64) {
	s.put(attr, attrValue{kind: kindIntList, il: append([]int64(nil), v...)})
}

// PutDoubleList stores a double-list attribute, preserving element order.
func (s *Store) PutDoubleList(attr string, v []float64) {
	s.put(attr, attrValue{kind: kindDoubleList, dl: append([]float64(nil), v...)})
}

// PutStringList stores a string-list attribute, preserving element order.
func (s *Store) PutStringList(attr string, v []string) {
	s.put(attr, attrValue{kind: kindStringList, sl: append([]string(nil), v...)})
}

func (s *Store) put(attr string, v attrValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs[attr] = v
}

// --- Context: reads -----------------------------------------------------

// GetInt returns the integer attribute, or def on absence or kind
// mismatch.
func (s *Store) GetInt(attr string, def int64) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.attrs[attr]; ok && v.kind == kindInt {
		return v.i
	}
	return def
}

// GetDouble returns the floating-point attribute, or def on absence or
// kind mismatch.
func (s *Store) GetDouble(attr string, def float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.attrs[attr]; ok && v.kind == kindDouble {
		return v.d
	}
	return def
}

// GetString returns the string attribute, or def on absence or kind
// mismatch. The result is an independent Go string; it does not alias
// mutable store state.
func (s *Store) GetString(attr string, def string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.attrs[attr]; ok && v.kind == kindString {
		return v.s
	}
	return def
}

// GetIntList returns a copy of the integer-list attribute, or an empty
// sequence on absence or kind mismatch.
func (s *Store) GetIntList(attr string) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.attrs[attr]; ok && v.kind == kindIntList {
		return append([]int64(nil), v.il...)
	}
	return nil
}

// GetDoubleList returns a copy of the double-list attribute, or an empty
// sequence on absence or kind mismatch.
func (s *Store) GetDoubleList(attr string) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.attrs[attr]; ok && v.kind == kindDoubleList {
		return append([]float64(nil), v.dl...)
	}
	return nil
}

// GetStringList returns a copy of the string-list attribute, or an empty
// sequence on absence or kind mismatch.
func (s *Store) GetStringList(attr string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.attrs[attr]; ok && v.kind == kindStringList {
		return append([]string(nil), v.sl...)
	}
	return nil
}

// GetItemCount reports the number of items in the store's collection.
func (s *Store) GetItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// --- Context: writes ----------------------------------------------------

// SetInt writes an integer attribute on the context itself.
func (s *Store) SetInt(attr string, value int64) int {
	s.PutInt(attr, value)
	return attrctx.StatusOK
}

// GetItemAttrAssigner returns a write handle bound to the item at index.
// The handle stays valid as long as the store does: items are only ever
// appended, so the index remains stable. An out-of-range index yields a
// handle whose every write returns StatusBadIndex and mutates nothing.
func (s *Store) GetItemAttrAssigner(index int) attrctx.Assigner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		return badIndexAssigner{}
	}
	return &itemAssigner{store: s, index: index}
}

// --- per-item read-back (test/introspection surface) --------------------

// ItemInt reads an integer attribute from the item at index, with the
// same absence/mismatch semantics as GetInt. Out-of-range reads resolve
// to def.
func (s *Store) ItemInt(index int, attr string, def int64) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		return def
	}
	if v, ok := s.items[index][attr]; ok && v.kind == kindInt {
		return v.i
	}
	return def
}

// ItemDouble is ItemInt in the floating-point domain.
func (s *Store) ItemDouble(index int, attr string, def float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		return def
	}
	if v, ok := s.items[index][attr]; ok && v.kind == kindDouble {
		return v.d
	}
	return def
}

// ItemString is ItemInt in the string domain.
func (s *Store) ItemString(index int, attr string, def string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		return def
	}
	if v, ok := s.items[index][attr]; ok && v.kind == kindString {
		return v.s
	}
	return def
}

// itemAssigner writes through to exactly one item of its store.
type itemAssigner struct {
	store *Store
	index int
}

func (a *itemAssigner) SetInt(attr string, value int64) int {
	return a.set(attr, attrValue{kind: kindInt, i: value})
}

func (a *itemAssigner) SetDouble(attr string, value float64) int {
	return a.set(attr, attrValue{kind: kindDouble, d: value})
}

func (a *itemAssigner) SetString(attr string, value string) int {
	return a.set(attr, attrValue{kind: kindString, s: value})
}

func (a *itemAssigner) set(attr string, v attrValue) int {
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	a.store.items[a.index][attr] = v
	return attrctx.StatusOK
}

// badIndexAssigner rejects every write. It is what GetItemAttrAssigner
// hands out for an out-of-range index so a stale or miscomputed index
// can never touch a neighboring item.
type badIndexAssigner struct{}

func (badIndexAssigner) SetInt(attr string, value int64) int { return attrctx.StatusBadIndex }
func (badIndexAssigner) SetDouble(attr string, value float64) int { return attrctx.StatusBadIndex }
func (badIndexAssigner) SetString(attr string, value string) int { return attrctx.StatusBadIndex }
