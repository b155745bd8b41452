package keybind

import (
	"github.com/rs/zerolog"

	"github.com/dshills/keybind/internal/logging"
)

// Registry owns a binding table and provides mutation and lookup over it.
//
// All operations run synchronously on the calling goroutine. A Registry
// performs no locking; see the package documentation for the concurrency
// contract.
type Registry struct {
	table  Table
	logger zerolog.Logger
}

// New creates a registry with an empty binding table.
func New() *Registry {
	return NewFrom(nil)
}

// NewFrom creates a registry that adopts table as its binding table.
// The table is taken by reference, not copied: mutation of the map by the
// caller after construction is visible through the registry. Pass
// table.Clone() when isolation is wanted. A nil table starts empty.
func NewFrom(table Table) *Registry {
	if table == nil {
		table = make(Table)
	}
	return &Registry{
		table:  table,
		logger: logging.GetLogger("keybind"),
	}
}

// Add appends the given action names to the list bound to key, preserving
// call order. If key has no binding, a new list is created for it first.
// Add never deduplicates: callers may introduce the same action name more
// than once.
func (r *Registry) Add(key string, actions ...string) {
	r.table[key] = append(r.table[key], actions...)
	r.logger.Trace().Str("key", key).Strs("actions", actions).Msg("Appended binding")
}

// Set unconditionally replaces the binding for key with actions, whether
// or not a binding existed. The slice is adopted by reference.
func (r *Registry) Set(key string, actions []string) {
	r.table[key] = actions
	r.logger.Trace().Str("key", key).Strs("actions", actions).Msg("Replaced binding")
}

// Actions returns the action list bound to key, or nil if key is unbound.
// An unbound key is a normal case, not a failure.
//
// The result is the live stored list, not a copy: appending to or
// reordering the returned slice alters the registry's state. Callers that
// need an isolated view should use Clone.
func (r *Registry) Actions(key string) []string {
	return r.table[key]
}

// IsBound reports whether key currently has a non-empty binding.
func (r *Registry) IsBound(key string) bool {
	return len(r.table[key]) > 0
}

// Unbind removes the binding for key. Unbinding a key that has no binding
// is a no-op.
func (r *Registry) Unbind(key string) {
	delete(r.table, key)
	r.logger.Trace().Str("key", key).Msg("Removed binding")
}

// Keys returns the bound key identifiers in sorted order.
func (r *Registry) Keys() []string {
	return r.table.Keys()
}

// Len returns the number of bound key identifiers.
func (r *Registry) Len() int {
	return len(r.table)
}

// Table returns the registry's live binding table. Like Actions, this is
// a view, not a copy.
func (r *Registry) Table() Table {
	return r.table
}

// Clone returns a registry with a deep copy of the binding table.
func (r *Registry) Clone() *Registry {
	return NewFrom(r.table.Clone())
}

// Merge appends every action list in table to the corresponding binding,
// with Add semantics: existing lists are extended, not replaced.
func (r *Registry) Merge(table Table) {
	r.table.Merge(table)
	r.logger.Trace().Int("keys", len(table)).Msg("Merged binding table")
}
