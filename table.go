package keybind

import "sort"

// Table is a binding table: it maps a key identifier to the ordered list
// of action names bound to that key.
//
// A Table may be built literally and handed to NewFrom:
//
//	keybind.NewFrom(keybind.Table{
//	    "A":     {"Jump", "Crouch"},
//	    "Space": {"TrickOne"},
//	})
//
// Values are always string slices, so a binding can never hold anything
// but an ordered action list. The empty table is valid.
type Table map[string][]string

// Clone returns a deep copy of the table. The copy shares no backing
// storage with the original.
func (t Table) Clone() Table {
	clone := make(Table, len(t))
	for key, actions := range t {
		clone[key] = append([]string(nil), actions...)
	}
	return clone
}

// Merge appends each action list in other to the corresponding list in t,
// creating bindings for keys t does not have. Existing lists are extended,
// never replaced. The appended elements are copied out of other.
func (t Table) Merge(other Table) {
	for key, actions := range other {
		t[key] = append(t[key], actions...)
	}
}

// Keys returns the bound key identifiers in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of bound key identifiers.
func (t Table) Len() int {
	return len(t)
}
