// Package keybind provides an in-memory registry mapping keyboard key
// identifiers to named application actions.
//
// The registry is the input layer's source of truth for "what does this
// key do": each key identifier is bound to an ordered list of action
// names, and the surrounding input layer resolves captured key events
// against it. Capturing events, dispatching actions, and persisting
// bindings are all out of scope; the registry only stores and answers.
//
// # Key Concepts
//
// Key identifier: a string naming a physical or logical input key, such
// as "A", "Space", or "Escape". Identifiers are opaque to the registry;
// the keyname package documents the conventional vocabulary.
//
// Action name: a string naming an abstract application action, such as
// "Jump", decoupled from any specific key.
//
// Table: the full binding table, from key identifier to action list.
//
// # Usage
//
//	reg := keybind.NewFrom(keybind.DefaultBindings())
//
//	// Rebind and extend
//	reg.Set("Space", []string{"Jump"})
//	reg.Add("Space", "TrickOne")
//
//	// Resolve a key
//	if reg.IsBound("Space") {
//	    for _, action := range reg.Actions("Space") {
//	        // dispatch action
//	    }
//	}
//
// # Ordering and Duplicates
//
// Action lists preserve insertion order and are never deduplicated: the
// same action name may appear under several keys, and more than once
// within one key's list.
//
// # Concurrency
//
// A Registry is not safe for concurrent use. It assumes exclusive
// single-threaded ownership by the input layer; callers sharing one
// across goroutines must add their own synchronization.
package keybind
