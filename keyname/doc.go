// Package keyname documents the conventional vocabulary for key
// identifiers used in binding tables.
//
// The registry treats key identifiers as opaque strings and never
// validates them; this package is advisory. It exists so that tooling and
// configuration around the registry can agree on one spelling per special
// key ("Escape" rather than "esc", "ESC", or "escape") and fold legacy
// spellings onto it:
//
//	reg.Set(keyname.Canonical("esc"), []string{"Pause"})
//
// Printable keys are identified by their character, uppercased ("A", "8",
// "$"). Special keys use the canonical names defined here.
package keyname
