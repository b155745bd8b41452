package keyname

import "strings"

// Canonical names for special keys.
const (
	Escape    = "Escape"
	Enter     = "Enter"
	Tab       = "Tab"
	Backspace = "Backspace"
	Delete    = "Delete"
	Insert    = "Insert"
	Home      = "Home"
	End       = "End"
	PageUp    = "PageUp"
	PageDown  = "PageDown"

	Up    = "Up"
	Down  = "Down"
	Left  = "Left"
	Right = "Right"

	Space = "Space"
	Shift = "Shift"
	Ctrl  = "Ctrl"
	Alt   = "Alt"

	CapsLock   = "CapsLock"
	NumLock    = "NumLock"
	ScrollLock = "ScrollLock"
	Pause      = "Pause"

	F1  = "F1"
	F2  = "F2"
	F3  = "F3"
	F4  = "F4"
	F5  = "F5"
	F6  = "F6"
	F7  = "F7"
	F8  = "F8"
	F9  = "F9"
	F10 = "F10"
	F11 = "F11"
	F12 = "F12"
)

// aliases maps lowercase spellings and common abbreviations to canonical
// names. A literal " " is included because legacy binding tables identify
// the space bar by its character.
var aliases = map[string]string{
	"escape": Escape,
	"esc":    Escape,

	"enter":  Enter,
	"return": Enter,
	"cr":     Enter,

	"tab": Tab,

	"backspace": Backspace,
	"bs":        Backspace,

	"delete": Delete,
	"del":    Delete,

	"insert": Insert,
	"ins":    Insert,

	"home": Home,
	"end":  End,

	"pageup":   PageUp,
	"pgup":     PageUp,
	"pagedown": PageDown,
	"pgdn":     PageDown,

	"up":    Up,
	"down":  Down,
	"left":  Left,
	"right": Right,

	"space":    Space,
	"spacebar": Space,
	" ":        Space,

	"shift":   Shift,
	"ctrl":    Ctrl,
	"control": Ctrl,
	"alt":     Alt,

	"capslock":   CapsLock,
	"numlock":    NumLock,
	"scrolllock": ScrollLock,
	"pause":      Pause,

	"f1":  F1,
	"f2":  F2,
	"f3":  F3,
	"f4":  F4,
	"f5":  F5,
	"f6":  F6,
	"f7":  F7,
	"f8":  F8,
	"f9":  F9,
	"f10": F10,
	"f11": F11,
	"f12": F12,
}

// Canonical returns the canonical spelling for a key identifier. Special
// key names are matched case-insensitively and common abbreviations are
// folded ("esc", "pgup", "return"). Single-character identifiers are
// uppercased. Anything else is returned unchanged.
//
// Whitespace is not trimmed: " " is a recognized identifier for Space.
func Canonical(name string) string {
	if canonical, ok := aliases[strings.ToLower(name)]; ok {
		return canonical
	}
	if runes := []rune(name); len(runes) == 1 {
		return strings.ToUpper(name)
	}
	return name
}

// IsKnown reports whether name is a canonical special-key name or a
// recognized alias of one. Single-character identifiers are valid key
// identifiers but are not part of the special-key vocabulary, so IsKnown
// returns false for them.
func IsKnown(name string) bool {
	_, ok := aliases[strings.ToLower(name)]
	return ok
}
