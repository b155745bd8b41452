package keybind

// DefaultBindings returns a ready-to-use binding table for a typical
// trick-skating control scheme. The table is freshly allocated on every
// call, so it can be handed straight to NewFrom and mutated without
// affecting later callers.
func DefaultBindings() Table {
	return Table{
		// Movement
		"Up":    {"Accelerate"},
		"Down":  {"Brake"},
		"Left":  {"TurnLeft"},
		"Right": {"TurnRight"},

		// Air control
		"Space": {"Jump"},
		"Shift": {"Crouch"},

		// Tricks
		"A": {"TrickOne"},
		"S": {"TrickTwo"},
		"D": {"TrickThree"},
		"F": {"Grind"},

		// System
		"Escape": {"Pause"},
		"Tab":    {"ToggleScoreboard"},
	}
}
