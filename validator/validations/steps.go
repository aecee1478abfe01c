package validations

import "fmt"

// Steps holds the validation steps performed, they do not signify validity
type Steps uint8

func (v Steps) String() string {
	return fmt.Sprintf("%08b", v)
}

// HasBeenValidated returns true if any validation steps have actually been taken.
func (v Steps) HasBeenValidated() bool {
	return v > 0
}

// SetFlag defines a flag on the type and returns a copy
func (v *Steps) SetFlag(new Flag) Steps {
	*v |= Steps(new)

	return *v
}

// RemoveFlag clears a flag and returns a copy
func (v Steps) RemoveFlag(f Flag) Steps {
	return v &^ Steps(f)
}

// HasFlag returns true if the type has the flag (or flags) specified
func (v Steps) HasFlag(f Flag) bool {
	return v&Steps(f) != 0
}

// AsStringSlice reports the names of the steps taken, in check-execution order.
func (v Steps) AsStringSlice() []string {
	return Flag(v).AsStringSlice()
}
