package validations

import "fmt"

const (
	// Validation Flags. On a Validations value they represent checks that passed, on a Steps value they represent
	// checks that have been attempted. Which flags are "good enough" is up to the consumer.
	FValid Flag = 1 << iota
	FSyntax
	FDomainHasIP
	FMXLookup
	FDisposable // The domain is considered a disposable e-mail trap. A negative signal, unlike the others.
	FProvider
)

type Flag uint8

// flagNames maps the check flags to the names they're reported under, in the order the checks run.
var flagNames = []struct {
	flag Flag
	name string
}{
	{FSyntax, "format"},
	{FDomainHasIP, "dns"},
	{FMXLookup, "mx"},
	{FDisposable, "disposable"},
	{FProvider, "provider"},
}

// AsStringSlice reports the names of the check flags set, in check-execution order. The FValid marker has no name
// and is skipped.
func (f Flag) AsStringSlice() []string {
	result := make([]string, 0, len(flagNames))
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			result = append(result, fn.name)
		}
	}

	return result
}

// Validations holds the validation checks that passed.
type Validations uint8

func (v Validations) String() string {
	return fmt.Sprintf("%08b", v)
}

// IsValid returns true if the Validations are considered successful
func (v Validations) IsValid() bool {
	return v.HasFlag(FValid)
}

// MarkAsInvalid clears the FValid bit
func (v *Validations) MarkAsInvalid() {
	*v &^= Validations(FValid)
}

// MarkAsValid sets the FValid bit
func (v *Validations) MarkAsValid() {
	*v |= Validations(FValid)
}

// SetFlag defines a flag on the type and returns a copy
func (v *Validations) SetFlag(new Flag) Validations {
	*v |= Validations(new)

	return *v
}

// RemoveFlag clears a flag and returns a copy
func (v Validations) RemoveFlag(f Flag) Validations {
	return v &^ Validations(f)
}

// HasFlag returns true if the type has the flag (or flags) specified
func (v Validations) HasFlag(f Flag) bool {
	return v&Validations(f) != 0
}

// IsValidationsForValidDomain checks if a mask of validations really marks a domain as reachable.
func (v Validations) IsValidationsForValidDomain() bool {
	return v.HasFlag(FSyntax) && (v.HasFlag(FDomainHasIP) || v.HasFlag(FMXLookup))
}
