package validations

import (
	"reflect"
	"testing"
)

func TestValidations_HasFlag(t *testing.T) {
	tests := []struct {
		name string
		v    Validations
		tf   Flag
		want bool
	}{
		{want: true, name: "has flag", v: Validations(FValid), tf: FValid},
		{want: true, name: "has flag (multiple)", v: Validations(FValid | FDomainHasIP), tf: FValid},
		{want: true, name: "has flag (multiple)", v: Validations(FSyntax | FDomainHasIP), tf: FDomainHasIP},

		{name: "doesn't have flag", v: 0, tf: FValid},
		{name: "doesn't have flag", v: Validations(FDomainHasIP), tf: FValid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.HasFlag(tt.tf); got != tt.want {
				t.Errorf("HasFlag() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidations_IsValid(t *testing.T) {
	tests := []struct {
		name string
		v    Validations
		want bool
	}{
		{want: true, name: "valid marker set", v: Validations(FValid)},
		{name: "default value", v: 0},
		{name: "some flags, no marker", v: Validations(FSyntax | FDomainHasIP)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidations_MarkAsValidInvalid(t *testing.T) {
	var v Validations

	v.MarkAsValid()
	if !v.IsValid() {
		t.Errorf("Expected %v to be valid after marking", v)
	}

	v.MarkAsInvalid()
	if v.IsValid() {
		t.Errorf("Expected %v to be invalid after marking", v)
	}
}

func TestValidations_IsValidationsForValidDomain(t *testing.T) {
	tests := []struct {
		name string
		v    Validations
		want bool
	}{
		{want: true, name: "all domain flags", v: Validations(FSyntax | FMXLookup | FDomainHasIP)},
		{want: true, name: "domain has IP", v: Validations(FSyntax | FDomainHasIP)},
		{want: true, name: "domain has MX", v: Validations(FSyntax | FMXLookup)},

		// A valid flag alone doesn't mean the domain was seen to resolve
		{name: "valid, doesn't mean valid domain", v: Validations(FValid)},
		{name: "lookups without syntax", v: Validations(FMXLookup | FDomainHasIP)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValidationsForValidDomain(); got != tt.want {
				t.Errorf("IsValidationsForValidDomain() = %v, want %v (%08b)", got, tt.want, tt.v)
			}
		})
	}
}

func TestValidations_RemoveFlag(t *testing.T) {
	v := Validations(FSyntax | FMXLookup)

	if got := v.RemoveFlag(FMXLookup); got.HasFlag(FMXLookup) || !got.HasFlag(FSyntax) {
		t.Errorf("RemoveFlag() = %08b, expected only the MX flag to be cleared", got)
	}
}

func TestFlag_AsStringSlice(t *testing.T) {
	tests := []struct {
		name string
		f    Flag
		want []string
	}{
		{name: "no flags", f: 0, want: []string{}},
		{name: "valid marker has no name", f: FValid, want: []string{}},
		{name: "single", f: FSyntax, want: []string{"format"}},
		{name: "order follows execution order", f: FProvider | FSyntax | FMXLookup, want: []string{"format", "mx", "provider"}},
		{name: "all checks", f: FSyntax | FDomainHasIP | FMXLookup | FDisposable | FProvider, want: []string{"format", "dns", "mx", "disposable", "provider"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.AsStringSlice(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AsStringSlice() = %v, want %v", got, tt.want)
			}
		})
	}
}
