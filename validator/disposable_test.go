package validator

import "testing"

func Test_isDisposableDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   bool
	}{
		// The good
		{name: "regular domain", domain: "example.org"},
		{name: "provider domain", domain: "gmail.com"},
		{name: "empty input, nothing to judge", domain: ""},

		// The bad
		{name: "known trap", domain: "mailinator.com", want: true},
		{name: "known trap", domain: "yopmail.com", want: true},
		{name: "very short domain", domain: "a.b", want: true},
		{name: "suspicious tld", domain: "win-an-iphone.click", want: true},
		{name: "suspicious tld", domain: "freemail.tk", want: true},
		{name: "machine generated", domain: "x8f2kq9zlt3m.com", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDisposableDomain(tt.domain); got != tt.want {
				t.Errorf("isDisposableDomain(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}
