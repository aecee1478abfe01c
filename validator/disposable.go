package validator

import (
	"regexp"
	"strings"
)

// disposableDomains is the compiled-in set of known throwaway mail providers. It's read-only after process start,
// safe for unsynchronized concurrent reads.
var disposableDomains = map[string]struct{}{
	"10minutemail.com":  {},
	"guerrillamail.com": {},
	"mailinator.com":    {},
	"tempmail.org":      {},
	"temp-mail.org":     {},
	"throwaway.email":   {},
	"maildrop.cc":       {},
	"yopmail.com":       {},
	"mailnesia.com":     {},
	"mintemail.com":     {},
	"mohmal.com":        {},
	"dispostable.com":   {},
}

// suspiciousTLDs are cheap-to-register TLDs that throwaway providers rotate domains on.
var suspiciousTLDs = []string{
	".tk", ".ml", ".ga", ".cf", ".top", ".click", ".download", ".win",
}

// generatedDomainPattern catches machine-generated domains, long random label directly under .com.
var generatedDomainPattern = regexp.MustCompile(`^[a-z0-9]{10,}\.com$`)

// isDisposableDomain combines exact set membership with a few heuristics for domains the list can't keep up with.
// The domain is expected to be lowercased already.
func isDisposableDomain(domain string) bool {
	if domain == "" {
		return false
	}

	if _, ok := disposableDomains[domain]; ok {
		return true
	}

	// Very short domains barely occur outside of trap setups
	if len(domain) < 4 {
		return true
	}

	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(domain, tld) {
			return true
		}
	}

	return generatedDomainPattern.MatchString(domain)
}
