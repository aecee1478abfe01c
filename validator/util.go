package validator

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// fetchMXHosts collects up to 10 MX hosts for a given domain
func fetchMXHosts(ctx context.Context, resolver Resolver, domain string) ([]string, error) {

	mxs, err := resolver.LookupMX(ctx, domain)
	if err != nil {
		return []string{}, fmt.Errorf("MX lookup failed %w", err)
	}

	if len(mxs) == 0 {
		return []string{}, fmt.Errorf("no MX records found %w", ErrInvalidHost)
	}

	// Reading an external source, limiting to a liberal amount
	var allocateMax = 10
	if l := len(mxs); l < 10 {
		allocateMax = l
	}

	var collected = make([]string, 0, allocateMax)
	for _, mx := range mxs[:allocateMax] {

		// Hosts might end on a "." (which isn't bad) or consist solely out of a "." (which is bad) this produces a canonical test basis
		host := strings.TrimRight(mx.Host, ".")
		if MightBeAHostOrIP(host) {
			collected = append(collected, host)
		}
	}

	if len(collected) == 0 {
		err = fmt.Errorf("tried %d MX host(s), all were invalid %w", len(mxs), ErrInvalidHost)
	}

	return collected, err
}

// MightBeAHostOrIP is a very rudimentary check to see if the argument could be either a host name or IP address
// It aims on speed and not for correctness. It's intended to weed-out bogus responses such as '.'
//
//nolint:gocyclo
func MightBeAHostOrIP(h string) bool {

	// Normally we can assume that host names have a tld or consists at least out of 4 characters
	lastCharIndex := len(h) - 1
	if 4 >= lastCharIndex || lastCharIndex >= 253 {
		return false
	}

	var dotCount uint8
	for i, c := range h {
		switch {
		case 48 <= c && c <= 57 /* 0-9 */ :
		case 65 <= c && c <= 90 /* A-Z */ :
		case 97 <= c && c <= 122 /* a-z */ :
		case c == 45 /* dash - */ :
		case c == 46 && 0 < i && i < lastCharIndex /* dot . */ :
			dotCount++
		default:
			return false
		}
	}

	// We need at least one dot for a domain to be valid
	return dotCount > 0
}

//nolint:gocyclo
func looksLikeValidLocalPart(local string) bool {

	var length = len(local)
	if length < 1 {
		return false
	}

	for i, c := range local {
		switch {
		case 48 <= c && c <= 57 /* 0-9 */ :
		case 65 <= c && c <= 90 /* A-Z */ :
		case 97 <= c && c <= 122 /* a-z */ :
		case c == 46 && 0 < i && i < length-1 /* . not first or last */ :

		case c == 33 /* ! */ :
		case c == 35 /* # */ :
		case c == 36 /* $ */ :
		case c == 37 /* % */ :
		case c == 38 /* & */ :
		case c == 39 /* ' */ :
		case c == 42 /* * */ :
		case c == 43 /* + */ :
		case c == 45 /* - */ :
		case c == 47 /* / */ :
		case c == 61 /* = */ :
		case c == 63 /* ? */ :
		case c == 94 /* ^ */ :
		case c == 95 /* _ */ :
		case c == 96 /* ` */ :
		case c == 123 /* { */ :
		case c == 124 /* | */ :
		case c == 125 /* } */ :
		case c == 126 /* ~ */ :
		default:
			return false
		}
	}

	return true
}

//nolint:gocyclo
func looksLikeValidDomain(domain string) bool {
	var length = len(domain)

	// Normally we can assume that host names have a tld or consists at least out of 4 characters
	if 4 >= length || length >= 253 {
		return false
	}

	if domain[0] == 46 || domain[length-1] == 46 {
		return false
	}

	for i, c := range domain {
		switch {
		case 48 <= c && c <= 57 /* 0-9 */ :
		case 65 <= c && c <= 90 /* A-Z */ :
		case 97 <= c && c <= 122 /* a-z */ :
		case c == 45 && 0 < i /* dash - */ :
		case c == 46 /* dot . */ :
		default:
			return false
		}
	}

	return true
}

// wrapError wraps an error with the parent error and ignores the parent when it's nil
func wrapError(parent error, new error) error {
	if parent == nil {
		return new
	}

	return fmt.Errorf("%s %w", parent, new)
}

// getEarliestDeadlineCTX returns a context with the given timeout, unless the parent carries an earlier deadline.
func getEarliestDeadlineCTX(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, set := parent.Deadline(); set && deadline.Before(time.Now().Add(timeout)) {
		return context.WithCancel(parent)
	}

	return context.WithTimeout(parent, timeout)
}
