package validator

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/AzzMarci/deepverify-api/validator/validations"
)

// checkEmailAddressSyntax checks for "common sense" e-mail address syntax. It doesn't try to be fully compliant.
// It's the only check that aborts the sequence, the network checks degrade the result instead.
func checkEmailAddressSyntax(a *Artifact) error {
	a.Steps.SetFlag(validations.FSyntax)

	start := time.Now()
	defer func() {
		a.Timings.Add("checkEmailAddressSyntax", time.Since(start))
	}()

	_, err := mail.ParseAddress(a.email.Address)
	if err != nil {
		return ValidationError{
			Validator: "checkEmailAddressSyntax",
			Internal:  err,
			error:     ErrEmailAddressSyntax,
		}
	}

	// Perform additional checks to weed out commonly occurring errors (see tests for details)
	if !looksLikeValidLocalPart(a.email.Local) {
		return ValidationError{
			Validator: "checkEmailAddressSyntax",
			Internal:  fmt.Errorf("local part '%s' has invalid syntax", a.email.Local),
			error:     ErrEmailAddressSyntax,
		}
	}

	if !looksLikeValidDomain(a.email.Domain) {
		return ValidationError{
			Validator: "checkEmailAddressSyntax",
			Internal:  fmt.Errorf("domain part '%s' has invalid syntax", a.email.Domain),
			error:     ErrEmailAddressSyntax,
		}
	}

	a.Validations.SetFlag(validations.FSyntax)
	return nil
}

// checkDomainHasAddress performs an A/AAAA lookup on the domain. Lookup failures of any kind, timeouts included,
// count as "domain doesn't exist" and don't abort the run.
func checkDomainHasAddress(a *Artifact) error {
	a.Steps.SetFlag(validations.FDomainHasIP)

	ctx, cancel := getEarliestDeadlineCTX(a.ctx, a.lookupTimeout)
	defer cancel()

	start := time.Now()
	addrs, err := a.resolver.LookupIPAddr(ctx, a.email.Domain)
	a.Timings.Add("checkDomainHasAddress", time.Since(start))

	if err == nil && len(addrs) > 0 {
		a.Validations.SetFlag(validations.FDomainHasIP)
	}

	return nil
}

// checkDomainHasMX performs a DNS lookup and fetches MX records. It's skipped entirely when the domain didn't
// resolve, a missing MX by itself doesn't fail the run either: some domains receive mail on their A record.
func checkDomainHasMX(a *Artifact) error {
	if !a.Validations.HasFlag(validations.FDomainHasIP) {
		return nil
	}

	a.Steps.SetFlag(validations.FMXLookup)

	ctx, cancel := getEarliestDeadlineCTX(a.ctx, a.lookupTimeout)
	defer cancel()

	start := time.Now()
	mxs, err := fetchMXHosts(ctx, a.resolver, a.email.Domain)
	a.Timings.Add("checkDomainHasMX", time.Since(start))

	if err == nil && len(mxs) > 0 {
		a.mx = mxs
		a.Validations.SetFlag(validations.FMXLookup)
	}

	return nil
}

// checkNotDisposable matches the domain against the compiled-in disposable set and heuristics. Setting the flag
// means the domain IS considered disposable, it's the one check where the flag is a negative signal.
func checkNotDisposable(a *Artifact) error {
	a.Steps.SetFlag(validations.FDisposable)

	start := time.Now()
	disposable := isDisposableDomain(a.email.Domain)
	a.Timings.Add("checkNotDisposable", time.Since(start))

	if disposable {
		a.Validations.SetFlag(validations.FDisposable)
	}

	return nil
}

// checkProvider matches the domain against the compiled-in table of well-known mailbox providers.
func checkProvider(a *Artifact) error {
	a.Steps.SetFlag(validations.FProvider)

	start := time.Now()
	provider, found := providerForDomain(a.email.Domain)
	a.Timings.Add("checkProvider", time.Since(start))

	if found {
		a.provider = provider
		a.Validations.SetFlag(validations.FProvider)
	}

	return nil
}
