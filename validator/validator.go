package validator

import (
	"context"
	"net"
	"time"

	"github.com/AzzMarci/deepverify-api/types"
	"github.com/AzzMarci/deepverify-api/validator/validations"
)

// DefaultLookupTimeout bounds each individual DNS lookup, a slow resolver shouldn't stall the serving layer.
const DefaultLookupTimeout = 2 * time.Second

// CheckFn is the signature of a full check run. It never returns an error: input and lookup problems are encoded in
// the Result.
type CheckFn func(ctx context.Context, parts types.EmailParts, options ...ArtifactFn) Result

func NewEmailAddressValidator(resolver Resolver, lookupTimeout time.Duration) EmailValidator {
	if resolver == nil {
		resolver = net.DefaultResolver
	}

	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}

	return EmailValidator{
		resolver:      resolver,
		lookupTimeout: lookupTimeout,
	}
}

type EmailValidator struct {
	resolver      Resolver
	lookupTimeout time.Duration
}

// CheckWithLookup runs the complete sequence: syntax, A/AAAA existence, MX records, disposable and provider
// matching. The network checks degrade the result on failure, only a syntax failure halts the run.
func (v *EmailValidator) CheckWithLookup(ctx context.Context, emailParts types.EmailParts, options ...ArtifactFn) Result {
	return validateSequence(ctx,
		getNewArtifact(ctx, emailParts, v.resolver, v.lookupTimeout, options...),
		[]stateFn{
			checkEmailAddressSyntax,
			checkDomainHasAddress,
			checkDomainHasMX,
			checkNotDisposable,
			checkProvider,
		})
}

// CheckWithSyntax performs only the offline checks.
func (v *EmailValidator) CheckWithSyntax(ctx context.Context, emailParts types.EmailParts, options ...ArtifactFn) Result {
	return validateSequence(ctx,
		getNewArtifact(ctx, emailParts, v.resolver, v.lookupTimeout, options...),
		[]stateFn{
			checkEmailAddressSyntax,
			checkNotDisposable,
			checkProvider,
		})
}

func validateSequence(ctx context.Context, artifact Artifact, sequence []stateFn) Result {
	for _, fn := range sequence {
		if err := fn(&artifact); err != nil {
			return createResult(artifact)
		}

		if t, deadlineSet := ctx.Deadline(); deadlineSet && !t.After(time.Now()) {
			return createResult(artifact)
		}
	}

	markWhenValid(&artifact)
	return createResult(artifact)
}

// markWhenValid implements the overall verdict: correct syntax, not disposable and a domain that either resolves or
// has MX records. A missing MX alone doesn't invalidate, mail is sometimes received on the A record. Reachability
// only weighs in when the DNS step actually ran, a syntax-only sequence shouldn't fail on a check it never did.
func markWhenValid(a *Artifact) {
	syntax := a.Validations.HasFlag(validations.FSyntax)
	disposable := a.Validations.HasFlag(validations.FDisposable)

	reachable := true
	if a.Steps.HasFlag(validations.FDomainHasIP) {
		reachable = a.Validations.HasFlag(validations.FDomainHasIP) || a.Validations.HasFlag(validations.FMXLookup)
	}

	if syntax && !disposable && reachable {
		a.Validations.MarkAsValid()
	}
}
