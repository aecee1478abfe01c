package validator

import (
	"context"
	"time"

	"github.com/AzzMarci/deepverify-api/types"
	"github.com/AzzMarci/deepverify-api/validator/validations"
)

type Artifact struct {
	Validations validations.Validations
	Steps       validations.Steps
	Timings
	email         types.EmailParts
	mx            []string
	provider      string
	ctx           context.Context
	resolver      Resolver
	lookupTimeout time.Duration
}

type stateFn func(a *Artifact) error

// ArtifactFn allows the caller to mutate the Artifact before the checks run.
type ArtifactFn func(a *Artifact)

func getNewArtifact(ctx context.Context, ep types.EmailParts, resolver Resolver, lookupTimeout time.Duration, options ...ArtifactFn) Artifact {
	a := Artifact{
		email:         ep,
		ctx:           ctx,
		resolver:      resolver,
		lookupTimeout: lookupTimeout,
		Timings:       make(Timings, 0, 5),
	}

	for _, fn := range options {
		fn(&a)
	}

	return a
}

// Result is the summary of a check run. The bitmasks hold which checks ran and which passed, the remaining fields
// carry the signals the masks can't express.
type Result struct {
	Validations validations.Validations
	Steps       validations.Steps
	Timings
	Email    types.EmailParts
	Provider string // empty when the domain isn't a recognized provider
	MXHosts  []string
}

func (r Result) ValidatorsRan() bool {
	return r.Steps > 0 || r.Validations > 0
}

// Disposable reports whether the domain was flagged as a disposable e-mail trap.
func (r Result) Disposable() bool {
	return r.Validations.HasFlag(validations.FDisposable)
}

// DomainExists reports whether an A/AAAA lookup resolved.
func (r Result) DomainExists() bool {
	return r.Validations.HasFlag(validations.FDomainHasIP)
}

// MXFound reports whether the domain has at least one usable MX record.
func (r Result) MXFound() bool {
	return r.Validations.HasFlag(validations.FMXLookup)
}

// SyntaxValid reports whether the address passed the format check.
func (r Result) SyntaxValid() bool {
	return r.Validations.HasFlag(validations.FSyntax)
}

func createResult(a Artifact) Result {
	return Result{
		Validations: a.Validations,
		Steps:       a.Steps,
		Timings:     a.Timings,
		Email:       a.email,
		Provider:    a.provider,
		MXHosts:     a.mx,
	}
}
