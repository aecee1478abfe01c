package services

import (
	"context"
	"errors"

	"github.com/AzzMarci/deepverify-api/cmd/web/dvhttp/handlers"
	"github.com/AzzMarci/deepverify-api/types"
	"github.com/AzzMarci/deepverify-api/validator"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyInput   = errors.New("input is empty")
	ErrInputTooLong = errors.New("input is too long")
)

// RFC 5321 caps the path at 256 octets, the common interpretation of the address maximum is 320.
const maxEmailLength = 320

func NewEmailService(val validator.CheckFn, logger *logrus.Logger) EmailSvc {
	return EmailSvc{
		validator: val,
		logger:    logger.WithField("svc", "email"),
	}
}

type EmailSvc struct {
	validator validator.CheckFn
	logger    *logrus.Entry
}

// EmailReport is the flattened outcome of a validation run, ready for the serializing layer.
type EmailReport struct {
	Valid           bool
	Disposable      bool
	DomainExists    bool
	MXFound         bool
	Provider        string
	ConfidenceScore float64
	NormalizedEmail string
	Domain          string
	ValidationError string
	ChecksPerformed []string
}

// Validate runs the check sequence on a candidate address. Malformed input never produces an error, it degrades
// to an invalid report with a low score. The error return only covers input the service refuses to inspect.
func (c *EmailSvc) Validate(ctx context.Context, email string) (EmailReport, error) {
	if email == "" {
		return EmailReport{}, ErrEmptyInput
	}

	if len(email) > maxEmailLength {
		return EmailReport{}, ErrInputTooLong
	}

	log := c.logger.WithFields(logrus.Fields{
		handlers.RequestID.String(): ctx.Value(handlers.RequestID),
		"email":                     email,
	})

	parts, err := types.NewEmailParts(email)
	if err != nil {
		log.WithError(err).Debug("Unable to split input")

		return EmailReport{
			ValidationError: err.Error(),
			ChecksPerformed: []string{"format"},
		}, nil
	}

	vr := c.validator(ctx, parts)
	report := EmailReport{
		Valid:           vr.Validations.IsValid(),
		Disposable:      vr.Disposable(),
		DomainExists:    vr.DomainExists(),
		MXFound:         vr.MXFound(),
		Provider:        vr.Provider,
		Domain:          parts.Domain,
		ChecksPerformed: vr.Steps.AsStringSlice(),
	}

	if !vr.SyntaxValid() {
		// Split into local@domain but rejected by the format check. Email-shaped input keeps a small fixed
		// score instead of the full weighting.
		report.ValidationError = validator.ErrEmailAddressSyntax.Error()
		report.ConfidenceScore = validator.SyntaxFallbackScore

		log.WithFields(logrus.Fields{
			"steps":       vr.Steps.String(),
			"validations": vr.Validations.String(),
		}).Debug("Input doesn't have a valid structure")

		return report, nil
	}

	report.NormalizedEmail = vr.Email.Address
	report.ConfidenceScore = validator.Score(vr)

	log.WithFields(logrus.Fields{
		"valid":       report.Valid,
		"score":       report.ConfidenceScore,
		"steps":       vr.Steps.String(),
		"validations": vr.Validations.String(),
	}).Debug("Validated e-mail address")

	return report, nil
}
