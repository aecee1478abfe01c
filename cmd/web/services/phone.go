package services

import (
	"context"

	"github.com/AzzMarci/deepverify-api/cmd/web/dvhttp/handlers"
	"github.com/AzzMarci/deepverify-api/phone"
	"github.com/sirupsen/logrus"
)

const maxPhoneLength = 64

func NewPhoneService(val phone.NumberValidator, logger *logrus.Logger) PhoneSvc {
	return PhoneSvc{
		validator: val,
		logger:    logger.WithField("svc", "phone"),
	}
}

type PhoneSvc struct {
	validator phone.NumberValidator
	logger    *logrus.Entry
}

type PhoneReport struct {
	phone.Result
	ConfidenceScore float64
}

// Validate classifies a raw phone number. Garbage input degrades to an invalid report with a zero score, the
// error return only covers input the service refuses to inspect.
func (c *PhoneSvc) Validate(ctx context.Context, number string) (PhoneReport, error) {
	if number == "" {
		return PhoneReport{}, ErrEmptyInput
	}

	if len(number) > maxPhoneLength {
		return PhoneReport{}, ErrInputTooLong
	}

	pr := c.validator.Check(number)
	report := PhoneReport{
		Result:          pr,
		ConfidenceScore: phone.Score(pr),
	}

	c.logger.WithFields(logrus.Fields{
		handlers.RequestID.String(): ctx.Value(handlers.RequestID),
		"phone":                     number,
		"valid":                     pr.Valid,
		"score":                     report.ConfidenceScore,
		"line_type":                 pr.LineType.String(),
	}).Debug("Validated phone number")

	return report, nil
}
