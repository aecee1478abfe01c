package dvhttp

import "errors"

var (
	ErrMissingBody            = errors.New("missing body")
	ErrInvalidRequest         = errors.New("request is invalid")
	ErrBodyTooLarge           = errors.New("request body too large")
	ErrUnsupportedContentType = errors.New("unsupported content-type")
)

var empty = make([]string, 0)

type DVResponse interface {
	// Hacking around Generics, like it's 1999.
	PrepareResponse()
}

type EmailValidationRequest struct {
	Email string `json:"email"`
}

type PhoneValidationRequest struct {
	Phone string `json:"phone"`
}

type EmailValidationDetails struct {
	NormalizedEmail string   `json:"normalized_email"`
	Domain          string   `json:"domain"`
	ValidationError string   `json:"validation_error,omitempty"`
	ChecksPerformed []string `json:"checks_performed"`
}

type EmailValidationResponse struct {
	Valid           bool                   `json:"valid"`
	Disposable      bool                   `json:"disposable"`
	DomainExists    bool                   `json:"domain_exists"`
	MXFound         bool                   `json:"mx_found"`
	Provider        *string                `json:"provider"`
	Suggestion      *string                `json:"suggestion"`
	ConfidenceScore float64                `json:"confidence_score"`
	Details         EmailValidationDetails `json:"details"`
	Error           string                 `json:"error,omitempty"`
}

func (r *EmailValidationResponse) PrepareResponse() {
	if r.Details.ChecksPerformed == nil {
		r.Details.ChecksPerformed = empty
	}
}

// Type and LineType carry the same classification. Type is kept for
// backwards compatibility with earlier API consumers.
type PhoneValidationResponse struct {
	Valid               bool     `json:"valid"`
	InternationalFormat *string  `json:"international_format"`
	Country             *string  `json:"country"`
	CountryCode         *string  `json:"country_code"`
	Type                *string  `json:"type"`
	Carrier             *string  `json:"carrier"`
	LineType            *string  `json:"line_type"`
	Timezone            []string `json:"timezone"`
	ConfidenceScore     float64  `json:"confidence_score"`
	Error               string   `json:"error,omitempty"`
}

func (r *PhoneValidationResponse) PrepareResponse() {
	// Timezone is deliberately left nil when the number didn't validate,
	// absent is not the same as "resolved to zero zones".
}
