package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegions is the fallback parse order for input without an international prefix. It reflects the expected
// user base of a deployment and is meant to be overridden through configuration.
var DefaultRegions = []string{"US", "IT"}

// NewNumberValidator returns a validator that interprets prefix-less input under the given regions, in order.
// Without regions the package default applies.
func NewNumberValidator(fallbackRegions ...string) NumberValidator {
	if len(fallbackRegions) == 0 {
		fallbackRegions = DefaultRegions
	}

	return NumberValidator{
		fallbackRegions: fallbackRegions,
	}
}

type NumberValidator struct {
	fallbackRegions []string
}

// Result holds the per-number findings. Optional lookups that yielded nothing stay empty, the serializing layer
// turns them into explicit null values.
type Result struct {
	Valid               bool
	InternationalFormat string
	Country             string
	CountryCode         string
	LineType            LineType
	Carrier             string
	Timezones           []string
}

// Check parses and classifies a raw phone number string. It never fails: unparseable or plan-invalid input yields
// an invalid Result with all optional fields empty. No network, purely embedded number-plan metadata.
func (v *NumberValidator) Check(input string) Result {
	num, ok := v.parse(input)
	if !ok || !phonenumbers.IsValidNumber(num) {
		return Result{}
	}

	result := Result{
		Valid:               true,
		InternationalFormat: phonenumbers.Format(num, phonenumbers.E164),
		CountryCode:         phonenumbers.GetRegionCodeForNumber(num),
		LineType:            lineTypeFor(phonenumbers.GetNumberType(num)),
	}

	// The carrier and geo tables don't cover every number range, absence is common and not an error
	if carrier, err := phonenumbers.GetCarrierForNumber(num, "en"); err == nil {
		result.Carrier = carrier
	}

	if country, err := phonenumbers.GetGeocodingForNumber(num, "en"); err == nil {
		result.Country = country
	}

	if zones, err := phonenumbers.GetTimezonesForNumber(num); err == nil {
		result.Timezones = zones
	}

	return result
}

// parse interprets input with an explicit international prefix directly, anything else is retried under the
// configured fallback regions. The first region whose number plan declares the digits valid wins.
func (v *NumberValidator) parse(input string) (*phonenumbers.PhoneNumber, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, false
	}

	if strings.HasPrefix(input, "+") {
		num, err := phonenumbers.Parse(input, "")
		return num, err == nil
	}

	var firstParsed *phonenumbers.PhoneNumber
	for _, region := range v.fallbackRegions {
		num, err := phonenumbers.Parse(input, region)
		if err != nil {
			continue
		}

		if phonenumbers.IsValidNumber(num) {
			return num, true
		}

		if firstParsed == nil {
			firstParsed = num
		}
	}

	// Parseable under some region but valid under none, the caller's validity check settles it
	return firstParsed, firstParsed != nil
}
