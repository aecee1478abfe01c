package phone

import "github.com/nyaruka/phonenumbers"

// LineType classifies a number by the type tables of its number plan.
type LineType string

const (
	LineTypeFixedLine         LineType = "fixed_line"
	LineTypeMobile            LineType = "mobile"
	LineTypeFixedLineOrMobile LineType = "fixed_line_or_mobile"
	LineTypeTollFree          LineType = "toll_free"
	LineTypePremiumRate       LineType = "premium_rate"
	LineTypeSharedCost        LineType = "shared_cost"
	LineTypeVOIP              LineType = "voip"
	LineTypePersonalNumber    LineType = "personal_number"
	LineTypePager             LineType = "pager"
	LineTypeUAN               LineType = "uan"
	LineTypeVoicemail         LineType = "voicemail"
	LineTypeUnknown           LineType = "unknown"
)

func (lt LineType) String() string {
	return string(lt)
}

var lineTypes = map[phonenumbers.PhoneNumberType]LineType{
	phonenumbers.FIXED_LINE:           LineTypeFixedLine,
	phonenumbers.MOBILE:               LineTypeMobile,
	phonenumbers.FIXED_LINE_OR_MOBILE: LineTypeFixedLineOrMobile,
	phonenumbers.TOLL_FREE:            LineTypeTollFree,
	phonenumbers.PREMIUM_RATE:         LineTypePremiumRate,
	phonenumbers.SHARED_COST:          LineTypeSharedCost,
	phonenumbers.VOIP:                 LineTypeVOIP,
	phonenumbers.PERSONAL_NUMBER:      LineTypePersonalNumber,
	phonenumbers.PAGER:                LineTypePager,
	phonenumbers.UAN:                  LineTypeUAN,
	phonenumbers.VOICEMAIL:            LineTypeVoicemail,
	phonenumbers.UNKNOWN:              LineTypeUnknown,
}

// lineTypeFor maps the number-plan classification onto the reported enum.
func lineTypeFor(t phonenumbers.PhoneNumberType) LineType {
	if lt, ok := lineTypes[t]; ok {
		return lt
	}

	return LineTypeUnknown
}
