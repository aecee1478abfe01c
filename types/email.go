package types

import (
	"errors"
	"strings"
)

var ErrInvalidEmailAddress = errors.New("invalid e-mail address, address is missing @")

// NewEmailParts decomposes an address into a local and a domain part. The domain is lowercased, the case of the
// local part is preserved, since interpreting it is up to the receiving server.
func NewEmailParts(emailAddress string) (EmailParts, error) {
	i := strings.LastIndex(emailAddress, "@")
	if 0 >= i || i >= len(emailAddress)-1 {
		return EmailParts{}, ErrInvalidEmailAddress
	}

	local := emailAddress[:i]
	domain := strings.ToLower(emailAddress[i+1:])

	return EmailParts{
		Address: local + "@" + domain,
		Local:   local,
		Domain:  domain,
	}, nil
}

// EmailParts holds the input in normalized form. Address is always Local + "@" + Domain.
type EmailParts struct {
	Address string
	Local   string
	Domain  string
}
