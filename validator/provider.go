package validator

// knownProviders maps mailbox domains to the provider operating them. Recognition is a positive trust signal, an
// unknown domain simply yields no provider.
var knownProviders = map[string]string{
	"gmail.com":      "Gmail",
	"googlemail.com": "Gmail",
	"outlook.com":    "Outlook",
	"hotmail.com":    "Hotmail",
	"live.com":       "Microsoft Live",
	"yahoo.com":      "Yahoo",
	"yahoo.it":       "Yahoo Italy",
	"yahoo.co.uk":    "Yahoo UK",
	"protonmail.com": "ProtonMail",
	"icloud.com":     "iCloud",
	"me.com":         "iCloud",
	"mac.com":        "iCloud",
	"libero.it":      "Libero",
	"tiscali.it":     "Tiscali",
	"alice.it":       "Alice",
	"virgilio.it":    "Virgilio",
	"tin.it":         "TIN",
}

// providerForDomain looks up the (lowercased) domain in the provider table.
func providerForDomain(domain string) (string, bool) {
	provider, ok := knownProviders[domain]
	return provider, ok
}
