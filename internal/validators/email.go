package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailSyntaxValid reports whether email is a bare address (no display
// name) whose domain has at least one dot.
func IsEmailSyntaxValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return false
	}

	at := strings.LastIndex(email, "@")
	domain := strings.TrimSuffix(email[at+1:], ".")
	return strings.Contains(domain, ".")
}

// IsEmailDomainValid reports whether the domain part of email resolves to
// an MX record or, failing that, an address.
func IsEmailDomainValid(email string) bool {
	if !IsEmailSyntaxValid(email) {
		return false
	}
	domain := strings.TrimSuffix(email[strings.LastIndex(email, "@")+1:], ".")

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
