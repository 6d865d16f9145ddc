package linklist

import (
	"net"
	"net/url"
	"regexp"
	"strings"
)

// hostRegexp follows RFC 1123 labels with an optional numeric port. It
// rejects the garbage hosts Go's lenient parser lets through, such as the
// "ftp:" authority produced by prefixing https:// onto an ftp URL. IPv6
// literals are bracketed and handled separately.
var hostRegexp = regexp.MustCompile(`^([a-zA-Z0-9](-?[a-zA-Z0-9])*\.)*[a-zA-Z0-9](-?[a-zA-Z0-9])*(:\d+)?$`)

// IsValidURL reports whether candidate parses as an http or https URL once a
// missing scheme is defaulted to https. URLs carrying userinfo are rejected:
// a normalized "mailto:user@example.com" parses as userinfo "mailto:user" on
// host "example.com", not as a bookmarkable address. Never panics on
// malformed input.
func IsValidURL(candidate string) bool {
	u, err := url.Parse(NormalizeURL(candidate))
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	if u.User != nil {
		return false
	}

	// Bracketed IPv6 literal, e.g. [::1]:8080.
	if strings.HasPrefix(u.Host, "[") {
		return net.ParseIP(u.Hostname()) != nil
	}

	return hostRegexp.MatchString(u.Host)
}

// NormalizeURL prepends https:// unless the candidate already carries an
// http scheme. Empty input stays empty. It does not re-validate; idempotent.
func NormalizeURL(candidate string) string {
	if candidate == "" {
		return ""
	}

	if strings.HasPrefix(candidate, "http") {
		return candidate
	}

	return "https://" + candidate
}
