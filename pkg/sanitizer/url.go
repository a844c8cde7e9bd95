package sanitizer

import (
	"net/url"
	"strings"
)

// NormalizeInviteLink returns link as an https URL with a lower-cased host,
// or "" when it is not a web link.
func NormalizeInviteLink(link string) string {
	s := strings.TrimSpace(link)
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return ""
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "https://"):
		s = s[len("https://"):]
	case strings.HasPrefix(lower, "http://"):
		s = s[len("http://"):]
	case strings.Contains(s, "://"):
		return ""
	}

	u, err := url.Parse("https://" + s)
	if err != nil || u.Host == "" || !strings.Contains(u.Hostname(), ".") {
		return ""
	}

	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	u.Fragment = ""
	return u.String()
}
