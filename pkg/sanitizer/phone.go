package sanitizer

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed for numbers written without a country code.
const DefaultRegion = "US"

var rePhoneChars = regexp.MustCompile(`^\+?[0-9 ().\-]{7,24}$`)

// NormalizePhone returns phone in E.164 form, or "" when it is not a
// plausible phone number.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" || !rePhoneChars.MatchString(phone) {
		return ""
	}

	parsed, err := phonenumbers.Parse(phone, DefaultRegion)
	if err != nil || !phonenumbers.IsPossibleNumber(parsed) {
		return ""
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}

// DialURI returns a tel: link for phone, or "" when it does not normalize.
func DialURI(phone string) string {
	if e164 := NormalizePhone(phone); e164 != "" {
		return "tel:" + e164
	}
	return ""
}
