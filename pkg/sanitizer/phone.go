package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const DefaultRegion = "BR"

// SanitizePhone formats phone as E.164, reading numbers without a country
// code as Brazilian. Numbers that cannot be parsed or have an impossible
// length are returned trimmed.
func SanitizePhone(phone string) string {
	return SanitizePhoneRegion(phone, DefaultRegion)
}

func SanitizePhoneRegion(phone, region string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(phone, region)
	if err != nil || !phonenumbers.IsPossibleNumber(parsed) {
		return phone
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
