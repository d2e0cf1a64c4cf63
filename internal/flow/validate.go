package flow

import "regexp"

var (
	nameRegexp  = regexp.MustCompile(`^[آ-ی\s]{3,}$`)
	phoneRegexp = regexp.MustCompile(`^09[0-9]{9}$`)
)

// IsValidName reports whether text looks like a Persian full name: at least
// three characters, Persian letters and whitespace only.
func IsValidName(text string) bool {
	return nameRegexp.MatchString(text)
}

// IsValidPhone reports whether text is an 11-digit number starting with 09.
func IsValidPhone(text string) bool {
	return phoneRegexp.MatchString(text)
}

// IsKnownReason reports whether text exactly matches one of the offered
// request categories.
func IsKnownReason(text string) bool {
	for _, reason := range Reasons {
		if text == reason {
			return true
		}
	}

	return false
}
