package auth

import (
	"regexp"
	"strings"
)

// Field is one entry of a registration form schema: the JSON key, the label
// shown next to the input, the pattern the value must match, and the message
// shown when it does not.
type Field struct {
	Name    string
	Label   string
	Pattern *regexp.Regexp
	Message string
}

var (
	namePattern     = regexp.MustCompile(`^[A-Za-z]{2,30}$`)
	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	doorPattern     = regexp.MustCompile(`^[A-Za-z0-9]{1,10}$`)
	streetPattern   = regexp.MustCompile(`^.{3,40}$`)
	placePattern    = regexp.MustCompile(`^[A-Za-z ]{2,40}$`)
	landmarkPattern = regexp.MustCompile(`^.{3,50}$`)
	postalPattern   = regexp.MustCompile(`^[0-9]{6}$`)
	userPattern     = regexp.MustCompile(`^[A-Za-z0-9@._-]{4,25}$`)
	adminUser       = regexp.MustCompile(`^[A-Za-z0-9@._-]{4,20}$`)
	adminAddress    = regexp.MustCompile(`^.{5,100}$`)
)

// UserFields is the shopper registration schema, in form order.
var UserFields = []Field{
	{"firstName", "First name", namePattern, "2-30 letters"},
	{"lastName", "Last name", namePattern, "2-30 letters"},
	{"phoneNumber", "Phone number", phonePattern, "10 digits"},
	{"email", "Email", emailPattern, "valid email address"},
	{"doorNumber", "Door number", doorPattern, "1-10 letters or digits"},
	{"street", "Street", streetPattern, "3-40 characters"},
	{"village", "Village", placePattern, "2-40 letters"},
	{"city", "City", placePattern, "2-40 letters"},
	{"district", "District", placePattern, "2-40 letters"},
	{"state", "State", placePattern, "2-40 letters"},
	{"country", "Country", placePattern, "2-40 letters"},
	{"landMark", "Landmark", landmarkPattern, "3-50 characters"},
	{"postalCode", "Postal code", postalPattern, "6 digits"},
	{"userName", "Username", userPattern, "4-25 characters, letters, digits or @._-"},
	{"password", "Password", nil, "at least 8 characters with upper, lower, digit and special"},
}

// AdminFields is the staff registration schema.
var AdminFields = []Field{
	{"firstName", "First name", namePattern, "2-30 letters"},
	{"lastName", "Last name", namePattern, "2-30 letters"},
	{"phoneNumber", "Phone number", phonePattern, "10 digits"},
	{"email", "Email", emailPattern, "valid email address"},
	{"address", "Address", adminAddress, "5-100 characters"},
	{"userName", "Username", adminUser, "4-20 characters, letters, digits or @._-"},
	{"password", "Password", nil, "at least 8 characters with upper, lower, digit and special"},
}

// ValidPassword checks the password policy: at least 8 characters drawn from
// letters, digits and @$!%*?&, with at least one of each class present.
func ValidPassword(p string) bool {
	if len(p) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		default:
			return false
		}
	}
	return upper && lower && digit && special
}

// Validate checks values against a schema and returns the per-field error
// messages. An empty map means the form may be submitted.
func Validate(fields []Field, values map[string]string) map[string]string {
	errs := map[string]string{}
	for _, f := range fields {
		v := values[f.Name]
		if f.Pattern == nil {
			if !ValidPassword(v) {
				errs[f.Name] = f.Message
			}
			continue
		}
		if !f.Pattern.MatchString(v) {
			errs[f.Name] = f.Message
		}
	}
	return errs
}
