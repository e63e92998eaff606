package auth

import "testing"

func validUserForm() map[string]string {
	return map[string]string{
		"firstName":   "Asha",
		"lastName":    "Verma",
		"phoneNumber": "9876543210",
		"email":       "asha@example.com",
		"doorNumber":  "12B",
		"street":      "Mill Road",
		"village":     "Oakfield",
		"city":        "Brookton",
		"district":    "Northvale",
		"state":       "Westmark",
		"country":     "Freland",
		"landMark":    "Opposite the old mill",
		"postalCode":  "560001",
		"userName":    "asha.v",
		"password":    "Str0ng@Pass",
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	if errs := Validate(UserFields, validUserForm()); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateFlagsEachBadField(t *testing.T) {
	cases := []struct {
		field, value string
	}{
		{"firstName", "A"},
		{"firstName", "Anne-Marie"},
		{"phoneNumber", "12345"},
		{"email", "not-an-email"},
		{"doorNumber", "12/B"},
		{"street", "ab"},
		{"city", "Brookton9"},
		{"postalCode", "5600"},
		{"userName", "ab"},
		{"password", "weak"},
	}
	for _, c := range cases {
		form := validUserForm()
		form[c.field] = c.value
		errs := Validate(UserFields, form)
		if _, ok := errs[c.field]; !ok {
			t.Fatalf("%s=%q should fail, errors: %v", c.field, c.value, errs)
		}
		if len(errs) != 1 {
			t.Fatalf("%s: expected a single error, got %v", c.field, errs)
		}
	}
}

func TestValidPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Str0ng@Pass", true},
		{"A1b@cdef", true},
		{"short1@A", true},
		{"Sh0r@", false},          // too short
		{"str0ng@pass", false},    // no upper
		{"STR0NG@PASS", false},    // no lower
		{"Strong@Pass", false},    // no digit
		{"Str0ngPass1", false},    // no special
		{"Str0ng@Pa ss", false},   // space outside the alphabet
		{"Str0ng#Pass", false},    // # outside the alphabet
	}
	for _, c := range cases {
		if got := ValidPassword(c.password); got != c.want {
			t.Fatalf("ValidPassword(%q) = %v, want %v", c.password, got, c.want)
		}
	}
}

func TestValidateAdminSchema(t *testing.T) {
	form := map[string]string{
		"firstName":   "Ravi",
		"lastName":    "Kumar",
		"phoneNumber": "9876543210",
		"email":       "ravi@example.com",
		"address":     "14 Harbor Lane, Brookton",
		"userName":    "ravi.k",
		"password":    "Adm1n@Pass",
	}
	if errs := Validate(AdminFields, form); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	form["address"] = "tiny"
	form["userName"] = "a.very.long.admin.username.exceeding"
	errs := Validate(AdminFields, form)
	if len(errs) != 2 {
		t.Fatalf("expected address and userName errors, got %v", errs)
	}
}

func TestParseRecoveredUserID(t *testing.T) {
	id, err := ParseRecoveredUserID("OTP verified. UserId : 42")
	if err != nil || id != 42 {
		t.Fatalf("got %d, %v", id, err)
	}

	id, err = ParseRecoveredUserID("UserId:7")
	if err != nil || id != 7 {
		t.Fatalf("got %d, %v", id, err)
	}

	if _, err := ParseRecoveredUserID("no id here"); err == nil {
		t.Fatal("expected an error for a reply without an id")
	}
}
