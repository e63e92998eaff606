package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestLoginTransitionsReplaceWholesale(t *testing.T) {
	s := New()
	if s.LoggedIn() {
		t.Fatalf("zero session must be logged out")
	}

	s.LoginUser("tok-user", 7, RoleUser)
	if !s.LoggedIn() || s.UserID() != 7 || s.Role() != RoleUser {
		t.Fatalf("unexpected user session state: id=%d role=%q", s.UserID(), s.Role())
	}
	s.SetOrderID(42)

	// switching to admin must not leave user remnants behind
	s.LoginAdmin("tok-admin", 3, RoleAdmin)
	if s.UserID() != 0 {
		t.Fatalf("user id leaked into admin session: %d", s.UserID())
	}
	if s.OrderID() != 0 {
		t.Fatalf("order id leaked across login: %d", s.OrderID())
	}
	if s.AdminID() != 3 || !s.IsAdmin() {
		t.Fatalf("unexpected admin session state: id=%d role=%q", s.AdminID(), s.Role())
	}

	s.Clear()
	if s.LoggedIn() || s.Role() != "" || s.AdminID() != 0 {
		t.Fatalf("clear left state behind")
	}
}

func TestExpiryReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"exp":     exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	s := New()
	if _, ok := s.Expiry(); ok {
		t.Fatalf("expected no expiry on empty session")
	}

	s.LoginUser(signed, 7, RoleUser)
	got, ok := s.Expiry()
	if !ok {
		t.Fatalf("expected expiry to parse")
	}
	if !got.Equal(exp) {
		t.Fatalf("expiry mismatch: got %v want %v", got, exp)
	}

	s.LoginUser("not-a-jwt", 7, RoleUser)
	if _, ok := s.Expiry(); ok {
		t.Fatalf("expected parse failure on garbage token")
	}
}
