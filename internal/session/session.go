// Package session holds the authenticated state of a running client: the
// bearer token, the logged-in identity and role, and the transient order id
// produced by checkout. It replaces the scattered browser session-storage
// reads of the original web client with one explicit, mutex-guarded value
// that is passed to the components that need it.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Role values as returned by the login endpoints.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Session is the client-side authentication context. The zero value is a
// logged-out session.
type Session struct {
	mu      sync.RWMutex
	token   string
	userID  int
	adminID int
	role    string
	orderID int
}

func New() *Session {
	return &Session{}
}

// LoginUser installs a user identity with the role the login endpoint
// returned. Any previous state is replaced wholesale so a stale admin id
// cannot leak into a user session.
func (s *Session) LoginUser(token string, userID int, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = userID
	s.adminID = 0
	if role == "" {
		role = RoleUser
	}
	s.role = role
	s.orderID = 0
}

// LoginAdmin installs an admin identity.
func (s *Session) LoginAdmin(token string, adminID int, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.adminID = adminID
	s.userID = 0
	if role == "" {
		role = RoleAdmin
	}
	s.role = role
	s.orderID = 0
}

// Clear wipes every field. Called on logout and on any 401 from the backend.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = 0
	s.adminID = 0
	s.role = ""
	s.orderID = 0
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) UserID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) AdminID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adminID
}

func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// LoggedIn reports whether a bearer token is present.
func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

func (s *Session) IsAdmin() bool {
	return s.Role() == RoleAdmin
}

// SetOrderID stores the order id produced by initiate-order until payment
// completes.
func (s *Session) SetOrderID(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderID = id
}

func (s *Session) OrderID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orderID
}

// Expiry reads the exp claim from the bearer token without verifying the
// signature; verification is the backend's job, the client only wants a
// display hint. The second return is false when the token is absent,
// unparsable, or carries no exp claim.
func (s *Session) Expiry() (time.Time, bool) {
	tok := s.Token()
	if tok == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}
