// Package auth covers sign-in, registration and the OTP-based account
// recovery flows for both shoppers and staff.
package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/zytra-commerce/zytra-client/internal/api"
	"github.com/zytra-commerce/zytra-client/internal/session"
)

var ErrBadRecoveryReply = errors.New("auth: unrecognized recovery reply")

// Credentials is the login payload shared by both roles.
type Credentials struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type loginResult struct {
	Token  string `json:"token"`
	UserID int    `json:"userId"`
	Role   string `json:"role"`
}

// UserRegistration is the shopper sign-up payload. Field names line up with
// UserFields so the form can populate it generically.
type UserRegistration struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	DoorNumber  string `json:"doorNumber"`
	Street      string `json:"street"`
	Village     string `json:"village"`
	City        string `json:"city"`
	District    string `json:"district"`
	State       string `json:"state"`
	Country     string `json:"country"`
	LandMark    string `json:"landMark"`
	PostalCode  string `json:"postalCode"`
	UserName    string `json:"userName"`
	Password    string `json:"password"`
}

// AdminRegistration is the staff sign-up payload.
type AdminRegistration struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	UserName    string `json:"userName"`
	Password    string `json:"password"`
}

type Client struct {
	api     *api.Client
	session *session.Session
}

func NewClient(a *api.Client, s *session.Session) *Client {
	return &Client{api: a, session: s}
}

// LoginUser signs a shopper in and installs the session.
func (c *Client) LoginUser(cred Credentials) error {
	var res loginResult
	if err := c.api.Post("/user/login", cred, &res); err != nil {
		return err
	}
	c.session.LoginUser(res.Token, res.UserID, res.Role)
	return nil
}

// LoginAdmin signs a staff member in and installs the session.
func (c *Client) LoginAdmin(cred Credentials) error {
	var res loginResult
	if err := c.api.Post("/admin/login", cred, &res); err != nil {
		return err
	}
	c.session.LoginAdmin(res.Token, res.UserID, res.Role)
	return nil
}

func (c *Client) RegisterUser(reg UserRegistration) error {
	return c.api.Post("/user/registration", reg, nil)
}

func (c *Client) RegisterAdmin(reg AdminRegistration) error {
	return c.api.Post("/admin/registration", reg, nil)
}

// GenerateOTP asks the backend to mail a one-time code to the account
// behind the given email.
func (c *Client) GenerateOTP(email string) error {
	return c.api.Post("/user/generate-otp", map[string]string{"email": email}, nil)
}

// VerifyForgotUsernameOTP exchanges a valid code for the account's
// username.
func (c *Client) VerifyForgotUsernameOTP(email, otp string) (string, error) {
	return c.api.PostText("/user/forgot-username/verify-otp", map[string]string{"email": email, "otp": otp})
}

// userIDReply matches the "UserId : 42" fragment of the password-recovery
// verification reply.
var userIDReply = regexp.MustCompile(`UserId\s*:\s*(\d+)`)

// VerifyForgotPasswordOTP exchanges a valid code for the account's numeric
// id, parsed out of the backend's free-text reply.
func (c *Client) VerifyForgotPasswordOTP(email, otp string) (int, error) {
	text, err := c.api.PostText("/user/forgot-password/verify-otp", map[string]string{"email": email, "otp": otp})
	if err != nil {
		return 0, err
	}
	return ParseRecoveredUserID(text)
}

// ParseRecoveredUserID extracts the user id from a recovery reply.
func ParseRecoveredUserID(text string) (int, error) {
	m := userIDReply.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrBadRecoveryReply, text)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadRecoveryReply, text)
	}
	return id, nil
}

// UpdateForgotPassword sets a new password for a recovered account.
func (c *Client) UpdateForgotPassword(userID int, newPassword string) error {
	body := map[string]interface{}{"userId": userID, "newPassword": newPassword}
	return c.api.Put("/user/update-forgot-password", body, nil)
}
