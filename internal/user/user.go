// Package user covers the shopper's account surface: profile details,
// password changes and the prime membership upgrade.
package user

import (
	"fmt"

	"github.com/zytra-commerce/zytra-client/internal/api"
)

const MembershipPrime = "PRIME"

// Profile is the shopper account projection. It carries the same address
// breakdown the registration form collects plus the read-only account
// metadata the backend adds.
type Profile struct {
	UserID      int    `json:"userId,omitempty"`
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

	RegisteredAt     string `json:"registeredAt,omitempty"`
	MemberShipStatus string `json:"memberShipStatus,omitempty"`
	Role             string `json:"role,omitempty"`
}

// Prime reports an active prime membership.
func (p Profile) Prime() bool {
	return p.MemberShipStatus == MembershipPrime
}

// PasswordChange is the signed-in password update payload. The old password
// is re-verified server side.
type PasswordChange struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type Client struct {
	api *api.Client
}

func NewClient(a *api.Client) *Client {
	return &Client{api: a}
}

func (c *Client) Details(userID int) (Profile, error) {
	var out Profile
	if err := c.api.Get(fmt.Sprintf("/user/get-user-details/%d", userID), &out); err != nil {
		return Profile{}, err
	}
	return out, nil
}

func (c *Client) UpdateProfile(userID int, p Profile) error {
	return c.api.Put(fmt.Sprintf("/user/update-profile/%d", userID), p, nil)
}

func (c *Client) UpdatePassword(userID int, change PasswordChange) error {
	return c.api.Put(fmt.Sprintf("/user/update-password/%d", userID), change, nil)
}

// SubscribePrime upgrades the account's membership.
func (c *Client) SubscribePrime(userID int) error {
	return c.api.Put(fmt.Sprintf("/user/subscribe-prime/%d", userID), nil, nil)
}
