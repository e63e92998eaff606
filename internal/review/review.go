// Package review covers product reviews: the projection embedded in product
// detail responses and the submit/update calls.
package review

import (
	"fmt"

	"github.com/zytra-commerce/zytra-client/internal/api"
)

// Review is a single user review. UserID is populated on reads; submissions
// carry only rating and comment, the backend derives the author from the
// path.
type Review struct {
	UserID  int    `json:"userId,omitempty"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Valid reports whether the rating is inside the 1..5 contract.
func (r Review) Valid() bool {
	return r.Rating >= 1 && r.Rating <= 5
}

// ByUser finds the review a given user left, if any.
func ByUser(reviews []Review, userID int) (Review, bool) {
	for _, r := range reviews {
		if r.UserID == userID {
			return r, true
		}
	}
	return Review{}, false
}

type Client struct {
	api *api.Client
}

func NewClient(a *api.Client) *Client {
	return &Client{api: a}
}

// Submit creates the calling user's review for a product.
func (c *Client) Submit(userID, productID int, r Review) error {
	path := fmt.Sprintf("/user/review-product/%d/%d", userID, productID)
	return c.api.Post(path, r, nil)
}

// Update replaces the calling user's existing review.
func (c *Client) Update(userID, productID int, r Review) error {
	path := fmt.Sprintf("/user/update-review/%d/%d", userID, productID)
	return c.api.Put(path, r, nil)
}
