// Package cart covers the shopping cart: the server round trips plus the
// optimistic local quantity edits the cart screen applies while a request is
// in flight.
package cart

import (
	"fmt"

	"github.com/zytra-commerce/zytra-client/internal/api"
)

// Item is one cart line. TotalPrice and ActualPrice are unit prices; the
// line amount is TotalPrice times ProductQuantity.
type Item struct {
	CartID          int     `json:"cartId"`
	ProductID       int     `json:"productId"`
	ProductName     string  `json:"productName"`
	BrandName       string  `json:"brandName,omitempty"`
	SellerName      string  `json:"sellerName,omitempty"`
	Description     string  `json:"productDescription,omitempty"`
	Image           string  `json:"image,omitempty"`
	ProductQuantity int     `json:"productQuantity"`
	TotalPrice      float64 `json:"totalPrice"`
	ActualPrice     float64 `json:"actualPrice,omitempty"`
	DiscountValue   float64 `json:"discountValue,omitempty"`
}

// Total sums the line amounts.
func Total(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.TotalPrice * float64(it.ProductQuantity)
	}
	return sum
}

// Count sums the quantities for the cart badge.
func Count(items []Item) int {
	var n int
	for _, it := range items {
		n += it.ProductQuantity
	}
	return n
}

// IncrementLocal bumps the quantity of a product already in the cart,
// mirroring what the pending add-to-cart call will do.
func IncrementLocal(items []Item, productID int) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].ProductQuantity++
			break
		}
	}
	return out
}

// DecrementLocal lowers a product's quantity, dropping the line when it
// reaches zero.
func DecrementLocal(items []Item, productID int) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ProductID == productID {
			it.ProductQuantity--
			if it.ProductQuantity <= 0 {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

type cartResponse struct {
	Carts []Item `json:"carts"`
}

type Client struct {
	api *api.Client
}

func NewClient(a *api.Client) *Client {
	return &Client{api: a}
}

func (c *Client) Get(userID int) ([]Item, error) {
	var res cartResponse
	if err := c.api.Get(fmt.Sprintf("/user/get-cart/%d", userID), &res); err != nil {
		return nil, err
	}
	return res.Carts, nil
}

// AddOne adds one unit of a product, creating the line if needed.
func (c *Client) AddOne(userID, productID int) error {
	return c.api.Post(fmt.Sprintf("/user/add-to-cart/%d/%d", userID, productID), nil, nil)
}

// RemoveOne removes one unit of a product, deleting the line at zero.
func (c *Client) RemoveOne(userID, productID int) error {
	return c.api.Delete(fmt.Sprintf("/user/delete-from-cart/%d/%d", userID, productID))
}
