package catalog

import (
	"fmt"

	"github.com/zytra-commerce/zytra-client/internal/api"
)

// Client fetches the catalog projections. The public endpoints need no
// token; the user-scoped ones return the same shapes enriched with the
// caller's review visibility.
type Client struct {
	api *api.Client
}

func NewClient(a *api.Client) *Client {
	return &Client{api: a}
}

func (c *Client) AllProducts() ([]Product, error) {
	var out []Product
	if err := c.api.Get("/all-products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AllCategories() ([]Category, error) {
	var out []Category
	if err := c.api.Get("/all-categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AllSubCategories() ([]SubCategory, error) {
	var out []SubCategory
	if err := c.api.Get("/all-sub-categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AllBrands() ([]Brand, error) {
	var out []Brand
	if err := c.api.Get("/all-brands", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserProducts is the signed-in variant of AllProducts.
func (c *Client) UserProducts(userID int) ([]Product, error) {
	var out []Product
	if err := c.api.Get(fmt.Sprintf("/user/all-products/%d", userID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProductDetail fetches one product with its full review list.
func (c *Client) ProductDetail(userID, productID int) (Product, error) {
	var out Product
	if err := c.api.Get(fmt.Sprintf("/user/get-product/%d/%d", userID, productID), &out); err != nil {
		return Product{}, err
	}
	return out, nil
}
