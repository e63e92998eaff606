package admin

import (
	"fmt"

	"github.com/zytra-commerce/zytra-client/internal/api"
	"github.com/zytra-commerce/zytra-client/internal/session"
	"github.com/zytra-commerce/zytra-client/internal/user"
)

// Client issues the staff console calls. Every inventory path is scoped by
// the signed-in admin's id, read from the session.
type Client struct {
	api     *api.Client
	session *session.Session
}

func NewClient(a *api.Client, s *session.Session) *Client {
	return &Client{api: a, session: s}
}

func (c *Client) adminID() int {
	return c.session.AdminID()
}

func (c *Client) inventoryPath(action string) string {
	return fmt.Sprintf("/admin/inventory/%s/%d", action, c.adminID())
}

// Categories.

func (c *Client) Categories() ([]Category, error) {
	var out []Category
	err := c.api.Get(c.inventoryPath("get-all-categories"), &out)
	return out, err
}

func (c *Client) AddCategory(cat Category) error {
	return c.api.Post(c.inventoryPath("add-category"), cat, nil)
}

func (c *Client) UpdateCategory(id int, cat Category) error {
	return c.api.Put(fmt.Sprintf("%s/%d", c.inventoryPath("update-category"), id), cat, nil)
}

// Sub-categories.

func (c *Client) SubCategories() ([]SubCategory, error) {
	var out []SubCategory
	err := c.api.Get(c.inventoryPath("get-all-subcategories"), &out)
	return out, err
}

func (c *Client) AddSubCategory(sc SubCategory) error {
	return c.api.Post(c.inventoryPath("add-subcategory"), sc, nil)
}

func (c *Client) UpdateSubCategory(id int, sc SubCategory) error {
	return c.api.Put(fmt.Sprintf("%s/%d", c.inventoryPath("update-subcategory"), id), sc, nil)
}

// Brands.

func (c *Client) Brands() ([]Brand, error) {
	var out []Brand
	err := c.api.Get(c.inventoryPath("get-all-brands"), &out)
	return out, err
}

func (c *Client) AddBrand(b Brand) error {
	return c.api.Post(c.inventoryPath("add-brand"), b, nil)
}

func (c *Client) UpdateBrand(id int, b Brand) error {
	return c.api.Put(fmt.Sprintf("%s/%d", c.inventoryPath("update-brand"), id), b, nil)
}

// Sellers.

func (c *Client) Sellers() ([]Seller, error) {
	var out []Seller
	err := c.api.Get(c.inventoryPath("get-all-sellers"), &out)
	return out, err
}

func (c *Client) AddSeller(s Seller) error {
	return c.api.Post(c.inventoryPath("add-seller"), s, nil)
}

func (c *Client) UpdateSeller(id int, s Seller) error {
	return c.api.Put(fmt.Sprintf("%s/%d", c.inventoryPath("update-seller"), id), s, nil)
}

func (c *Client) ActivateSeller(sellerID int) error {
	return c.api.Put(fmt.Sprintf("/admin/inventory/activate-seller/%d/%d", c.adminID(), sellerID), nil, nil)
}

func (c *Client) DeactivateSeller(sellerID int) error {
	return c.api.Put(fmt.Sprintf("/admin/inventory/deactivate-seller/%d/%d", c.adminID(), sellerID), nil, nil)
}

// Discounts.

func (c *Client) Discounts() ([]Discount, error) {
	var out []Discount
	err := c.api.Get(c.inventoryPath("get-all-discounts"), &out)
	return out, err
}

func (c *Client) AddDiscount(d Discount) error {
	return c.api.Post(c.inventoryPath("add-discount"), d, nil)
}

func (c *Client) UpdateDiscount(id int, d Discount) error {
	return c.api.Put(fmt.Sprintf("%s/%d", c.inventoryPath("update-discount"), id), d, nil)
}

// Products.

func (c *Client) Products() ([]Product, error) {
	var out []Product
	err := c.api.Get(c.inventoryPath("get-all-products"), &out)
	return out, err
}

func (c *Client) AddProduct(form ProductForm) error {
	return c.api.Post(c.inventoryPath("add-new-product"), form, nil)
}

func (c *Client) UpdateProduct(productID int, form ProductForm) error {
	return c.api.Put(fmt.Sprintf("/admin/inventory/update-product-details/%d/%d", c.adminID(), productID), form, nil)
}

// Stock.

func (c *Client) Inventory() ([]Inventory, error) {
	var out []Inventory
	err := c.api.Get(c.inventoryPath("get-all-inventory"), &out)
	return out, err
}

func (c *Client) AddInventory(inv Inventory) error {
	return c.api.Post(c.inventoryPath("add-inventory"), inv, nil)
}

func (c *Client) UpdateInventory(id int, inv Inventory) error {
	return c.api.Put(fmt.Sprintf("%s/%d", c.inventoryPath("update-inventory"), id), inv, nil)
}

// Customers and own profile.

func (c *Client) Users() ([]User, error) {
	var out []User
	err := c.api.Get(fmt.Sprintf("/admin/get-all-user-details/%d", c.adminID()), &out)
	return out, err
}

func (c *Client) Details() (Profile, error) {
	var out Profile
	err := c.api.Get(fmt.Sprintf("/admin/get-admin-details/%d", c.adminID()), &out)
	return out, err
}

func (c *Client) UpdateProfile(p Profile) error {
	return c.api.Put(fmt.Sprintf("/admin/update-profile/%d", c.adminID()), p, nil)
}

func (c *Client) UpdatePassword(change user.PasswordChange) error {
	return c.api.Put(fmt.Sprintf("/admin/update-password/%d", c.adminID()), change, nil)
}
