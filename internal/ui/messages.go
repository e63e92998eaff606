package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zytra-commerce/zytra-client/internal/admin"
	"github.com/zytra-commerce/zytra-client/internal/cart"
	"github.com/zytra-commerce/zytra-client/internal/catalog"
	"github.com/zytra-commerce/zytra-client/internal/order"
	"github.com/zytra-commerce/zytra-client/internal/user"
)

// SessionExpiredMsg is injected from outside the program when any request
// comes back 401. Every page yields to the login screen when it arrives.
type SessionExpiredMsg struct{}

type errMsg struct{ err error }

type statusMsg struct{ text string }

type productsMsg struct{ products []catalog.Product }

type taxonomyMsg struct {
	categories    []catalog.Category
	subCategories []catalog.SubCategory
	brands        []catalog.Brand
}

type productDetailMsg struct{ product catalog.Product }

type loggedInMsg struct{ admin bool }

type registeredMsg struct{}

type recoveredUsernameMsg struct{ userName string }

type recoveredUserIDMsg struct{ userID int }

type otpSentMsg struct{}

type cartMsg struct{ items []cart.Item }

type orderPlacedMsg struct{ orderID int }

type ordersMsg struct{ orders []order.Order }

type profileMsg struct{ profile user.Profile }

type adminProfileMsg struct{ profile admin.Profile }

type adminListMsg struct {
	categories    []admin.Category
	subCategories []admin.SubCategory
	brands        []admin.Brand
	sellers       []admin.Seller
	discounts     []admin.Discount
	products      []admin.Product
	inventory     []admin.Inventory
	users         []admin.User
}

// command constructors, one per backend interaction

func (d *Deps) fetchPublicProducts() tea.Cmd {
	return func() tea.Msg {
		products, err := d.Catalog.AllProducts()
		if err != nil {
			return errMsg{err}
		}
		return productsMsg{products}
	}
}

func (d *Deps) fetchTaxonomy() tea.Cmd {
	return func() tea.Msg {
		categories, err := d.Catalog.AllCategories()
		if err != nil {
			return errMsg{err}
		}
		subCategories, err := d.Catalog.AllSubCategories()
		if err != nil {
			return errMsg{err}
		}
		brands, err := d.Catalog.AllBrands()
		if err != nil {
			return errMsg{err}
		}
		return taxonomyMsg{categories, subCategories, brands}
	}
}

func (d *Deps) fetchUserProducts() tea.Cmd {
	return func() tea.Msg {
		products, err := d.Catalog.UserProducts(d.Session.UserID())
		if err != nil {
			return errMsg{err}
		}
		return productsMsg{products}
	}
}

func (d *Deps) fetchProductDetail(productID int) tea.Cmd {
	return func() tea.Msg {
		p, err := d.Catalog.ProductDetail(d.Session.UserID(), productID)
		if err != nil {
			return errMsg{err}
		}
		return productDetailMsg{p}
	}
}

func (d *Deps) fetchCart() tea.Cmd {
	return func() tea.Msg {
		items, err := d.Cart.Get(d.Session.UserID())
		if err != nil {
			return errMsg{err}
		}
		return cartMsg{items}
	}
}

func (d *Deps) addToCart(productID int) tea.Cmd {
	return func() tea.Msg {
		if err := d.Cart.AddOne(d.Session.UserID(), productID); err != nil {
			return errMsg{err}
		}
		items, err := d.Cart.Get(d.Session.UserID())
		if err != nil {
			return errMsg{err}
		}
		return cartMsg{items}
	}
}

func (d *Deps) removeFromCart(productID int) tea.Cmd {
	return func() tea.Msg {
		if err := d.Cart.RemoveOne(d.Session.UserID(), productID); err != nil {
			return errMsg{err}
		}
		items, err := d.Cart.Get(d.Session.UserID())
		if err != nil {
			return errMsg{err}
		}
		return cartMsg{items}
	}
}

func (d *Deps) placeOrder(paymentType string) tea.Cmd {
	return func() tea.Msg {
		orderID, err := d.Order.Initiate(d.Session.UserID())
		if err != nil {
			return errMsg{err}
		}
		if err := d.Order.Pay(d.Session.UserID(), orderID, paymentType); err != nil {
			return errMsg{err}
		}
		return orderPlacedMsg{orderID}
	}
}

func (d *Deps) payOrder(orderID int, paymentType string) tea.Cmd {
	return func() tea.Msg {
		if err := d.Order.Pay(d.Session.UserID(), orderID, paymentType); err != nil {
			return errMsg{err}
		}
		orders, err := d.Order.List(d.Session.UserID())
		if err != nil {
			return errMsg{err}
		}
		return ordersMsg{orders}
	}
}

func (d *Deps) fetchOrders() tea.Cmd {
	return func() tea.Msg {
		orders, err := d.Order.List(d.Session.UserID())
		if err != nil {
			return errMsg{err}
		}
		return ordersMsg{orders}
	}
}

func (d *Deps) fetchProfile() tea.Cmd {
	return func() tea.Msg {
		p, err := d.User.Details(d.Session.UserID())
		if err != nil {
			return errMsg{err}
		}
		return profileMsg{p}
	}
}
