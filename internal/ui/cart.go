package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zytra-commerce/zytra-client/internal/cart"
	"github.com/zytra-commerce/zytra-client/internal/order"
	"github.com/zytra-commerce/zytra-client/internal/paging"
)

const cartPerPage = 6

// CartModel renders the cart with optimistic quantity edits: +/- update the
// local list immediately while the request runs, and the server reply
// replaces it.
type CartModel struct {
	deps   *Deps
	styles Styles

	items  []cart.Item
	page   int
	cursor int

	checkingOut bool
	payChoice   int
}

func NewCartModel(deps *Deps, styles Styles) CartModel {
	return CartModel{deps: deps, styles: styles, page: 1}
}

func (m CartModel) Update(msg tea.Msg) (CartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case cartMsg:
		m.items = msg.items
		if m.cursor >= len(m.pageItems()) {
			m.cursor = 0
		}
		return m, nil

	case orderPlacedMsg:
		m.items = nil
		m.checkingOut = false
		return m, func() tea.Msg { return statusMsg{fmt.Sprintf("order %d placed", msg.orderID)} }

	case tea.KeyMsg:
		if m.checkingOut {
			return m.updateCheckout(msg)
		}
		switch msg.String() {
		case "down", "j":
			if m.cursor < len(m.pageItems())-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "left":
			if m.page > 1 {
				m.page--
				m.cursor = 0
			}
		case "right":
			if m.page < paging.TotalPages(len(m.items), cartPerPage) {
				m.page++
				m.cursor = 0
			}
		case "+":
			if it, ok := m.selected(); ok {
				m.items = cart.IncrementLocal(m.items, it.ProductID)
				return m, m.deps.addToCart(it.ProductID)
			}
		case "-":
			if it, ok := m.selected(); ok {
				m.items = cart.DecrementLocal(m.items, it.ProductID)
				return m, m.deps.removeFromCart(it.ProductID)
			}
		case "enter":
			if len(m.items) > 0 {
				m.checkingOut = true
				m.payChoice = 0
			}
		}
	}
	return m, nil
}

func (m CartModel) updateCheckout(msg tea.KeyMsg) (CartModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.checkingOut = false
	case "down", "j":
		if m.payChoice < len(order.CheckoutPaymentTypes)-1 {
			m.payChoice++
		}
	case "up", "k":
		if m.payChoice > 0 {
			m.payChoice--
		}
	case "enter":
		return m, m.deps.placeOrder(order.CheckoutPaymentTypes[m.payChoice])
	}
	return m, nil
}

func (m CartModel) pageItems() []cart.Item {
	return paging.Page(m.items, m.page, cartPerPage)
}

func (m CartModel) selected() (cart.Item, bool) {
	items := m.pageItems()
	if m.cursor < 0 || m.cursor >= len(items) {
		return cart.Item{}, false
	}
	return items[m.cursor], true
}

func (m CartModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Cart (%d items)", cart.Count(m.items))) + "\n")

	if len(m.items) == 0 {
		b.WriteString(m.styles.Muted.Render("your cart is empty") + "\n")
		return b.String()
	}

	for i, it := range m.pageItems() {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		line := fmt.Sprintf("%s%s  x%d  %s", marker, it.ProductName, it.ProductQuantity,
			m.styles.Price.Render(fmt.Sprintf("$%.2f", it.TotalPrice*float64(it.ProductQuantity))))
		b.WriteString(line + "\n")
	}

	total := m.styles.Price.Render(fmt.Sprintf("$%.2f", cart.Total(m.items)))
	b.WriteString("\n" + m.styles.Subtitle.Render("Total ") + total + "\n")

	if tp := paging.TotalPages(len(m.items), cartPerPage); tp > 1 {
		b.WriteString(m.styles.Pager.Render(fmt.Sprintf("page %d of %d", m.page, tp)) + "\n")
	}

	if m.checkingOut {
		b.WriteString(m.styles.Subtitle.Render("Pay with") + "\n")
		for i, pt := range order.CheckoutPaymentTypes {
			marker := "  "
			if i == m.payChoice {
				marker = "> "
			}
			b.WriteString(marker + pt + "\n")
		}
		b.WriteString(m.styles.Muted.Render("enter confirm · esc cancel") + "\n")
	} else {
		b.WriteString(m.styles.Muted.Render("+/- quantity · enter checkout") + "\n")
	}
	return b.String()
}
