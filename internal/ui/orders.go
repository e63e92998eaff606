package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zytra-commerce/zytra-client/internal/order"
)

// OrdersModel is the purchase history: orders grouped by payment type and
// status, narrowed by a year and month filter, with a pay-now action for
// pending pay-on-delivery orders.
type OrdersModel struct {
	deps   *Deps
	styles Styles

	orders []order.Order
	years  []int

	yearIdx  int
	monthIdx int // 0 = whole year

	cursor    int
	paying    bool
	payChoice int
}

func NewOrdersModel(deps *Deps, styles Styles) OrdersModel {
	return OrdersModel{deps: deps, styles: styles}
}

// payLaterTypes settle a pending pay-on-delivery order; CASH covers paying
// the courier at the door.
var payLaterTypes = []string{order.PaymentCard, order.PaymentUPI, order.PaymentCash}

func (m OrdersModel) Update(msg tea.Msg) (OrdersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ordersMsg:
		m.orders = msg.orders
		m.years = order.Years(msg.orders)
		if m.yearIdx >= len(m.years) {
			m.yearIdx = 0
		}
		m.cursor = 0
		m.paying = false
		return m, nil

	case tea.KeyMsg:
		if m.paying {
			return m.updatePayment(msg)
		}
		switch msg.String() {
		case "y":
			if len(m.years) > 0 {
				m.yearIdx = (m.yearIdx + 1) % len(m.years)
				m.cursor = 0
			}
		case "m":
			m.monthIdx = (m.monthIdx + 1) % 13
			m.cursor = 0
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			visible := m.visible()
			if m.cursor < len(visible) && visible[m.cursor].CanPayLater() {
				m.paying = true
				m.payChoice = 0
			}
		}
	}
	return m, nil
}

func (m OrdersModel) updatePayment(msg tea.KeyMsg) (OrdersModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.paying = false
	case "down", "j":
		if m.payChoice < len(payLaterTypes)-1 {
			m.payChoice++
		}
	case "up", "k":
		if m.payChoice > 0 {
			m.payChoice--
		}
	case "enter":
		visible := m.visible()
		if m.cursor < len(visible) {
			m.paying = false
			return m, m.deps.payOrder(visible[m.cursor].OrderID, payLaterTypes[m.payChoice])
		}
	}
	return m, nil
}

func (m OrdersModel) visible() []order.Order {
	if len(m.years) == 0 {
		return m.orders
	}
	return order.FilterByMonth(m.orders, m.years[m.yearIdx], time.Month(m.monthIdx))
}

func (m OrdersModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Your orders") + "\n")

	if len(m.orders) == 0 {
		b.WriteString(m.styles.Muted.Render("no orders yet") + "\n")
		return b.String()
	}

	filter := "all"
	if len(m.years) > 0 {
		filter = fmt.Sprint(m.years[m.yearIdx])
		if m.monthIdx > 0 {
			filter += " " + time.Month(m.monthIdx).String()
		}
	}
	b.WriteString(m.styles.Muted.Render("showing "+filter+" · y year · m month") + "\n\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.Muted.Render("no orders in this period") + "\n")
		return b.String()
	}

	for i, o := range visible {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		head := fmt.Sprintf("%sorder %d · %s · %s", marker, o.OrderID,
			o.Date().Format("2 Jan 2006"), m.styles.Price.Render(fmt.Sprintf("$%.2f", o.Total())))
		if o.CanPayLater() {
			head += "  " + m.styles.Badge.Render("payment due")
		}
		b.WriteString(head + "\n")
		for _, pg := range o.PaymentGroups {
			for _, sg := range pg.StatusGroups {
				b.WriteString(fmt.Sprintf("    %s · %s\n", pg.PaymentType, sg.PaymentStatus))
				for _, it := range sg.Items {
					b.WriteString(fmt.Sprintf("      %s x%d  $%.2f  %s\n", it.ProductName, it.ProductQuantity, it.TotalPrice, m.styles.Muted.Render(it.ShippingStatus)))
				}
			}
		}
	}

	if m.paying {
		b.WriteString(m.styles.Subtitle.Render("Settle payment with") + "\n")
		for i, pt := range payLaterTypes {
			marker := "  "
			if i == m.payChoice {
				marker = "> "
			}
			b.WriteString(marker + pt + "\n")
		}
		b.WriteString(m.styles.Muted.Render("enter confirm · esc cancel") + "\n")
	} else {
		b.WriteString(m.styles.Muted.Render("enter pay a due order") + "\n")
	}
	return b.String()
}
