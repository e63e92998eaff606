// Package order covers checkout and order history. An order groups its
// items first by payment type, then by payment status; the screens flatten
// or filter those groups as needed.
package order

import (
	"strconv"
	"strings"
	"time"
)

// Payment types accepted at checkout and seen in history.
const (
	PaymentCard          = "CARD"
	PaymentUPI           = "UPI"
	PaymentOnDelivery    = "PAYONDELIVERY"
	PaymentCash          = "CASH"
	PaymentStatusPending = "PENDING"
)

// CheckoutPaymentTypes are the options the cart screen offers.
var CheckoutPaymentTypes = []string{PaymentCard, PaymentUPI, PaymentOnDelivery}

// Item is one purchased line inside a status group.
type Item struct {
	OrderItem       int     `json:"orderItem"`
	Image           string  `json:"image,omitempty"`
	ProductName     string  `json:"productName"`
	ProductQuantity int     `json:"productQuantity"`
	TotalPrice      float64 `json:"totalPrice"`
	ShippingStatus  string  `json:"shippingStatus,omitempty"`
}

// StatusGroup collects the items of one payment status with their total.
type StatusGroup struct {
	PaymentStatus string  `json:"paymentStatus"`
	TotalPrice    float64 `json:"totalPrice"`
	Items         []Item  `json:"orderItems"`
}

// PaymentGroup collects the status groups of one payment type.
type PaymentGroup struct {
	PaymentType  string        `json:"paymentType"`
	StatusGroups []StatusGroup `json:"groupsByPaymentStatus"`
}

// Order is one order with its grouped items.
type Order struct {
	OrderID       int            `json:"orderId"`
	OrderDate     string         `json:"orderDate"`
	PaymentGroups []PaymentGroup `json:"groupsByPaymentType"`
}

// orderDateLayouts lists the formats history dates arrive in.
var orderDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// Date parses the order date; the zero time flags an unparsable one.
func (o Order) Date() time.Time {
	for _, layout := range orderDateLayouts {
		if ts, err := time.Parse(layout, o.OrderDate); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// Total sums the group totals across the whole order.
func (o Order) Total() float64 {
	var sum float64
	for _, pg := range o.PaymentGroups {
		for _, sg := range pg.StatusGroups {
			sum += sg.TotalPrice
		}
	}
	return sum
}

// CanPayLater reports whether the order still has a pending pay-on-delivery
// group, which is what the "pay now" action settles.
func (o Order) CanPayLater() bool {
	for _, pg := range o.PaymentGroups {
		if pg.PaymentType != PaymentOnDelivery {
			continue
		}
		for _, sg := range pg.StatusGroups {
			if sg.PaymentStatus == PaymentStatusPending {
				return true
			}
		}
	}
	return false
}

// Years lists the distinct order years, newest first, for the history
// filter dropdown.
func Years(orders []Order) []int {
	seen := map[int]bool{}
	var out []int
	for _, o := range orders {
		y := o.Date().Year()
		if y == 1 || seen[y] {
			continue
		}
		seen[y] = true
		out = append(out, y)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j] > out[i] {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

// FilterByMonth narrows history to one year and optionally one month
// (time.Month(0) keeps the whole year).
func FilterByMonth(orders []Order, year int, month time.Month) []Order {
	var out []Order
	for _, o := range orders {
		ts := o.Date()
		if ts.Year() != year {
			continue
		}
		if month != 0 && ts.Month() != month {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ParseOrderID pulls the numeric id out of the initiate reply, which reads
// like "Order created with OrderId : 17". The id follows the last colon.
func ParseOrderID(reply string) (int, bool) {
	i := strings.LastIndex(reply, ":")
	if i < 0 {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(reply[i+1:]))
	if err != nil {
		return 0, false
	}
	return id, true
}
