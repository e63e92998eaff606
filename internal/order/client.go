package order

import (
	"errors"
	"fmt"

	"github.com/zytra-commerce/zytra-client/internal/api"
)

var ErrBadInitiateReply = errors.New("order: unrecognized initiate reply")

type Client struct {
	api *api.Client
}

func NewClient(a *api.Client) *Client {
	return &Client{api: a}
}

// Initiate turns the cart into a new order and returns its id.
func (c *Client) Initiate(userID int) (int, error) {
	reply, err := c.api.PostText(fmt.Sprintf("/user/initiate-order/%d", userID), nil)
	if err != nil {
		return 0, err
	}
	id, ok := ParseOrderID(reply)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadInitiateReply, reply)
	}
	return id, nil
}

// Pay settles an initiated order with the chosen payment type.
func (c *Client) Pay(userID, orderID int, paymentType string) error {
	body := map[string]string{"paymentType": paymentType}
	return c.api.Put(fmt.Sprintf("/user/order-payment/%d/%d", userID, orderID), body, nil)
}

func (c *Client) List(userID int) ([]Order, error) {
	var out []Order
	if err := c.api.Get(fmt.Sprintf("/user/get-orders/%d", userID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(userID, orderID int) (Order, error) {
	var out Order
	if err := c.api.Get(fmt.Sprintf("/user/get-order/%d/%d", userID, orderID), &out); err != nil {
		return Order{}, err
	}
	return out, nil
}
