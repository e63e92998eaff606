package mockserver

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/zytra-commerce/zytra-client/internal/order"
	"github.com/zytra-commerce/zytra-client/internal/review"
	"github.com/zytra-commerce/zytra-client/internal/user"
)

func (s *Server) registerUserRoutes(app *fiber.App) {
	app.Get("/user/all-products/:id", s.allProducts)
	app.Get("/user/get-product/:id/:pid", s.getProduct)
	app.Post("/user/review-product/:id/:pid", s.reviewProduct)
	app.Put("/user/update-review/:id/:pid", s.reviewProduct)

	app.Get("/user/get-cart/:id", s.getCart)
	app.Post("/user/add-to-cart/:id/:pid", s.addToCart)
	app.Delete("/user/delete-from-cart/:id/:pid", s.deleteFromCart)

	app.Post("/user/initiate-order/:id", s.initiateOrder)
	app.Put("/user/order-payment/:id/:oid", s.orderPayment)
	app.Get("/user/get-orders/:id", s.getOrders)
	app.Get("/user/get-order/:id/:oid", s.getOrder)

	app.Get("/user/get-user-details/:id", s.getUserDetails)
	app.Put("/user/update-profile/:id", s.updateUserProfile)
	app.Put("/user/update-password/:id", s.updateUserPassword)
	app.Put("/user/subscribe-prime/:id", s.subscribePrime)
}

func param(c *fiber.Ctx, name string) (int, error) {
	return strconv.Atoi(c.Params(name))
}

func (s *Server) getProduct(c *fiber.Ctx) error {
	pid, err := param(c, "pid")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	p, err := s.store.StorefrontProduct(pid)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(p)
}

func (s *Server) reviewProduct(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	pid, err := param(c, "pid")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	r := new(review.Review)
	if err := c.BodyParser(r); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !r.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "rating must be between 1 and 5"})
	}
	if err := s.store.SubmitReview(id, pid, *r); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "review saved"})
}

func (s *Server) getCart(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	return c.JSON(fiber.Map{"carts": s.store.Cart(id)})
}

func (s *Server) addToCart(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	pid, err := param(c, "pid")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := s.store.AddToCart(id, pid); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "added"})
}

func (s *Server) deleteFromCart(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	pid, err := param(c, "pid")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := s.store.RemoveFromCart(id, pid); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "removed"})
}

func (s *Server) initiateOrder(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	orderID, err := s.store.InitiateOrder(id)
	if err != nil {
		return fail(c, err)
	}
	return c.SendString("Order created with OrderId : " + strconv.Itoa(orderID))
}

func (s *Server) orderPayment(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	oid, err := param(c, "oid")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	req := new(struct {
		PaymentType string `json:"paymentType"`
	})
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.PayOrder(id, oid, req.PaymentType); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "payment recorded"})
}

func (s *Server) getOrders(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	return c.JSON(s.store.Orders(id))
}

func (s *Server) getOrder(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	oid, err := param(c, "oid")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	var o order.Order
	if o, err = s.store.Order(id, oid); err != nil {
		return fail(c, err)
	}
	return c.JSON(o)
}

func (s *Server) getUserDetails(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	p, err := s.store.UserDetails(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(p)
}

func (s *Server) updateUserProfile(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	p := new(user.Profile)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.UpdateUserProfile(id, *p); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "profile updated"})
}

func (s *Server) updateUserPassword(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	change := new(user.PasswordChange)
	if err := c.BodyParser(change); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.UpdateUserPassword(id, change.OldPassword, change.NewPassword); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "password updated"})
}

func (s *Server) subscribePrime(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := s.store.SubscribePrime(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "membership upgraded"})
}
