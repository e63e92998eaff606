package mockserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/zytra-commerce/zytra-client/internal/admin"
	"github.com/zytra-commerce/zytra-client/internal/auth"
	"github.com/zytra-commerce/zytra-client/internal/user"
)

func (s *Server) registerPublicRoutes(app *fiber.App) {
	app.Get("/all-products", s.allProducts)
	app.Get("/all-categories", s.allCategories)
	app.Get("/all-sub-categories", s.allSubCategories)
	app.Get("/all-brands", s.allBrands)

	app.Post("/user/registration", s.registerUser)
	app.Post("/user/login", s.loginUser)
	app.Post("/admin/registration", s.registerAdmin)
	app.Post("/admin/login", s.loginAdmin)

	app.Post("/user/generate-otp", s.generateOTP)
	app.Post("/user/forgot-username/verify-otp", s.recoverUsername)
	app.Post("/user/forgot-password/verify-otp", s.recoverUserID)
	app.Put("/user/update-forgot-password", s.resetPassword)
}

func (s *Server) allProducts(c *fiber.Ctx) error {
	return c.JSON(s.store.Storefront())
}

func (s *Server) allCategories(c *fiber.Ctx) error {
	return c.JSON(s.store.PublicCategories())
}

func (s *Server) allSubCategories(c *fiber.Ctx) error {
	return c.JSON(s.store.PublicSubCategories())
}

func (s *Server) allBrands(c *fiber.Ctx) error {
	return c.JSON(s.store.PublicBrands())
}

func (s *Server) registerUser(c *fiber.Ctx) error {
	reg := new(auth.UserRegistration)
	if err := c.BodyParser(reg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	profile := user.Profile{
		FirstName: reg.FirstName, LastName: reg.LastName, PhoneNumber: reg.PhoneNumber,
		Email: reg.Email, DoorNumber: reg.DoorNumber, Street: reg.Street, Village: reg.Village,
		City: reg.City, District: reg.District, State: reg.State, Country: reg.Country,
		LandMark: reg.LandMark, PostalCode: reg.PostalCode, UserName: reg.UserName,
	}
	if err := s.store.RegisterUser(profile, reg.Password); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "registered"})
}

func (s *Server) registerAdmin(c *fiber.Ctx) error {
	reg := new(auth.AdminRegistration)
	if err := c.BodyParser(reg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	profile := admin.Profile{
		FirstName: reg.FirstName, LastName: reg.LastName, PhoneNumber: reg.PhoneNumber,
		Email: reg.Email, Address: reg.Address, UserName: reg.UserName,
	}
	if err := s.store.RegisterAdmin(profile, reg.Password); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "registered"})
}

func (s *Server) loginUser(c *fiber.Ctx) error {
	cred := new(auth.Credentials)
	if err := c.BodyParser(cred); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	profile, err := s.store.AuthenticateUser(cred.UserName, cred.Password)
	if err != nil {
		return fail(c, err)
	}
	token, err := s.mintToken(profile.UserID, profile.Role)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"token": token, "userId": profile.UserID, "role": profile.Role})
}

func (s *Server) loginAdmin(c *fiber.Ctx) error {
	cred := new(auth.Credentials)
	if err := c.BodyParser(cred); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	profile, err := s.store.AuthenticateAdmin(cred.UserName, cred.Password)
	if err != nil {
		return fail(c, err)
	}
	token, err := s.mintToken(profile.AdminID, profile.Role)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"token": token, "userId": profile.AdminID, "role": profile.Role})
}

type otpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (s *Server) generateOTP(c *fiber.Ctx) error {
	req := new(otpRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	code, err := s.store.GenerateOTP(req.Email)
	if err != nil {
		return fail(c, err)
	}
	// a real backend mails the code; here it only lands in the log
	s.log.Infow("otp generated", "email", req.Email, "otp", code)
	return c.JSON(fiber.Map{"message": "otp sent"})
}

func (s *Server) recoverUsername(c *fiber.Ctx) error {
	req := new(otpRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	name, err := s.store.RecoverUsername(req.Email, req.OTP)
	if err != nil {
		return fail(c, err)
	}
	return c.SendString(name)
}

func (s *Server) recoverUserID(c *fiber.Ctx) error {
	req := new(otpRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	id, err := s.store.RecoverUserID(req.Email, req.OTP)
	if err != nil {
		return fail(c, err)
	}
	return c.SendString(fmt.Sprintf("OTP verified. UserId : %d", id))
}

func (s *Server) resetPassword(c *fiber.Ctx) error {
	req := new(struct {
		UserID      int    `json:"userId"`
		NewPassword string `json:"newPassword"`
	})
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.ResetPassword(req.UserID, req.NewPassword); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "password updated"})
}
