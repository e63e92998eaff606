package mockserver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zytra-commerce/zytra-client/internal/admin"
	"github.com/zytra-commerce/zytra-client/internal/user"
)

func (s *Server) registerAdminRoutes(app *fiber.App) {
	app.Get("/admin/get-admin-details/:id", s.getAdminDetails)
	app.Put("/admin/update-profile/:id", s.updateAdminProfile)
	app.Put("/admin/update-password/:id", s.updateAdminPassword)
	app.Get("/admin/get-all-user-details/:id", s.getAllUsers)

	inv := app.Group("/admin/inventory")
	inv.Get("/get-all-categories/:adminId", s.adminCategories)
	inv.Post("/add-category/:adminId", s.addCategory)
	inv.Put("/update-category/:adminId/:id", s.updateCategory)

	inv.Get("/get-all-subcategories/:adminId", s.adminSubCategories)
	inv.Post("/add-subcategory/:adminId", s.addSubCategory)
	inv.Put("/update-subcategory/:adminId/:id", s.updateSubCategory)

	inv.Get("/get-all-brands/:adminId", s.adminBrands)
	inv.Post("/add-brand/:adminId", s.addBrand)
	inv.Put("/update-brand/:adminId/:id", s.updateBrand)

	inv.Get("/get-all-sellers/:adminId", s.adminSellers)
	inv.Post("/add-seller/:adminId", s.addSeller)
	inv.Put("/update-seller/:adminId/:id", s.updateSeller)
	inv.Put("/activate-seller/:adminId/:sellerId", s.activateSeller)
	inv.Put("/deactivate-seller/:adminId/:sellerId", s.deactivateSeller)

	inv.Get("/get-all-discounts/:adminId", s.adminDiscounts)
	inv.Post("/add-discount/:adminId", s.addDiscount)
	inv.Put("/update-discount/:adminId/:id", s.updateDiscount)

	inv.Get("/get-all-products/:adminId", s.adminProducts)
	inv.Post("/add-new-product/:adminId", s.addProduct)
	inv.Put("/update-product-details/:adminId/:pid", s.updateProduct)

	inv.Get("/get-all-inventory/:adminId", s.adminInventory)
	inv.Post("/add-inventory/:adminId", s.addInventory)
	inv.Put("/update-inventory/:adminId/:id", s.updateInventory)
}

func (s *Server) getAdminDetails(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	p, err := s.store.AdminDetails(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(p)
}

func (s *Server) updateAdminProfile(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	p := new(admin.Profile)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.UpdateAdminProfile(id, *p); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "profile updated"})
}

func (s *Server) updateAdminPassword(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	change := new(user.PasswordChange)
	if err := c.BodyParser(change); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.UpdateAdminPassword(id, change.OldPassword, change.NewPassword); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "password updated"})
}

func (s *Server) getAllUsers(c *fiber.Ctx) error {
	return c.JSON(s.store.AllUsers())
}

func (s *Server) adminCategories(c *fiber.Ctx) error {
	return c.JSON(s.store.Categories())
}

func (s *Server) addCategory(c *fiber.Ctx) error {
	cat := new(admin.Category)
	if err := c.BodyParser(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(s.store.AddCategory(*cat))
}

func (s *Server) updateCategory(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	cat := new(admin.Category)
	if err := c.BodyParser(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.UpdateCategory(id, *cat); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "updated"})
}

func (s *Server) adminSubCategories(c *fiber.Ctx) error {
	return c.JSON(s.store.SubCategories())
}

func (s *Server) addSubCategory(c *fiber.Ctx) error {
	sc := new(admin.SubCategory)
	if err := c.BodyParser(sc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	created, err := s.store.AddSubCategory(*sc)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) updateSubCategory(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	sc := new(admin.SubCategory)
	if err := c.BodyParser(sc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.UpdateSubCategory(id, *sc); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "updated"})
}

func (s *Server) adminBrands(c *fiber.Ctx) error {
	return c.JSON(s.store.Brands())
}

func (s *Server) addBrand(c *fiber.Ctx) error {
	b := new(admin.Brand)
	if err := c.BodyParser(b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(s.store.AddBrand(*b))
}

func (s *Server) updateBrand(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	b := new(admin.Brand)
	if err := c.BodyParser(b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.UpdateBrand(id, *b); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "updated"})
}

func (s *Server) adminSellers(c *fiber.Ctx) error {
	return c.JSON(s.store.Sellers())
}

func (s *Server) addSeller(c *fiber.Ctx) error {
	sl := new(admin.Seller)
	if err := c.BodyParser(sl); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(s.store.AddSeller(*sl))
}

func (s *Server) updateSeller(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	sl := new(admin.Seller)
	if err := c.BodyParser(sl); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.UpdateSeller(id, *sl); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "updated"})
}

func (s *Server) activateSeller(c *fiber.Ctx) error {
	return s.setSellerStatus(c, "ACTIVE")
}

func (s *Server) deactivateSeller(c *fiber.Ctx) error {
	return s.setSellerStatus(c, "INACTIVE")
}

func (s *Server) setSellerStatus(c *fiber.Ctx, status string) error {
	id, err := param(c, "sellerId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := s.store.SetSellerStatus(id, status); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "seller " + status})
}

func (s *Server) adminDiscounts(c *fiber.Ctx) error {
	return c.JSON(s.store.Discounts())
}

func (s *Server) addDiscount(c *fiber.Ctx) error {
	d := new(admin.Discount)
	if err := c.BodyParser(d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(s.store.AddDiscount(*d))
}

func (s *Server) updateDiscount(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	d := new(admin.Discount)
	if err := c.BodyParser(d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.UpdateDiscount(id, *d); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "updated"})
}

func (s *Server) adminProducts(c *fiber.Ctx) error {
	return c.JSON(s.store.AdminProducts())
}

func (s *Server) addProduct(c *fiber.Ctx) error {
	form := new(admin.ProductForm)
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	id, err := s.store.AddProduct(*form)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"productId": id})
}

func (s *Server) updateProduct(c *fiber.Ctx) error {
	pid, err := param(c, "pid")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	form := new(admin.ProductForm)
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.UpdateProduct(pid, *form); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "updated"})
}

func (s *Server) adminInventory(c *fiber.Ctx) error {
	return c.JSON(s.store.Inventory())
}

func (s *Server) addInventory(c *fiber.Ctx) error {
	inv := new(admin.Inventory)
	if err := c.BodyParser(inv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	created, err := s.store.AddInventory(*inv)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) updateInventory(c *fiber.Ctx) error {
	id, err := param(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	inv := new(admin.Inventory)
	if err := c.BodyParser(inv); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := s.store.UpdateInventory(id, *inv); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "updated"})
}
