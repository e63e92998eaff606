package mockserver

import "github.com/zytra-commerce/zytra-client/internal/admin"

// admin-side mutations and projections

func (s *Store) AddCategory(c admin.Category) admin.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.CategoryID = s.id()
	s.categories = append(s.categories, c)
	return c
}

func (s *Store) UpdateCategory(id int, c admin.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].CategoryID == id {
			c.CategoryID = id
			s.categories[i] = c
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) AddSubCategory(sc admin.SubCategory) (admin.SubCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categoryByID(sc.CategoryID); !ok {
		return admin.SubCategory{}, ErrNotFound
	}
	sc.SubCategoryID = s.id()
	s.subCategories = append(s.subCategories, sc)
	return sc, nil
}

func (s *Store) UpdateSubCategory(id int, sc admin.SubCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.subCategories {
		if s.subCategories[i].SubCategoryID == id {
			sc.SubCategoryID = id
			s.subCategories[i] = sc
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) AddBrand(b admin.Brand) admin.Brand {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.BrandID = s.id()
	s.brands = append(s.brands, b)
	return b
}

func (s *Store) UpdateBrand(id int, b admin.Brand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.brands {
		if s.brands[i].BrandID == id {
			b.BrandID = id
			s.brands[i] = b
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) Sellers() []admin.Seller {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]admin.Seller(nil), s.sellers...)
}

func (s *Store) AddSeller(sl admin.Seller) admin.Seller {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl.SellerID = s.id()
	if sl.Status == "" {
		sl.Status = "ACTIVE"
	}
	s.sellers = append(s.sellers, sl)
	return sl
}

func (s *Store) UpdateSeller(id int, sl admin.Seller) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sellers {
		if s.sellers[i].SellerID == id {
			sl.SellerID = id
			if sl.Status == "" {
				sl.Status = s.sellers[i].Status
			}
			s.sellers[i] = sl
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) SetSellerStatus(id int, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sellers {
		if s.sellers[i].SellerID == id {
			s.sellers[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) Discounts() []admin.Discount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]admin.Discount(nil), s.discounts...)
}

func (s *Store) AddDiscount(d admin.Discount) admin.Discount {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.DiscountID = s.id()
	s.discounts = append(s.discounts, d)
	return d
}

func (s *Store) UpdateDiscount(id int, d admin.Discount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.discounts {
		if s.discounts[i].DiscountID == id {
			d.DiscountID = id
			s.discounts[i] = d
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) AddProduct(form admin.ProductForm) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categoryByID(form.CategoryID); !ok {
		return 0, ErrNotFound
	}
	if _, ok := s.brandByID(form.BrandID); !ok {
		return 0, ErrNotFound
	}
	if _, ok := s.sellerByID(form.SellerID); !ok {
		return 0, ErrNotFound
	}
	rec := productRecord{ProductForm: form, ProductID: s.id()}
	s.products = append(s.products, rec)
	return rec.ProductID, nil
}

func (s *Store) UpdateProduct(id int, form admin.ProductForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ProductID == id {
			s.products[i].ProductForm = form
			return nil
		}
	}
	return ErrNotFound
}

// AdminProducts resolves relation names into the admin read projection.
func (s *Store) AdminProducts() []admin.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []admin.Product{}
	for _, p := range s.products {
		view := s.storefront(p)
		out = append(out, admin.Product{
			ProductID:       p.ProductID,
			ProductName:     p.ProductName,
			Description:     p.Description,
			SubDescription:  p.SubDescription,
			CategoryID:      p.CategoryID,
			CategoryName:    view.CategoryName,
			SubCategoryID:   p.SubCategoryID,
			SubCategoryName: view.SubCategoryName,
			BrandID:         p.BrandID,
			BrandName:       view.BrandName,
			SellerID:        p.SellerID,
			SellerName:      view.SellerName,
			DiscountID:      p.DiscountID,
			ActualPrice:     p.ActualPrice,
			TotalPrice:      view.TotalPrice,
			Color:           p.Color,
			Size:            p.Size,
		})
	}
	return out
}

func (s *Store) Inventory() []admin.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]admin.Inventory(nil), s.inventory...)
}

func (s *Store) AddInventory(inv admin.Inventory) (admin.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.productByID(inv.ProductID); !ok {
		return admin.Inventory{}, ErrNotFound
	}
	inv.InventoryID = s.id()
	s.inventory = append(s.inventory, inv)
	return inv, nil
}

func (s *Store) UpdateInventory(id int, inv admin.Inventory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inventory {
		if s.inventory[i].InventoryID == id {
			inv.InventoryID = id
			s.inventory[i] = inv
			return nil
		}
	}
	return ErrNotFound
}
