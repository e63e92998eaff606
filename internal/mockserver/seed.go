package mockserver

import (
	"time"

	"github.com/zytra-commerce/zytra-client/internal/admin"
	"github.com/zytra-commerce/zytra-client/internal/review"
	"github.com/zytra-commerce/zytra-client/internal/user"
)

// Seed loads a small but fully linked dataset: taxonomy, sellers, discounts,
// products with stock, one shopper and one staff account. The shopper signs
// in as demo / Demo@123 and the staff as admin / Admin@123.
func (s *Store) Seed() {
	footwear := s.AddCategory(admin.Category{Name: "Footwear", Description: "Shoes and sports footwear", Image: "/img/cat-footwear.png"})
	bags := s.AddCategory(admin.Category{Name: "Bags", Description: "Backpacks and totes", Image: "/img/cat-bags.png"})
	accessories := s.AddCategory(admin.Category{Name: "Accessories", Description: "Belts, wallets and more", Image: "/img/cat-accessories.png"})

	running, _ := s.AddSubCategory(admin.SubCategory{Name: "Running", CategoryID: footwear.CategoryID})
	casual, _ := s.AddSubCategory(admin.SubCategory{Name: "Casual", CategoryID: footwear.CategoryID})
	totes, _ := s.AddSubCategory(admin.SubCategory{Name: "Totes", CategoryID: bags.CategoryID})
	belts, _ := s.AddSubCategory(admin.SubCategory{Name: "Belts", CategoryID: accessories.CategoryID})

	strideway := s.AddBrand(admin.Brand{Name: "Strideway", Image: "/img/brand-strideway.png"})
	lumafield := s.AddBrand(admin.Brand{Name: "Lumafield", Image: "/img/brand-lumafield.png"})
	corda := s.AddBrand(admin.Brand{Name: "Corda", Image: "/img/brand-corda.png"})

	apex := s.AddSeller(admin.Seller{SellerName: "Apex Retail", Email: "sales@apexretail.example", PhoneNumber: "9876500001", Address: "7 Dockside Row", Status: "ACTIVE"})
	north := s.AddSeller(admin.Seller{SellerName: "North Supply", Email: "hello@northsupply.example", PhoneNumber: "9876500002", Address: "21 Granary Lane", Status: "ACTIVE"})

	now := s.now().UTC()
	tenOff := s.AddDiscount(admin.Discount{
		DiscountType:  "PERCENTAGE",
		DiscountValue: 10,
		StartDate:     now.AddDate(0, 0, -3).Format(time.RFC3339),
		EndDate:       now.AddDate(0, 0, 7).Format(time.RFC3339),
	})
	fiveFlat := s.AddDiscount(admin.Discount{
		DiscountType:  "AMOUNT",
		DiscountValue: 5,
		StartDate:     now.AddDate(0, 0, -1).Format(time.RFC3339),
		EndDate:       now.AddDate(0, 0, 2).Format(time.RFC3339),
	})

	products := []admin.ProductForm{
		{CategoryID: footwear.CategoryID, SubCategoryID: running.SubCategoryID, BrandID: strideway.BrandID, SellerID: apex.SellerID, DiscountID: tenOff.DiscountID,
			ProductName: "Trail Runner X", Description: "Cushioned trail running shoe", ActualPrice: 120, Color: "Slate", Size: "42", ImageFrontView: "/img/trail-runner-front.png"},
		{CategoryID: footwear.CategoryID, SubCategoryID: casual.SubCategoryID, BrandID: strideway.BrandID, SellerID: apex.SellerID,
			ProductName: "Urban Sneaker", Description: "Everyday low-top sneaker", ActualPrice: 65, Color: "White", Size: "41", ImageFrontView: "/img/urban-sneaker-front.png"},
		{CategoryID: bags.CategoryID, SubCategoryID: totes.SubCategoryID, BrandID: lumafield.BrandID, SellerID: north.SellerID, DiscountID: fiveFlat.DiscountID,
			ProductName: "Canvas Tote", Description: "Heavy canvas shoulder tote", ActualPrice: 35, Color: "Natural", ImageFrontView: "/img/canvas-tote-front.png"},
		{CategoryID: footwear.CategoryID, SubCategoryID: running.SubCategoryID, BrandID: lumafield.BrandID, SellerID: north.SellerID,
			ProductName: "Runner Socks", Description: "Moisture-wicking crew socks", ActualPrice: 12, Color: "Grey", ImageFrontView: "/img/runner-socks-front.png"},
		{CategoryID: accessories.CategoryID, SubCategoryID: belts.SubCategoryID, BrandID: corda.BrandID, SellerID: apex.SellerID,
			ProductName: "Leather Belt", Description: "Full-grain leather belt", ActualPrice: 25, Color: "Brown", Size: "M", ImageFrontView: "/img/leather-belt-front.png"},
	}
	var productIDs []int
	for _, form := range products {
		id, _ := s.AddProduct(form)
		productIDs = append(productIDs, id)
	}

	for i, id := range productIDs {
		sellerID := apex.SellerID
		if i%2 == 1 {
			sellerID = north.SellerID
		}
		s.AddInventory(admin.Inventory{ProductID: id, StockQuantity: 20 + i*10, WareHouseLocation: "WH-1", SellerID: sellerID})
	}

	s.RegisterUser(user.Profile{
		FirstName: "Asha", LastName: "Verma", PhoneNumber: "9876543210", Email: "asha@example.com",
		DoorNumber: "12B", Street: "Mill Road", Village: "Oakfield", City: "Brookton", District: "Northvale",
		State: "Westmark", Country: "Freland", LandMark: "Opposite the old mill", PostalCode: "560001",
		UserName: "demo",
	}, "Demo@123")

	s.RegisterAdmin(admin.Profile{
		FirstName: "Ravi", LastName: "Kumar", PhoneNumber: "9876543211", Email: "ravi@example.com",
		Address: "14 Harbor Lane, Brookton", UserName: "admin",
	}, "Admin@123")

	if len(productIDs) > 0 {
		demo, _ := s.AuthenticateUser("demo", "Demo@123")
		s.SubmitReview(demo.UserID, productIDs[0], review.Review{Rating: 5, Comment: "Great grip on wet trails"})
	}
}
