package mockserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zytra-commerce/zytra-client/internal/admin"
	"github.com/zytra-commerce/zytra-client/internal/catalog"
	"github.com/zytra-commerce/zytra-client/internal/review"
	"github.com/zytra-commerce/zytra-client/internal/user"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.Seed()
	return s
}

func TestStorefrontJoinsRelations(t *testing.T) {
	s := seededStore(t)

	products := s.Storefront()
	require.Len(t, products, 5)

	var trail catalog.Product
	for _, p := range products {
		if p.Name == "Trail Runner X" {
			trail = p
		}
	}
	require.Equal(t, "Footwear", trail.CategoryName)
	require.Equal(t, "Strideway", trail.BrandName)
	require.Equal(t, "Apex Retail", trail.SellerName)
	require.Equal(t, catalog.SellerActive, trail.SellerStatus)
	require.Equal(t, float64(108), trail.TotalPrice) // 120 less 10%
	require.Len(t, trail.AllReviews, 1)
}

func TestDiscountWindowGatesPricing(t *testing.T) {
	s := NewStore()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	cat := s.AddCategory(admin.Category{Name: "Footwear"})
	brand := s.AddBrand(admin.Brand{Name: "Strideway"})
	seller := s.AddSeller(admin.Seller{SellerName: "Apex Retail"})
	disc := s.AddDiscount(admin.Discount{
		DiscountType: "AMOUNT", DiscountValue: 20,
		StartDate: "2026-03-01T00:00:00Z", EndDate: "2026-03-12T00:00:00Z",
	})
	id, err := s.AddProduct(admin.ProductForm{
		CategoryID: cat.CategoryID, BrandID: brand.BrandID, SellerID: seller.SellerID,
		DiscountID: disc.DiscountID, ProductName: "Trail Runner X", ActualPrice: 100,
	})
	require.NoError(t, err)

	p, err := s.StorefrontProduct(id)
	require.NoError(t, err)
	require.Equal(t, float64(80), p.TotalPrice)

	// past the window the discount no longer applies
	s.now = func() time.Time { return base.AddDate(0, 0, 5) }
	p, err = s.StorefrontProduct(id)
	require.NoError(t, err)
	require.Equal(t, float64(100), p.TotalPrice)
}

func TestReviewUpsertsPerUser(t *testing.T) {
	s := seededStore(t)
	demo, err := s.AuthenticateUser("demo", "Demo@123")
	require.NoError(t, err)

	products := s.Storefront()
	pid := products[0].ID

	require.NoError(t, s.SubmitReview(demo.UserID, pid, review.Review{Rating: 3, Comment: "ok"}))
	require.NoError(t, s.SubmitReview(demo.UserID, pid, review.Review{Rating: 4, Comment: "better"}))

	p, err := s.StorefrontProduct(pid)
	require.NoError(t, err)

	var mine []review.Review
	for _, r := range p.AllReviews {
		if r.UserID == demo.UserID {
			mine = append(mine, r)
		}
	}
	require.Len(t, mine, 1)
	require.Equal(t, 4, mine[0].Rating)
}

func TestCartMergesAndOrderDrainsIt(t *testing.T) {
	s := seededStore(t)
	demo, err := s.AuthenticateUser("demo", "Demo@123")
	require.NoError(t, err)
	pid := s.Storefront()[1].ID

	require.NoError(t, s.AddToCart(demo.UserID, pid))
	require.NoError(t, s.AddToCart(demo.UserID, pid))
	items := s.Cart(demo.UserID)
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].ProductQuantity)

	orderID, err := s.InitiateOrder(demo.UserID)
	require.NoError(t, err)
	require.Empty(t, s.Cart(demo.UserID))

	_, err = s.InitiateOrder(demo.UserID)
	require.ErrorIs(t, err, ErrEmptyCart)

	o, err := s.Order(demo.UserID, orderID)
	require.NoError(t, err)
	require.True(t, o.Total() > 0)
}

func TestRegistrationRejectsDuplicates(t *testing.T) {
	s := seededStore(t)
	err := s.RegisterUser(user.Profile{UserName: "demo", Email: "someone-else@example.com"}, "Other@123")
	require.ErrorIs(t, err, ErrConflict)
}
