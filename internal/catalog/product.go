// Package catalog holds the product projection the browse screens render,
// the pure pricing/discount derivations, and the filter/paginate logic that
// narrows an in-memory product list. Nothing here talks to the network
// except Client; everything else is a deterministic function of its inputs.
package catalog

import (
	"math"
	"math/rand"
	"time"

	"github.com/zytra-commerce/zytra-client/internal/review"
)

// DiscountType distinguishes how DiscountValue applies to the price.
type DiscountType string

const (
	DiscountAmount     DiscountType = "AMOUNT"
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFlat       DiscountType = "FLAT"
	DiscountActual     DiscountType = "ACTUAL"
)

// SellerStatus gates purchasability: products of inactive sellers render as
// not available.
type SellerStatus string

const (
	SellerActive   SellerStatus = "ACTIVE"
	SellerInactive SellerStatus = "INACTIVE"
)

// Product is the catalog item projection used by every browse screen.
// TotalPrice is the post-discount price the backend computed; ActualPrice
// (when present) is the pre-discount price. All display maths here re-derive
// values for presentation only; the backend owns correctness.
type Product struct {
	ID              int          `json:"productId"`
	Name            string       `json:"productName"`
	Description     string       `json:"productDescription"`
	SubDescription  string       `json:"productSubDescription,omitempty"`
	CategoryName    string       `json:"categoryName"`
	SubCategoryName string       `json:"subCategoryName,omitempty"`
	BrandName       string       `json:"brandName"`
	SellerName      string       `json:"sellerName,omitempty"`
	SellerStatus    SellerStatus `json:"sellerStatus,omitempty"`

	ActualPrice   float64      `json:"actualPrice,omitempty"`
	TotalPrice    float64      `json:"totalPrice"`
	DiscountValue float64      `json:"discountValue"`
	DiscountType  DiscountType `json:"discountType,omitempty"`
	EndDate       string       `json:"endDate,omitempty"`

	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`

	ImageFrontView   string   `json:"imageFrontView,omitempty"`
	ImageTopView     string   `json:"imageTopView,omitempty"`
	ImageSideView    string   `json:"imageSideView,omitempty"`
	ImageBottomView  string   `json:"imageBottomView,omitempty"`
	AdditionalImages []string `json:"additionalImages,omitempty"`

	AllReviews []review.Review `json:"allReviews,omitempty"`
}

// Category, SubCategory and Brand are the public taxonomy projections.
type Category struct {
	ID          int    `json:"categoryId"`
	Name        string `json:"categoryName"`
	Description string `json:"categoryDescription,omitempty"`
	Image       string `json:"categoryImage,omitempty"`
}

type SubCategory struct {
	ID           int    `json:"subCategoryId"`
	Name         string `json:"subCategoryName"`
	Description  string `json:"subCategoryDescription,omitempty"`
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName,omitempty"`
}

type Brand struct {
	ID          int    `json:"brandId"`
	Name        string `json:"brandName"`
	Description string `json:"brandDescription,omitempty"`
	Image       string `json:"brandImage,omitempty"`
}

// endDateLayouts lists the formats the backend has been seen emitting.
var endDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// RemainingDays is ceil((endDate - now) / 1 day), floored at zero. An
// unparsable or empty endDate counts as elapsed.
func RemainingDays(endDate string, now time.Time) int {
	if endDate == "" {
		return 0
	}
	var end time.Time
	var err error
	for _, layout := range endDateLayouts {
		if end, err = time.Parse(layout, endDate); err == nil {
			break
		}
	}
	if err != nil {
		return 0
	}
	days := int(math.Ceil(end.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// HasDiscount reports a non-zero discount, regardless of the window.
func (p Product) HasDiscount() bool {
	return p.DiscountValue > 0
}

// DiscountActive reports whether the discount should be presented: a
// non-zero value whose window has not elapsed.
func (p Product) DiscountActive(now time.Time) bool {
	return p.HasDiscount() && RemainingDays(p.EndDate, now) > 0
}

// DisplayPrice is the price a shopper pays right now: the discounted total
// while the window is open, the original price otherwise.
func (p Product) DisplayPrice(now time.Time) float64 {
	if p.DiscountActive(now) {
		return p.TotalPrice
	}
	return p.OriginalPrice()
}

// OriginalPrice reconstructs the pre-discount price for the struck-through
// label. Preference order: the backend-provided actualPrice, then the
// inverse of the discount arithmetic. Never negative.
func (p Product) OriginalPrice() float64 {
	if p.ActualPrice > 0 {
		return p.ActualPrice
	}
	if !p.HasDiscount() {
		return p.TotalPrice
	}

	var orig float64
	switch p.DiscountType {
	case DiscountPercentage:
		if p.DiscountValue >= 100 {
			orig = p.TotalPrice
		} else {
			orig = math.Round(p.TotalPrice / (1 - p.DiscountValue/100))
		}
	case DiscountAmount:
		orig = p.TotalPrice + p.DiscountValue
	default:
		orig = p.TotalPrice
	}
	if orig < 0 {
		return 0
	}
	return orig
}

// Purchasable products belong to active sellers.
func (p Product) Purchasable() bool {
	return p.SellerStatus == SellerActive
}

// Images returns the view images plus any additional ones, skipping blanks.
func (p Product) Images() []string {
	all := append([]string{p.ImageFrontView, p.ImageTopView, p.ImageSideView, p.ImageBottomView}, p.AdditionalImages...)
	out := make([]string, 0, len(all))
	for _, img := range all {
		if img != "" {
			out = append(out, img)
		}
	}
	return out
}

// Deals returns the products with a currently active discount, in input
// order. Feeds the "Today's Deals" carousel.
func Deals(products []Product, now time.Time) []Product {
	var out []Product
	for _, p := range products {
		if p.DiscountActive(now) {
			out = append(out, p)
		}
	}
	return out
}

// Recommended returns up to n products in shuffled order. The caller owns
// the rand source so screens can reshuffle per visit and tests can seed it.
func Recommended(products []Product, n int, rng *rand.Rand) []Product {
	shuffled := make([]Product, len(products))
	copy(shuffled, products)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// CategoryNames lists the distinct category names in first-seen order.
func CategoryNames(products []Product) []string {
	return distinct(products, func(p Product) string { return p.CategoryName })
}

// BrandNames lists the distinct brand names in first-seen order.
func BrandNames(products []Product) []string {
	return distinct(products, func(p Product) string { return p.BrandName })
}

func distinct(products []Product, key func(Product) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		k := key(p)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// BrandGroup is the "brands by category" landing-page grouping.
type BrandGroup struct {
	Category string
	Brands   []string
}

// BrandsByCategory groups the distinct brands under each category, both in
// first-seen order.
func BrandsByCategory(products []Product) []BrandGroup {
	index := map[string]int{}
	var groups []BrandGroup
	for _, p := range products {
		if p.CategoryName == "" || p.BrandName == "" {
			continue
		}
		i, ok := index[p.CategoryName]
		if !ok {
			i = len(groups)
			index[p.CategoryName] = i
			groups = append(groups, BrandGroup{Category: p.CategoryName})
		}
		if !contains(groups[i].Brands, p.BrandName) {
			groups[i].Brands = append(groups[i].Brands, p.BrandName)
		}
	}
	return groups
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
