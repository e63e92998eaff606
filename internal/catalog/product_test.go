package catalog

import (
	"math/rand"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestRemainingDays(t *testing.T) {
	cases := []struct {
		endDate string
		want    int
	}{
		{"2026-03-13T12:00:00Z", 3},
		{"2026-03-13T18:00:00Z", 4}, // partial day rounds up
		{"2026-03-10T12:00:00Z", 0},
		{"2026-03-01", 0}, // elapsed
		{"2026-03-12", 2}, // date-only layout, midnight cutoff
		{"", 0},
		{"not-a-date", 0},
	}
	for _, c := range cases {
		if got := RemainingDays(c.endDate, testNow); got != c.want {
			t.Fatalf("RemainingDays(%q) = %d, want %d", c.endDate, got, c.want)
		}
	}
}

func TestDiscountActive(t *testing.T) {
	p := Product{DiscountValue: 10, DiscountType: DiscountPercentage, EndDate: "2026-03-20T00:00:00Z"}
	if !p.DiscountActive(testNow) {
		t.Fatal("in-window discount should be active")
	}

	p.EndDate = "2026-03-01T00:00:00Z"
	if p.DiscountActive(testNow) {
		t.Fatal("elapsed discount should be inactive")
	}

	p = Product{DiscountValue: 0, EndDate: "2026-03-20T00:00:00Z"}
	if p.DiscountActive(testNow) {
		t.Fatal("zero-value discount should be inactive")
	}
}

func TestOriginalPrice(t *testing.T) {
	// percentage inverts with rounding: 90 / (1 - 0.10) = 100
	p := Product{TotalPrice: 90, DiscountValue: 10, DiscountType: DiscountPercentage}
	if got := p.OriginalPrice(); got != 100 {
		t.Fatalf("percentage: got %v, want 100", got)
	}

	p = Product{TotalPrice: 75, DiscountValue: 25, DiscountType: DiscountAmount}
	if got := p.OriginalPrice(); got != 100 {
		t.Fatalf("amount: got %v, want 100", got)
	}

	// backend-provided actualPrice wins over reconstruction
	p = Product{TotalPrice: 90, ActualPrice: 120, DiscountValue: 10, DiscountType: DiscountPercentage}
	if got := p.OriginalPrice(); got != 120 {
		t.Fatalf("actualPrice: got %v, want 120", got)
	}

	// no discount, no actualPrice: the total is the original
	p = Product{TotalPrice: 50}
	if got := p.OriginalPrice(); got != 50 {
		t.Fatalf("plain: got %v, want 50", got)
	}

	// degenerate 100% discount must not divide by zero
	p = Product{TotalPrice: 90, DiscountValue: 100, DiscountType: DiscountPercentage}
	if got := p.OriginalPrice(); got != 90 {
		t.Fatalf("100%%: got %v, want 90", got)
	}
}

func TestDisplayPrice(t *testing.T) {
	p := Product{TotalPrice: 90, DiscountValue: 10, DiscountType: DiscountPercentage, EndDate: "2026-03-20T00:00:00Z"}
	if got := p.DisplayPrice(testNow); got != 90 {
		t.Fatalf("active window: got %v, want 90", got)
	}

	p.EndDate = "2026-03-01T00:00:00Z"
	if got := p.DisplayPrice(testNow); got != 100 {
		t.Fatalf("elapsed window: got %v, want 100", got)
	}
}

func TestDeals(t *testing.T) {
	products := []Product{
		{ID: 1, DiscountValue: 10, DiscountType: DiscountPercentage, EndDate: "2026-03-20T00:00:00Z"},
		{ID: 2},
		{ID: 3, DiscountValue: 5, DiscountType: DiscountAmount, EndDate: "2026-02-01T00:00:00Z"},
		{ID: 4, DiscountValue: 20, DiscountType: DiscountAmount, EndDate: "2026-04-01T00:00:00Z"},
	}
	got := Deals(products, testNow)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("deals: got %v", ids(got))
	}
}

func TestRecommendedIsShuffledPrefix(t *testing.T) {
	products := fixtureProducts()
	rng := rand.New(rand.NewSource(7))

	got := Recommended(products, 3, rng)
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	seen := map[int]bool{}
	for _, p := range got {
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}

	// n larger than the list returns everything
	got = Recommended(products[:2], 5, rng)
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}

	// the input slice must stay untouched
	if products[0].ID != 1 || products[4].ID != 5 {
		t.Fatal("input mutated")
	}
}

func TestGroupings(t *testing.T) {
	products := fixtureProducts()

	cats := CategoryNames(products)
	want := []string{"Footwear", "Bags", "Accessories"}
	if len(cats) != len(want) {
		t.Fatalf("categories: got %v", cats)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("categories: got %v, want %v", cats, want)
		}
	}

	groups := BrandsByCategory(products)
	if len(groups) != 3 {
		t.Fatalf("groups: got %d", len(groups))
	}
	if groups[0].Category != "Footwear" || len(groups[0].Brands) != 2 {
		t.Fatalf("footwear group: %+v", groups[0])
	}
	if groups[0].Brands[0] != "Strideway" || groups[0].Brands[1] != "Lumafield" {
		t.Fatalf("footwear brands: %v", groups[0].Brands)
	}
}

func TestImagesSkipBlanks(t *testing.T) {
	p := Product{
		ImageFrontView:   "front.png",
		ImageSideView:    "side.png",
		AdditionalImages: []string{"extra.png", ""},
	}
	got := p.Images()
	if len(got) != 3 || got[0] != "front.png" || got[1] != "side.png" || got[2] != "extra.png" {
		t.Fatalf("images: %v", got)
	}
}
