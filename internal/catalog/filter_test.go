package catalog

import "testing"

func fixtureProducts() []Product {
	return []Product{
		{ID: 1, Name: "Trail Runner X", BrandName: "Strideway", CategoryName: "Footwear", SubCategoryName: "Running", SellerName: "Apex Retail", SellerStatus: SellerActive, TotalPrice: 89},
		{ID: 2, Name: "Urban Sneaker", BrandName: "Strideway", CategoryName: "Footwear", SubCategoryName: "Casual", SellerName: "Apex Retail", SellerStatus: SellerActive, TotalPrice: 65},
		{ID: 3, Name: "Canvas Tote", BrandName: "Lumafield", CategoryName: "Bags", SubCategoryName: "Totes", SellerName: "North Supply", SellerStatus: SellerInactive, TotalPrice: 30},
		{ID: 4, Name: "Runner Socks", BrandName: "Lumafield", CategoryName: "Footwear", SubCategoryName: "Running", SellerName: "North Supply", SellerStatus: SellerActive, TotalPrice: 12},
		{ID: 5, Name: "Leather Belt", BrandName: "Corda", CategoryName: "Accessories", SubCategoryName: "Belts", SellerName: "Apex Retail", SellerStatus: SellerActive, TotalPrice: 25},
	}
}

func TestFilterIsConjunctive(t *testing.T) {
	products := fixtureProducts()

	f := Filter{Category: "Footwear", Brand: "Lumafield"}
	got := f.Apply(products)
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("category+brand: got %v", ids(got))
	}

	// search joins the conjunction like any other criterion
	f = Filter{Category: "Footwear", Search: "runner"}
	got = f.Apply(products)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("category+search: got %v", ids(got))
	}

	// disjoint criteria match nothing
	f = Filter{Category: "Bags", Brand: "Corda"}
	if got = f.Apply(products); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", ids(got))
	}
}

func TestFilterSearchMatchesNameOrBrand(t *testing.T) {
	products := fixtureProducts()

	// case-insensitive substring on the name
	got := Filter{Search: "SNEAK"}.Apply(products)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("name search: got %v", ids(got))
	}

	// brand hits pull in products whose name does not contain the query
	got = Filter{Search: "lumafield"}.Apply(products)
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 4 {
		t.Fatalf("brand search: got %v", ids(got))
	}
}

func TestFilterEmptyPassesEverything(t *testing.T) {
	products := fixtureProducts()
	got := Filter{}.Apply(products)
	if len(got) != len(products) {
		t.Fatalf("empty filter kept %d of %d", len(got), len(products))
	}
	for i := range got {
		if got[i].ID != products[i].ID {
			t.Fatalf("order changed at %d", i)
		}
	}
}

func TestFilterSellerStatus(t *testing.T) {
	got := Filter{SellerStatus: "INACTIVE"}.Apply(fixtureProducts())
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("seller status: got %v", ids(got))
	}
}

func TestSuggestCapsAndDeduplicates(t *testing.T) {
	var products []Product
	for i := 0; i < 10; i++ {
		products = append(products, Product{ID: i, Name: "Runner Edition", BrandName: "Strideway"})
	}
	products = append(products,
		Product{ID: 20, Name: "Runner Pro", BrandName: "Strideway"},
		Product{ID: 21, Name: "Runner Lite", BrandName: "Strideway"},
	)

	got := Suggest(products, "runner")
	if len(got) != 3 {
		t.Fatalf("expected 3 distinct names, got %v", got)
	}

	// cap at MaxSuggestions with enough distinct hits
	products = nil
	names := []string{"Alpha Run", "Beta Run", "Gamma Run", "Delta Run", "Epsilon Run", "Zeta Run", "Eta Run", "Theta Run"}
	for i, n := range names {
		products = append(products, Product{ID: i, Name: n})
	}
	got = Suggest(products, "run")
	if len(got) != MaxSuggestions {
		t.Fatalf("expected %d suggestions, got %d", MaxSuggestions, len(got))
	}
	if got[0] != "Alpha Run" || got[5] != "Zeta Run" {
		t.Fatalf("catalog order broken: %v", got)
	}

	if got := Suggest(products, "  "); got != nil {
		t.Fatalf("blank query should suggest nothing, got %v", got)
	}
}

func ids(products []Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
