package catalog

import "strings"

// MaxSuggestions caps the search-as-you-type suggestion list.
const MaxSuggestions = 6

// Filter narrows a product list. Every populated field must match for a
// product to pass; empty fields are wildcards. Search matches as a
// case-insensitive substring of name or brand, all other fields compare
// exactly.
type Filter struct {
	Category     string
	SubCategory  string
	Brand        string
	Product      string
	Seller       string
	SellerStatus string
	Search       string
}

// Empty reports whether no criterion is set.
func (f Filter) Empty() bool {
	return f == Filter{}
}

// Match applies every populated criterion conjunctively.
func (f Filter) Match(p Product) bool {
	if f.Category != "" && p.CategoryName != f.Category {
		return false
	}
	if f.SubCategory != "" && p.SubCategoryName != f.SubCategory {
		return false
	}
	if f.Brand != "" && p.BrandName != f.Brand {
		return false
	}
	if f.Product != "" && p.Name != f.Product {
		return false
	}
	if f.Seller != "" && p.SellerName != f.Seller {
		return false
	}
	if f.SellerStatus != "" && string(p.SellerStatus) != f.SellerStatus {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		name := strings.ToLower(p.Name)
		brand := strings.ToLower(p.BrandName)
		if !strings.Contains(name, q) && !strings.Contains(brand, q) {
			return false
		}
	}
	return true
}

// Apply returns the products passing the filter, preserving input order.
func (f Filter) Apply(products []Product) []Product {
	if f.Empty() {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Suggest returns up to MaxSuggestions distinct product names whose name or
// brand contains the query, in catalog order. An empty query suggests
// nothing.
func Suggest(products []Product, query string) []string {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	q := strings.ToLower(query)
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.BrandName), q) {
			continue
		}
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		out = append(out, p.Name)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
