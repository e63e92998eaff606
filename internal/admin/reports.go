package admin

import "sort"

// Count is one bar of a report: a label and how many records carry it.
type Count struct {
	Label string
	N     int
}

// CountBy tallies records by a key, sorted by descending count and then by
// label so reports render deterministically. Empty keys are dropped.
func CountBy[T any](records []T, key func(T) string) []Count {
	tally := map[string]int{}
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		tally[k]++
	}
	out := make([]Count, 0, len(tally))
	for label, n := range tally {
		out = append(out, Count{Label: label, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// ProductsByCategory tallies the catalog per category.
func ProductsByCategory(products []Product) []Count {
	return CountBy(products, func(p Product) string { return p.CategoryName })
}

// ProductsByBrand tallies the catalog per brand.
func ProductsByBrand(products []Product) []Count {
	return CountBy(products, func(p Product) string { return p.BrandName })
}

// ProductsBySeller tallies the catalog per seller.
func ProductsBySeller(products []Product) []Count {
	return CountBy(products, func(p Product) string { return p.SellerName })
}

// UsersByMembership tallies the customer directory per membership tier.
func UsersByMembership(users []User) []Count {
	return CountBy(users, func(u User) string { return u.MemberShipStatus })
}

// StockBySeller sums stock quantities per seller id label.
func StockBySeller(inventory []Inventory, sellers []Seller) []Count {
	names := map[int]string{}
	for _, s := range sellers {
		names[s.SellerID] = s.SellerName
	}
	tally := map[string]int{}
	for _, inv := range inventory {
		name := names[inv.SellerID]
		if name == "" {
			continue
		}
		tally[name] += inv.StockQuantity
	}
	out := make([]Count, 0, len(tally))
	for label, n := range tally {
		out = append(out, Count{Label: label, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Label < out[j].Label
	})
	return out
}
