package admin

// InventoryFilter narrows stock records. Category, sub-category and brand
// criteria resolve through the product list since stock rows only carry the
// product id.
type InventoryFilter struct {
	CategoryID    int
	SubCategoryID int
	BrandID       int
	SellerID      int
	ProductID     int
}

func (f InventoryFilter) Empty() bool {
	return f == InventoryFilter{}
}

// FilterInventory returns the stock rows passing the filter, preserving
// input order.
func FilterInventory(inventory []Inventory, products []Product, f InventoryFilter) []Inventory {
	if f.Empty() {
		return inventory
	}
	byID := map[int]Product{}
	for _, p := range products {
		byID[p.ProductID] = p
	}
	out := make([]Inventory, 0, len(inventory))
	for _, inv := range inventory {
		if f.SellerID != 0 && inv.SellerID != f.SellerID {
			continue
		}
		if f.ProductID != 0 && inv.ProductID != f.ProductID {
			continue
		}
		if f.CategoryID != 0 || f.SubCategoryID != 0 || f.BrandID != 0 {
			p, ok := byID[inv.ProductID]
			if !ok {
				continue
			}
			if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
				continue
			}
			if f.SubCategoryID != 0 && p.SubCategoryID != f.SubCategoryID {
				continue
			}
			if f.BrandID != 0 && p.BrandID != f.BrandID {
				continue
			}
		}
		out = append(out, inv)
	}
	return out
}
