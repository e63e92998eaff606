package catalog

import "github.com/zytra-commerce/zytra-client/internal/paging"

// Browser is the browse-state machine behind the landing and dashboard
// screens. It holds the full product list plus the active filter, the search
// box state, pagination, and the optional detail selection. Every filter
// mutation resets the page to 1; a list that shrinks underneath the current
// page for any other reason is left alone and simply renders empty.
type Browser struct {
	products []Product
	filter   Filter
	page     int
	perPage  int

	// search box state: the live query drives suggestions, submitted
	// flips the landing screen from showcase mode to results mode.
	query       string
	suggestions []string
	submitted   bool

	selected *Product
}

// NewBrowser returns a browser on page 1 with no products loaded yet.
func NewBrowser(perPage int) *Browser {
	return &Browser{page: 1, perPage: perPage}
}

// SetProducts replaces the backing list. The page and filter are preserved:
// a refresh must not yank the shopper back to page 1.
func (b *Browser) SetProducts(products []Product) {
	b.products = products
}

func (b *Browser) Products() []Product { return b.products }

// Filtered returns the products passing the current filter.
func (b *Browser) Filtered() []Product {
	return b.filter.Apply(b.products)
}

// Items returns the current page of filtered products.
func (b *Browser) Items() []Product {
	return paging.Page(b.Filtered(), b.page, b.perPage)
}

func (b *Browser) Page() int { return b.page }

func (b *Browser) TotalPages() int {
	return paging.TotalPages(len(b.Filtered()), b.perPage)
}

// SetPage moves to a page the pager offered. Out-of-range values are the
// pager's bug, not ours, so they are stored as-is and render empty.
func (b *Browser) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	b.page = page
}

func (b *Browser) NextPage() {
	if b.page < b.TotalPages() {
		b.page++
	}
}

func (b *Browser) PrevPage() {
	if b.page > 1 {
		b.page--
	}
}

func (b *Browser) Filter() Filter { return b.filter }

// setFilter installs a new filter and resets to page 1.
func (b *Browser) setFilter(f Filter) {
	b.filter = f
	b.page = 1
}

func (b *Browser) SetCategory(v string) {
	f := b.filter
	f.Category = v
	b.setFilter(f)
}

func (b *Browser) SetSubCategory(v string) {
	f := b.filter
	f.SubCategory = v
	b.setFilter(f)
}

func (b *Browser) SetBrand(v string) {
	f := b.filter
	f.Brand = v
	b.setFilter(f)
}

func (b *Browser) SetSeller(v string) {
	f := b.filter
	f.Seller = v
	b.setFilter(f)
}

func (b *Browser) SetSellerStatus(v string) {
	f := b.filter
	f.SellerStatus = v
	b.setFilter(f)
}

// ClearFilters drops every criterion, the search box included, and returns
// the landing screen to showcase mode.
func (b *Browser) ClearFilters() {
	b.setFilter(Filter{})
	b.query = ""
	b.suggestions = nil
	b.submitted = false
}

// SetSearch tracks the live query: suggestions refresh, the page resets, and
// any previous submission is withdrawn until the shopper submits again.
func (b *Browser) SetSearch(query string) {
	b.query = query
	b.suggestions = Suggest(b.products, query)
	b.submitted = false
	f := b.filter
	f.Search = query
	b.setFilter(f)
}

// SubmitSearch commits the live query, flipping to results mode.
func (b *Browser) SubmitSearch() {
	b.submitted = b.query != ""
	b.suggestions = nil
	b.page = 1
}

// ChooseSuggestion replaces the query with a suggestion and submits it.
func (b *Browser) ChooseSuggestion(name string) {
	b.query = name
	f := b.filter
	f.Search = name
	b.setFilter(f)
	b.SubmitSearch()
}

func (b *Browser) Query() string         { return b.query }
func (b *Browser) Suggestions() []string { return b.suggestions }

// ResultsMode reports whether the screen should show the filtered grid
// instead of the landing showcase: any non-search filter does it
// immediately, search only once submitted.
func (b *Browser) ResultsMode() bool {
	f := b.filter
	f.Search = ""
	return !f.Empty() || b.submitted
}

// SelectProduct opens the detail view for a product on the current page.
func (b *Browser) SelectProduct(id int) bool {
	for _, p := range b.Filtered() {
		if p.ID == id {
			sel := p
			b.selected = &sel
			return true
		}
	}
	return false
}

func (b *Browser) Selected() (Product, bool) {
	if b.selected == nil {
		return Product{}, false
	}
	return *b.selected, true
}

func (b *Browser) ClearSelection() {
	b.selected = nil
}
