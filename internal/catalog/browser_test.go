package catalog

import "testing"

func manyProducts(n int) []Product {
	out := make([]Product, n)
	for i := range out {
		cat := "Footwear"
		if i%2 == 1 {
			cat = "Bags"
		}
		out[i] = Product{ID: i + 1, Name: "Item", CategoryName: cat, BrandName: "Strideway"}
	}
	return out
}

func TestBrowserFilterChangeResetsPage(t *testing.T) {
	b := NewBrowser(5)
	b.SetProducts(manyProducts(23))

	b.SetPage(3)
	if b.Page() != 3 {
		t.Fatalf("page = %d", b.Page())
	}

	b.SetCategory("Bags")
	if b.Page() != 1 {
		t.Fatalf("category change should reset page, got %d", b.Page())
	}

	b.SetPage(2)
	b.SetSearch("item")
	if b.Page() != 1 {
		t.Fatalf("search change should reset page, got %d", b.Page())
	}
}

func TestBrowserPagination(t *testing.T) {
	b := NewBrowser(5)
	b.SetProducts(manyProducts(23))

	if b.TotalPages() != 5 {
		t.Fatalf("totalPages = %d", b.TotalPages())
	}
	if got := b.Items(); len(got) != 5 || got[0].ID != 1 {
		t.Fatalf("page 1 = %v", ids(got))
	}

	b.SetPage(5)
	if got := b.Items(); len(got) != 3 || got[0].ID != 21 {
		t.Fatalf("last page = %v", ids(got))
	}

	b.NextPage()
	if b.Page() != 5 {
		t.Fatalf("NextPage past the end moved to %d", b.Page())
	}
	b.PrevPage()
	if b.Page() != 4 {
		t.Fatalf("PrevPage = %d", b.Page())
	}
}

func TestBrowserRefreshKeepsPage(t *testing.T) {
	b := NewBrowser(5)
	b.SetProducts(manyProducts(23))
	b.SetPage(4)

	// a background refresh that shrinks the list leaves the page alone
	b.SetProducts(manyProducts(8))
	if b.Page() != 4 {
		t.Fatalf("refresh moved the page to %d", b.Page())
	}
	if got := b.Items(); got != nil {
		t.Fatalf("out-of-range page should render empty, got %v", ids(got))
	}
}

func TestBrowserSearchLifecycle(t *testing.T) {
	b := NewBrowser(5)
	b.SetProducts(fixtureProducts())

	if b.ResultsMode() {
		t.Fatal("fresh browser should be in showcase mode")
	}

	// typing surfaces suggestions but does not flip modes
	b.SetSearch("runner")
	if b.ResultsMode() {
		t.Fatal("unsubmitted search should not enter results mode")
	}
	if got := b.Suggestions(); len(got) != 2 {
		t.Fatalf("suggestions = %v", got)
	}

	b.SubmitSearch()
	if !b.ResultsMode() {
		t.Fatal("submitted search should enter results mode")
	}
	if got := b.Suggestions(); got != nil {
		t.Fatalf("submit should clear suggestions, got %v", got)
	}
	if got := b.Items(); len(got) != 2 {
		t.Fatalf("results = %v", ids(got))
	}

	// editing the query withdraws the submission
	b.SetSearch("runner s")
	if b.ResultsMode() {
		t.Fatal("editing should drop results mode")
	}

	b.ClearFilters()
	if b.ResultsMode() || b.Query() != "" {
		t.Fatal("clear should return to an empty showcase")
	}
}

func TestBrowserCategoricalFilterEntersResultsMode(t *testing.T) {
	b := NewBrowser(5)
	b.SetProducts(fixtureProducts())

	b.SetBrand("Lumafield")
	if !b.ResultsMode() {
		t.Fatal("brand filter should enter results mode without a submit")
	}
	if got := b.Items(); len(got) != 2 {
		t.Fatalf("brand results = %v", ids(got))
	}
}

func TestBrowserChooseSuggestion(t *testing.T) {
	b := NewBrowser(5)
	b.SetProducts(fixtureProducts())

	b.SetSearch("run")
	b.ChooseSuggestion("Runner Socks")
	if !b.ResultsMode() {
		t.Fatal("choosing a suggestion should submit")
	}
	if got := b.Items(); len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("results = %v", ids(got))
	}
}

func TestBrowserSelection(t *testing.T) {
	b := NewBrowser(5)
	b.SetProducts(fixtureProducts())

	if ok := b.SelectProduct(99); ok {
		t.Fatal("unknown id selected")
	}
	if ok := b.SelectProduct(3); !ok {
		t.Fatal("known id not selected")
	}
	if p, ok := b.Selected(); !ok || p.ID != 3 {
		t.Fatalf("selected = %+v, %v", p, ok)
	}

	b.ClearSelection()
	if _, ok := b.Selected(); ok {
		t.Fatal("selection should be cleared")
	}
}
