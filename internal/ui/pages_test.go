package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zytra-commerce/zytra-client/internal/admin"
	"github.com/zytra-commerce/zytra-client/internal/cart"
	"github.com/zytra-commerce/zytra-client/internal/catalog"
	"github.com/zytra-commerce/zytra-client/internal/order"
	"github.com/zytra-commerce/zytra-client/internal/session"
)

func testDeps() *Deps {
	return &Deps{Session: session.New()}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m LandingModel, text string) LandingModel {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func landingProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Trail Runner X", BrandName: "Strideway", CategoryName: "Footwear", SellerStatus: catalog.SellerActive, TotalPrice: 89},
		{ID: 2, Name: "Urban Sneaker", BrandName: "Strideway", CategoryName: "Footwear", SellerStatus: catalog.SellerActive, TotalPrice: 65},
		{ID: 3, Name: "Canvas Tote", BrandName: "Lumafield", CategoryName: "Bags", SellerStatus: catalog.SellerActive, TotalPrice: 30},
	}
}

func TestLandingShowcaseThenSearch(t *testing.T) {
	m := NewLandingModel(testDeps(), DefaultStyles())
	m, _ = m.Update(productsMsg{landingProducts()})

	view := m.View()
	if !strings.Contains(view, "Brands") {
		t.Fatalf("showcase missing brand groups:\n%s", view)
	}

	// typing shows suggestions but stays in showcase mode
	m = typeText(m, "runner")
	view = m.View()
	if !strings.Contains(view, "Trail Runner X") {
		t.Fatalf("no suggestion for query:\n%s", view)
	}
	if strings.Contains(view, "page 1 of") {
		t.Fatalf("results grid before submit:\n%s", view)
	}

	// submitting flips to results
	m, _ = m.Update(key("enter"))
	view = m.View()
	if !strings.Contains(view, "page 1 of 1") {
		t.Fatalf("no results after submit:\n%s", view)
	}
	if strings.Contains(view, "Canvas Tote") {
		t.Fatalf("non-matching product shown:\n%s", view)
	}
}

func TestLandingSuggestionSelection(t *testing.T) {
	m := NewLandingModel(testDeps(), DefaultStyles())
	m, _ = m.Update(productsMsg{landingProducts()})

	m = typeText(m, "s")
	// both Strideway products and nothing else suggest for brand query
	if n := len(m.browser.Suggestions()); n != 3 {
		t.Fatalf("suggestions = %d", n)
	}

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("enter"))
	if !m.browser.ResultsMode() {
		t.Fatal("choosing a suggestion should submit")
	}
}

func TestLandingCategoryFilterCycles(t *testing.T) {
	m := NewLandingModel(testDeps(), DefaultStyles())
	m, _ = m.Update(productsMsg{landingProducts()})
	m, _ = m.Update(taxonomyMsg{categories: []catalog.Category{{ID: 1, Name: "Footwear"}, {ID: 2, Name: "Bags"}}})

	m, _ = m.Update(key("ctrl+f"))
	view := m.View()
	if !strings.Contains(view, "category=Footwear") {
		t.Fatalf("filter line missing:\n%s", view)
	}
	if strings.Contains(view, "Canvas Tote") {
		t.Fatalf("bag shown under footwear filter:\n%s", view)
	}

	m, _ = m.Update(key("ctrl+f"))
	if got := m.browser.Filter().Category; got != "Bags" {
		t.Fatalf("second press = %q", got)
	}
	m, _ = m.Update(key("ctrl+f"))
	if got := m.browser.Filter().Category; got != "" {
		t.Fatalf("third press should clear, got %q", got)
	}
}

func TestLandingEscClearsEverything(t *testing.T) {
	m := NewLandingModel(testDeps(), DefaultStyles())
	m, _ = m.Update(productsMsg{landingProducts()})
	m = typeText(m, "tote")
	m, _ = m.Update(key("enter"))

	m, _ = m.Update(key("esc"))
	if m.browser.ResultsMode() || m.search.Value() != "" {
		t.Fatal("esc should return to a clean showcase")
	}
}

func cartItems() []cart.Item {
	return []cart.Item{
		{CartID: 1, ProductID: 10, ProductName: "Trail Runner X", ProductQuantity: 2, TotalPrice: 89},
		{CartID: 2, ProductID: 11, ProductName: "Canvas Tote", ProductQuantity: 1, TotalPrice: 30},
	}
}

func TestCartViewAndOptimisticEdits(t *testing.T) {
	m := NewCartModel(testDeps(), DefaultStyles())
	m, _ = m.Update(cartMsg{cartItems()})

	view := m.View()
	if !strings.Contains(view, "Cart (3 items)") {
		t.Fatalf("badge count:\n%s", view)
	}
	if !strings.Contains(view, "$208.00") {
		t.Fatalf("total missing:\n%s", view)
	}

	// optimistic increment applies before the server answers
	m, _ = m.Update(key("+"))
	if !strings.Contains(m.View(), "x3") {
		t.Fatalf("optimistic add:\n%s", m.View())
	}

	// decrementing the single-quantity line drops it
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("-"))
	if strings.Contains(m.View(), "Canvas Tote") {
		t.Fatalf("line should drop at zero:\n%s", m.View())
	}
}

func TestCartCheckoutDialog(t *testing.T) {
	m := NewCartModel(testDeps(), DefaultStyles())
	m, _ = m.Update(cartMsg{cartItems()})

	m, _ = m.Update(key("enter"))
	view := m.View()
	for _, pt := range order.CheckoutPaymentTypes {
		if !strings.Contains(view, pt) {
			t.Fatalf("missing payment option %s:\n%s", pt, view)
		}
	}

	m, _ = m.Update(key("esc"))
	if strings.Contains(m.View(), "Pay with") {
		t.Fatal("esc should close the dialog")
	}
}

func TestRegisterValidationBlocksSubmit(t *testing.T) {
	m := NewRegisterModel(testDeps(), DefaultStyles())

	// an empty form submit surfaces per-field errors and no command
	var cmd tea.Cmd
	m, cmd = m.Update(key("enter"))
	if cmd != nil {
		t.Fatal("invalid form should not produce a submit command")
	}
	view := m.View()
	if !strings.Contains(view, "2-30 letters") {
		t.Fatalf("field error missing:\n%s", view)
	}
}

func TestOrdersYearAndMonthFilter(t *testing.T) {
	m := NewOrdersModel(testDeps(), DefaultStyles())
	m, _ = m.Update(ordersMsg{[]order.Order{
		{OrderID: 1, OrderDate: "2026-01-15T10:00:00Z"},
		{OrderID: 2, OrderDate: "2025-11-20T18:00:00Z"},
	}})

	view := m.View()
	if !strings.Contains(view, "order 1") || strings.Contains(view, "order 2") {
		t.Fatalf("default year should be newest:\n%s", view)
	}

	m, _ = m.Update(key("y"))
	view = m.View()
	if !strings.Contains(view, "order 2") {
		t.Fatalf("year cycle:\n%s", view)
	}

	// a month with no orders renders the empty notice
	m, _ = m.Update(key("m"))
	if !strings.Contains(m.View(), "no orders in this period") {
		t.Fatalf("month filter:\n%s", m.View())
	}
}

func TestAdminTabsAndReports(t *testing.T) {
	m := NewAdminModel(testDeps(), DefaultStyles())
	m, _ = m.Update(adminListMsg{
		categories: []admin.Category{{CategoryID: 1, Name: "Footwear"}},
		sellers:    []admin.Seller{{SellerID: 1, SellerName: "Apex Retail", Status: "ACTIVE"}},
		products: []admin.Product{
			{ProductID: 1, ProductName: "Trail Runner X", CategoryName: "Footwear", BrandName: "Strideway"},
			{ProductID: 2, ProductName: "Urban Sneaker", CategoryName: "Footwear", BrandName: "Strideway"},
		},
	})

	if !strings.Contains(m.View(), "Footwear") {
		t.Fatalf("categories tab:\n%s", m.View())
	}

	// walk to the reports tab
	for m.tab != tabReports {
		m, _ = m.Update(key("tab"))
	}
	view := m.View()
	if !strings.Contains(view, "Products by category") || !strings.Contains(view, "█") {
		t.Fatalf("report bars missing:\n%s", view)
	}
}

func TestLandingBrandFilterCyclesFromCatalog(t *testing.T) {
	// brand candidates come from the loaded products, no taxonomy needed
	m := NewLandingModel(testDeps(), DefaultStyles())
	m, _ = m.Update(productsMsg{landingProducts()})

	m, _ = m.Update(key("ctrl+g"))
	if got := m.browser.Filter().Brand; got != "Strideway" {
		t.Fatalf("first press = %q", got)
	}
	m, _ = m.Update(key("ctrl+g"))
	if got := m.browser.Filter().Brand; got != "Lumafield" {
		t.Fatalf("second press = %q", got)
	}
	m, _ = m.Update(key("ctrl+g"))
	if got := m.browser.Filter().Brand; got != "" {
		t.Fatalf("third press should clear, got %q", got)
	}
}

func typeAdmin(m AdminModel, text string) AdminModel {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func adminFixture() adminListMsg {
	return adminListMsg{
		categories: []admin.Category{{CategoryID: 1, Name: "Footwear"}, {CategoryID: 2, Name: "Bags"}},
		sellers:    []admin.Seller{{SellerID: 1, SellerName: "Apex Retail", Status: "ACTIVE"}, {SellerID: 2, SellerName: "North Supply", Status: "ACTIVE"}},
		products: []admin.Product{
			{ProductID: 1, ProductName: "Trail Runner X", CategoryID: 1, CategoryName: "Footwear", BrandName: "Strideway"},
			{ProductID: 2, ProductName: "Canvas Tote", CategoryID: 2, CategoryName: "Bags", BrandName: "Lumafield"},
		},
		inventory: []admin.Inventory{
			{InventoryID: 1, ProductID: 1, SellerID: 1, StockQuantity: 40, WareHouseLocation: "east"},
			{InventoryID: 2, ProductID: 2, SellerID: 2, StockQuantity: 9, WareHouseLocation: "west"},
		},
	}
}

func TestAdminCategoryFormSubmits(t *testing.T) {
	m := NewAdminModel(testDeps(), DefaultStyles())
	m, _ = m.Update(adminFixture())

	m, _ = m.Update(key("n"))
	if !strings.Contains(m.View(), "New category") {
		t.Fatalf("form not open:\n%s", m.View())
	}

	// an empty name blocks the submit and keeps the form open
	var cmd tea.Cmd
	m, cmd = m.Update(key("enter"))
	if cmd != nil {
		t.Fatal("invalid form should not produce a command")
	}
	if !strings.Contains(m.View(), "name is required") {
		t.Fatalf("validation message missing:\n%s", m.View())
	}

	m = typeAdmin(m, "Outerwear")
	m, cmd = m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("valid form should produce a submit command")
	}
	if strings.Contains(m.View(), "New category") {
		t.Fatalf("form should close on submit:\n%s", m.View())
	}
}

func TestAdminEditFormPrefills(t *testing.T) {
	m := NewAdminModel(testDeps(), DefaultStyles())
	m, _ = m.Update(adminFixture())

	m, _ = m.Update(key("e"))
	view := m.View()
	if !strings.Contains(view, "Edit category") || !strings.Contains(view, "Footwear") {
		t.Fatalf("edit form should prefill the selected record:\n%s", view)
	}
}

func TestAdminFormRejectsBadNumbers(t *testing.T) {
	m := NewAdminModel(testDeps(), DefaultStyles())
	m, _ = m.Update(adminFixture())
	for m.tab != tabInventory {
		m, _ = m.Update(key("tab"))
	}

	m, _ = m.Update(key("n"))
	m = typeAdmin(m, "abc")
	var cmd tea.Cmd
	m, cmd = m.Update(key("enter"))
	if cmd != nil {
		t.Fatal("non-numeric id should not submit")
	}
	if !strings.Contains(m.View(), "must be a whole number") {
		t.Fatalf("numeric validation missing:\n%s", m.View())
	}
}

func TestAdminInventoryFilterCycles(t *testing.T) {
	m := NewAdminModel(testDeps(), DefaultStyles())
	m, _ = m.Update(adminFixture())
	for m.tab != tabInventory {
		m, _ = m.Update(key("tab"))
	}

	view := m.View()
	if !strings.Contains(view, "product 1") || !strings.Contains(view, "product 2") {
		t.Fatalf("unfiltered inventory:\n%s", view)
	}

	// category filter narrows through the product relation
	m, _ = m.Update(key("f"))
	view = m.View()
	if !strings.Contains(view, "category=Footwear") {
		t.Fatalf("filter line missing:\n%s", view)
	}
	if strings.Contains(view, "product 2") {
		t.Fatalf("bag stock shown under footwear filter:\n%s", view)
	}

	// seller filter stacks conjunctively, so seller 2 under footwear is empty
	m, _ = m.Update(key("s"))
	m, _ = m.Update(key("s"))
	if !strings.Contains(m.View(), "nothing here yet") {
		t.Fatalf("conjunction should empty the list:\n%s", m.View())
	}

	m, _ = m.Update(key("x"))
	if !strings.Contains(m.View(), "product 2") {
		t.Fatalf("clear should restore the list:\n%s", m.View())
	}
}

func TestAdminProfileTabEditsAndChangesPassword(t *testing.T) {
	m := NewAdminModel(testDeps(), DefaultStyles())
	m, _ = m.Update(adminProfileMsg{admin.Profile{
		FirstName: "Rita", LastName: "Shaw", UserName: "rita.s",
		Email: "rita@example.com", PhoneNumber: "9876543210", Address: "14 Harbor Lane, Brookton",
	}})
	for m.tab != tabAdminProfile {
		m, _ = m.Update(key("tab"))
	}

	view := m.View()
	if !strings.Contains(view, "Rita Shaw") || !strings.Contains(view, "rita.s") {
		t.Fatalf("profile view:\n%s", view)
	}

	// the edit form prefills from the loaded profile, so an immediate save
	// passes validation and yields a command
	m, _ = m.Update(key("e"))
	if !strings.Contains(m.View(), "Edit profile") {
		t.Fatalf("edit form missing:\n%s", m.View())
	}
	var cmd tea.Cmd
	m, cmd = m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("prefilled profile should submit")
	}

	// a weak new password blocks the change
	m, _ = m.Update(key("w"))
	if !strings.Contains(m.View(), "Change password") {
		t.Fatalf("password form missing:\n%s", m.View())
	}
	m, _ = m.Update(key("tab"))
	m = typeAdmin(m, "weak")
	m, cmd = m.Update(key("enter"))
	if cmd != nil {
		t.Fatal("weak password should not submit")
	}
	if !strings.Contains(m.View(), "password needs") {
		t.Fatalf("password message missing:\n%s", m.View())
	}
}

func TestRootSessionExpiryYieldsToLogin(t *testing.T) {
	deps := testDeps()
	deps.Session.LoginUser("tok", 7, "USER")
	root := NewRoot(deps)
	root.page = pageDashboard

	model, _ := root.Update(SessionExpiredMsg{})
	r := model.(Root)
	if r.page != pageLogin {
		t.Fatalf("page = %d, want login", r.page)
	}
	if !strings.Contains(r.View(), "session expired") {
		t.Fatalf("status missing:\n%s", r.View())
	}
}
