package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zytra-commerce/zytra-client/internal/catalog"
)

const landingPerPage = 5

// LandingModel is the public storefront: a search box with live
// suggestions, category and brand filters, and either the showcase
// (categories, brands, deals) or the filtered result grid.
type LandingModel struct {
	deps   *Deps
	styles Styles

	browser *catalog.Browser
	search  textinput.Model
	cursor  int

	categories []catalog.Category

	catIndex   int
	brandIndex int
}

func NewLandingModel(deps *Deps, styles Styles) LandingModel {
	ti := textinput.New()
	ti.Placeholder = "search products or brands"
	ti.CharLimit = 60
	ti.Focus()
	return LandingModel{
		deps:    deps,
		styles:  styles,
		browser: catalog.NewBrowser(landingPerPage),
		search:  ti,
	}
}

func (m LandingModel) Update(msg tea.Msg) (LandingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productsMsg:
		m.browser.SetProducts(msg.products)
		return m, nil

	case taxonomyMsg:
		m.categories = msg.categories
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if sug := m.browser.Suggestions(); len(sug) > 0 && m.cursor > 0 {
				m.browser.ChooseSuggestion(sug[m.cursor-1])
				m.search.SetValue(m.browser.Query())
			} else {
				m.browser.SubmitSearch()
			}
			m.cursor = 0
			return m, nil
		case "down":
			if n := len(m.browser.Suggestions()); n > 0 && m.cursor < n {
				m.cursor++
			}
			return m, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "left":
			m.browser.PrevPage()
			return m, nil
		case "right":
			m.browser.NextPage()
			return m, nil
		case "ctrl+f":
			m.cycleCategory()
			return m, nil
		case "ctrl+g":
			m.cycleBrand()
			return m, nil
		case "esc":
			m.browser.ClearFilters()
			m.search.SetValue("")
			m.catIndex, m.brandIndex, m.cursor = 0, 0, 0
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != before {
		m.browser.SetSearch(v)
		m.cursor = 0
	}
	return m, cmd
}

// cycleCategory walks none -> each category -> none. The candidates come
// from the loaded catalog, so the cycle only ever offers values that match
// at least one product.
func (m *LandingModel) cycleCategory() {
	names := catalog.CategoryNames(m.browser.Products())
	m.catIndex = (m.catIndex + 1) % (len(names) + 1)
	if m.catIndex == 0 {
		m.browser.SetCategory("")
		return
	}
	m.browser.SetCategory(names[m.catIndex-1])
}

func (m *LandingModel) cycleBrand() {
	names := catalog.BrandNames(m.browser.Products())
	m.brandIndex = (m.brandIndex + 1) % (len(names) + 1)
	if m.brandIndex == 0 {
		m.browser.SetBrand("")
		return
	}
	m.browser.SetBrand(names[m.brandIndex-1])
}

func (m LandingModel) View() string {
	var b strings.Builder
	b.WriteString(m.search.View() + "\n")
	b.WriteString(m.styles.Muted.Render(m.filterLine()) + "\n")

	for i, sug := range m.browser.Suggestions() {
		marker := "  "
		if m.cursor == i+1 {
			marker = "> "
		}
		b.WriteString(marker + sug + "\n")
	}

	if m.browser.ResultsMode() {
		b.WriteString(m.resultsView())
	} else {
		b.WriteString(m.showcaseView())
	}
	return b.String()
}

func (m LandingModel) filterLine() string {
	parts := []string{"ctrl+f category", "ctrl+g brand", "esc clear"}
	f := m.browser.Filter()
	if f.Category != "" {
		parts = append(parts, "category="+f.Category)
	}
	if f.Brand != "" {
		parts = append(parts, "brand="+f.Brand)
	}
	return strings.Join(parts, "  ")
}

func (m LandingModel) resultsView() string {
	items := m.browser.Items()
	if len(items) == 0 {
		return m.styles.Muted.Render("no products match")
	}
	var b strings.Builder
	now := time.Now()
	for _, p := range items {
		b.WriteString(renderProductCard(m.styles, p, now) + "\n")
	}
	b.WriteString(m.styles.Pager.Render(fmt.Sprintf("page %d of %d  (left/right)", m.browser.Page(), m.browser.TotalPages())))
	return b.String()
}

func (m LandingModel) showcaseView() string {
	var b strings.Builder
	products := m.browser.Products()

	if len(m.categories) > 0 {
		names := make([]string, 0, len(m.categories))
		for _, c := range m.categories {
			names = append(names, c.Name)
		}
		b.WriteString(m.styles.Subtitle.Render("Shop by category") + "\n")
		b.WriteString("  " + strings.Join(names, "  ·  ") + "\n\n")
	}

	if groups := catalog.BrandsByCategory(products); len(groups) > 0 {
		b.WriteString(m.styles.Subtitle.Render("Brands") + "\n")
		for _, g := range groups {
			b.WriteString("  " + g.Category + ": " + strings.Join(g.Brands, ", ") + "\n")
		}
		b.WriteString("\n")
	}

	if deals := catalog.Deals(products, time.Now()); len(deals) > 0 {
		b.WriteString(m.styles.Subtitle.Render("Today's deals") + "\n")
		now := time.Now()
		for _, p := range deals {
			b.WriteString(renderProductCard(m.styles, p, now) + "\n")
		}
	}
	if b.Len() == 0 {
		return m.styles.Muted.Render("loading catalog...")
	}
	return b.String()
}

// renderProductCard is shared by the landing and dashboard grids.
func renderProductCard(styles Styles, p catalog.Product, now time.Time) string {
	price := styles.Price.Render(fmt.Sprintf("$%.2f", p.DisplayPrice(now)))
	if p.DiscountActive(now) {
		orig := styles.Strike.Render(fmt.Sprintf("$%.2f", p.OriginalPrice()))
		days := catalog.RemainingDays(p.EndDate, now)
		badge := styles.Badge.Render(fmt.Sprintf("deal · %dd left", days))
		price = price + " " + orig + " " + badge
	}
	line := fmt.Sprintf("%s  %s", p.Name, price)
	meta := styles.Pager.Render(p.BrandName + " · " + p.CategoryName)
	if !p.Purchasable() && p.SellerStatus != "" {
		meta += "  " + styles.Error.Render("not available")
	}
	return styles.Card.Render(line + "\n" + meta)
}
