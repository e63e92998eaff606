package ui

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zytra-commerce/zytra-client/internal/catalog"
	"github.com/zytra-commerce/zytra-client/internal/review"
)

const (
	dashboardPerPage = 10
	recommendedCount = 4
)

// DashboardModel is the signed-in storefront: the full browse surface plus
// the product detail view with reviews and a review form.
type DashboardModel struct {
	deps   *Deps
	styles Styles

	browser *catalog.Browser
	search  textinput.Model
	cursor  int
	rng     *rand.Rand

	detail     *catalog.Product
	reviewing  bool
	ratingBuf  textinput.Model
	commentBuf textinput.Model
	reviewFoc  int
}

func NewDashboardModel(deps *Deps, styles Styles) DashboardModel {
	ti := textinput.New()
	ti.Placeholder = "search products or brands"
	ti.CharLimit = 60
	ti.Focus()

	rating := textinput.New()
	rating.Placeholder = "rating 1-5"
	rating.CharLimit = 1

	comment := textinput.New()
	comment.Placeholder = "comment"
	comment.CharLimit = 200

	return DashboardModel{
		deps:       deps,
		styles:     styles,
		browser:    catalog.NewBrowser(dashboardPerPage),
		search:     ti,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		ratingBuf:  rating,
		commentBuf: comment,
	}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productsMsg:
		m.browser.SetProducts(msg.products)
		return m, nil

	case productDetailMsg:
		p := msg.product
		m.detail = &p
		return m, nil

	case statusMsg:
		// a saved review refreshes the open detail
		if m.detail != nil {
			return m, m.deps.fetchProductDetail(m.detail.ID)
		}
		return m, nil

	case tea.KeyMsg:
		if m.detail != nil {
			return m.updateDetail(msg)
		}
		switch msg.String() {
		case "enter":
			if sug := m.browser.Suggestions(); len(sug) > 0 && m.cursor > 0 {
				m.browser.ChooseSuggestion(sug[m.cursor-1])
				m.search.SetValue(m.browser.Query())
				m.cursor = 0
				return m, nil
			}
			if items := m.browser.Items(); m.browser.ResultsMode() && len(items) > 0 && m.cursor > 0 && m.cursor <= len(items) {
				return m, m.deps.fetchProductDetail(items[m.cursor-1].ID)
			}
			m.browser.SubmitSearch()
			m.cursor = 0
			return m, nil
		case "down":
			limit := len(m.browser.Suggestions())
			if m.browser.ResultsMode() {
				limit = len(m.browser.Items())
			}
			if m.cursor < limit {
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
			m.cursor = 0
			return m, nil
		case "right":
			m.browser.NextPage()
			m.cursor = 0
			return m, nil
		case "esc":
			m.browser.ClearFilters()
			m.search.SetValue("")
			m.cursor = 0
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

func (m DashboardModel) updateDetail(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	if m.reviewing {
		switch msg.String() {
		case "esc":
			m.reviewing = false
			return m, nil
		case "tab":
			m.reviewFoc = (m.reviewFoc + 1) % 2
			if m.reviewFoc == 0 {
				m.ratingBuf.Focus()
				m.commentBuf.Blur()
			} else {
				m.ratingBuf.Blur()
				m.commentBuf.Focus()
			}
			return m, nil
		case "enter":
			return m, m.submitReview()
		}
		var cmd tea.Cmd
		if m.reviewFoc == 0 {
			m.ratingBuf, cmd = m.ratingBuf.Update(msg)
		} else {
			m.commentBuf, cmd = m.commentBuf.Update(msg)
		}
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.detail = nil
		return m, nil
	case "a":
		if m.detail.Purchasable() {
			return m, m.deps.addToCart(m.detail.ID)
		}
		return m, nil
	case "r":
		m.reviewing = true
		m.reviewFoc = 0
		m.ratingBuf.Focus()
		m.commentBuf.Blur()
		if mine, ok := review.ByUser(m.detail.AllReviews, m.deps.Session.UserID()); ok {
			m.ratingBuf.SetValue(strconv.Itoa(mine.Rating))
			m.commentBuf.SetValue(mine.Comment)
		} else {
			m.ratingBuf.SetValue("")
			m.commentBuf.SetValue("")
		}
		return m, nil
	}
	return m, nil
}

func (m *DashboardModel) submitReview() tea.Cmd {
	rating, err := strconv.Atoi(m.ratingBuf.Value())
	r := review.Review{Rating: rating, Comment: m.commentBuf.Value()}
	if err != nil || !r.Valid() {
		return func() tea.Msg { return errMsg{fmt.Errorf("rating must be 1 to 5")} }
	}

	d := m.deps
	productID := m.detail.ID
	_, update := review.ByUser(m.detail.AllReviews, d.Session.UserID())
	m.reviewing = false
	return func() tea.Msg {
		var err error
		if update {
			err = d.Review.Update(d.Session.UserID(), productID, r)
		} else {
			err = d.Review.Submit(d.Session.UserID(), productID, r)
		}
		if err != nil {
			return errMsg{err}
		}
		return statusMsg{"review saved"}
	}
}

func (m DashboardModel) View() string {
	if m.detail != nil {
		return m.detailView()
	}

	var b strings.Builder
	b.WriteString(m.search.View() + "\n")

	for i, sug := range m.browser.Suggestions() {
		marker := "  "
		if m.cursor == i+1 {
			marker = "> "
		}
		b.WriteString(marker + sug + "\n")
	}

	now := time.Now()
	if m.browser.ResultsMode() {
		items := m.browser.Items()
		if len(items) == 0 {
			b.WriteString(m.styles.Muted.Render("no products match") + "\n")
		}
		for i, p := range items {
			card := renderProductCard(m.styles, p, now)
			if m.cursor == i+1 {
				card = m.styles.SelectedCard.Render(p.Name + "  " + fmt.Sprintf("$%.2f", p.DisplayPrice(now)))
			}
			b.WriteString(card + "\n")
		}
		b.WriteString(m.styles.Pager.Render(fmt.Sprintf("page %d of %d · up/down select · enter open", m.browser.Page(), m.browser.TotalPages())))
		return b.String()
	}

	products := m.browser.Products()
	if deals := catalog.Deals(products, now); len(deals) > 0 {
		b.WriteString(m.styles.Subtitle.Render("Today's deals") + "\n")
		for _, p := range deals {
			b.WriteString(renderProductCard(m.styles, p, now) + "\n")
		}
	}
	if picks := catalog.Recommended(products, recommendedCount, m.rng); len(picks) > 0 {
		b.WriteString(m.styles.Subtitle.Render("Recommended for you") + "\n")
		for _, p := range picks {
			b.WriteString(renderProductCard(m.styles, p, now) + "\n")
		}
	}
	return b.String()
}

func (m DashboardModel) detailView() string {
	p := m.detail
	now := time.Now()
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(p.Name) + "\n")
	b.WriteString(m.styles.Muted.Render(p.BrandName+" · "+p.CategoryName+" · sold by "+p.SellerName) + "\n")
	b.WriteString(renderProductCard(m.styles, *p, now) + "\n")
	if p.Description != "" {
		b.WriteString(p.Description + "\n")
	}
	if imgs := p.Images(); len(imgs) > 0 {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d images", len(imgs))) + "\n")
	}

	if len(p.AllReviews) > 0 {
		b.WriteString(m.styles.Subtitle.Render("Reviews") + "\n")
		for _, r := range p.AllReviews {
			b.WriteString(fmt.Sprintf("  %s %s\n", strings.Repeat("*", r.Rating), r.Comment))
		}
	}

	if m.reviewing {
		b.WriteString(m.styles.Subtitle.Render("Your review") + "\n")
		b.WriteString(m.ratingBuf.View() + "\n")
		b.WriteString(m.commentBuf.View() + "\n")
		b.WriteString(m.styles.Muted.Render("tab switch · enter save · esc cancel") + "\n")
	} else {
		hint := "a add to cart · r review · esc back"
		if !p.Purchasable() {
			hint = "r review · esc back  (seller inactive, not available)"
		}
		b.WriteString(m.styles.Muted.Render(hint) + "\n")
	}
	return b.String()
}
