package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/zytra-commerce/zytra-client/internal/admin"
	"github.com/zytra-commerce/zytra-client/internal/auth"
	"github.com/zytra-commerce/zytra-client/internal/cart"
	"github.com/zytra-commerce/zytra-client/internal/catalog"
	"github.com/zytra-commerce/zytra-client/internal/order"
	"github.com/zytra-commerce/zytra-client/internal/review"
	"github.com/zytra-commerce/zytra-client/internal/session"
	"github.com/zytra-commerce/zytra-client/internal/user"
)

// Deps bundles the resource clients every page draws on.
type Deps struct {
	Session *session.Session
	Auth    *auth.Client
	Catalog *catalog.Client
	Review  *review.Client
	User    *user.Client
	Cart    *cart.Client
	Order   *order.Client
	Admin   *admin.Client
	Log     *zap.SugaredLogger
}

type page int

const (
	pageLanding page = iota
	pageLogin
	pageRegister
	pageDashboard
	pageCart
	pageOrders
	pageProfile
	pageAdmin
)

// Root owns the page switch. Pages are models in their own right; Root
// routes messages to the active one and handles the global keys and the
// session-expiry interrupt.
type Root struct {
	deps   *Deps
	styles Styles
	page   page
	width  int
	height int
	status string

	landing   LandingModel
	login     LoginModel
	register  RegisterModel
	dashboard DashboardModel
	cart      CartModel
	orders    OrdersModel
	profile   ProfileModel
	admin     AdminModel
}

func NewRoot(deps *Deps) Root {
	styles := DefaultStyles()
	return Root{
		deps:      deps,
		styles:    styles,
		page:      pageLanding,
		landing:   NewLandingModel(deps, styles),
		login:     NewLoginModel(deps, styles),
		register:  NewRegisterModel(deps, styles),
		dashboard: NewDashboardModel(deps, styles),
		cart:      NewCartModel(deps, styles),
		orders:    NewOrdersModel(deps, styles),
		profile:   NewProfileModel(deps, styles),
		admin:     NewAdminModel(deps, styles),
	}
}

func (m Root) Init() tea.Cmd {
	return tea.Batch(m.deps.fetchPublicProducts(), m.deps.fetchTaxonomy())
}

func (m Root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case SessionExpiredMsg:
		m.deps.Session.Clear()
		m.page = pageLogin
		m.status = "session expired, sign in again"
		return m, nil

	case errMsg:
		m.status = msg.err.Error()
		return m.route(msg)

	case statusMsg:
		m.status = msg.text
		return m.route(msg)

	case loggedInMsg:
		m.status = ""
		if msg.admin {
			m.page = pageAdmin
			return m, m.admin.Load()
		}
		m.page = pageDashboard
		return m, tea.Batch(m.deps.fetchUserProducts(), m.deps.fetchCart())

	case registeredMsg:
		m.page = pageLogin
		m.status = "account created, sign in"
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.globalKey(msg); handled {
			return m, cmd
		}
	}
	return m.route(msg)
}

// globalKey handles navigation that works on every page. Text-entry pages
// swallow printable keys, so only control chords are global.
func (m *Root) globalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit, true
	case "ctrl+l":
		if m.deps.Session.LoggedIn() {
			m.deps.Session.Clear()
			m.page = pageLanding
			m.status = "signed out"
		} else {
			m.page = pageLogin
		}
		return nil, true
	case "ctrl+r":
		m.page = pageRegister
		return nil, true
	case "ctrl+h":
		if m.deps.Session.IsAdmin() {
			m.page = pageAdmin
			return m.admin.Load(), true
		}
		if m.deps.Session.LoggedIn() {
			m.page = pageDashboard
			return m.deps.fetchUserProducts(), true
		}
		m.page = pageLanding
		return m.deps.fetchPublicProducts(), true
	case "ctrl+b":
		if m.deps.Session.LoggedIn() && !m.deps.Session.IsAdmin() {
			m.page = pageCart
			return m.deps.fetchCart(), true
		}
	case "ctrl+o":
		if m.deps.Session.LoggedIn() && !m.deps.Session.IsAdmin() {
			m.page = pageOrders
			return m.deps.fetchOrders(), true
		}
	case "ctrl+p":
		if m.deps.Session.LoggedIn() && !m.deps.Session.IsAdmin() {
			m.page = pageProfile
			return m.deps.fetchProfile(), true
		}
	}
	return nil, false
}

func (m Root) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case pageLanding:
		m.landing, cmd = m.landing.Update(msg)
	case pageLogin:
		m.login, cmd = m.login.Update(msg)
	case pageRegister:
		m.register, cmd = m.register.Update(msg)
	case pageDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case pageCart:
		m.cart, cmd = m.cart.Update(msg)
	case pageOrders:
		m.orders, cmd = m.orders.Update(msg)
	case pageProfile:
		m.profile, cmd = m.profile.Update(msg)
	case pageAdmin:
		m.admin, cmd = m.admin.Update(msg)
	}
	return m, cmd
}

func (m Root) View() string {
	var body string
	switch m.page {
	case pageLanding:
		body = m.landing.View()
	case pageLogin:
		body = m.login.View()
	case pageRegister:
		body = m.register.View()
	case pageDashboard:
		body = m.dashboard.View()
	case pageCart:
		body = m.cart.View()
	case pageOrders:
		body = m.orders.View()
	case pageProfile:
		body = m.profile.View()
	case pageAdmin:
		body = m.admin.View()
	}

	header := m.styles.Title.Render("Zytra") + "  " + m.styles.Muted.Render(m.headerHint())
	parts := []string{header, body}
	if m.status != "" {
		parts = append(parts, m.styles.Subtitle.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Root) headerHint() string {
	if m.deps.Session.IsAdmin() {
		return "staff console · ctrl+l sign out · ctrl+c quit"
	}
	if m.deps.Session.LoggedIn() {
		return "ctrl+h home · ctrl+b cart · ctrl+o orders · ctrl+p profile · ctrl+l sign out"
	}
	return "ctrl+l sign in · ctrl+r register · ctrl+c quit"
}
