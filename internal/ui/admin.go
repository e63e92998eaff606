package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zytra-commerce/zytra-client/internal/admin"
	"github.com/zytra-commerce/zytra-client/internal/auth"
	"github.com/zytra-commerce/zytra-client/internal/paging"
	"github.com/zytra-commerce/zytra-client/internal/user"
)

const adminPerPage = 15

type adminTab int

const (
	tabCategories adminTab = iota
	tabSubCategories
	tabBrands
	tabSellers
	tabDiscounts
	tabProducts
	tabInventory
	tabCustomers
	tabReports
	tabAdminProfile
)

var adminTabNames = []string{
	"Categories", "Sub-categories", "Brands", "Sellers",
	"Discounts", "Products", "Inventory", "Customers", "Reports", "Profile",
}

// adminProfileFields is the editable subset of the staff account, in form
// order.
var adminProfileFields = []auth.Field{}

func init() {
	skip := map[string]bool{"password": true, "userName": true}
	for _, f := range auth.AdminFields {
		if !skip[f.Name] {
			adminProfileFields = append(adminProfileFields, f)
		}
	}
}

// adminField is one input of an entity form. Numeric fields are parsed by
// the submit step so a typo never reaches the backend.
type adminField struct {
	name  string
	label string
}

// adminForm is an open create/edit dialog. Submit converts the input values
// into the entity payload and returns the backend command, or an error that
// keeps the form open.
type adminForm struct {
	title  string
	fields []adminField
	inputs []textinput.Model
	focus  int
	err    string
	submit func(values map[string]string) (tea.Cmd, error)
}

// AdminModel is the staff console: one tab per inventory entity with
// create/edit forms, the customer directory, the report charts and the staff
// member's own profile.
type AdminModel struct {
	deps   *Deps
	styles Styles

	tab    adminTab
	page   int
	cursor int

	data    adminListMsg
	profile admin.Profile

	// inventory tab cross-entity filter, cycled with f (category) and
	// s (seller)
	invFilter    admin.InventoryFilter
	invCatIdx    int
	invSellerIdx int

	form *adminForm
}

func NewAdminModel(deps *Deps, styles Styles) AdminModel {
	return AdminModel{deps: deps, styles: styles, page: 1}
}

// Load refreshes every entity list in one round.
func (m AdminModel) Load() tea.Cmd {
	d := m.deps
	return func() tea.Msg {
		var out adminListMsg
		var err error
		if out.categories, err = d.Admin.Categories(); err != nil {
			return errMsg{err}
		}
		if out.subCategories, err = d.Admin.SubCategories(); err != nil {
			return errMsg{err}
		}
		if out.brands, err = d.Admin.Brands(); err != nil {
			return errMsg{err}
		}
		if out.sellers, err = d.Admin.Sellers(); err != nil {
			return errMsg{err}
		}
		if out.discounts, err = d.Admin.Discounts(); err != nil {
			return errMsg{err}
		}
		if out.products, err = d.Admin.Products(); err != nil {
			return errMsg{err}
		}
		if out.inventory, err = d.Admin.Inventory(); err != nil {
			return errMsg{err}
		}
		if out.users, err = d.Admin.Users(); err != nil {
			return errMsg{err}
		}
		return out
	}
}

func (m AdminModel) loadProfile() tea.Cmd {
	d := m.deps
	return func() tea.Msg {
		p, err := d.Admin.Details()
		if err != nil {
			return errMsg{err}
		}
		return adminProfileMsg{p}
	}
}

func (m AdminModel) Update(msg tea.Msg) (AdminModel, tea.Cmd) {
	switch msg := msg.(type) {
	case adminListMsg:
		m.data = msg
		return m, nil

	case adminProfileMsg:
		m.profile = msg.profile
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "]", "tab":
			m.tab = (m.tab + 1) % adminTab(len(adminTabNames))
			m.page, m.cursor = 1, 0
			if m.tab == tabAdminProfile {
				return m, m.loadProfile()
			}
		case "[", "shift+tab":
			m.tab = (m.tab + adminTab(len(adminTabNames)) - 1) % adminTab(len(adminTabNames))
			m.page, m.cursor = 1, 0
			if m.tab == tabAdminProfile {
				return m, m.loadProfile()
			}
		case "left":
			if m.page > 1 {
				m.page--
				m.cursor = 0
			}
		case "right":
			if m.page < paging.TotalPages(m.rowCount(), adminPerPage) {
				m.page++
				m.cursor = 0
			}
		case "down", "j":
			if m.cursor < len(m.pageRows())-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "n":
			if m.tabHasForm() {
				m.openEntityForm(false)
			}
		case "e":
			if m.tabHasForm() {
				m.openEntityForm(true)
			} else if m.tab == tabAdminProfile {
				m.openProfileForm()
			}
		case "w":
			if m.tab == tabAdminProfile {
				m.openPasswordForm()
			}
		case "a", "d":
			if m.tab == tabSellers {
				return m, m.toggleSeller(msg.String() == "a")
			}
		case "f":
			if m.tab == tabInventory {
				m.cycleInvCategory()
				m.page, m.cursor = 1, 0
			}
		case "s":
			if m.tab == tabInventory {
				m.cycleInvSeller()
				m.page, m.cursor = 1, 0
			}
		case "x":
			if m.tab == tabInventory {
				m.invFilter = admin.InventoryFilter{}
				m.invCatIdx, m.invSellerIdx = 0, 0
				m.page, m.cursor = 1, 0
			}
		case "ctrl+y":
			return m, m.Load()
		}
	}
	return m, nil
}

func (m AdminModel) updateForm(msg tea.KeyMsg) (AdminModel, tea.Cmd) {
	f := m.form
	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "tab", "down":
		m.moveFormFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFormFocus(-1)
		return m, nil
	case "enter":
		cmd, err := f.submit(m.formValues())
		if err != nil {
			f.err = err.Error()
			return m, nil
		}
		m.form = nil
		return m, cmd
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m *AdminModel) moveFormFocus(delta int) {
	f := m.form
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (m *AdminModel) formValues() map[string]string {
	out := map[string]string{}
	for i, f := range m.form.fields {
		out[f.name] = strings.TrimSpace(m.form.inputs[i].Value())
	}
	return out
}

func (m *AdminModel) newForm(title string, fields []adminField, prefill map[string]string) {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.label
		ti.CharLimit = 200
		if strings.Contains(strings.ToLower(f.name), "password") {
			ti.EchoMode = textinput.EchoPassword
		}
		ti.SetValue(prefill[f.name])
		inputs[i] = ti
	}
	inputs[0].Focus()
	m.form = &adminForm{title: title, fields: fields, inputs: inputs}
}

func (m AdminModel) tabHasForm() bool {
	switch m.tab {
	case tabCategories, tabSubCategories, tabBrands, tabSellers,
		tabDiscounts, tabProducts, tabInventory:
		return true
	}
	return false
}

// currentIndex maps the page-local cursor back into the full tab slice.
func (m AdminModel) currentIndex() int {
	return (m.page-1)*adminPerPage + m.cursor
}

func formInt(values map[string]string, name string) (int, error) {
	v := values[name]
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", name)
	}
	return n, nil
}

func formFloat(values map[string]string, name string) (float64, error) {
	v := values[name]
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return n, nil
}

// openEntityForm opens the create or edit dialog for the active tab. Edits
// prefill from the record under the cursor and keep its id.
func (m *AdminModel) openEntityForm(edit bool) {
	d := m.deps
	load := m.Load()

	switch m.tab {
	case tabCategories:
		fields := []adminField{
			{"categoryName", "name"},
			{"categoryDescription", "description"},
			{"categoryImage", "image"},
		}
		var rec admin.Category
		prefill := map[string]string{}
		if edit {
			idx := m.currentIndex()
			if idx >= len(m.data.categories) {
				return
			}
			rec = m.data.categories[idx]
			prefill = map[string]string{
				"categoryName": rec.Name, "categoryDescription": rec.Description, "categoryImage": rec.Image,
			}
		}
		m.newForm(formTitle(edit, "category"), fields, prefill)
		m.form.submit = func(v map[string]string) (tea.Cmd, error) {
			cat := admin.Category{Name: v["categoryName"], Description: v["categoryDescription"], Image: v["categoryImage"]}
			if cat.Name == "" {
				return nil, errors.New("name is required")
			}
			return func() tea.Msg {
				var err error
				if edit {
					err = d.Admin.UpdateCategory(rec.CategoryID, cat)
				} else {
					err = d.Admin.AddCategory(cat)
				}
				if err != nil {
					return errMsg{err}
				}
				return load()
			}, nil
		}

	case tabSubCategories:
		fields := []adminField{
			{"subCategoryName", "name"},
			{"subCategoryDescription", "description"},
			{"categoryId", "category id"},
		}
		var rec admin.SubCategory
		prefill := map[string]string{}
		if edit {
			idx := m.currentIndex()
			if idx >= len(m.data.subCategories) {
				return
			}
			rec = m.data.subCategories[idx]
			prefill = map[string]string{
				"subCategoryName": rec.Name, "subCategoryDescription": rec.Description,
				"categoryId": strconv.Itoa(rec.CategoryID),
			}
		}
		m.newForm(formTitle(edit, "sub-category"), fields, prefill)
		m.form.submit = func(v map[string]string) (tea.Cmd, error) {
			catID, err := formInt(v, "categoryId")
			if err != nil {
				return nil, err
			}
			sc := admin.SubCategory{Name: v["subCategoryName"], Description: v["subCategoryDescription"], CategoryID: catID}
			if sc.Name == "" {
				return nil, errors.New("name is required")
			}
			return func() tea.Msg {
				var err error
				if edit {
					err = d.Admin.UpdateSubCategory(rec.SubCategoryID, sc)
				} else {
					err = d.Admin.AddSubCategory(sc)
				}
				if err != nil {
					return errMsg{err}
				}
				return load()
			}, nil
		}

	case tabBrands:
		fields := []adminField{
			{"brandName", "name"},
			{"brandDescription", "description"},
			{"brandImage", "image"},
		}
		var rec admin.Brand
		prefill := map[string]string{}
		if edit {
			idx := m.currentIndex()
			if idx >= len(m.data.brands) {
				return
			}
			rec = m.data.brands[idx]
			prefill = map[string]string{
				"brandName": rec.Name, "brandDescription": rec.Description, "brandImage": rec.Image,
			}
		}
		m.newForm(formTitle(edit, "brand"), fields, prefill)
		m.form.submit = func(v map[string]string) (tea.Cmd, error) {
			b := admin.Brand{Name: v["brandName"], Description: v["brandDescription"], Image: v["brandImage"]}
			if b.Name == "" {
				return nil, errors.New("name is required")
			}
			return func() tea.Msg {
				var err error
				if edit {
					err = d.Admin.UpdateBrand(rec.BrandID, b)
				} else {
					err = d.Admin.AddBrand(b)
				}
				if err != nil {
					return errMsg{err}
				}
				return load()
			}, nil
		}

	case tabSellers:
		fields := []adminField{
			{"sellerName", "name"},
			{"email", "email"},
			{"phoneNumber", "phone"},
			{"address", "address"},
		}
		var rec admin.Seller
		prefill := map[string]string{}
		if edit {
			idx := m.currentIndex()
			if idx >= len(m.data.sellers) {
				return
			}
			rec = m.data.sellers[idx]
			prefill = map[string]string{
				"sellerName": rec.SellerName, "email": rec.Email,
				"phoneNumber": rec.PhoneNumber, "address": rec.Address,
			}
		}
		m.newForm(formTitle(edit, "seller"), fields, prefill)
		m.form.submit = func(v map[string]string) (tea.Cmd, error) {
			sl := admin.Seller{SellerName: v["sellerName"], Email: v["email"], PhoneNumber: v["phoneNumber"], Address: v["address"]}
			if sl.SellerName == "" {
				return nil, errors.New("name is required")
			}
			return func() tea.Msg {
				var err error
				if edit {
					err = d.Admin.UpdateSeller(rec.SellerID, sl)
				} else {
					err = d.Admin.AddSeller(sl)
				}
				if err != nil {
					return errMsg{err}
				}
				return load()
			}, nil
		}

	case tabDiscounts:
		fields := []adminField{
			{"discountType", "type (PERCENTAGE or AMOUNT)"},
			{"discountValue", "value"},
			{"startDate", "start date"},
			{"endDate", "end date"},
		}
		var rec admin.Discount
		prefill := map[string]string{}
		if edit {
			idx := m.currentIndex()
			if idx >= len(m.data.discounts) {
				return
			}
			rec = m.data.discounts[idx]
			prefill = map[string]string{
				"discountType":  rec.DiscountType,
				"discountValue": strconv.FormatFloat(rec.DiscountValue, 'f', -1, 64),
				"startDate":     rec.StartDate, "endDate": rec.EndDate,
			}
		}
		m.newForm(formTitle(edit, "discount"), fields, prefill)
		m.form.submit = func(v map[string]string) (tea.Cmd, error) {
			value, err := formFloat(v, "discountValue")
			if err != nil {
				return nil, err
			}
			disc := admin.Discount{DiscountType: v["discountType"], DiscountValue: value, StartDate: v["startDate"], EndDate: v["endDate"]}
			if disc.DiscountType != "PERCENTAGE" && disc.DiscountType != "AMOUNT" {
				return nil, errors.New("type must be PERCENTAGE or AMOUNT")
			}
			return func() tea.Msg {
				var err error
				if edit {
					err = d.Admin.UpdateDiscount(rec.DiscountID, disc)
				} else {
					err = d.Admin.AddDiscount(disc)
				}
				if err != nil {
					return errMsg{err}
				}
				return load()
			}, nil
		}

	case tabProducts:
		fields := []adminField{
			{"productName", "name"},
			{"productDescription", "description"},
			{"actualPrice", "price"},
			{"categoryId", "category id"},
			{"subCategoryId", "sub-category id"},
			{"brandId", "brand id"},
			{"sellerId", "seller id"},
			{"discountId", "discount id (blank for none)"},
			{"color", "color"},
			{"size", "size"},
		}
		var rec admin.Product
		prefill := map[string]string{}
		if edit {
			idx := m.currentIndex()
			if idx >= len(m.data.products) {
				return
			}
			rec = m.data.products[idx]
			prefill = map[string]string{
				"productName": rec.ProductName, "productDescription": rec.Description,
				"actualPrice":   strconv.FormatFloat(rec.ActualPrice, 'f', -1, 64),
				"categoryId":    strconv.Itoa(rec.CategoryID),
				"subCategoryId": strconv.Itoa(rec.SubCategoryID),
				"brandId":       strconv.Itoa(rec.BrandID),
				"sellerId":      strconv.Itoa(rec.SellerID),
				"discountId":    strconv.Itoa(rec.DiscountID),
				"color":         rec.Color, "size": rec.Size,
			}
		}
		m.newForm(formTitle(edit, "product"), fields, prefill)
		m.form.submit = func(v map[string]string) (tea.Cmd, error) {
			price, err := formFloat(v, "actualPrice")
			if err != nil {
				return nil, err
			}
			ids := map[string]int{}
			for _, name := range []string{"categoryId", "subCategoryId", "brandId", "sellerId", "discountId"} {
				if ids[name], err = formInt(v, name); err != nil {
					return nil, err
				}
			}
			form := admin.ProductForm{
				ProductName: v["productName"], Description: v["productDescription"],
				ActualPrice: price,
				CategoryID:  ids["categoryId"], SubCategoryID: ids["subCategoryId"],
				BrandID: ids["brandId"], SellerID: ids["sellerId"], DiscountID: ids["discountId"],
				Color: v["color"], Size: v["size"],
			}
			if form.ProductName == "" {
				return nil, errors.New("name is required")
			}
			return func() tea.Msg {
				var err error
				if edit {
					err = d.Admin.UpdateProduct(rec.ProductID, form)
				} else {
					err = d.Admin.AddProduct(form)
				}
				if err != nil {
					return errMsg{err}
				}
				return load()
			}, nil
		}

	case tabInventory:
		fields := []adminField{
			{"productId", "product id"},
			{"stockQuantity", "stock quantity"},
			{"wareHouseLocation", "warehouse"},
			{"sellerId", "seller id"},
		}
		var rec admin.Inventory
		prefill := map[string]string{}
		if edit {
			filtered := m.filteredInventory()
			idx := m.currentIndex()
			if idx >= len(filtered) {
				return
			}
			rec = filtered[idx]
			prefill = map[string]string{
				"productId":         strconv.Itoa(rec.ProductID),
				"stockQuantity":     strconv.Itoa(rec.StockQuantity),
				"wareHouseLocation": rec.WareHouseLocation,
				"sellerId":          strconv.Itoa(rec.SellerID),
			}
		}
		m.newForm(formTitle(edit, "stock record"), fields, prefill)
		m.form.submit = func(v map[string]string) (tea.Cmd, error) {
			inv := admin.Inventory{WareHouseLocation: v["wareHouseLocation"]}
			var err error
			if inv.ProductID, err = formInt(v, "productId"); err != nil {
				return nil, err
			}
			if inv.StockQuantity, err = formInt(v, "stockQuantity"); err != nil {
				return nil, err
			}
			if inv.SellerID, err = formInt(v, "sellerId"); err != nil {
				return nil, err
			}
			if inv.ProductID == 0 {
				return nil, errors.New("product id is required")
			}
			return func() tea.Msg {
				var err error
				if edit {
					err = d.Admin.UpdateInventory(rec.InventoryID, inv)
				} else {
					err = d.Admin.AddInventory(inv)
				}
				if err != nil {
					return errMsg{err}
				}
				return load()
			}, nil
		}
	}
}

func formTitle(edit bool, entity string) string {
	if edit {
		return "Edit " + entity
	}
	return "New " + entity
}

func (m *AdminModel) openProfileForm() {
	d := m.deps
	p := m.profile
	prefill := map[string]string{
		"firstName": p.FirstName, "lastName": p.LastName,
		"phoneNumber": p.PhoneNumber, "email": p.Email, "address": p.Address,
	}
	fields := make([]adminField, len(adminProfileFields))
	for i, f := range adminProfileFields {
		fields[i] = adminField{f.Name, f.Label}
	}
	m.newForm("Edit profile", fields, prefill)
	m.form.submit = func(v map[string]string) (tea.Cmd, error) {
		errs := auth.Validate(adminProfileFields, v)
		for _, f := range adminProfileFields {
			if msg, bad := errs[f.Name]; bad {
				return nil, fmt.Errorf("%s: %s", f.Label, msg)
			}
		}
		updated := p
		updated.FirstName, updated.LastName = v["firstName"], v["lastName"]
		updated.PhoneNumber, updated.Email = v["phoneNumber"], v["email"]
		updated.Address = v["address"]
		return func() tea.Msg {
			if err := d.Admin.UpdateProfile(updated); err != nil {
				return errMsg{err}
			}
			return adminProfileMsg{updated}
		}, nil
	}
}

func (m *AdminModel) openPasswordForm() {
	d := m.deps
	fields := []adminField{
		{"oldPassword", "current password"},
		{"newPassword", "new password"},
	}
	m.newForm("Change password", fields, nil)
	m.form.submit = func(v map[string]string) (tea.Cmd, error) {
		if !auth.ValidPassword(v["newPassword"]) {
			return nil, errors.New("password needs 8+ characters with upper, lower, digit and special")
		}
		change := user.PasswordChange{OldPassword: v["oldPassword"], NewPassword: v["newPassword"]}
		return func() tea.Msg {
			if err := d.Admin.UpdatePassword(change); err != nil {
				return errMsg{err}
			}
			return statusMsg{"password changed"}
		}, nil
	}
}

func (m AdminModel) toggleSeller(activate bool) tea.Cmd {
	sellers := paging.Page(m.data.sellers, m.page, adminPerPage)
	if m.cursor >= len(sellers) {
		return nil
	}
	sellerID := sellers[m.cursor].SellerID
	d := m.deps
	load := m.Load()
	return func() tea.Msg {
		var err error
		if activate {
			err = d.Admin.ActivateSeller(sellerID)
		} else {
			err = d.Admin.DeactivateSeller(sellerID)
		}
		if err != nil {
			return errMsg{err}
		}
		return load()
	}
}

func (m *AdminModel) cycleInvCategory() {
	m.invCatIdx = (m.invCatIdx + 1) % (len(m.data.categories) + 1)
	if m.invCatIdx == 0 {
		m.invFilter.CategoryID = 0
		return
	}
	m.invFilter.CategoryID = m.data.categories[m.invCatIdx-1].CategoryID
}

func (m *AdminModel) cycleInvSeller() {
	m.invSellerIdx = (m.invSellerIdx + 1) % (len(m.data.sellers) + 1)
	if m.invSellerIdx == 0 {
		m.invFilter.SellerID = 0
		return
	}
	m.invFilter.SellerID = m.data.sellers[m.invSellerIdx-1].SellerID
}

func (m AdminModel) filteredInventory() []admin.Inventory {
	return admin.FilterInventory(m.data.inventory, m.data.products, m.invFilter)
}

// rows flattens the active tab into display lines.
func (m AdminModel) rows() []string {
	switch m.tab {
	case tabCategories:
		out := make([]string, len(m.data.categories))
		for i, c := range m.data.categories {
			out[i] = fmt.Sprintf("%-4d %-24s %s", c.CategoryID, c.Name, c.Description)
		}
		return out
	case tabSubCategories:
		out := make([]string, len(m.data.subCategories))
		for i, sc := range m.data.subCategories {
			out[i] = fmt.Sprintf("%-4d %-24s under %s", sc.SubCategoryID, sc.Name, sc.CategoryName)
		}
		return out
	case tabBrands:
		out := make([]string, len(m.data.brands))
		for i, b := range m.data.brands {
			out[i] = fmt.Sprintf("%-4d %s", b.BrandID, b.Name)
		}
		return out
	case tabSellers:
		out := make([]string, len(m.data.sellers))
		for i, s := range m.data.sellers {
			status := s.Status
			if status == "INACTIVE" {
				status = m.styles.Error.Render(status)
			} else {
				status = m.styles.Success.Render(status)
			}
			out[i] = fmt.Sprintf("%-4d %-24s %-28s %s", s.SellerID, s.SellerName, s.Email, status)
		}
		return out
	case tabDiscounts:
		out := make([]string, len(m.data.discounts))
		for i, d := range m.data.discounts {
			out[i] = fmt.Sprintf("%-4d %-12s %-8.2f until %s", d.DiscountID, d.DiscountType, d.DiscountValue, d.EndDate)
		}
		return out
	case tabProducts:
		out := make([]string, len(m.data.products))
		for i, p := range m.data.products {
			out[i] = fmt.Sprintf("%-4d %-24s %-16s %-16s $%.2f", p.ProductID, p.ProductName, p.CategoryName, p.BrandName, p.ActualPrice)
		}
		return out
	case tabInventory:
		filtered := m.filteredInventory()
		out := make([]string, len(filtered))
		for i, inv := range filtered {
			out[i] = fmt.Sprintf("%-4d product %-4d stock %-5d %s", inv.InventoryID, inv.ProductID, inv.StockQuantity, inv.WareHouseLocation)
		}
		return out
	case tabCustomers:
		out := make([]string, len(m.data.users))
		for i, u := range m.data.users {
			out[i] = fmt.Sprintf("%-4d %-20s %-28s %s", u.UserID, u.FirstName+" "+u.LastName, u.Email, u.MemberShipStatus)
		}
		return out
	}
	return nil
}

func (m AdminModel) rowCount() int { return len(m.rows()) }

func (m AdminModel) pageRows() []string {
	return paging.Page(m.rows(), m.page, adminPerPage)
}

func (m AdminModel) View() string {
	var b strings.Builder

	var tabs []string
	for i, name := range adminTabNames {
		style := m.styles.Tab
		if adminTab(i) == m.tab {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(name))
	}
	b.WriteString(strings.Join(tabs, "") + "\n\n")

	if m.form != nil {
		b.WriteString(m.formView())
		return b.String()
	}

	if m.tab == tabReports {
		b.WriteString(m.reportsView())
		return b.String()
	}
	if m.tab == tabAdminProfile {
		b.WriteString(m.profileView())
		return b.String()
	}

	if m.tab == tabInventory {
		if line := m.invFilterLine(); line != "" {
			b.WriteString(m.styles.Muted.Render(line) + "\n")
		}
	}

	rows := m.pageRows()
	if len(rows) == 0 {
		b.WriteString(m.styles.Muted.Render("nothing here yet") + "\n")
	}
	for i, row := range rows {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		b.WriteString(marker + row + "\n")
	}

	if tp := paging.TotalPages(m.rowCount(), adminPerPage); tp > 1 {
		b.WriteString(m.styles.Pager.Render(fmt.Sprintf("page %d of %d", m.page, tp)) + "\n")
	}

	hint := "tab/[ ] switch · ctrl+y refresh"
	if m.tabHasForm() {
		hint += " · n new · e edit"
	}
	if m.tab == tabSellers {
		hint += " · a activate · d deactivate"
	}
	if m.tab == tabInventory {
		hint += " · f category · s seller · x clear filter"
	}
	b.WriteString(m.styles.Muted.Render(hint) + "\n")
	return b.String()
}

func (m AdminModel) invFilterLine() string {
	var parts []string
	if m.invFilter.CategoryID != 0 {
		for _, c := range m.data.categories {
			if c.CategoryID == m.invFilter.CategoryID {
				parts = append(parts, "category="+c.Name)
			}
		}
	}
	if m.invFilter.SellerID != 0 {
		for _, s := range m.data.sellers {
			if s.SellerID == m.invFilter.SellerID {
				parts = append(parts, "seller="+s.SellerName)
			}
		}
	}
	return strings.Join(parts, "  ")
}

func (m AdminModel) formView() string {
	f := m.form
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render(f.title) + "\n")
	for _, in := range f.inputs {
		b.WriteString(in.View() + "\n")
	}
	if f.err != "" {
		b.WriteString(m.styles.Error.Render(f.err) + "\n")
	}
	b.WriteString(m.styles.Muted.Render("tab next field · enter save · esc cancel") + "\n")
	return b.String()
}

func (m AdminModel) profileView() string {
	p := m.profile
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render(p.FirstName+" "+p.LastName) + "\n")
	b.WriteString("username: " + p.UserName + "\n")
	b.WriteString("email:    " + p.Email + "\n")
	b.WriteString("phone:    " + p.PhoneNumber + "\n")
	b.WriteString("address:  " + p.Address + "\n")
	b.WriteString(m.styles.Muted.Render("e edit · w change password") + "\n")
	return b.String()
}

func (m AdminModel) reportsView() string {
	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Products by category") + "\n")
	b.WriteString(renderBars(m.styles, admin.ProductsByCategory(m.data.products)))
	b.WriteString(m.styles.Subtitle.Render("Products by brand") + "\n")
	b.WriteString(renderBars(m.styles, admin.ProductsByBrand(m.data.products)))
	b.WriteString(m.styles.Subtitle.Render("Products by seller") + "\n")
	b.WriteString(renderBars(m.styles, admin.ProductsBySeller(m.data.products)))
	b.WriteString(m.styles.Subtitle.Render("Stock by seller") + "\n")
	b.WriteString(renderBars(m.styles, admin.StockBySeller(m.data.inventory, m.data.sellers)))
	b.WriteString(m.styles.Subtitle.Render("Customers by membership") + "\n")
	b.WriteString(renderBars(m.styles, admin.UsersByMembership(m.data.users)))
	return b.String()
}

// renderBars draws a proportional text bar chart, widest bar 30 cells.
func renderBars(styles Styles, counts []admin.Count) string {
	if len(counts) == 0 {
		return styles.Muted.Render("no data") + "\n"
	}
	max := counts[0].N
	var b strings.Builder
	for _, c := range counts {
		width := c.N * 30 / max
		if width < 1 {
			width = 1
		}
		b.WriteString(fmt.Sprintf("  %-20s %s %d\n", c.Label, styles.Bar.Render(strings.Repeat("█", width)), c.N))
	}
	return b.String()
}
