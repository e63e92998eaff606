package mockserver

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/zytra-commerce/zytra-client/internal/admin"
	"github.com/zytra-commerce/zytra-client/internal/cart"
	"github.com/zytra-commerce/zytra-client/internal/catalog"
	"github.com/zytra-commerce/zytra-client/internal/order"
	"github.com/zytra-commerce/zytra-client/internal/review"
	"github.com/zytra-commerce/zytra-client/internal/user"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrBadCredent   = errors.New("invalid username or password")
	ErrBadOTP       = errors.New("invalid otp")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrWrongPass    = errors.New("old password does not match")
	ErrUnknownEmail = errors.New("no account for email")
)

type account struct {
	user.Profile
	Password string
}

type staff struct {
	admin.Profile
	Password string
}

type cartLine struct {
	CartID    int
	ProductID int
	Quantity  int
}

type orderLine struct {
	OrderItem int
	ProductID int
	Quantity  int
	UnitPrice float64
}

type orderRecord struct {
	OrderID       int
	UserID        int
	Date          time.Time
	PaymentType   string
	PaymentStatus string
	Lines         []orderLine
}

// Store is the in-memory state behind the server. Entities are kept in the
// admin projections; the storefront product view is assembled on read.
type Store struct {
	mu     sync.Mutex
	nextID int
	now    func() time.Time

	categories    []admin.Category
	subCategories []admin.SubCategory
	brands        []admin.Brand
	sellers       []admin.Seller
	discounts     []admin.Discount
	products      []productRecord
	inventory     []admin.Inventory

	users  []account
	admins []staff

	carts   map[int][]cartLine
	orders  []orderRecord
	reviews map[int][]review.Review
	otps    map[string]string
}

// productRecord is the stored shape: relations by id only.
type productRecord struct {
	admin.ProductForm
	ProductID int
}

func NewStore() *Store {
	return &Store{
		nextID:  1000,
		now:     time.Now,
		carts:   map[int][]cartLine{},
		reviews: map[int][]review.Review{},
		otps:    map[string]string{},
	}
}

func (s *Store) id() int {
	s.nextID++
	return s.nextID
}

// lookups, callers hold the lock

func (s *Store) categoryByID(id int) (admin.Category, bool) {
	for _, c := range s.categories {
		if c.CategoryID == id {
			return c, true
		}
	}
	return admin.Category{}, false
}

func (s *Store) subCategoryByID(id int) (admin.SubCategory, bool) {
	for _, sc := range s.subCategories {
		if sc.SubCategoryID == id {
			return sc, true
		}
	}
	return admin.SubCategory{}, false
}

func (s *Store) brandByID(id int) (admin.Brand, bool) {
	for _, b := range s.brands {
		if b.BrandID == id {
			return b, true
		}
	}
	return admin.Brand{}, false
}

func (s *Store) sellerByID(id int) (admin.Seller, bool) {
	for _, sl := range s.sellers {
		if sl.SellerID == id {
			return sl, true
		}
	}
	return admin.Seller{}, false
}

func (s *Store) discountByID(id int) (admin.Discount, bool) {
	for _, d := range s.discounts {
		if d.DiscountID == id {
			return d, true
		}
	}
	return admin.Discount{}, false
}

func (s *Store) productByID(id int) (productRecord, bool) {
	for _, p := range s.products {
		if p.ProductID == id {
			return p, true
		}
	}
	return productRecord{}, false
}

func (s *Store) userByID(id int) (*account, bool) {
	for i := range s.users {
		if s.users[i].UserID == id {
			return &s.users[i], true
		}
	}
	return nil, false
}

func (s *Store) adminByID(id int) (*staff, bool) {
	for i := range s.admins {
		if s.admins[i].AdminID == id {
			return &s.admins[i], true
		}
	}
	return nil, false
}

// storefront assembles the public product projection from the stored
// relations, applying the discount when its window covers now.
func (s *Store) storefront(p productRecord) catalog.Product {
	out := catalog.Product{
		ID:              p.ProductID,
		Name:            p.ProductName,
		Description:     p.Description,
		SubDescription:  p.SubDescription,
		ActualPrice:     p.ActualPrice,
		TotalPrice:      p.ActualPrice,
		Color:           p.Color,
		Size:            p.Size,
		ImageFrontView:  p.ImageFrontView,
		ImageTopView:    p.ImageTopView,
		ImageSideView:   p.ImageSideView,
		ImageBottomView: p.ImageBottomView,
		AllReviews:      s.reviews[p.ProductID],
	}
	if c, ok := s.categoryByID(p.CategoryID); ok {
		out.CategoryName = c.Name
	}
	if sc, ok := s.subCategoryByID(p.SubCategoryID); ok {
		out.SubCategoryName = sc.Name
	}
	if b, ok := s.brandByID(p.BrandID); ok {
		out.BrandName = b.Name
	}
	if sl, ok := s.sellerByID(p.SellerID); ok {
		out.SellerName = sl.SellerName
		out.SellerStatus = catalog.SellerStatus(sl.Status)
	}
	if d, ok := s.discountByID(p.DiscountID); ok {
		out.DiscountType = catalog.DiscountType(d.DiscountType)
		out.DiscountValue = d.DiscountValue
		out.EndDate = d.EndDate
		if catalog.RemainingDays(d.EndDate, s.now()) > 0 {
			switch out.DiscountType {
			case catalog.DiscountPercentage:
				out.TotalPrice = math.Round(p.ActualPrice * (1 - d.DiscountValue/100))
			case catalog.DiscountAmount:
				out.TotalPrice = p.ActualPrice - d.DiscountValue
			}
			if out.TotalPrice < 0 {
				out.TotalPrice = 0
			}
		}
	}
	return out
}

func (s *Store) Storefront() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, s.storefront(p))
	}
	return out
}

func (s *Store) StorefrontProduct(id int) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.productByID(id)
	if !ok {
		return catalog.Product{}, ErrNotFound
	}
	return s.storefront(p), nil
}

func (s *Store) Categories() []admin.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]admin.Category(nil), s.categories...)
}

func (s *Store) SubCategories() []admin.SubCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]admin.SubCategory, len(s.subCategories))
	copy(out, s.subCategories)
	for i := range out {
		if c, ok := s.categoryByID(out[i].CategoryID); ok {
			out[i].CategoryName = c.Name
		}
	}
	return out
}

func (s *Store) Brands() []admin.Brand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]admin.Brand(nil), s.brands...)
}

func (s *Store) PublicCategories() []catalog.Category {
	out := []catalog.Category{}
	for _, c := range s.Categories() {
		out = append(out, catalog.Category{ID: c.CategoryID, Name: c.Name, Description: c.Description, Image: c.Image})
	}
	return out
}

func (s *Store) PublicSubCategories() []catalog.SubCategory {
	out := []catalog.SubCategory{}
	for _, sc := range s.SubCategories() {
		out = append(out, catalog.SubCategory{ID: sc.SubCategoryID, Name: sc.Name, Description: sc.Description, CategoryID: sc.CategoryID, CategoryName: sc.CategoryName})
	}
	return out
}

func (s *Store) PublicBrands() []catalog.Brand {
	out := []catalog.Brand{}
	for _, b := range s.Brands() {
		out = append(out, catalog.Brand{ID: b.BrandID, Name: b.Name, Description: b.Description, Image: b.Image})
	}
	return out
}

// accounts

func (s *Store) RegisterUser(p user.Profile, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.UserName == p.UserName || u.Email == p.Email {
			return fmt.Errorf("account %w", ErrConflict)
		}
	}
	p.UserID = s.id()
	p.Role = "USER"
	p.MemberShipStatus = "BASIC"
	p.RegisteredAt = s.now().UTC().Format(time.RFC3339)
	s.users = append(s.users, account{Profile: p, Password: password})
	return nil
}

func (s *Store) RegisterAdmin(p admin.Profile, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.UserName == p.UserName || a.Email == p.Email {
			return fmt.Errorf("account %w", ErrConflict)
		}
	}
	p.AdminID = s.id()
	p.Role = "ADMIN"
	s.admins = append(s.admins, staff{Profile: p, Password: password})
	return nil
}

func (s *Store) AuthenticateUser(userName, password string) (user.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.UserName == userName && u.Password == password {
			return u.Profile, nil
		}
	}
	return user.Profile{}, ErrBadCredent
}

func (s *Store) AuthenticateAdmin(userName, password string) (admin.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.UserName == userName && a.Password == password {
			return a.Profile, nil
		}
	}
	return admin.Profile{}, ErrBadCredent
}

func (s *Store) UserDetails(id int) (user.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.userByID(id)
	if !ok {
		return user.Profile{}, ErrNotFound
	}
	return u.Profile, nil
}

func (s *Store) UpdateUserProfile(id int, p user.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.userByID(id)
	if !ok {
		return ErrNotFound
	}
	p.UserID = u.UserID
	p.Role = u.Role
	p.MemberShipStatus = u.MemberShipStatus
	p.RegisteredAt = u.RegisteredAt
	u.Profile = p
	return nil
}

func (s *Store) UpdateUserPassword(id int, oldPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.userByID(id)
	if !ok {
		return ErrNotFound
	}
	if u.Password != oldPassword {
		return ErrWrongPass
	}
	u.Password = newPassword
	return nil
}

func (s *Store) SubscribePrime(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.userByID(id)
	if !ok {
		return ErrNotFound
	}
	u.MemberShipStatus = user.MembershipPrime
	return nil
}

func (s *Store) AllUsers() []user.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]user.Profile, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Profile)
	}
	return out
}

func (s *Store) AdminDetails(id int) (admin.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.adminByID(id)
	if !ok {
		return admin.Profile{}, ErrNotFound
	}
	return a.Profile, nil
}

func (s *Store) UpdateAdminProfile(id int, p admin.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.adminByID(id)
	if !ok {
		return ErrNotFound
	}
	p.AdminID = a.AdminID
	p.Role = a.Role
	a.Profile = p
	return nil
}

func (s *Store) UpdateAdminPassword(id int, oldPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.adminByID(id)
	if !ok {
		return ErrNotFound
	}
	if a.Password != oldPassword {
		return ErrWrongPass
	}
	a.Password = newPassword
	return nil
}

// account recovery

func (s *Store) GenerateOTP(email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			code := fmt.Sprintf("%06d", (s.id()*7919)%1000000)
			s.otps[email] = code
			return code, nil
		}
	}
	return "", ErrUnknownEmail
}

// OTP exposes the active code for an email so tests can complete the flow.
func (s *Store) OTP(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.otps[email]
}

func (s *Store) verifyOTP(email, otp string) (*account, error) {
	want, ok := s.otps[email]
	if !ok || want != otp {
		return nil, ErrBadOTP
	}
	for i := range s.users {
		if s.users[i].Email == email {
			delete(s.otps, email)
			return &s.users[i], nil
		}
	}
	return nil, ErrUnknownEmail
}

func (s *Store) RecoverUsername(email, otp string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.verifyOTP(email, otp)
	if err != nil {
		return "", err
	}
	return u.UserName, nil
}

func (s *Store) RecoverUserID(email, otp string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.verifyOTP(email, otp)
	if err != nil {
		return 0, err
	}
	return u.UserID, nil
}

func (s *Store) ResetPassword(userID int, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.userByID(userID)
	if !ok {
		return ErrNotFound
	}
	u.Password = newPassword
	return nil
}

// cart

func (s *Store) Cart(userID int) []cart.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []cart.Item{}
	for _, line := range s.carts[userID] {
		p, ok := s.productByID(line.ProductID)
		if !ok {
			continue
		}
		view := s.storefront(p)
		out = append(out, cart.Item{
			CartID:          line.CartID,
			ProductID:       line.ProductID,
			ProductName:     view.Name,
			BrandName:       view.BrandName,
			SellerName:      view.SellerName,
			Description:     view.Description,
			Image:           view.ImageFrontView,
			ProductQuantity: line.Quantity,
			TotalPrice:      view.TotalPrice,
			ActualPrice:     view.ActualPrice,
			DiscountValue:   view.DiscountValue,
		})
	}
	return out
}

func (s *Store) AddToCart(userID, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.productByID(productID); !ok {
		return ErrNotFound
	}
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity++
			return nil
		}
	}
	s.carts[userID] = append(lines, cartLine{CartID: s.id(), ProductID: productID, Quantity: 1})
	return nil
}

func (s *Store) RemoveFromCart(userID, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		lines[i].Quantity--
		if lines[i].Quantity <= 0 {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
		}
		return nil
	}
	return ErrNotFound
}

// orders

func (s *Store) InitiateOrder(userID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[userID]
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}
	rec := orderRecord{
		OrderID:       s.id(),
		UserID:        userID,
		Date:          s.now().UTC(),
		PaymentStatus: order.PaymentStatusPending,
	}
	for _, line := range lines {
		p, ok := s.productByID(line.ProductID)
		if !ok {
			continue
		}
		view := s.storefront(p)
		rec.Lines = append(rec.Lines, orderLine{
			OrderItem: s.id(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: view.TotalPrice,
		})
	}
	s.orders = append(s.orders, rec)
	delete(s.carts, userID)
	return rec.OrderID, nil
}

func (s *Store) PayOrder(userID, orderID int, paymentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		rec := &s.orders[i]
		if rec.OrderID != orderID || rec.UserID != userID {
			continue
		}
		rec.PaymentType = paymentType
		if paymentType == order.PaymentOnDelivery {
			rec.PaymentStatus = order.PaymentStatusPending
		} else {
			rec.PaymentStatus = "PAID"
		}
		return nil
	}
	return ErrNotFound
}

func (s *Store) grouped(rec orderRecord) order.Order {
	var total float64
	items := []order.Item{}
	for _, line := range rec.Lines {
		name, image := "", ""
		if p, ok := s.productByID(line.ProductID); ok {
			name, image = p.ProductName, p.ImageFrontView
		}
		amount := line.UnitPrice * float64(line.Quantity)
		total += amount
		items = append(items, order.Item{
			OrderItem:       line.OrderItem,
			Image:           image,
			ProductName:     name,
			ProductQuantity: line.Quantity,
			TotalPrice:      amount,
			ShippingStatus:  "PROCESSING",
		})
	}
	return order.Order{
		OrderID:   rec.OrderID,
		OrderDate: rec.Date.Format(time.RFC3339),
		PaymentGroups: []order.PaymentGroup{{
			PaymentType: rec.PaymentType,
			StatusGroups: []order.StatusGroup{{
				PaymentStatus: rec.PaymentStatus,
				TotalPrice:    total,
				Items:         items,
			}},
		}},
	}
}

func (s *Store) Orders(userID int) []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []order.Order{}
	for _, rec := range s.orders {
		if rec.UserID == userID {
			out = append(out, s.grouped(rec))
		}
	}
	return out
}

func (s *Store) Order(userID, orderID int) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.orders {
		if rec.OrderID == orderID && rec.UserID == userID {
			return s.grouped(rec), nil
		}
	}
	return order.Order{}, ErrNotFound
}

// reviews

func (s *Store) SubmitReview(userID, productID int, r review.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.productByID(productID); !ok {
		return ErrNotFound
	}
	r.UserID = userID
	for i, existing := range s.reviews[productID] {
		if existing.UserID == userID {
			s.reviews[productID][i] = r
			return nil
		}
	}
	s.reviews[productID] = append(s.reviews[productID], r)
	return nil
}
