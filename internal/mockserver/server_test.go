package mockserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/zytra-commerce/zytra-client/internal/admin"
	"github.com/zytra-commerce/zytra-client/internal/cart"
	"github.com/zytra-commerce/zytra-client/internal/catalog"
	"github.com/zytra-commerce/zytra-client/internal/logging"
	"github.com/zytra-commerce/zytra-client/internal/order"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := NewStore()
	store.Seed()
	return New(store, "test-secret", logging.Nop())
}

func request(t *testing.T, s *Server, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

func loginDemo(t *testing.T, s *Server) (string, int) {
	t.Helper()
	code, raw := request(t, s, "POST", "/user/login", "", map[string]string{"userName": "demo", "password": "Demo@123"})
	if code != 200 {
		t.Fatalf("login: status %d, body %s", code, raw)
	}
	var res struct {
		Token  string `json:"token"`
		UserID int    `json:"userId"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return res.Token, res.UserID
}

func TestPublicCatalogRoutes(t *testing.T) {
	s := newTestServer(t)

	code, raw := request(t, s, "GET", "/all-products", "", nil)
	if code != 200 {
		t.Fatalf("status %d", code)
	}
	var products []catalog.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("expected 5 seeded products, got %d", len(products))
	}

	// the seeded 10% discount applies: 120 -> 108
	var trail catalog.Product
	for _, p := range products {
		if p.Name == "Trail Runner X" {
			trail = p
		}
	}
	if trail.TotalPrice != 108 || trail.ActualPrice != 120 {
		t.Fatalf("discounted price: total %v actual %v", trail.TotalPrice, trail.ActualPrice)
	}

	code, _ = request(t, s, "GET", "/all-categories", "", nil)
	if code != 200 {
		t.Fatalf("categories status %d", code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	code, _ := request(t, s, "GET", "/user/get-cart/1", "", nil)
	if code != 401 {
		t.Fatalf("no token: status %d, want 401", code)
	}

	// a malformed token is still a 401, never a 400
	code, _ = request(t, s, "GET", "/user/get-cart/1", "not-a-jwt", nil)
	if code != 401 {
		t.Fatalf("malformed token: status %d, want 401", code)
	}

	token, userID := loginDemo(t, s)
	code, _ = request(t, s, "GET", fmt.Sprintf("/user/get-cart/%d", userID), token, nil)
	if code != 200 {
		t.Fatalf("with token: status %d", code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)
	code, _ := request(t, s, "POST", "/user/login", "", map[string]string{"userName": "demo", "password": "wrong"})
	if code != 400 {
		t.Fatalf("status %d, want 400", code)
	}
}

func TestCartAndCheckoutFlow(t *testing.T) {
	s := newTestServer(t)
	token, userID := loginDemo(t, s)

	var productID int
	for _, p := range s.store.Storefront() {
		if p.Name == "Urban Sneaker" {
			productID = p.ID
		}
	}

	// two adds merge into one line with quantity 2
	for i := 0; i < 2; i++ {
		code, raw := request(t, s, "POST", fmt.Sprintf("/user/add-to-cart/%d/%d", userID, productID), token, nil)
		if code != 200 {
			t.Fatalf("add: status %d, body %s", code, raw)
		}
	}
	code, raw := request(t, s, "GET", fmt.Sprintf("/user/get-cart/%d", userID), token, nil)
	if code != 200 {
		t.Fatalf("cart: status %d", code)
	}
	var cartRes struct {
		Carts []cart.Item `json:"carts"`
	}
	if err := json.Unmarshal(raw, &cartRes); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(cartRes.Carts) != 1 || cartRes.Carts[0].ProductQuantity != 2 {
		t.Fatalf("cart: %+v", cartRes.Carts)
	}

	// checkout drains the cart and the reply carries the order id
	code, raw = request(t, s, "POST", fmt.Sprintf("/user/initiate-order/%d", userID), token, nil)
	if code != 200 {
		t.Fatalf("initiate: status %d, body %s", code, raw)
	}
	orderID, ok := order.ParseOrderID(string(raw))
	if !ok {
		t.Fatalf("initiate reply: %s", raw)
	}

	code, _ = request(t, s, "PUT", fmt.Sprintf("/user/order-payment/%d/%d", userID, orderID), token, map[string]string{"paymentType": order.PaymentOnDelivery})
	if code != 200 {
		t.Fatalf("payment: status %d", code)
	}

	code, raw = request(t, s, "GET", fmt.Sprintf("/user/get-order/%d/%d", userID, orderID), token, nil)
	if code != 200 {
		t.Fatalf("get order: status %d", code)
	}
	var o order.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if !o.CanPayLater() {
		t.Fatalf("pay-on-delivery order should stay pending: %+v", o)
	}
	if o.Total() != 130 {
		t.Fatalf("order total %v, want 130", o.Total())
	}

	// cart is now empty so another checkout fails
	code, _ = request(t, s, "POST", fmt.Sprintf("/user/initiate-order/%d", userID), token, nil)
	if code != 400 {
		t.Fatalf("empty-cart initiate: status %d, want 400", code)
	}
}

func TestAccountRecoveryFlow(t *testing.T) {
	s := newTestServer(t)

	code, _ := request(t, s, "POST", "/user/generate-otp", "", map[string]string{"email": "asha@example.com"})
	if code != 200 {
		t.Fatalf("generate: status %d", code)
	}
	otp := s.store.OTP("asha@example.com")
	if otp == "" {
		t.Fatal("no otp stored")
	}

	code, raw := request(t, s, "POST", "/user/forgot-username/verify-otp", "", map[string]string{"email": "asha@example.com", "otp": otp})
	if code != 200 || string(raw) != "demo" {
		t.Fatalf("recover username: status %d, body %s", code, raw)
	}

	// codes are single use
	code, _ = request(t, s, "POST", "/user/forgot-password/verify-otp", "", map[string]string{"email": "asha@example.com", "otp": otp})
	if code != 400 {
		t.Fatalf("reused otp: status %d, want 400", code)
	}
}

func loginAdmin(t *testing.T, s *Server) (string, int) {
	t.Helper()
	code, raw := request(t, s, "POST", "/admin/login", "", map[string]string{"userName": "admin", "password": "Admin@123"})
	if code != 200 {
		t.Fatalf("admin login: status %d", code)
	}
	var res struct {
		Token  string `json:"token"`
		UserID int    `json:"userId"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return res.Token, res.UserID
}

func TestAdminTaxonomyAndStockWrites(t *testing.T) {
	s := newTestServer(t)
	token, adminID := loginAdmin(t, s)

	code, raw := request(t, s, "POST", fmt.Sprintf("/admin/inventory/add-category/%d", adminID), token,
		admin.Category{Name: "Outerwear"})
	if code != 201 {
		t.Fatalf("add category: status %d, body %s", code, raw)
	}
	var created admin.Category
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("decode category: %v", err)
	}
	if created.CategoryID == 0 {
		t.Fatalf("no id assigned: %+v", created)
	}

	code, _ = request(t, s, "PUT", fmt.Sprintf("/admin/inventory/update-category/%d/%d", adminID, created.CategoryID), token,
		admin.Category{Name: "Outerwear", Description: "jackets and coats"})
	if code != 200 {
		t.Fatalf("update category: status %d", code)
	}
	var found bool
	for _, c := range s.store.Categories() {
		if c.CategoryID == created.CategoryID && c.Description == "jackets and coats" {
			found = true
		}
	}
	if !found {
		t.Fatal("update did not land")
	}

	// stock records reject unknown products, accept known ones
	code, _ = request(t, s, "POST", fmt.Sprintf("/admin/inventory/add-inventory/%d", adminID), token,
		admin.Inventory{ProductID: 9999, StockQuantity: 5, SellerID: 1})
	if code != 404 {
		t.Fatalf("unknown product: status %d, want 404", code)
	}
	productID := s.store.Storefront()[0].ID
	code, raw = request(t, s, "POST", fmt.Sprintf("/admin/inventory/add-inventory/%d", adminID), token,
		admin.Inventory{ProductID: productID, StockQuantity: 5, WareHouseLocation: "east", SellerID: 1})
	if code != 201 {
		t.Fatalf("add inventory: status %d, body %s", code, raw)
	}
	var inv admin.Inventory
	if err := json.Unmarshal(raw, &inv); err != nil {
		t.Fatalf("decode inventory: %v", err)
	}
	code, _ = request(t, s, "PUT", fmt.Sprintf("/admin/inventory/update-inventory/%d/%d", adminID, inv.InventoryID), token,
		admin.Inventory{ProductID: productID, StockQuantity: 12, WareHouseLocation: "east", SellerID: 1})
	if code != 200 {
		t.Fatalf("update inventory: status %d", code)
	}
}

func TestSellerDeactivationReflectsOnStorefront(t *testing.T) {
	s := newTestServer(t)

	code, raw := request(t, s, "POST", "/admin/login", "", map[string]string{"userName": "admin", "password": "Admin@123"})
	if code != 200 {
		t.Fatalf("admin login: status %d", code)
	}
	var res struct {
		Token  string `json:"token"`
		UserID int    `json:"userId"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		t.Fatalf("decode: %v", err)
	}

	sellers := s.store.Sellers()
	code, _ = request(t, s, "PUT", fmt.Sprintf("/admin/inventory/deactivate-seller/%d/%d", res.UserID, sellers[0].SellerID), res.Token, nil)
	if code != 200 {
		t.Fatalf("deactivate: status %d", code)
	}

	for _, p := range s.store.Storefront() {
		if p.SellerName == sellers[0].SellerName && p.SellerStatus != catalog.SellerInactive {
			t.Fatalf("storefront still shows %s active", p.Name)
		}
	}
}
