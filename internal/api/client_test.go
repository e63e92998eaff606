package api_test

import (
	"errors"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/zytra-commerce/zytra-client/internal/api"
	"github.com/zytra-commerce/zytra-client/internal/logging"
	"github.com/zytra-commerce/zytra-client/internal/mockserver"
	"github.com/zytra-commerce/zytra-client/internal/session"
)

// startBackend serves a seeded mock backend on a random port and returns its
// base URL.
func startBackend(t *testing.T) string {
	t.Helper()
	store := mockserver.NewStore()
	store.Seed()
	srv := mockserver.New(store, "test-secret", logging.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go srv.Listener(ln)
	t.Cleanup(func() { srv.Shutdown() })
	return "http://" + ln.Addr().String()
}

func TestClientDecodesAndAttachesBearer(t *testing.T) {
	base := startBackend(t)
	sess := session.New()
	c := api.New(base, 5*time.Second, sess, logging.Nop())

	var login struct {
		Token  string `json:"token"`
		UserID int    `json:"userId"`
		Role   string `json:"role"`
	}
	err := c.Post("/user/login", map[string]string{"userName": "demo", "password": "Demo@123"}, &login)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	sess.LoginUser(login.Token, login.UserID, login.Role)

	// protected route succeeds only because the bearer header is attached
	var cartRes struct {
		Carts []struct {
			ProductID int `json:"productId"`
		} `json:"carts"`
	}
	if err := c.Get("/user/get-cart/"+strconv.Itoa(login.UserID), &cartRes); err != nil {
		t.Fatalf("get cart: %v", err)
	}
}

func TestClientUnauthorizedClearsSessionAndFiresHook(t *testing.T) {
	base := startBackend(t)
	sess := session.New()
	sess.LoginUser("not-a-valid-token", 1, "USER")

	c := api.New(base, 5*time.Second, sess, logging.Nop())
	fired := false
	c.SetUnauthorizedHook(func() { fired = true })

	err := c.Get("/user/get-cart/1", nil)
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if !fired {
		t.Fatal("hook did not fire")
	}
	if sess.LoggedIn() {
		t.Fatal("session not cleared")
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Kind != api.KindUnauthorized {
		t.Fatalf("kind: %v", err)
	}
}

func TestClientStatusErrorCarriesMessage(t *testing.T) {
	base := startBackend(t)
	sess := session.New()
	c := api.New(base, 5*time.Second, sess, logging.Nop())

	err := c.Post("/user/login", map[string]string{"userName": "demo", "password": "wrong"}, nil)
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Kind != api.KindStatus || apiErr.Status != 400 || apiErr.Message == "" {
		t.Fatalf("error: %+v", apiErr)
	}
}

func TestClientPostTextTrimsReply(t *testing.T) {
	base := startBackend(t)
	sess := session.New()
	c := api.New(base, 5*time.Second, sess, logging.Nop())

	var login struct {
		Token  string `json:"token"`
		UserID int    `json:"userId"`
		Role   string `json:"role"`
	}
	if err := c.Post("/user/login", map[string]string{"userName": "demo", "password": "Demo@123"}, &login); err != nil {
		t.Fatalf("login: %v", err)
	}
	sess.LoginUser(login.Token, login.UserID, login.Role)

	var products []struct {
		ID int `json:"productId"`
	}
	if err := c.Get("/all-products", &products); err != nil || len(products) == 0 {
		t.Fatalf("products: %v", err)
	}
	if err := c.Post("/user/add-to-cart/"+strconv.Itoa(login.UserID)+"/"+strconv.Itoa(products[0].ID), nil, nil); err != nil {
		t.Fatalf("add to cart: %v", err)
	}

	reply, err := c.PostText("/user/initiate-order/"+strconv.Itoa(login.UserID), nil)
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}
	if reply == "" || reply[0] == '"' {
		t.Fatalf("reply not trimmed: %q", reply)
	}
}

func TestClientNetworkError(t *testing.T) {
	sess := session.New()
	c := api.New("http://127.0.0.1:1", 500*time.Millisecond, sess, logging.Nop())

	err := c.Get("/all-products", nil)
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Kind != api.KindNetwork {
		t.Fatalf("expected network error, got %v", err)
	}
}
