// Package mockserver is an in-memory stand-in for the storefront backend.
// It serves the same routes and payload shapes over fiber, minting real JWTs
// so the client's auth plumbing works unchanged. It backs the client test
// suites and the standalone zytra-mockd binary used for demos and UI work.
package mockserver

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const tokenTTL = 2 * time.Hour

type Server struct {
	store  *Store
	secret []byte
	app    *fiber.App
	log    *zap.SugaredLogger
}

// New wires the routes: public endpoints first, then the JWT gate, then the
// protected user and admin surface. Routes registered before the gate stay
// open.
func New(store *Store, secret string, log *zap.SugaredLogger) *Server {
	s := &Server{
		store:  store,
		secret: []byte(secret),
		app:    fiber.New(fiber.Config{DisableStartupMessage: true}),
		log:    log,
	}

	s.app.Use(s.requestLog)

	s.registerPublicRoutes(s.app)

	// every auth failure answers 401 so the client's session-expiry hook
	// fires for missing and malformed tokens alike
	s.app.Use(jwtware.New(jwtware.Config{
		SigningKey: s.secret,
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing or invalid token"})
		},
	}))

	s.registerUserRoutes(s.app)
	s.registerAdminRoutes(s.app)
	return s
}

func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error {
	s.log.Infow("listening", "addr", addr)
	return s.app.Listen(addr)
}

// Listener serves on an already bound listener, which is how tests get a
// random free port.
func (s *Server) Listener(ln net.Listener) error {
	return s.app.Listener(ln)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.log.Debugw("handled", "method", c.Method(), "path", c.Path(), "status", c.Response().StatusCode(), "took", time.Since(start))
	return err
}

func (s *Server) mintToken(id int, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  fmt.Sprint(id),
		"role": role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// fail maps store errors onto the status codes the client expects.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, ErrBadCredent), errors.Is(err, ErrBadOTP),
		errors.Is(err, ErrEmptyCart), errors.Is(err, ErrWrongPass),
		errors.Is(err, ErrUnknownEmail):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"message": err.Error()})
}
