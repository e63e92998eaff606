// Package api is the HTTP core shared by every resource client. It owns the
// cross-cutting policies of the wire contract: bearer-token attachment,
// request correlation ids, typed JSON decoding, and the global 401 reaction
// (clear the session, notify the UI).
package api

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zytra-commerce/zytra-client/internal/session"
)

// Client issues JSON requests against a single backend origin.
type Client struct {
	baseURL string
	timeout time.Duration
	session *session.Session
	log     *zap.SugaredLogger

	// onUnauthorized fires after the session has been cleared by a 401.
	onUnauthorized func()
}

func New(baseURL string, timeout time.Duration, sess *session.Session, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		session: sess,
		log:     log,
	}
}

// SetUnauthorizedHook registers the single global side effect of the wire
// contract: what to do when any call comes back 401.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// Get fetches path and decodes the JSON body into out. A nil out discards
// the body.
func (c *Client) Get(path string, out interface{}) error {
	_, err := c.do(fiber.MethodGet, path, nil, out)
	return err
}

func (c *Client) Post(path string, body, out interface{}) error {
	_, err := c.do(fiber.MethodPost, path, body, out)
	return err
}

func (c *Client) Put(path string, body, out interface{}) error {
	_, err := c.do(fiber.MethodPut, path, body, out)
	return err
}

func (c *Client) Delete(path string) error {
	_, err := c.do(fiber.MethodDelete, path, nil, nil)
	return err
}

// PostText posts body and returns the raw response text. A few endpoints
// (initiate-order, OTP verification) reply with plain strings the caller
// must parse.
func (c *Client) PostText(path string, body interface{}) (string, error) {
	raw, err := c.do(fiber.MethodPost, path, body, nil)
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(string(raw)), `"`), nil
}

// do runs one request through fiber's agent and applies the shared policies.
// It returns the raw body so text endpoints can reuse the same path.
func (c *Client) do(method, path string, body, out interface{}) ([]byte, error) {
	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	req.Header.SetContentType(fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderXRequestID, uuid.NewString())

	if tok := c.session.Token(); tok != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	}

	a.Timeout(c.timeout)
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	if body != nil {
		a.JSON(body)
	}

	code, raw, errs := a.Bytes()
	if len(errs) > 0 {
		c.log.Warnw("request failed", "method", method, "path", path, "err", errs[0])
		return nil, &Error{Kind: KindNetwork, Message: errs[0].Error()}
	}

	c.log.Debugw("request done", "method", method, "path", path, "status", code)

	if code == fiber.StatusUnauthorized {
		c.session.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, &Error{Kind: KindUnauthorized, Status: code}
	}

	if code < 200 || code > 299 {
		return nil, &Error{Kind: KindStatus, Status: code, Message: errorMessage(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, &Error{Kind: KindDecode, Message: err.Error()}
		}
	}
	return raw, nil
}

// errorMessage pulls the optional {"message": ...} field out of an error
// body, falling back to the body text.
func errorMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(raw))
}
