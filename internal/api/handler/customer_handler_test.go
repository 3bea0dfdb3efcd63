package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/foodcourier/marketplace/internal/api/middleware"
	"github.com/foodcourier/marketplace/internal/core/domain"
)

func resolveAlice(t *testing.T, alice *domain.Customer) *stubAuthenticator {
	return &stubAuthenticator{resolveFn: func(_ context.Context, cred domain.Credential) (*domain.Customer, error) {
		key, ok := cred.(domain.ByAPIKey)
		if !ok {
			t.Fatalf("expected api key credential, got %#v", cred)
		}
		if key.Login != "alice" || key.Secret != "pw123" {
			return nil, domain.ErrInvalidCredentials
		}
		return alice, nil
	}}
}

func TestCustomerHandler_Login_ExistingToken(t *testing.T) {
	alice := &domain.Customer{ID: "u1", Name: "Alice", Login: "alice", AccessToken: "tok"}
	issuer := &stubIssuer{}
	h := NewCustomerHandler(resolveAlice(t, alice), issuer)

	c, rec := newContext(http.MethodPost, "/customer/login", strings.NewReader(`{"login":"alice","password":"pw123"}`))
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if issuer.calls != 0 {
		t.Fatalf("existing token should be returned as is")
	}

	var resp struct {
		Error    bool           `json:"error"`
		Customer map[string]any `json:"customer"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error || resp.Customer["access_token"] != "tok" || resp.Customer["_id"] != "u1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp.Customer["password_hash"]; leaked {
		t.Fatalf("password hash leaked")
	}
}

func TestCustomerHandler_Login_IssuesFirstToken(t *testing.T) {
	alice := &domain.Customer{ID: "u1", Login: "alice"}
	issuer := &stubIssuer{issueFn: func(_ context.Context, c *domain.Customer) (string, error) {
		c.AccessToken = "fresh"
		return "fresh", nil
	}}
	h := NewCustomerHandler(resolveAlice(t, alice), issuer)

	c, rec := newContext(http.MethodPost, "/customer/login", strings.NewReader(`{"login":"alice","password":"pw123"}`))
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if issuer.calls != 1 {
		t.Fatalf("expected one issue call, got %d", issuer.calls)
	}
	if !strings.Contains(rec.Body.String(), `"access_token":"fresh"`) {
		t.Fatalf("expected fresh token in body: %s", rec.Body.String())
	}
}

func TestCustomerHandler_Login_WrongPassword(t *testing.T) {
	h := NewCustomerHandler(resolveAlice(t, &domain.Customer{ID: "u1"}), &stubIssuer{})

	c, _ := newContext(http.MethodPost, "/customer/login", strings.NewReader(`{"login":"alice","password":"nope"}`))
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCustomerHandler_Login_Validation(t *testing.T) {
	h := NewCustomerHandler(&stubAuthenticator{}, &stubIssuer{})

	c, _ := newContext(http.MethodPost, "/customer/login", strings.NewReader(`{"login":"alice"}`))
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "password is required") {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestCustomerHandler_Register_Unsupported(t *testing.T) {
	auth := &stubAuthenticator{}
	h := NewCustomerHandler(auth, &stubIssuer{})

	c, _ := newContext(http.MethodPost, "/customer/register", strings.NewReader(`{"name":"Eve","login":"eve","password":"pw"}`))
	if err := h.Register(c); err != domain.ErrRegistrationUnsupported {
		t.Fatalf("expected ErrRegistrationUnsupported, got %v", err)
	}
	if auth.registered != 1 {
		t.Fatalf("expected the authenticator to be consulted")
	}
}

func TestCustomerHandler_Me(t *testing.T) {
	h := NewCustomerHandler(&stubAuthenticator{}, &stubIssuer{})

	c, rec := newContext(http.MethodGet, "/customer/me", nil)
	middleware.SetPrincipal(c, &domain.Customer{ID: "u1", Name: "Alice", Login: "alice", AccessToken: "tok"})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "tok") {
		t.Fatalf("token must not be returned by /me: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"login":"alice"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
