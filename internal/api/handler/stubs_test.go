package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
)

type stubAuthenticator struct {
	resolveFn  func(ctx context.Context, cred domain.Credential) (*domain.Customer, error)
	registered int
}

func (s *stubAuthenticator) Resolve(ctx context.Context, cred domain.Credential) (*domain.Customer, error) {
	return s.resolveFn(ctx, cred)
}

func (s *stubAuthenticator) Register(context.Context, domain.Credential) (*domain.Customer, error) {
	s.registered++
	return nil, domain.ErrRegistrationUnsupported
}

type stubIssuer struct {
	issueFn func(ctx context.Context, c *domain.Customer) (string, error)
	calls   int
}

func (s *stubIssuer) Issue(ctx context.Context, c *domain.Customer) (string, error) {
	s.calls++
	return s.issueFn(ctx, c)
}

func (s *stubIssuer) EnsureIssued(ctx context.Context, c *domain.Customer) (string, error) {
	if c.AccessToken != "" {
		return c.AccessToken, nil
	}
	s.calls++
	return s.issueFn(ctx, c)
}

type stubPlaceService struct {
	merchants []*domain.Merchant
	menu      []*domain.MenuCategory
	lastQuery ports.RadiusQuery
}

func (s *stubPlaceService) All(context.Context) ([]*domain.Merchant, error) {
	return s.merchants, nil
}

func (s *stubPlaceService) InRadius(_ context.Context, q ports.RadiusQuery) ([]*domain.Merchant, error) {
	s.lastQuery = q
	return s.merchants, nil
}

func (s *stubPlaceService) Info(_ context.Context, id string) (*domain.Merchant, error) {
	for _, m := range s.merchants {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domain.ErrMerchantNotFound
}

func (s *stubPlaceService) Menu(ctx context.Context, id string) ([]*domain.MenuCategory, error) {
	if _, err := s.Info(ctx, id); err != nil {
		return nil, err
	}
	return s.menu, nil
}

type stubOrderService struct {
	placeFn func(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error)
	listFn  func(ctx context.Context, customerID string) ([]*domain.Order, error)
}

func (s *stubOrderService) Place(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error) {
	return s.placeFn(ctx, in)
}

func (s *stubOrderService) ListForCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return s.listFn(ctx, customerID)
}

// newContext builds a JSON request context with the validator installed.
func newContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
