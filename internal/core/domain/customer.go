package domain

import "errors"

var (
	// ErrInvalidCredentials is returned for every failed resolution. Callers
	// must not be able to tell an unknown login from a wrong secret.
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrRegistrationUnsupported = errors.New("registration not supported")
	ErrTypeMismatch            = errors.New("principal type mismatch")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrCustomerExists          = errors.New("customer already exists")
	ErrInvalidCustomer         = errors.New("invalid customer")
)

// Customer is the canonical user record resolved by the authenticator.
type Customer struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Login        string `json:"login"`
	PasswordHash string `json:"-"`
	AccessToken  string `json:"access_token"`
}

func (c *Customer) PrincipalID() string   { return c.ID }
func (c *Customer) PrincipalKind() string { return PrincipalCustomer }

// PublicView is returned to the customer right after login and carries the
// bearer token.
func (c *Customer) PublicView() map[string]any {
	return map[string]any{
		"_id":          c.ID,
		"name":         c.Name,
		"login":        c.Login,
		"access_token": c.AccessToken,
	}
}

// InfoView omits the token.
func (c *Customer) InfoView() map[string]any {
	return map[string]any{
		"_id":   c.ID,
		"name":  c.Name,
		"login": c.Login,
	}
}
