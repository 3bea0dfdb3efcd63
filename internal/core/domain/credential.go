package domain

// CredentialKind names a Credential variant.
type CredentialKind string

const (
	KindIdentifier  CredentialKind = "identifier"
	KindAccessToken CredentialKind = "access_token"
	KindAPIKey      CredentialKind = "api_key"
)

// CredentialKinds lists every variant. Adding a variant means adding it here,
// which in turn fails the authenticator's coverage test until it is handled.
func CredentialKinds() []CredentialKind {
	return []CredentialKind{KindIdentifier, KindAccessToken, KindAPIKey}
}

// Credential is a closed set of proof-of-identity payloads. The unexported
// marker keeps implementations inside this package.
type Credential interface {
	Kind() CredentialKind
	credential()
}

// ByIdentifier carries an opaque primary key.
type ByIdentifier struct {
	ID string
}

// ByAccessToken carries a bearer token.
type ByAccessToken struct {
	Token string
}

// ByAPIKey carries a login and a plaintext secret.
type ByAPIKey struct {
	Login  string
	Secret string
}

func (ByIdentifier) Kind() CredentialKind  { return KindIdentifier }
func (ByAccessToken) Kind() CredentialKind { return KindAccessToken }
func (ByAPIKey) Kind() CredentialKind      { return KindAPIKey }

func (ByIdentifier) credential()  {}
func (ByAccessToken) credential() {}
func (ByAPIKey) credential()      {}
