package ports

// Hasher is a slow, salted one-way function for secrets.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
