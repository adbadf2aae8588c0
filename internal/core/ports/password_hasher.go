package ports

// PasswordHasher is a one-way hash-and-compare primitive for credentials.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, hash string) bool
}
