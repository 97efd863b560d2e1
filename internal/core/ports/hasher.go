package ports

// PasswordHasher is the one-way hash used at the authentication boundary.
// The cost is fixed at construction time by configuration.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Compare reports whether plain matches hash. Never errors: a corrupt
	// hash is simply a non-match.
	Compare(plain, hash string) bool
}
