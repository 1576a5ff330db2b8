package ports

// PasswordHasher turns a plaintext password into a stored digest and checks
// candidates against it. Implementations must be deterministic per scheme:
// Verify(p, Hash(p)) is always true.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
