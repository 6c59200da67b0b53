package hash

// Hash hashes and verifies secrets.
//
// Hash returns the encoded digest of plaintext. Verify reports whether
// plaintext matches a previously produced digest.
type Hash interface {
	Hash(plaintext string) ([]byte, error)
	Verify(hashed, plaintext string) bool
}
