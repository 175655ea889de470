package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts credential hashing so the algorithm is swappable
// and plaintext never reaches the repositories.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// BcryptHasher hashes with bcrypt at the default cost. The digest embeds the
// salt and cost parameters; comparison is constant-time.
type BcryptHasher struct{}

func NewBcryptHasher() PasswordHasher {
	return BcryptHasher{}
}

func (BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
