package usecases

import "github.com/nexorbs/nexportal/internal/domain/user"

// TokenClaims is the verified content of an access token. Claims are trusted
// for the token's lifetime; there is no revocation list.
type TokenClaims struct {
	UserID      string
	AccountCode string
	DisplayName string
	Email       string
	Role        string
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	Generate(u *user.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// PasswordHasher hashes and checks login secrets.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
