package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nexorbs/nexportal/internal/application/auth/usecases"
	"github.com/nexorbs/nexportal/internal/domain/user"
)

// Claims is the JWT payload. A single access token carries the full identity
// the portal needs per request; expiry is the only revocation mechanism.
type Claims struct {
	UserID      string `json:"user_id"`
	AccountCode string `json:"account_code"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret      []byte
	expiryHours int
}

func NewJWTService(secret string, expiryHours int) *JWTService {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &JWTService{
		secret:      []byte(secret),
		expiryHours: expiryHours,
	}
}

func (s *JWTService) Generate(u *user.User) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		UserID:      u.ID(),
		AccountCode: u.AccountCode(),
		DisplayName: u.DisplayName(),
		Email:       u.Email(),
		Role:        u.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*usecases.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return &usecases.TokenClaims{
		UserID:      claims.UserID,
		AccountCode: claims.AccountCode,
		DisplayName: claims.DisplayName,
		Email:       claims.Email,
		Role:        claims.Role,
	}, nil
}

// ExpiryHours returns the configured token lifetime.
func (s *JWTService) ExpiryHours() int {
	return s.expiryHours
}
