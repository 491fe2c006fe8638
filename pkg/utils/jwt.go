package utils

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtKeyOnce sync.Once
	jwtKey     []byte
)

// sessionKey resolves JWT_SECRET on first use, not at package init, so
// the value godotenv loads in main is the one tokens are signed with.
func sessionKey() []byte {
	jwtKeyOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Fatal("JWT_SECRET is required")
		}
		jwtKey = []byte(secret)
	})
	return jwtKey
}

// SessionClaims carries the identity-provider profile snapshot plus the
// role resolved at sign-in. The token is the session; nothing is stored
// server-side.
type SessionClaims struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func CreateSessionToken(uid, email, name, photoURL, role string) (string, error) {
	claims := &SessionClaims{
		UID:      uid,
		Email:    email,
		Name:     name,
		PhotoURL: photoURL,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionKey())
}

func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return sessionKey(), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	return claims, nil
}
