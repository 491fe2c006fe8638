package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"clubcentral/pkg/utils"
)

// One secret for the whole package: the key is resolved once, on first
// token use, so every test signs and verifies against the same value.
const testSecret = "club-central-test-secret"

func setSecret(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
}

func TestSessionToken_RoundTrip(t *testing.T) {
	setSecret(t)

	token, err := utils.CreateSessionToken("uid-1", "asha@club.org", "Asha", "https://cdn.example.com/a.jpg", "member")
	if err != nil {
		t.Fatalf("CreateSessionToken() error = %v", err)
	}

	claims, err := utils.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken() error = %v", err)
	}
	if claims.UID != "uid-1" || claims.Email != "asha@club.org" || claims.Role != "member" {
		t.Errorf("claims lost fields: %+v", claims)
	}
}

func TestSessionToken_UsesConfiguredSecret(t *testing.T) {
	setSecret(t)

	// a token minted without knowing the secret must not verify; with an
	// empty or wrong signing key anyone could hand themselves admin
	for _, key := range [][]byte{[]byte(""), []byte("wrong-secret")} {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &utils.SessionClaims{
			UID:   "uid-x",
			Email: "attacker@club.org",
			Role:  "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := forged.SignedString(key)
		if err != nil {
			t.Fatalf("signing forged token: %v", err)
		}

		if _, err := utils.ValidateSessionToken(signed); !errors.Is(err, utils.ErrUnauthorized) {
			t.Errorf("token signed with key %q accepted, want ErrUnauthorized", key)
		}
	}
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	setSecret(t)

	_, err := utils.ValidateSessionToken("not.a.token")
	if !errors.Is(err, utils.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestValidateSessionToken_Tampered(t *testing.T) {
	setSecret(t)

	token, err := utils.CreateSessionToken("uid-1", "asha@club.org", "Asha", "", "member")
	if err != nil {
		t.Fatalf("CreateSessionToken() error = %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := utils.ValidateSessionToken(tampered); !errors.Is(err, utils.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}
