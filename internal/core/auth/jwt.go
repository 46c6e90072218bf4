package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UID uint `json:"uid"`
	jwt.RegisteredClaims
}

// JWTer issues and verifies HS256 bearer tokens. Secret is process
// configuration loaded once at startup.
type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func (j *JWTer) Issue(uid uint) (string, error) {
	now := time.Now()
	claims := Claims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Verify checks signature and expiry and returns the embedded subject id.
// Failures are classified into the sentinel errors of this package so the
// transport layer can map them without inspecting message strings.
func (j *JWTer) Verify(tokenStr string) (uint, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg %q", token.Header["alg"])
		}
		return j.Secret, nil
	})
	if err != nil {
		return 0, classify(err)
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return 0, ErrTokenMalformed
	}
	return c.UID, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	default:
		return ErrInvalidSignature
	}
}
