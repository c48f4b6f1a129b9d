// Package csrf issues and checks the anti-forgery token embedded in the
// product form. Tokens are stateless HS256 JWTs that expire after a TTL.
package csrf

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

// FieldName is the form field carrying the token.
const FieldName = "_token"

const (
	subject = "product-form"
	keySize = 32
)

var keyInfo = []byte("inventory-form csrf v1")

// ErrInvalidToken is returned for missing, forged or expired tokens.
var ErrInvalidToken = errors.New("invalid form token")

// Tokens issues and verifies form tokens.
type Tokens struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// New derives the signing key from secret. An empty secret gets a random
// key, so tokens only survive as long as the process.
func New(secret []byte, ttl time.Duration) (*Tokens, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	if len(secret) == 0 {
		secret = make([]byte, keySize)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate secret: %w", err)
		}
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, keyInfo), key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return &Tokens{key: key, ttl: ttl, now: time.Now}, nil
}

// Issue returns a fresh signed token.
func (t *Tokens) Issue() (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, subject and expiry of tokenStr.
func (t *Tokens) Verify(tokenStr string) error {
	if tokenStr == "" {
		return ErrInvalidToken
	}

	_, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) {
			return t.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(subject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return nil
}
