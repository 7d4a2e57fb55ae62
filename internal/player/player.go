// internal/player/player.go
//
// Anonymous player identity.
// Every visitor gets a random player ID carried in a signed HS256 JWT cookie,
// so sessions and leaderboard rows survive page reloads without accounts.
//
// The signing key is derived from the configured secret with HKDF, so the raw
// secret is never used as a MAC key directly.

package player

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const (
	issuer      = "pokedle"
	hkdfInfo    = "pokedle player token v1"
	defaultTTL  = 180 * 24 * time.Hour
	minSecretSz = 16
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or claim checks.
var ErrInvalidToken = errors.New("invalid player token")

// Issuer signs and verifies player tokens.
type Issuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewIssuer derives a signing key from secret. ttl <= 0 means 180 days.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if len(secret) < minSecretSz {
		return nil, fmt.Errorf("player: secret must be at least %d bytes", minSecretSz)
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("player: derive key: %w", err)
	}
	return &Issuer{key: key, ttl: ttl, now: time.Now}, nil
}

// TTL is how long issued tokens stay valid.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs a token for playerID and returns it with its expiry.
func (i *Issuer) Issue(playerID string) (string, time.Time, error) {
	if playerID == "" {
		return "", time.Time{}, errors.New("player: empty player id")
	}
	now := i.now()
	exp := now.Add(i.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   playerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString(i.key)
	return ss, exp, err
}

// Verify checks a token and returns the player ID it carries.
func (i *Issuer) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return i.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}

// NewID creates a 22-char URL-safe, crypto-random identifier (no padding).
func NewID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
