package player

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-0123456789"

func TestIssueAndVerify(t *testing.T) {
	iss, err := NewIssuer(secret, time.Hour)
	require.NoError(t, err)

	tok, exp, err := iss.Issue("abc")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	id, err := iss.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}

func TestNewIssuerRejectsShortSecret(t *testing.T) {
	_, err := NewIssuer("short", 0)
	assert.Error(t, err)

	iss, err := NewIssuer(secret, 0)
	require.NoError(t, err)
	assert.Equal(t, 180*24*time.Hour, iss.TTL())
}

func TestVerifyRejects(t *testing.T) {
	iss, err := NewIssuer(secret, time.Hour)
	require.NoError(t, err)
	other, err := NewIssuer("another-secret-0123456789", time.Hour)
	require.NoError(t, err)

	foreign, _, err := other.Issue("abc")
	require.NoError(t, err)
	_, err = iss.Verify(foreign)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	_, err = iss.Verify("not.a.token")
	assert.True(t, errors.Is(err, ErrInvalidToken))

	// raw secret used directly instead of the derived key
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: issuer, Subject: "abc"})
	s, err := raw.SignedString([]byte(secret))
	require.NoError(t, err)
	_, err = iss.Verify(s)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	// unsigned
	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: issuer, Subject: "abc"})
	s, err = none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = iss.Verify(s)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyExpired(t *testing.T) {
	iss, err := NewIssuer(secret, time.Hour)
	require.NoError(t, err)
	start := time.Date(2024, 7, 29, 0, 0, 0, 0, time.UTC)
	iss.now = func() time.Time { return start }

	tok, _, err := iss.Issue("abc")
	require.NoError(t, err)

	iss.now = func() time.Time { return start.Add(2 * time.Hour) }
	_, err = iss.Verify(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestVerifyMissingSubject(t *testing.T) {
	iss, err := NewIssuer(secret, time.Hour)
	require.NoError(t, err)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: issuer})
	s, err := tok.SignedString(iss.key)
	require.NoError(t, err)
	_, err = iss.Verify(s)
	assert.ErrorContains(t, err, "missing subject")
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 22)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "=")
}
