package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-long-enough-for-hs256"

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, exp, err := tm.GenerateToken("alice", 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, int64(42), claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestParseTokenExpired(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	expired := signClaims(t, tm.secret, &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	claims, err := tm.ParseToken(expired)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenTamperedSignature(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, _, err := tm.GenerateToken("alice", 42)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tm.ParseToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	other := NewTokenManager("a-completely-different-secret", time.Hour)

	token, _, err := other.GenerateToken("alice", 42)
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenMissingClaims(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	noSubject := signClaims(t, tm.secret, &Claims{
		UserID:           42,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	})
	_, err := tm.ParseToken(noSubject)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noUserID := signClaims(t, tm.secret, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice", ExpiresAt: exp},
	})
	_, err = tm.ParseToken(noUserID)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsOtherSigningMethod(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(tm.secret)
	require.NoError(t, err)

	_, err = tm.ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenMalformed(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	for _, tokenStr := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := tm.ParseToken(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenStr)
	}
}

func signClaims(t *testing.T, secret []byte, claims *Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return signed
}
