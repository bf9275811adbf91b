package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/catalog-api/internal/models"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	client := &models.Client{ID: 7, Email: "martin@email.com", Roles: []string{"ROLE_ADMIN"}}

	token, err := tm.Issue(client)
	require.NoError(t, err)

	claims, err := tm.Parse(token)
	require.NoError(t, err)

	id, err := claims.ClientID()
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, "martin@email.com", claims.Email)
	assert.Equal(t, []string{"ROLE_ADMIN", models.RoleUser}, claims.Roles)
}

func TestTokenManager_RejectsOtherSecret(t *testing.T) {
	token, err := NewTokenManager("one", time.Hour).Issue(&models.Client{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	tm.now = func() time.Time { return issued }

	token, err := tm.Issue(&models.Client{ID: 1})
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsNoneAlgorithm(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1", Issuer: issuer},
	})
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour).Parse(s)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_ClientID(t *testing.T) {
	c := &Claims{}
	c.Subject = "abc"
	_, err := c.ClientID()
	assert.ErrorIs(t, err, ErrInvalidToken)

	c.Subject = "0"
	_, err = c.ClientID()
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearer(t *testing.T) {
	tok, err := ExtractBearer("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", tok)

	tok, err = ExtractBearer("bearer xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz", tok)

	_, err = ExtractBearer("")
	assert.ErrorIs(t, err, ErrMissingToken)

	for _, h := range []string{"Basic abc", "Bearer", "Bearer  ", "token"} {
		_, err = ExtractBearer(h)
		assert.ErrorIs(t, err, ErrInvalidToken, h)
	}
}
