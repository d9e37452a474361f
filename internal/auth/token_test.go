package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("one-secret").Issue(1)
	require.NoError(t, err)

	_, err = NewTokenIssuer("other-secret").Verify(token)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  int64(1),
		"iat": now.Add(-2 * TokenTTL).Unix(),
		"exp": now.Add(-TokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret").Verify(signed)
	assert.Error(t, err)
}

func TestVerify_RejectsUnsignedAlg(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  int64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret").Verify(signed)
	assert.Error(t, err)
}

func TestVerify_MissingIDClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret").Verify(signed)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := NewTokenIssuer("test-secret").Verify("not.a.token")
	assert.Error(t, err)
}
