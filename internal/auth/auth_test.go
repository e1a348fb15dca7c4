package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridworks/internal/domain"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := BcryptHasher{Cost: 4} // minimum cost keeps the test fast

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, h.Compare(hash, "s3cret"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), domain.ErrInvalidCredentials)
	assert.ErrorIs(t, h.Compare("not-a-hash", "s3cret"), domain.ErrInvalidCredentials)
}

func TestTokenIssueVerify(t *testing.T) {
	issuer := TokenIssuer{Secret: "test-secret"}

	token, err := issuer.Issue("user-1", "ops@gridworks.dev")
	require.NoError(t, err)

	sub, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)

	_, err = TokenIssuer{Secret: "other-secret"}.Verify(token)
	assert.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)
	issuer := TokenIssuer{Secret: "test-secret", TTL: time.Hour, Now: func() time.Time { return past }}

	token, err := issuer.Issue("user-1", "ops@gridworks.dev")
	require.NoError(t, err)

	_, err = TokenIssuer{Secret: "test-secret"}.Verify(token)
	assert.Error(t, err)
}

func TestTokenRequiresSecret(t *testing.T) {
	_, err := TokenIssuer{}.Issue("user-1", "ops@gridworks.dev")
	assert.Error(t, err)
	_, err = TokenIssuer{}.Verify("whatever")
	assert.Error(t, err)
}
