package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Generate("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestManager_WrongSecret(t *testing.T) {
	issuer := NewManager("issuer-secret", time.Hour)
	verifier := NewManager("other-secret", time.Hour)

	token, err := issuer.Generate("alice")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Hour)

	token, err := m.Generate("alice")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_MissingUsernameClaim(t *testing.T) {
	// A token signed with the right secret but without a username claim is
	// still not an identity.
	m := NewManager("test-secret", time.Hour)

	token, err := m.Generate("")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
