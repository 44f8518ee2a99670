package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenValidatorAcceptsExactMatch(t *testing.T) {
	v := NewStaticTokenValidator("abc123")
	p, err := v.ValidateToken(context.Background(), "abc123")
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestStaticTokenValidatorRejectsMismatch(t *testing.T) {
	v := NewStaticTokenValidator("abc123")
	_, err := v.ValidateToken(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLoadOrCreateTokenGeneratesAndPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "agent-token")

	token, err := LoadOrCreateToken(path)
	require.NoError(t, err)
	_, err = uuid.Parse(token)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, token, string(data))
}

func TestLoadOrCreateTokenReusesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agent-token")
	require.NoError(t, os.WriteFile(path, []byte("  existing-token  \n"), 0o600))

	token, err := LoadOrCreateToken(path)
	require.NoError(t, err)
	assert.Equal(t, "existing-token", token)
}

func TestPrincipalContextRoundTrip(t *testing.T) {
	ctx := ContextWithPrincipal(context.Background(), staticPrincipal{})
	p, ok := PrincipalFromContext(ctx)
	require.True(t, ok)
	assert.NotNil(t, p)
}
