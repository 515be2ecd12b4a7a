package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mapGetter map[string]string

func (m mapGetter) GetSecret(_ context.Context, name string) (string, error) {
	if v, ok := m[name]; ok {
		return v, nil
	}
	return "", errors.New("not found")
}

func TestResolveSource(t *testing.T) {
	assert.Equal(t, SourceEnvironment, ResolveSource(SourceAuto, "development"))
	assert.Equal(t, SourceEnvironment, ResolveSource("", ""))
	assert.Equal(t, SourceVault, ResolveSource(SourceAuto, "production"))
	assert.Equal(t, SourceVault, ResolveSource(SourceAuto, "staging"))
	assert.Equal(t, SourceEnvironment, ResolveSource(SourceEnvironment, "production"))
}

func TestProvider_Environment(t *testing.T) {
	p, err := NewProvider(&ProviderConfig{Source: SourceAuto, Environment: "development"}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, p.IsVaultEnabled())

	t.Setenv("SOME_SECRET", "s3cret")
	v, err := p.GetSecret(context.Background(), "SOME_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", v)

	_, err = p.GetSecret(context.Background(), "MISSING_SECRET")
	assert.Error(t, err)
}

func TestProvider_VaultRequiresName(t *testing.T) {
	_, err := NewProvider(&ProviderConfig{Source: SourceVault}, zap.NewNop())
	assert.Error(t, err)
}

func TestProvider_GetSecretOrEnv(t *testing.T) {
	p := NewProviderWithGetter(mapGetter{"jwt-secret": "from-vault"}, zap.NewNop())

	v, err := p.GetSecretOrEnv(context.Background(), "jwt-secret", "JWT_SECRET_TEST")
	require.NoError(t, err)
	assert.Equal(t, "from-vault", v)

	t.Setenv("JWT_SECRET_TEST", "from-env")
	v, err = p.GetSecretOrEnv(context.Background(), "jwt-secret", "JWT_SECRET_TEST")
	require.NoError(t, err)
	assert.Equal(t, "from-env", v)
}
