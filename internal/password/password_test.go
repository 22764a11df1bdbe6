package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/francoms3/user-management-service/internal/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("Abcd1234")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := password.Verify("Abcd1234", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = password.Verify("Wrong1234", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("Abcd1234")
	require.NoError(t, err)
	second, err := password.Hash("Abcd1234")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestVerifyMalformedHash(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=2,p=1$!!!$aGFzaA",
	} {
		_, err := password.Verify("Abcd1234", encoded)
		require.ErrorIs(t, err, password.ErrMalformedHash, "hash %q", encoded)
	}
}
