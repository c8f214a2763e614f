package utils

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astoulakis/onboard/internal/pkg/constants"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperAuthSecret, "test-secret")

	raw, err := GenerateAuthToken(&AuthTokenWrapper{UserID: 17})
	require.NoError(t, err)

	parsed, err := ParseAuthToken(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(17), parsed.UserID)
}

func TestParseAuthTokenWrongSecret(t *testing.T) {
	viper.Set(constants.ViperAuthSecret, "test-secret")
	raw, err := GenerateAuthToken(&AuthTokenWrapper{UserID: 17})
	require.NoError(t, err)

	viper.Set(constants.ViperAuthSecret, "rotated")
	_, err = ParseAuthToken(raw)
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestParseAuthTokenGarbage(t *testing.T) {
	viper.Set(constants.ViperAuthSecret, "test-secret")

	_, err := ParseAuthToken("not-a-token")
	require.ErrorIs(t, err, constants.ErrUnauthorized)
}
