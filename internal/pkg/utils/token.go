package utils

import (
	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"

	"github.com/astoulakis/onboard/internal/pkg/constants"
)

// AuthTokenWrapper is the payload the external auth flow signs into the
// session cookie. The onboarding service only ever verifies it.
type AuthTokenWrapper struct {
	UserID int64 `json:"user_id"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	return token.SignedString([]byte(viper.GetString(constants.ViperAuthSecret)))
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	wrapper := &AuthTokenWrapper{}
	token, err := jwt.ParseWithClaims(raw, wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.ErrUnauthorized
		}
		return []byte(viper.GetString(constants.ViperAuthSecret)), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
