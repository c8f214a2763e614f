package api

import (
	"github.com/labstack/echo/v4"

	"github.com/astoulakis/onboard/internal/pkg/constants"
	"github.com/astoulakis/onboard/internal/pkg/utils"
)

// AuthMiddleware is the gate in front of every wizard step. Credential
// storage and the login flow live in the external auth service; the
// pipeline only verifies the cookie it issued.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)

		return next(ctx)
	}
}
