package middleware

import (
	"net/http"
	"strings"

	"razorpay-checkout/internal/dto"
	"razorpay-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	userIDKey    = "user_id"
	principalKey = "principal"
)

// TokenParser turns a bearer token into the caller identity.
type TokenParser interface {
	ParseToken(token string) (*service.Principal, error)
}

// AuthMiddleware requires "Authorization: Bearer <jwt>" and stores the caller in the echo context.
func AuthMiddleware(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return c.JSON(http.StatusUnauthorized, dto.Message{Message: "Unauthorized"})
			}

			principal, err := parser.ParseToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, dto.Message{Message: "Unauthorized"})
			}

			c.Set(userIDKey, principal.UserID)
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id, or "" outside AuthMiddleware.
func UserID(c echo.Context) string {
	userID, _ := c.Get(userIDKey).(string)
	return userID
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
