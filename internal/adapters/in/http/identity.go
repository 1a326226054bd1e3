package http

import (
	"log/slog"
	"net/http"
	"strings"

	"parcel/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// Identity carries the authenticated caller extracted from the bearer token.
// Role is advisory only: authorization decisions are made by the domain from
// the user record, not from the token.
type Identity struct {
	UserID kernel.UUID
	Role   string
}

type accessClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// NewAuthMiddleware validates the Authorization bearer token and stores the
// caller's identity on the request context. Requests without a valid token
// are rejected with 401.
func NewAuthMiddleware(secret string, logger *slog.Logger) echo.MiddlewareFunc {
	log := logger.With("component", "auth")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims := &accessClaims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				log.WarnContext(ctx.Request().Context(),
					"rejected request with invalid token", "error", err)
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			userID, err := kernel.UUIDFromString(claims.UserID)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Token does not identify a user",
				})
			}

			ctx.Set(identityContextKey, Identity{UserID: userID, Role: claims.Role})
			return next(ctx)
		}
	}
}

func identityFromContext(ctx echo.Context) (Identity, bool) {
	identity, ok := ctx.Get(identityContextKey).(Identity)
	return identity, ok
}
