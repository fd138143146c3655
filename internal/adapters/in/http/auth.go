package http

import (
	"net/http"
	"strings"

	"fooddonation/internal/core/domain/model/account"
	"fooddonation/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Claims carries the authenticated user's identity and workflow role.
// The subject is the user's account ID.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth returns middleware that authenticates requests with a Bearer JWT.
// On success the actor is stored in the request context for handlers to use.
// Token issuance belongs to the identity service; this side only verifies.
func Auth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			actor, err := actorFromClaims(claims)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid token claims",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFromClaims(claims *Claims) (account.Actor, error) {
	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return account.Actor{}, err
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return account.Actor{}, err
	}

	return account.NewActor(userID, role)
}

func actorFromContext(ctx echo.Context) (account.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(account.Actor)
	return actor, ok
}
