package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"farmmarket/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "authUserID"
	contextKeyRole   = "authRole"
)

var errInvalidToken = errors.New("invalid token")

// GenerateToken creates a signed JWT carrying the user's identity and role.
// Used by the test suite and by operators minting service tokens; user-facing
// token issuance belongs to the identity service.
func GenerateToken(secret []byte, userID kernel.UUID, role kernel.Role, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role.String(),
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// parseToken validates a JWT and extracts the caller's identity and role.
func parseToken(secret []byte, tokenString string) (kernel.UUID, kernel.Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return kernel.UUID{}, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return kernel.UUID{}, "", errInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return kernel.UUID{}, "", errInvalidToken
	}
	userID, err := kernel.UUIDFromString(sub)
	if err != nil {
		return kernel.UUID{}, "", errInvalidToken
	}

	roleClaim, ok := claims["role"].(string)
	if !ok {
		return kernel.UUID{}, "", errInvalidToken
	}
	role, err := kernel.RoleFromString(roleClaim)
	if err != nil {
		return kernel.UUID{}, "", errInvalidToken
	}

	return userID, role, nil
}

// AuthMiddleware authenticates requests with a Bearer JWT and stores the
// caller's identity and role on the echo context. Routes behind it can rely
// on callerIdentity never failing.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return c.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			userID, role, err := parseToken(secret, tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			c.Set(contextKeyUserID, userID)
			c.Set(contextKeyRole, role)
			return next(c)
		}
	}
}

// callerIdentity reads the authenticated identity stored by AuthMiddleware.
func callerIdentity(c echo.Context) (kernel.UUID, kernel.Role) {
	userID, _ := c.Get(contextKeyUserID).(kernel.UUID)
	role, _ := c.Get(contextKeyRole).(kernel.Role)
	return userID, role
}
