package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	deliverycontext "recipebook/internal/delivery/context"
	"recipebook/internal/domain/constants"
	domainerrors "recipebook/internal/domain/errors"
	"recipebook/internal/domain/service"
	"recipebook/internal/errors"
)

// AuthMiddleware guards routes that need a signed-in user.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the token and stores the caller's id on the context.
// The token is read from x-auth-token, or from a Bearer Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c.Request().Header.Get(constants.HeaderAuthToken), c.Request().Header.Get(constants.HeaderAuthorization))
		if tokenString == "" {
			return domainerrors.ErrUnauthorized
		}

		userID, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return errors.Wrap(err, "authenticate")
		}

		deliverycontext.SetUserID(c, userID)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", userID.Hex())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

func extractToken(authToken, authorization string) string {
	if token := strings.TrimSpace(authToken); token != "" {
		return token
	}

	if strings.HasPrefix(authorization, constants.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authorization, constants.BearerPrefix))
	}

	return ""
}

// GetUserID returns the caller authenticated by Authenticate.
func GetUserID(c echo.Context) (primitive.ObjectID, bool) {
	return deliverycontext.GetUserID(c)
}
