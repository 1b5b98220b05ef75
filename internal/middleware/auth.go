package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/adminpro/internal/apperrors"
	"github.com/SscSPs/adminpro/internal/core/domain"
	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/utils"
	"github.com/SscSPs/adminpro/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func abortUnauthenticated(c *gin.Context, gate domain.Gate, msg string) {
	env := response.NewError(msg)
	env.RedirectTo = gate.LoginPath
	response.Abort(c, http.StatusUnauthorized, env)
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
// Rejected requests get a 401 pointing at the gate's login path.
func AuthMiddleware(jwtSecret string, gate domain.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortUnauthenticated(c, gate, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			abortUnauthenticated(c, gate, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			abortUnauthenticated(c, gate, msg)
			return
		}
		userID := claims.Subject

		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(userIDKey), userID)

		c.Next()
	}
}

// LoadCurrentUser resolves the authenticated user ID to a user with its role.
// Unknown or inactive users are treated as unauthenticated.
func LoadCurrentUser(userSvc portssvc.UserReaderSvc, gate domain.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			abortUnauthenticated(c, gate, "Authentication required")
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token subject does not match a user")
				abortUnauthenticated(c, gate, "User no longer exists")
				return
			}
			logger.Error("Failed to load current user", slog.String("error", err.Error()))
			response.Abort(c, http.StatusInternalServerError, response.NewError(err.Error()))
			return
		}
		if !user.IsActive {
			logger.Warn("Inactive user rejected")
			abortUnauthenticated(c, gate, "User is inactive")
			return
		}

		c.Set(string(currentUserKey), user)
		c.Next()
	}
}
