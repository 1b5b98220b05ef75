package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/SscSPs/adminpro/pkg/response"
	"github.com/gin-gonic/gin"
)

// RequirePermissions guards a route with gate. It expects LoadCurrentUser to
// have run earlier in the chain.
func RequirePermissions(gate domain.Gate, mode domain.MatchMode, perms ...string) gin.HandlerFunc {
	required := domain.NewPermissionSet(perms...)
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		decision := gate.Authorize(user, required, mode)
		if decision.Allowed {
			c.Next()
			return
		}

		env := response.NewError(decision.Reason)
		env.RedirectTo = decision.RedirectTo
		if user == nil {
			response.Abort(c, http.StatusUnauthorized, env)
			return
		}

		GetLoggerFromCtx(c.Request.Context()).Warn("Permission denied",
			slog.Any("required", required.Sorted()),
			slog.String("mode", string(mode)),
		)
		response.Abort(c, http.StatusForbidden, env)
	}
}

// RequireAny allows users holding at least one of perms.
func RequireAny(gate domain.Gate, perms ...string) gin.HandlerFunc {
	return RequirePermissions(gate, domain.MatchAny, perms...)
}

// RequireAll allows users holding every one of perms.
func RequireAll(gate domain.Gate, perms ...string) gin.HandlerFunc {
	return RequirePermissions(gate, domain.MatchAll, perms...)
}
