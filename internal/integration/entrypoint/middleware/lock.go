// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/security"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// LockMiddleware keeps data endpoints unreachable while the security gate
// is locked. The gate's state is the sole reachability authority: an
// unlocked gate means the request goes through, whether or not app lock is
// enabled.
type LockMiddleware struct {
	gate *security.Gate
}

// NewLockMiddleware creates a new lock middleware instance.
func NewLockMiddleware(gate *security.Gate) *LockMiddleware {
	return &LockMiddleware{
		gate: gate,
	}
}

// Guard returns a Gin middleware handler that enforces the gate.
func (m *LockMiddleware) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.gate.Status() == entity.LockStateLocked {
			c.JSON(http.StatusLocked, dto.ErrorResponse{
				Error: "Application is locked",
				Code:  string(domainerror.ErrCodeAppLocked),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
