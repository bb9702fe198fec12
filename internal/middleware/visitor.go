package middleware

import (
	"log/slog"

	"github.com/alexschwind/ratemycourses/internal/models"
	"github.com/alexschwind/ratemycourses/internal/repository"

	"github.com/gin-gonic/gin"
)

// paths that would flood the log without telling us anything
var untrackedPaths = map[string]bool{
	"/healthz":     true,
	"/favicon.ico": true,
	"/robots.txt":  true,
}

// TrackVisitors logs every completed request to the visitors table. Rows are
// written after the response, only for non-error statuses, and a failed
// insert never fails the request it belongs to.
func TrackVisitors(visitorRepo repository.VisitorRepository, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 400 {
			return
		}

		visitor := &models.Visitor{
			IPAddress: c.ClientIP(),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Query:     c.Request.URL.RawQuery,
			Referer:   c.Request.Referer(),
			UserAgent: c.Request.UserAgent(),
			Status:    status,
		}
		// set by AuthMiddleware further down the chain, if the request carried a token
		if userID, exists := c.Get("userID"); exists {
			if id, ok := userID.(string); ok {
				visitor.UserID = &id
			}
		}

		if err := visitorRepo.Create(visitor); err != nil {
			logger.Warn("visitor_log_failed",
				"path", visitor.Path,
				"error", err,
			)
		}
	}
}
