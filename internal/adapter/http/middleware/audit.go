package middleware

import (
	"net/http"

	"tx-composer/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// auditActions maps mutating routes to audit actions.
var auditActions = map[string]string{
	http.MethodPost + " /api/v1/auth/login":            "operator.login",
	http.MethodPost + " /api/v1/sessions":              "session.open",
	http.MethodDelete + " /api/v1/sessions/:id":        "session.close",
	http.MethodPut + " /api/v1/sessions/:id/calls":     "session.calls",
	http.MethodPut + " /api/v1/sessions/:id/signatory": "session.select_signatory",
	http.MethodPut + " /api/v1/sessions/:id/shard":     "session.select_shard",
	http.MethodPost + " /api/v1/sessions/:id/unsigned": "session.assemble",
}

// AuditLog writes one audit line for every successful mutating request.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		action, ok := auditActions[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		log.Info().
			Str("action", action).
			Str("subject", Subject(c)).
			Str("session_id", c.Param("id")).
			Str("request_id", c.GetString(response.RequestIDKey)).
			Str("client_ip", c.ClientIP()).
			Int("status", status).
			Msg("audit")
	}
}
