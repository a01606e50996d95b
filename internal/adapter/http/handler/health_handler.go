package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"tx-composer/internal/core/ports"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const healthTimeout = 3 * time.Second

type depStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency"`
	Error   string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Every dependency is pinged concurrently;
// any failure degrades the service to 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		var (
			mu   sync.Mutex
			deps = make(map[string]depStatus, len(checkers))
			g    errgroup.Group
		)
		for _, checker := range checkers {
			g.Go(func() error {
				start := time.Now()
				err := checker.Ping(ctx)
				st := depStatus{Status: "healthy", Latency: time.Since(start).String()}
				if err != nil {
					st.Status, st.Error = "unhealthy", err.Error()
				}
				mu.Lock()
				deps[checker.Name()] = st
				mu.Unlock()
				return err
			})
		}

		status, code := "healthy", http.StatusOK
		if err := g.Wait(); err != nil {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
