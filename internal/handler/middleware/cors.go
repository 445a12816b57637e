package middleware

import (
	"log/slog"
	"strings"

	"lane-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// booking pages read these to show throttling state and quote the request id on failures
var bookingExposeHeaders = []string{
	requestIDHeader,
	"X-RateLimit-Limit",
	"X-RateLimit-Remaining",
	"Retry-After",
}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeaders(cfg.AllowHeaders, requestIDHeader),
		ExposeHeaders:    withHeaders(cfg.ExposeHeaders, bookingExposeHeaders...),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "ExposeHeaders", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

// withHeaders appends extra to configured, skipping names already present in any case.
func withHeaders(configured []string, extra ...string) []string {
	out := make([]string, 0, len(configured)+len(extra))
	seen := make(map[string]struct{}, cap(out))
	for _, h := range append(append([]string{}, configured...), extra...) {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(h))
	}
	return out
}
