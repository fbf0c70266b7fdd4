// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	entitiesfeature "github.com/aivista/aivista/internal/app/features/entities"
	healthfeature "github.com/aivista/aivista/internal/app/features/health"
	keywordsfeature "github.com/aivista/aivista/internal/app/features/keywords"
	loginfeature "github.com/aivista/aivista/internal/app/features/login"
	mentionsfeature "github.com/aivista/aivista/internal/app/features/mentions"
	overviewfeature "github.com/aivista/aivista/internal/app/features/overview"
	queriesfeature "github.com/aivista/aivista/internal/app/features/queries"
	quickwinsfeature "github.com/aivista/aivista/internal/app/features/quickwins"
	trackingfeature "github.com/aivista/aivista/internal/app/features/tracking"
	usersfeature "github.com/aivista/aivista/internal/app/features/users"
	"github.com/aivista/aivista/internal/app/system/auth"
	"github.com/aivista/aivista/internal/app/system/metrics"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. The router mounts the JSON API under
// /api, plus the health and metrics endpoints for operators.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase
	trackingLimit := int64(appCfg.TrackingResultLimit)
	recentLimit := int64(appCfg.RecentActivityLimit)

	r := chi.NewRouter()

	// Global middleware: session user into context, then request metrics.
	r.Use(auth.LoadSessionUser)
	r.Use(metrics.Middleware)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Mount("/", loginfeature.Routes(loginfeature.NewHandler(db, logger)))
		api.Mount("/users", usersfeature.Routes(usersfeature.NewHandler(db, logger)))
		api.Mount("/queries", queriesfeature.Routes(queriesfeature.NewHandler(db, logger)))
		api.Mount("/keywords", keywordsfeature.Routes(keywordsfeature.NewHandler(db, logger)))
		api.Mount("/tracking", trackingfeature.Routes(trackingfeature.NewHandler(db, trackingLimit, logger)))
		api.Mount("/mentions", mentionsfeature.Routes(mentionsfeature.NewHandler(db, trackingLimit, logger)))
		api.Mount("/entities", entitiesfeature.Routes(entitiesfeature.NewHandler(db, logger)))
		api.Mount("/quickwins", quickwinsfeature.Routes(quickwinsfeature.NewHandler(db, logger)))
		api.Mount("/stats", overviewfeature.Routes(overviewfeature.NewHandler(db, recentLimit, logger)))
	})

	return r, nil
}
