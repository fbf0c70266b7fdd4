// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (HTTP ports, TLS, logging level, CORS); AppConfig
// is everything specific to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: aivista-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Result window limits
	TrackingResultLimit int // Max tracking records returned per request
	RecentActivityLimit int // Recent tracking window used for dashboard metrics

	// Admin bootstrap
	AdminEmail string // Email of the admin user (promotes on startup if present)
}
