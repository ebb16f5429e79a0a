// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig already
// covers ports, TLS, logging, CORS and request body limits; AppConfig only
// carries what the course service itself needs.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI            string        // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase       string        // Database name within MongoDB
	MongoMaxPoolSize    uint64        // Upper bound on pooled connections
	MongoMinPoolSize    uint64        // Connections kept warm
	MongoConnectTimeout time.Duration // Dial + initial ping budget at startup

	// Body of GET /, polled by uptime monitors.
	LivenessMessage string

	// Write requests (POST/PUT/DELETE) allowed per client IP per minute.
	// 0 disables the limit.
	WriteRateLimit int
	// Key the write limit by proxy headers instead of the peer address.
	TrustProxyHeaders bool
}
