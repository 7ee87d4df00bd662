package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The entity store itself takes no configuration:
// it lives in memory and resets on restart by design, so everything here
// concerns the surfaces around it.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	JWTSecret     string // secret used to sign admin access tokens
	AdminPassHash string // bcrypt hash of the single operator credential
	AccessTTLMin  int    // admin access token time-to-live in minutes
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),             // environment (dev/test/prod)
		Port:          must("APP_PORT"),            // port to bind the HTTP server
		JWTSecret:     must("JWT_SECRET"),          // secret for signing admin tokens
		AdminPassHash: must("ADMIN_PASSWORD_HASH"), // bcrypt hash the login handler verifies against
		AccessTTLMin:  mustInt("ACCESS_TOKEN_TTL_MIN"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
