package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Secrets (the Mongo URI, the session
// signing secret and the admin signup code) are supplied exclusively
// through the environment and never appear in source.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	MongoURI        string // MongoDB connection string
	MongoDB         string // MongoDB database name
	SessionSecret   string // secret used to sign session cookies
	SessionTTLHours int    // session time-to-live in hours
	BcryptCost      int    // bcrypt cost for password hashing
	AdminCode       string // shared code required to sign up as admin
	UploadDir       string // directory for uploaded images (optional)
}

// Load reads configuration values from environment variables and returns
// a Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	cfg := Config{
		Env:             must("APP_ENV"),
		Port:            must("APP_PORT"),
		MongoURI:        must("MONGO_URI"),
		MongoDB:         must("MONGO_DB"),
		SessionSecret:   must("SESSION_SECRET"),
		SessionTTLHours: mustInt("SESSION_TTL_HOURS"),
		BcryptCost:      mustInt("BCRYPT_COST"),
		AdminCode:       must("ADMIN_CODE"),
		UploadDir:       os.Getenv("UPLOAD_DIR"), // empty allowed, defaulted below
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "static/uploads"
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
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
