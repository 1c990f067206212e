package config // package config loads application configuration from environment variables

import (
	"log"  // log is used to report configuration errors and halt execution
	"os"   // os provides access to environment variables
	"time" // time types the random draw timeout
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. The types reflect how the values are used
// in the application: strings for identifiers, a duration for the
// random source timeout.
type Config struct {
	Env           string        // application environment (e.g. "dev", "prod")
	Port          string        // HTTP port to listen on
	DBUser        string        // database username
	DBPass        string        // database password (optional)
	DBHost        string        // database host address
	DBPort        string        // database port number
	DBName        string        // database name
	RandomURL     string        // random.org endpoint for battle draws
	RandomTimeout time.Duration // bounded wait for one random draw
}

// Load reads configuration values from environment variables and
// returns a Config. Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
// The random source settings are optional; zero values make the client
// fall back to its own defaults.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),             // environment (dev/test/prod)
		Port:          must("APP_PORT"),            // port to bind the HTTP server
		DBUser:        must("DB_USER"),             // database user
		DBPass:        os.Getenv("DB_PASS"),        // database password (empty allowed)
		DBHost:        must("DB_HOST"),             // database host
		DBPort:        must("DB_PORT"),             // database port
		DBName:        must("DB_NAME"),             // database name
		RandomURL:     os.Getenv("RANDOM_ORG_URL"), // battle draw endpoint (empty allowed)
		RandomTimeout: envDur("RANDOM_TIMEOUT", 0), // e.g. "5s"; zero means client default
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
