package config // package config loads application configuration from environment variables

import (
    "log"   // log is used to report configuration errors and halt execution
    "os"    // os provides access to environment variables
    "time"  // time expresses the UI delay durations
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The gateway owns no database of its own: the
// only remote dependencies are the EventZone backend API and an optional
// Redis instance used for caching, rate limiting and draft storage.
type Config struct {
    Env            string        // application environment (e.g. "dev", "prod")
    Port           string        // HTTP port to listen on
    BackendBaseURL string        // base URL of the EventZone backend API
    JWTSecret      string        // secret shared with the backend to verify session tokens
    BackendTimeout time.Duration // per-request timeout for backend calls
    MessageTTL     time.Duration // how long transient UI messages stay visible
    RedirectDelay  time.Duration // delay before post-login/registration redirects
    DraftTTL       time.Duration // lifetime of saved event-form drafts
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  The delay values are
// optional and default to the timings of the original screens: messages
// dismiss after four seconds, redirects fire after a second and a half.
func Load() Config {
    return Config{
        Env:            must("APP_ENV"),          // environment (dev/test/prod)
        Port:           must("APP_PORT"),         // port to bind the HTTP server
        BackendBaseURL: must("BACKEND_BASE_URL"), // where the EventZone API lives
        JWTSecret:      must("JWT_SECRET"),       // secret used to verify session JWTs
        BackendTimeout: durDefault("BACKEND_TIMEOUT", 5*time.Second),
        MessageTTL:     durDefault("MESSAGE_TTL", 4*time.Second),
        RedirectDelay:  durDefault("REDIRECT_DELAY", 1500*time.Millisecond),
        DraftTTL:       durDefault("DRAFT_TTL", 7*24*time.Hour),
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

// durDefault parses an optional duration variable, falling back to def when
// the variable is unset.  A malformed value is treated as a configuration
// error and stops the program, matching the strictness of must().
func durDefault(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    d, err := time.ParseDuration(v)
    if err != nil {
        log.Fatalf("invalid duration for %s: %q", key, v)
    }
    return d
}
