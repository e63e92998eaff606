package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the client needs to reach a Zytra backend.
type Config struct {
	// APIURL is the backend origin, without a trailing slash.
	APIURL string
	// Timeout bounds every HTTP call issued by the API client.
	Timeout time.Duration
	// Debug enables verbose logging.
	Debug bool
	// LogFile receives structured logs; the terminal itself belongs to the UI.
	LogFile string
}

const defaultAPIURL = "http://localhost:7654"

// Load reads configuration from the environment, consulting a .env file if
// one is present. Missing values fall back to defaults that match a local
// backend.
func Load() Config {
	_ = godotenv.Load()

	apiURL := os.Getenv("ZYTRA_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	timeout := 15 * time.Second
	if v := os.Getenv("ZYTRA_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}

	logFile := os.Getenv("ZYTRA_LOG_FILE")
	if logFile == "" {
		logFile = "zytra.log"
	}

	return Config{
		APIURL:  strings.TrimRight(apiURL, "/"),
		Timeout: timeout,
		Debug:   os.Getenv("ZYTRA_DEBUG") == "1",
		LogFile: logFile,
	}
}
