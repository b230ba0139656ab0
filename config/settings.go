package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rohanthewiz/logger"
)

// Settings are the process-level knobs, read from the environment
type Settings struct {
	Addr        string
	ConfigPath  string // empty selects the embedded site
	DBPath      string // empty disables the preference database
	LogLevel    string
	CheckMedia  bool
	CheckWait   time.Duration
	SessionIdle time.Duration
}

// LoadSettings reads settings from the environment after merging the given
// dotenv files (".env" when none are named). Missing files are not an error.
func LoadSettings(files ...string) Settings {
	if err := godotenv.Load(files...); err != nil {
		logger.Debug("No .env file found, using environment variables")
	}

	return Settings{
		Addr:        getEnv("DEVFORT_ADDR", ":8000"),
		ConfigPath:  getEnv("DEVFORT_CONFIG", ""),
		DBPath:      getEnv("DEVFORT_DB", ""),
		LogLevel:    getEnv("DEVFORT_LOG_LEVEL", "info"),
		CheckMedia:  getEnvAsBool("DEVFORT_CHECK_MEDIA", false),
		CheckWait:   getEnvAsDuration("DEVFORT_CHECK_WAIT", 2*time.Second),
		SessionIdle: getEnvAsDuration("DEVFORT_SESSION_IDLE", 30*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
