package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment keys. Every key is optional.
const (
	KeyHost            = "HOST"
	KeyPort            = "PORT"
	KeyFrontendOrigin  = "FRONTEND_ORIGIN"
	KeyLogLevel        = "LOG_LEVEL"
	KeyReadTimeout     = "READ_TIMEOUT_SECONDS"
	KeyWriteTimeout    = "WRITE_TIMEOUT_SECONDS"
	KeyIdleTimeout     = "IDLE_TIMEOUT_SECONDS"
	KeyShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
	KeyCORSMaxAge      = "CORS_MAX_AGE_SECONDS"
	KeyFixturesFile    = "FIXTURES_FILE"
)

const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = "8000"
	DefaultFrontendOrigin = "http://localhost:9002"
	DefaultCORSMaxAge     = 3600
)

// Settings is the resolved view of the environment used by the server.
type Settings struct {
	Host            string
	Port            string
	FrontendOrigin  string
	LogLevel        zerolog.Level
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	CORSMaxAge      int
	FixturesFile    string
}

// Address is the host:port the server binds to
func (s Settings) Address() string {
	return s.Host + ":" + s.Port
}

// LoadDotEnv reads .env style files into the process environment.
// A missing file is not an error; variables already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// Resolve builds Settings from a config map, falling back to the defaults
// for anything missing or unparsable.
func Resolve(config map[string]string) Settings {
	return Settings{
		Host:            GetString(config, KeyHost, DefaultHost),
		Port:            GetString(config, KeyPort, DefaultPort),
		FrontendOrigin:  GetString(config, KeyFrontendOrigin, DefaultFrontendOrigin),
		LogLevel:        GetLogLevel(config, KeyLogLevel, zerolog.InfoLevel),
		ReadTimeout:     GetSeconds(config, KeyReadTimeout, 180),
		WriteTimeout:    GetSeconds(config, KeyWriteTimeout, 180),
		IdleTimeout:     GetSeconds(config, KeyIdleTimeout, 180),
		ShutdownTimeout: GetSeconds(config, KeyShutdownTimeout, 30),
		CORSMaxAge:      GetInt(config, KeyCORSMaxAge, DefaultCORSMaxAge),
		FixturesFile:    GetString(config, KeyFixturesFile, ""),
	}
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}

	return asInt
}

// GetSeconds reads an integer number of seconds. Non-positive values fall back to the default.
func GetSeconds(config map[string]string, key string, defaultSeconds int) time.Duration {
	seconds := GetInt(config, key, defaultSeconds)
	if seconds <= 0 {
		seconds = defaultSeconds
	}
	return time.Duration(seconds) * time.Second
}

func GetLogLevel(config map[string]string, key string, defaultLevel zerolog.Level) zerolog.Level {
	s := GetString(config, key, "")
	if s == "" {
		return defaultLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return defaultLevel
	}
	return level
}
