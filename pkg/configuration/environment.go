package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/swrzee/console/pkg/logging"
)

const Production = "production"

// Storage backends for sessions and rate limit counters.
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

type APIOptions struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

type SessionOptions struct {
	Storage  string        `env:"SESSION_STORAGE" envDefault:"memory"` // memory or redis
	RedisURL string        `env:"SESSION_REDIS_URL"`
	Duration time.Duration `env:"SESSION_DURATION" envDefault:"168h"`
}

// Validate checks the session configuration for errors
func (s *SessionOptions) Validate() error {
	if s.Storage != StorageMemory && s.Storage != StorageRedis {
		return fmt.Errorf("session Storage must be 'memory' or 'redis', got '%s'", s.Storage)
	}
	if s.Storage == StorageRedis && s.RedisURL == "" {
		return fmt.Errorf("session RedisURL is required when Storage is 'redis'")
	}
	if s.Duration <= 0 {
		return fmt.Errorf("session Duration must be positive, got %s", s.Duration)
	}
	return nil
}

type RateLimitOptions struct {
	Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	LoginPerMin int    `env:"RATE_LIMIT_LOGIN_PER_MIN" envDefault:"10"`
	Storage     string `env:"RATE_LIMIT_STORAGE" envDefault:"memory"` // memory or redis
	RedisURL    string `env:"RATE_LIMIT_REDIS_URL"`
}

// Validate checks the rate limit configuration for errors
func (r *RateLimitOptions) Validate() error {
	if r.LoginPerMin < 0 {
		return fmt.Errorf("rate limit LoginPerMin must be non-negative, got %d", r.LoginPerMin)
	}
	if r.Storage != StorageMemory && r.Storage != StorageRedis {
		return fmt.Errorf("rate limit Storage must be 'memory' or 'redis', got '%s'", r.Storage)
	}
	if r.Storage == StorageRedis && r.RedisURL == "" {
		return fmt.Errorf("rate limit RedisURL is required when Storage is 'redis'")
	}
	return nil
}

type Configuration struct {
	API       APIOptions
	Session   SessionOptions
	RateLimit RateLimitOptions

	ServerPort       int    `env:"PORT" envDefault:"3000"`
	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress    string `env:"-"`
	Domain           string `env:"DOMAIN" envDefault:"localhost"`
	Origin           string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	PageSize         int    `env:"PAGE_SIZE" envDefault:"5"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"error"`
	LogPath          string `env:"LOG_PATH" envDefault:"./logs/app.log"`
	// Console will look for this header in the request, if it's not present, it will generate a random uuidv4
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	// Console will look for this header in the request, if it's not present, it will use request.RemoteAddr
	RealIPHeader string `env:"REAL_IP_HEADER" envDefault:"X-Real-IP"`
	// Session ID cookie key
	SidCookieKey string `env:"SID_COOKIE_KEY" envDefault:"sid"`
	// Access token mirror cookie key, read by the navigation gate
	AccessTokenCookieKey string `env:"ACCESS_TOKEN_COOKIE_KEY" envDefault:"accessToken"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func (c *Configuration) Scheme() string {
	if c.GoAppEnvironment == Production { // assume 'https' on production mode
		return "https"
	}
	return "http"
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}

	if err := c.Session.Validate(); err != nil {
		return fmt.Errorf("session configuration error: %w", err)
	}
	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("rate limit configuration error: %w", err)
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger

	if c.GoAppEnvironment == Production {
		c.SocketAddress = fmt.Sprintf(":%d", c.ServerPort)
	} else {
		c.SocketAddress = fmt.Sprintf("localhost:%d", c.ServerPort)
	}

	// Update Origin dynamically if it wasn't explicitly set via environment variables
	// so logs show the correct port when PORT is set via environment
	if os.Getenv("ORIGIN") == "" {
		if c.GoAppEnvironment == "development" {
			c.Origin = fmt.Sprintf("%s://%s:%d", c.Scheme(), c.Domain, c.ServerPort)
		} else {
			c.Origin = fmt.Sprintf("%s://%s", c.Scheme(), c.Domain)
		}
	}

	return nil
}

// Unload handles a graceful shutdown.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}
