package catalog

import (
	"time"

	"github.com/dmitrymomot/catalog/integration/database/redis"
)

// State storage drivers.
const (
	DriverFile   = "file"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

type Config struct {
	Redis redis.Config

	APIBaseURL     string        `env:"CATALOG_API_BASE_URL" envDefault:"https://api.bitechx.com"`
	APITimeout     time.Duration `env:"CATALOG_API_TIMEOUT" envDefault:"15s"`
	PageSize       int           `env:"CATALOG_PAGE_SIZE" envDefault:"10"`
	SearchDebounce time.Duration `env:"CATALOG_SEARCH_DEBOUNCE" envDefault:"500ms"`
	StateDriver    string        `env:"CATALOG_STATE_DRIVER" envDefault:"file"`
	StateDir       string        `env:"CATALOG_STATE_DIR"`
	StateKey       string        `env:"CATALOG_STATE_KEY" envDefault:"catalog_state"`
	// StateSecret is a hex or base64 32-byte key. When set, the persisted session is encrypted.
	StateSecret string `env:"CATALOG_STATE_SECRET"`

	AppName   string `env:"APP_NAME" envDefault:"catalog"`
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`
}
