package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the process environment at startup. The two signing
// secrets are required: refusing to start beats minting unverifiable tokens.
type Config struct {
	AuthSecret         string `env:"AUTH_SECRET,notEmpty"`          // Required: HS256 secret for access tokens
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET,notEmpty"` // Required: HS256 secret for refresh tokens

	Issuer          string        `env:"AUTH_ISSUER" envDefault:"landscapes-api"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`

	PixabayAPIKey    string `env:"API_KEY_PIXABAY"` // Optional: /landscapes fails upstream without it
	LandscapeBaseURL string `env:"LANDSCAPE_BASE_URL"`

	DatabaseFile string `env:"DATABASE_FILE" envDefault:"landscapes.db"`
	PepperFile   string `env:"PEPPER_FILE" envDefault:"pepper"`

	Env                 string        `env:"ENV" envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"3000"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig parses the environment. A missing or empty signing secret is a
// configuration fault and surfaces here, before anything listens.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
