package cldurl

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultHost is the delivery host used when Config.Host is empty.
const DefaultHost = "res.cloudinary.com"

// Config holds delivery settings. Field tags name the environment variables
// read by LoadConfig.
type Config struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME,required,notEmpty"`
	Secure    bool   `env:"CLOUDINARY_SECURE" envDefault:"false"`
	Host      string `env:"CLOUDINARY_DELIVERY_HOST"` // DefaultHost when empty

	// URLAnalytics switches the _a signature on.
	URLAnalytics bool `env:"CLOUDINARY_URL_ANALYTICS" envDefault:"false"`

	// Product is the SDK family name reported in signatures.
	Product string `env:"CLOUDINARY_PRODUCT" envDefault:"angular"`

	// SDKVersion overrides Version when set.
	SDKVersion string `env:"CLOUDINARY_SDK_VERSION"`

	// TechVersion overrides the product's default host framework version.
	TechVersion string `env:"CLOUDINARY_TECH_VERSION"`
}

var dotenvLoaded sync.Once

// LoadConfig reads Config from the environment. A .env file in the working
// directory is loaded first if present; existing variables win.
func LoadConfig() (Config, error) {
	dotenvLoaded.Do(func() {
		// The file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// MustLoadConfig is like LoadConfig but panics on error.
func MustLoadConfig() Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}
