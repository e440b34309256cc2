package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Account is a login accepted by the stub server. Passwords are stored as bcrypt hashes.
type Account struct {
	Login        string `yaml:"login" validate:"required"`
	PasswordHash string `yaml:"password_hash" validate:"required"`
}

type Config struct {
	Client struct {
		Login    string        `yaml:"login"`
		Password string        `yaml:"password"`
		BaseURI  string        `yaml:"base_uri" validate:"required,url"`
		Version  string        `yaml:"version" validate:"required"`
		Timeout  time.Duration `yaml:"timeout" validate:"gte=0"`
	} `yaml:"client"`
	Stub struct {
		Port      int           `yaml:"port" validate:"required,gt=0,lte=65535"`
		JWTSecret string        `yaml:"jwt_secret"`
		TokenTTL  time.Duration `yaml:"token_ttl" validate:"gte=0"`
		RateLimit float64       `yaml:"rate_limit" validate:"gte=0"`
		Burst     int           `yaml:"burst" validate:"gte=0"`
		Accounts  []Account     `yaml:"accounts" validate:"dive"`
	} `yaml:"stub"`
	Log struct {
		Level string `yaml:"level" validate:"omitempty,oneof=debug info error DEBUG INFO ERROR"`
	} `yaml:"log"`
}

const (
	DefaultBaseURI = "https://api-call2fa.rikkicom.io"
	DefaultVersion = "v1"
	DefaultTimeout = 30 * time.Second
)

var validate = validator.New()

// LoadConfig reads the YAML file at path, applies environment overrides and
// defaults, and validates the result. A missing file is not an error; the
// configuration then comes from the environment and defaults alone.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// applyEnv overrides file values with environment variables when set.
func applyEnv(cfg *Config) error {
	if login := os.Getenv("CALL2FA_LOGIN"); login != "" {
		cfg.Client.Login = login
	}
	if password := os.Getenv("CALL2FA_PASSWORD"); password != "" {
		cfg.Client.Password = password
	}
	if uri := os.Getenv("CALL2FA_BASE_URI"); uri != "" {
		cfg.Client.BaseURI = uri
	}
	if version := os.Getenv("CALL2FA_VERSION"); version != "" {
		cfg.Client.Version = version
	}
	if timeout := os.Getenv("CALL2FA_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid CALL2FA_TIMEOUT value: %w", err)
		}
		cfg.Client.Timeout = d
	}
	if port := os.Getenv("STUB_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid STUB_PORT value: %w", err)
		}
		cfg.Stub.Port = portNum
	}
	if secret := os.Getenv("STUB_JWT_SECRET"); secret != "" {
		cfg.Stub.JWTSecret = secret
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Client.BaseURI == "" {
		cfg.Client.BaseURI = DefaultBaseURI
	}
	if cfg.Client.Version == "" {
		cfg.Client.Version = DefaultVersion
	}
	if cfg.Client.Timeout == 0 {
		cfg.Client.Timeout = DefaultTimeout
	}
	if cfg.Stub.Port == 0 {
		cfg.Stub.Port = 8080
	}
	if cfg.Stub.TokenTTL == 0 {
		cfg.Stub.TokenTTL = 24 * time.Hour
	}
	if cfg.Stub.RateLimit == 0 {
		cfg.Stub.RateLimit = 100 / 60.0
	}
	if cfg.Stub.Burst == 0 {
		cfg.Stub.Burst = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
