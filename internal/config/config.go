package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the server.
type Config struct {
	// Server
	AppEnv         string        `mapstructure:"APP_ENV"`
	Port           string        `mapstructure:"PORT"`
	RequestTimeout time.Duration `mapstructure:"-"`

	// MongoDB
	MongoURI  string `mapstructure:"MONGO_URI"`
	DBUser    string `mapstructure:"DB_USER"`
	DBPass    string `mapstructure:"DB_PASS"`
	DBCluster string `mapstructure:"DB_CLUSTER"`
	DBName    string `mapstructure:"DB_NAME"`

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Payments
	PaymentSecretKey string `mapstructure:"PAYMENT_SECRET_KEY"`

	// Access tokens
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	AccessTokenTTL time.Duration `mapstructure:"-"`
	AuthEnforce    bool          `mapstructure:"AUTH_ENFORCE"`

	// Sign-in provider ID tokens
	IdentityTokenSecret string `mapstructure:"IDENTITY_TOKEN_SECRET"`
	IdentityTokenIssuer string `mapstructure:"IDENTITY_TOKEN_ISSUER"`
	IdentityAudience    string `mapstructure:"IDENTITY_TOKEN_AUDIENCE"`
	IdentityJWKSURL     string `mapstructure:"IDENTITY_JWKS_URL"`

	// Class images
	MinioEndpoint  string `mapstructure:"MINIO_ENDPOINT"`
	MinioAccessKey string `mapstructure:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `mapstructure:"MINIO_SECRET_KEY"`
	MinioUseSSL    bool   `mapstructure:"MINIO_USE_SSL"`
	MinioBucket    string `mapstructure:"MINIO_BUCKET"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "5000")
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", 10)

	v.SetDefault("MONGO_URI", "")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_CLUSTER", "cluster0.lb3rxqj.mongodb.net")
	v.SetDefault("DB_NAME", "musicLand")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("PAYMENT_SECRET_KEY", "")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ACCESS_TOKEN_TTL_HOURS", 4)
	v.SetDefault("AUTH_ENFORCE", false)
	v.SetDefault("IDENTITY_TOKEN_SECRET", "")
	v.SetDefault("IDENTITY_TOKEN_ISSUER", "")
	v.SetDefault("IDENTITY_TOKEN_AUDIENCE", "")
	v.SetDefault("IDENTITY_JWKS_URL", "")

	v.SetDefault("MINIO_ENDPOINT", "")
	v.SetDefault("MINIO_ACCESS_KEY", "minioadmin")
	v.SetDefault("MINIO_SECRET_KEY", "minioadmin")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("MINIO_BUCKET", "class-images")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	cfg.RequestTimeout = time.Duration(v.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second
	cfg.AccessTokenTTL = time.Duration(v.GetInt("ACCESS_TOKEN_TTL_HOURS")) * time.Hour
	cfg.MongoURI = cfg.ResolveMongoURI()

	if cfg.AuthEnforce && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("AUTH_ENFORCE is set but JWT_SECRET is empty")
	}

	return &cfg, nil
}

// ResolveMongoURI returns MONGO_URI when set, otherwise an Atlas SRV URI
// built from the DB_* credentials, otherwise a local default.
func (c *Config) ResolveMongoURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	if c.DBUser == "" {
		return "mongodb://localhost:27017"
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUser, c.DBPass),
		Host:     c.DBCluster,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

// IsRelease reports whether the server runs with production settings.
func (c *Config) IsRelease() bool {
	return c.AppEnv == "production" || c.AppEnv == "release"
}
