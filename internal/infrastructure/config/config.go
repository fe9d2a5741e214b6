package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// devJWTSecret is the development-only fallback signing key. Production
// deployments must set JWT_SECRET.
const devJWTSecret = "your-secret-key"

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL,    default=168h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	// Admin seed credentials. There is no public route that creates admin
	// accounts; when both are set, an admin is created at startup if missing.
	// Whether a self-service admin path should exist is pending a product
	// decision.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminUsername string `env:"ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Mongo MongoConfig
	Redis RedisConfig
	Minio MinioConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MinioConfig struct {
	Endpoint      string `env:"MINIO_ENDPOINT,   default=localhost:9000"`
	AccessKey     string `env:"MINIO_ACCESS_KEY, default=minioadmin"`
	SecretKey     string `env:"MINIO_SECRET_KEY, default=minioadmin"`
	Bucket        string `env:"MINIO_BUCKET,     default=storefront-images"`
	UseSSL        bool   `env:"MINIO_USE_SSL,    default=false"`
	PublicBaseURL string `env:"MINIO_PUBLIC_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = devJWTSecret
	}
	return &cfg
}
