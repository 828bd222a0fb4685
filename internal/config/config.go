package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Database   Database
	Limiter    Limiter
	Auth       AuthConfig
	SMTP       SMTPConfig
	Email      EmailConfig
	Cache      Cache
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	AllowedOrigins []string      `env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:3000" env-separator:","`
	TrustedProxies []string      `env:"HTTP_TRUSTED_PROXIES" env-separator:"," env-description:"proxy ips or cidrs allowed to set X-Forwarded-For; empty trusts none"`
}

type Database struct {
	Driver             string        `env:"DB_DRIVER" env-default:"mysql" env-description:"one of mysql/sqlite"`
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Host               string        `env:"DB_HOST" env-default:"localhost"`
	Port               int           `env:"DB_PORT" env-default:"3306"`
	DBName             string        `env:"DB_NAME"`
	User               string        `env:"DB_USER"`
	Password           string        `env:"DB_PASSWORD"`
	Path               string        `env:"DB_PATH" env-description:"sqlite database file"`
	TimeZone           string        `env:"DB_TIMEZONE" env-default:"UTC"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"20"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"70"`
	ConnMaxLifetime    time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"1h"`
	AutoMigrate        bool          `env:"DB_AUTO_MIGRATE" env-default:"false"`
}

// Addr returns host:port for network drivers.
func (d Database) Addr() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	JWT        JWTConfig
	BcryptCost int `env:"AUTH_BCRYPT_COST" env-default:"12"`
}

type JWTConfig struct {
	SigningKey               string `env:"JWT_SIGNING_KEY" env-required:"true"`
	Algorithm                string `env:"JWT_ALGORITHM" env-default:"HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" env-default:"30"`
}

func (c JWTConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST"`
	Port int    `env:"SMTP_PORT" env-default:"587"`
	From string `env:"SMTP_FROM"`
	Pass string `env:"SMTP_PASS"`
}

type EmailConfig struct {
	Enabled   bool `env:"EMAIL_ENABLED" env-default:"false"`
	Templates EmailTemplates
}

type EmailTemplates struct {
	Dir     string `env:"EMAIL_TEMPLATES_DIR" env-default:"templates"`
	Welcome string `env:"EMAIL_TEMPLATE_WELCOME" env-default:"welcome.html"`
}

type Cache struct {
	Enabled bool          `env:"REDIS_ENABLED" env-default:"false"`
	Type    string        `env:"REDIS_TYPE" env-default:"redis" env-description:"specifies provider, one of redis/redisCluster"`
	TTL     time.Duration `env:"REDIS_REFERENCE_TTL" env-default:"10m" env-description:"reference data cache ttl"`
	Redis   struct {
		Address  string `env:"REDIS_ADDR" env-default:"localhost:6379" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: ['172.27.29.90:7000','172.27.29.91:7001']"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return cfg
}

// Validate checks requirements that depend on other settings.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL:
		if c.Database.DBName == "" || c.Database.User == "" || c.Database.Password == "" {
			return errors.New("DB_NAME, DB_USER and DB_PASSWORD are required for mysql")
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("DB_PATH is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Auth.JWT.SigningKey == "" {
		return errors.New("JWT_SIGNING_KEY must not be empty")
	}

	if c.Auth.JWT.AccessTokenExpireMinutes <= 0 {
		return errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}

	if c.Email.Enabled {
		if c.SMTP.Host == "" || c.SMTP.From == "" || c.SMTP.Pass == "" {
			return errors.New("SMTP_HOST, SMTP_FROM and SMTP_PASS are required when EMAIL_ENABLED")
		}
		if !c.Cache.Enabled {
			return errors.New("EMAIL_ENABLED requires REDIS_ENABLED for the mail queue")
		}
	}

	return nil
}
