package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Database   Database
	Auth       AuthConfig
	SMTP       SMTPConfig
	Email      EmailConfig
	Cache      Cache
	Wizard     WizardConfig
}

type HttpServer struct {
	Port        string        `env:"HTTP_PORT" env-default:"8000"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"15s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE" env-default:"UTC"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"10"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"20"`
}

type AuthConfig struct {
	VerificationCodeLength int           `env:"AUTH_VERIFICATION_CODE_LENGTH" env-default:"6"`
	VerificationCodeTTL    time.Duration `env:"AUTH_VERIFICATION_CODE_TTL" env-default:"30m"`
	BcryptCost             int           `env:"AUTH_BCRYPT_COST" env-default:"12"`
	AdminToken             string        `env:"AUTH_ADMIN_TOKEN" env-default:"" env-description:"bearer token for /get-credentials, empty disables it"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST" env-required:"true"`
	Port     int    `env:"SMTP_PORT" env-required:"true"`
	From     string `env:"SMTP_FROM" env-required:"true"`
	FromName string `env:"SMTP_FROM_NAME" env-default:"Account Security"`
	Pass     string `env:"SMTP_PASS" env-required:"true"`
}

type EmailConfig struct {
	Enabled     bool   `env:"EMAIL_ENABLED" env-default:"true"`
	Async       bool   `env:"EMAIL_ASYNC" env-default:"false" env-description:"deliver mail through the asynq queue"`
	ProductName string `env:"EMAIL_PRODUCT_NAME" env-default:"Your account"`
	Templates   EmailTemplates
}

type EmailTemplates struct {
	Verification string `env:"EMAIL_TEMPLATE_VERIFICATION" env-default:"verification_code.html"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-default:"redis" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"127.0.0.1:6379" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

type WizardConfig struct {
	LoginURL       string   `env:"WIZARD_LOGIN_URL" env-default:"/login"`
	AllowedOrigins []string `env:"WIZARD_ALLOWED_ORIGINS" env-default:"http://localhost:8000,http://127.0.0.1:8000"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
