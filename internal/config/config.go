package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string `env:"ENV" env-required:"true"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer  HttpServer
	Database    Database
	Limiter     Limiter
	Auth        AuthConfig
	Email       EmailConfig
	SMTP        SMTPConfig
	SendGrid    SendGridConfig
	Cache       Cache
	Leaderboard LeaderboardConfig
	Snowflake   SnowflakeConfig
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	AllowOrigins   []string      `env:"HTTP_ALLOW_ORIGINS" env-default:"*" env-description:"comma separated list of CORS origins"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
	AutoMigrate        bool          `env:"DB_AUTO_MIGRATE" env-default:"true"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	JWT      JWTConfig
	CodeSalt string        `env:"AUTH_CODE_SALT" env-required:"true"`
	CodeTTL  time.Duration `env:"AUTH_CODE_TTL" env-default:"5m"`
	Lock     LockConfig
}

type JWTConfig struct {
	TokenTTL   time.Duration `env:"JWT_TTL" env-default:"720h"`
	SigningKey string        `env:"JWT_SIGNING_KEY" env-required:"true"`
	Issuer     string        `env:"JWT_ISSUER" env-default:"GrabSimulator"`
	Audience   string        `env:"JWT_AUDIENCE" env-default:"GrabSimulatorClient"`
}

type LockConfig struct {
	Provider string        `env:"LOCK_PROVIDER" env-default:"redis" env-description:"per-email lock backend, one of redis/local"`
	TTL      time.Duration `env:"LOCK_TTL" env-default:"5s"`
	Wait     time.Duration `env:"LOCK_WAIT" env-default:"3s"`
}

type EmailConfig struct {
	Enabled  bool   `env:"EMAIL_ENABLED" env-default:"true"`
	Provider string `env:"EMAIL_PROVIDER" env-default:"smtp" env-description:"one of smtp/sendgrid/console"`
	Async    bool   `env:"EMAIL_ASYNC" env-default:"false" env-description:"deliver through the asynq queue"`
	FromName string `env:"EMAIL_FROM_NAME" env-default:"Grab Simulator"`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	Port int    `env:"SMTP_PORT" env-default:"587"`
	From string `env:"SMTP_FROM"`
	Pass string `env:"SMTP_PASS"`
}

type SendGridConfig struct {
	APIKey  string `env:"SENDGRID_API_KEY"`
	From    string `env:"SENDGRID_FROM"`
	Sandbox bool   `env:"SENDGRID_SANDBOX" env-default:"false"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-default:"redis" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: ['172.27.29.90:7000','172.27.29.91:7001'', '172.27.29.92:7002'']"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

type LeaderboardConfig struct {
	Metric string `env:"LEADERBOARD_METRIC" env-default:"shipments_income" env-description:"ranking metric, one of shipments_income/coins"`
}

type SnowflakeConfig struct {
	NodeID int64 `env:"SNOWFLAKE_NODE_ID" env-default:"1" env-description:"unique per instance, 0..1023"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
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
