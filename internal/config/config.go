package config

import (
	"fmt"
	"strings"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"

	"github.com/anagha-safaar/booking-engine/internal/domain"
)

type Config struct {
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Redis     RedisConfig     `yaml:"redis"     validate:"required"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Locks     LocksConfig     `yaml:"locks"     validate:"required"`
	Cache     CacheConfig     `yaml:"cache"     validate:"required"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
	Mode   string `yaml:"mode"   env:"LOG_MODE"   env-default:"debug" validate:"required,oneof=debug release test"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"     validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"          validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"      validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"      validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"bookingengine" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"       validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"            validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"             validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"            validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379" validate:"required"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"              validate:"min=0"`
}

type KafkaConfig struct {
	// Empty brokers disable the audit sink.
	Brokers string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:""`
	Topic   string `yaml:"topic"   env:"KAFKA_TOPIC"   env-default:"booking.audit"`
}

func (k *KafkaConfig) BrokerList() []string {
	if k.Brokers == "" {
		return nil
	}
	return strings.Split(k.Brokers, ",")
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

type LocksConfig struct {
	TTL           time.Duration `yaml:"ttl"            env:"LOCK_TTL"            env-default:"15m"    validate:"required,gt=0"`
	ExtensionTTL  time.Duration `yaml:"extension_ttl"  env:"LOCK_EXTENSION_TTL"  env-default:"5m"     validate:"required,gt=0"`
	MaxExtensions int           `yaml:"max_extensions" env:"LOCK_MAX_EXTENSIONS" env-default:"2"      validate:"min=0"`
	RelockPolicy  string        `yaml:"relock_policy"  env:"LOCK_RELOCK_POLICY"  env-default:"reject" validate:"required,oneof=reject return_existing"`
}

func (l *LocksConfig) Policy() domain.RelockPolicy {
	return domain.RelockPolicy(l.RelockPolicy)
}

type CacheConfig struct {
	PricingTTL   time.Duration `yaml:"pricing_ttl"   env:"CACHE_PRICING_TTL"   env-default:"60s" validate:"required,gt=0"`
	InventoryTTL time.Duration `yaml:"inventory_ttl" env:"CACHE_INVENTORY_TTL" env-default:"5m"  validate:"required,gt=0"`
	CalendarTTL  time.Duration `yaml:"calendar_ttl"  env:"CACHE_CALENDAR_TTL"  env-default:"10m" validate:"required,gt=0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
