package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	DatabaseURI     string        `env:"DATABASE_URI"`
	JWTSecret       string        `env:"JWT_SECRET" envDefault:"default-secret-key-change-in-production"`
	JWTTokenTTL     time.Duration `env:"JWT_TOKEN_TTL" envDefault:"24h"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Валидация
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH" envDefault:"6"`

	// Пул уведомлений
	WorkerPoolSize  int `env:"WORKER_POOL_SIZE" envDefault:"3"`
	WorkerQueueSize int `env:"WORKER_QUEUE_SIZE" envDefault:"100"`

	// Обслуживание. Нулевые значения отключают соответствующую очистку.
	SweepInterval          time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
	PendingRegistrationTTL time.Duration `env:"PENDING_REGISTRATION_TTL" envDefault:"24h"`
	ManualPaymentTimeout   time.Duration `env:"MANUAL_PAYMENT_TIMEOUT" envDefault:"0s"`

	// permissive или strict
	OrderTransitionPolicy string `env:"ORDER_TRANSITION_POLICY" envDefault:"permissive"`

	OzonPay  OzonPayConfig  `envPrefix:"OZON_PAY_"`
	Telegram TelegramConfig `envPrefix:"TELEGRAM_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
	Delivery DeliveryConfig `envPrefix:"DELIVERY_"`
}

// OzonPayConfig настройки платежного шлюза
type OzonPayConfig struct {
	BaseURL       string        `env:"BASE_URL" envDefault:"https://payapi.ozon.ru"`
	APIKey        string        `env:"API_KEY"`
	WebhookSecret string        `env:"WEBHOOK_SECRET"`
	ReturnURL     string        `env:"RETURN_URL"`
	Timeout       time.Duration `env:"TIMEOUT" envDefault:"10s"`
	RetryMax      int           `env:"RETRY_MAX" envDefault:"3"`
}

// TelegramConfig настройки бота. Пустой токен отключает бота.
type TelegramConfig struct {
	Token          string        `env:"TOKEN"`
	BotName        string        `env:"BOT_NAME"`
	SendTimeout    time.Duration `env:"SEND_TIMEOUT" envDefault:"5s"`
	BroadcastDelay time.Duration `env:"BROADCAST_DELAY" envDefault:"50ms"`
}

// RedisConfig настройки Redis. Пустой адрес отключает быструю дедупликацию и лимиты.
type RedisConfig struct {
	Addr               string        `env:"ADDR"`
	Password           string        `env:"PASSWORD"`
	DB                 int           `env:"DB" envDefault:"0"`
	DedupTTL           time.Duration `env:"DEDUP_TTL" envDefault:"72h"`
	VerificationLimit  int           `env:"VERIFICATION_LIMIT" envDefault:"5"`
	VerificationWindow time.Duration `env:"VERIFICATION_WINDOW" envDefault:"1h"`
}

// KafkaConfig настройки публикации событий. Пустой список брокеров отключает публикацию.
type KafkaConfig struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"plantstore.order-events"`
}

// DeliveryConfig тарифы доставки
type DeliveryConfig struct {
	CourierStandard decimal.Decimal `env:"COURIER_STANDARD" envDefault:"300"`
	CourierExpress  decimal.Decimal `env:"COURIER_EXPRESS" envDefault:"600"`
	PostStandard    decimal.Decimal `env:"POST_STANDARD" envDefault:"350"`
	PostExpress     decimal.Decimal `env:"POST_EXPRESS" envDefault:"700"`
	FreeFrom        decimal.Decimal `env:"FREE_FROM" envDefault:"5000"`
}

// Load загружает конфигурацию из .env, переменных окружения и флагов.
// Приоритет: env переменные > флаги > дефолтные значения
func Load(args []string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURI := cfg.DatabaseURI

	fs := flag.NewFlagSet("plantstore", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad загружает конфигурацию из аргументов процесса
func MustLoad() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

func (c *Config) validate() error {
	var errs []error

	if c.DatabaseURI == "" {
		errs = append(errs, errors.New("database URI is required (use -d flag or DATABASE_URI env)"))
	}
	if c.WorkerPoolSize <= 0 || c.WorkerQueueSize <= 0 {
		errs = append(errs, errors.New("worker pool size and queue size must be positive"))
	}
	if c.SweepInterval <= 0 {
		errs = append(errs, errors.New("sweep interval must be positive"))
	}
	if c.PendingRegistrationTTL < 0 || c.ManualPaymentTimeout < 0 {
		errs = append(errs, errors.New("cleanup timeouts must not be negative"))
	}
	switch strings.ToLower(c.OrderTransitionPolicy) {
	case "permissive", "strict":
	default:
		errs = append(errs, fmt.Errorf("unknown order transition policy %q", c.OrderTransitionPolicy))
	}

	return errors.Join(errs...)
}
