package app

import (
	"context"
	"fmt"

	"github.com/avc/plantstore/internal/config"
	"github.com/avc/plantstore/internal/domain"
	"github.com/avc/plantstore/internal/events"
	"github.com/avc/plantstore/internal/gateway/ozonpay"
	"github.com/avc/plantstore/internal/handlers"
	"github.com/avc/plantstore/internal/metrics"
	"github.com/avc/plantstore/internal/redisx"
	"github.com/avc/plantstore/internal/repository/postgres"
	"github.com/avc/plantstore/internal/service"
	"github.com/avc/plantstore/internal/telegram"
	"github.com/avc/plantstore/internal/utils/jwt"
	"github.com/avc/plantstore/internal/utils/password"
	"github.com/avc/plantstore/internal/worker"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	webhookDedupPrefix = "plantstore:webhook:"
	verifyLimitPrefix  = "plantstore:ratelimit:"
)

// eventPublisher публикатор событий заказов с освобождением ресурсов
type eventPublisher interface {
	domain.EventPublisher
	Close() error
}

// services содержит все сервисы приложения
type services struct {
	auth     domain.AuthService
	catalog  domain.CatalogService
	reviews  domain.ReviewService
	promos   domain.PromoService
	orders   domain.OrderService
	payments domain.PaymentService
	topups   domain.TopupService
	users    domain.UserService

	verification domain.VerificationService
	maintenance  *service.MaintenanceService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth     *handlers.AuthHandler
	catalog  *handlers.CatalogHandler
	orders   *handlers.OrdersHandler
	payments *handlers.PaymentsHandler
	balance  *handlers.BalanceHandler
	promos   *handlers.PromoHandler
	users    *handlers.UsersHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	handlers   *handlerSet
	jwtManager *jwt.Manager
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	workerPool *worker.Pool
	sweeper    *worker.Sweeper
	publisher  eventPublisher
	redis      *redis.Client
	// bot nil, если токен Telegram не задан
	bot *telegram.Bot
}

// initDependencies создает все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	rdb, err := redisx.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		logger.Info("redis is not configured, fast dedup and rate limits disabled")
	}

	var publisher eventPublisher = events.Nop{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	} else {
		logger.Info("kafka is not configured, order events are not published")
	}

	workerPool := worker.NewPool(cfg.WorkerPoolSize, cfg.WorkerQueueSize, logger)
	store := postgres.NewStore(dbPool)

	// Отправитель остается nil интерфейсом без токена, уведомления тогда пропускаются
	var sender domain.MessageSender
	var botAPI *tgbotapi.BotAPI
	if cfg.Telegram.Token != "" {
		botAPI, err = telegram.NewAPI(cfg.Telegram.Token, cfg.Telegram.SendTimeout)
		if err != nil {
			_ = publisher.Close()
			return nil, err
		}
		sender = telegram.NewSender(botAPI)
	} else {
		logger.Warn("telegram token is not set, bot and notifications disabled")
	}

	gateway := ozonpay.NewClient(ozonpay.Config{
		BaseURL:   cfg.OzonPay.BaseURL,
		APIKey:    cfg.OzonPay.APIKey,
		ReturnURL: cfg.OzonPay.ReturnURL,
		Timeout:   cfg.OzonPay.Timeout,
		RetryMax:  cfg.OzonPay.RetryMax,
	}, logger)

	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	passwordPolicy := password.Policy{MinLength: cfg.MinPasswordLength}
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	svcs, err := initServices(cfg, store, gateway, sender, publisher, workerPool, rdb,
		passwordHasher, passwordPolicy, jwtManager, m, logger)
	if err != nil {
		_ = publisher.Close()
		return nil, err
	}

	hdlrs := &handlerSet{
		auth:     handlers.NewAuthHandler(svcs.auth, logger),
		catalog:  handlers.NewCatalogHandler(svcs.catalog, svcs.reviews, logger),
		orders:   handlers.NewOrdersHandler(svcs.orders, logger),
		payments: handlers.NewPaymentsHandler(svcs.payments, logger),
		balance:  handlers.NewBalanceHandler(svcs.topups, logger),
		promos:   handlers.NewPromoHandler(svcs.promos, logger),
		users:    handlers.NewUsersHandler(svcs.users, logger),
		health:   handlers.NewHealthHandler(logger, healthChecks(dbPool, rdb)...),
	}

	var bot *telegram.Bot
	if botAPI != nil {
		bot = telegram.NewBot(botAPI, svcs.verification, logger.Named("telegram"))
	}

	return &dependencies{
		handlers:   hdlrs,
		jwtManager: jwtManager,
		registry:   registry,
		metrics:    m,
		workerPool: workerPool,
		sweeper:    worker.NewSweeper(cfg.SweepInterval, logger.Named("sweeper"), svcs.maintenance.Tasks()...),
		publisher:  publisher,
		redis:      rdb,
		bot:        bot,
	}, nil
}

// initServices собирает сервисы. Порядок важен: машина статусов нужна оплате, оплата нужна заказам.
func initServices(
	cfg *config.Config,
	store domain.Store,
	gateway domain.PaymentGateway,
	sender domain.MessageSender,
	publisher domain.EventPublisher,
	jobs service.JobQueue,
	rdb *redis.Client,
	passwordHasher password.Hasher,
	passwordPolicy password.Policy,
	jwtManager *jwt.Manager,
	m *metrics.Metrics,
	logger *zap.Logger,
) (*services, error) {
	dedup := redisx.NewDeduplicator(rdb, webhookDedupPrefix, cfg.Redis.DedupTTL)
	limiter := redisx.NewRateLimiter(rdb, verifyLimitPrefix, cfg.Redis.VerificationLimit, cfg.Redis.VerificationWindow)

	notifier := service.NewNotificationService(store, sender, jobs,
		cfg.Telegram.BroadcastDelay, cfg.Telegram.SendTimeout, m, logger.Named("notifications"))
	status := service.NewStatusMachine(store, domain.ParseTransitionPolicy(cfg.OrderTransitionPolicy),
		notifier, publisher, jobs, m, logger)

	verification, err := service.NewVerificationService(store, limiter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init verification: %w", err)
	}

	promos := service.NewPromoService(store)
	topups := service.NewTopupService(store, gateway, notifier, m, logger)
	payments := service.NewPaymentService(store, gateway, status, topups, dedup,
		cfg.OzonPay.WebhookSecret, m, logger)
	tariffs := domain.DeliveryTariffs{
		CourierStandard: cfg.Delivery.CourierStandard,
		CourierExpress:  cfg.Delivery.CourierExpress,
		PostStandard:    cfg.Delivery.PostStandard,
		PostExpress:     cfg.Delivery.PostExpress,
		FreeFrom:        cfg.Delivery.FreeFrom,
	}

	return &services{
		auth:         service.NewAuthService(store, verification, passwordHasher, passwordPolicy, jwtManager, cfg.Telegram.BotName),
		catalog:      service.NewCatalogService(store, notifier, logger),
		reviews:      service.NewReviewService(store),
		promos:       promos,
		orders:       service.NewOrderService(store, promos, payments, status, tariffs, notifier, m, logger),
		payments:     payments,
		topups:       topups,
		users:        service.NewUserService(store, passwordHasher, passwordPolicy),
		verification: verification,
		maintenance: service.NewMaintenanceService(store, status,
			cfg.PendingRegistrationTTL, cfg.ManualPaymentTimeout, m, logger),
	}, nil
}

// healthChecks база обязательна, Redis только ускоряет проверки и может отсутствовать
func healthChecks(dbPool *pgxpool.Pool, rdb *redis.Client) []handlers.Check {
	checks := []handlers.Check{{Name: "database", Ping: dbPool.Ping}}
	if rdb != nil {
		checks = append(checks, handlers.Check{
			Name:     "redis",
			Ping:     func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			Optional: true,
		})
	}
	return checks
}
