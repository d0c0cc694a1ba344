package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/virtnum/internal/cache"
	"github.com/fsdevblog/virtnum/internal/config"
	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/events"
	"github.com/fsdevblog/virtnum/internal/metrics"
	"github.com/fsdevblog/virtnum/internal/payment"
	"github.com/fsdevblog/virtnum/internal/provider"
	"github.com/fsdevblog/virtnum/internal/provider/fake"
	"github.com/fsdevblog/virtnum/internal/provider/fivesim"
	"github.com/fsdevblog/virtnum/internal/provider/smsactivate"
	"github.com/fsdevblog/virtnum/internal/repository/memrepo"
	"github.com/fsdevblog/virtnum/internal/repository/pgrepo"
	"github.com/fsdevblog/virtnum/internal/service"
	"github.com/fsdevblog/virtnum/internal/transport/api"
	"github.com/fsdevblog/virtnum/internal/transport/poller"
	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	// purchaseMargin запас времени покупки сверх вызовов провайдера и пауз между ними.
	purchaseMargin = 15 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"runAddress": a.Config.RunAddress,
		"storage":    a.Config.Storage,
		"redis":      a.Config.RedisAddr != "",
		"kafka":      len(a.Config.KafkaBrokers) > 0,
	}).Info("Starting app")

	orderOpts := a.orderOptions()
	purchase := purchaseTimeout(orderOpts)
	if staleErr := checkStalePending(a.Config.StalePendingAfter, purchase); staleErr != nil {
		return fmt.Errorf("app run: %s", staleErr.Error())
	}

	unitOfWork, closeStorage, storageErr := a.initStorage(notifyCtx)
	if storageErr != nil {
		return fmt.Errorf("app run: %s", storageErr.Error())
	}
	defer closeStorage()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	providers, providersErr := a.initProviders()
	if providersErr != nil {
		return fmt.Errorf("app run: %s", providersErr.Error())
	}

	signer := payment.NewHMACVerifier(a.Config.PaymentWebhookSecret)
	factoryArgs := service.FactoryArgs{
		UOW:          unitOfWork,
		Providers:    providers,
		Verifier:     signer,
		Metrics:      metrics.NewCollector(registry),
		Logger:       a.Logger,
		OrderOptions: orderOpts,
	}

	if a.Config.RedisAddr != "" {
		redisClient := cache.NewRedisClient(a.Config.RedisAddr, a.Config.RedisPassword, a.Config.RedisDB)
		defer func() {
			if err := redisClient.Close(); err != nil {
				a.Logger.WithError(err).Error("close redis client")
			}
		}()
		factoryArgs.Cache = cache.NewRedisServiceCache(redisClient, cache.DefaultServiceTTL)
	}

	if len(a.Config.KafkaBrokers) > 0 {
		publisher := events.NewKafkaPublisher(events.KafkaPublisherArgs{
			Brokers:    a.Config.KafkaBrokers,
			OrderTopic: a.Config.KafkaOrderTopic,
			TopupTopic: a.Config.KafkaTopupTopic,
		})
		defer func() {
			if err := publisher.Close(); err != nil {
				a.Logger.WithError(err).Error("close kafka publisher")
			}
		}()
		factoryArgs.Publisher = publisher
	}

	services, sErr := service.Factory(factoryArgs)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	if a.Config.Storage == config.StorageMemory {
		if seedErr := seedMemory(notifyCtx, unitOfWork, a.Logger); seedErr != nil {
			return fmt.Errorf("app run: %s", seedErr.Error())
		}
	}

	var stripeGateway api.StripeWebhookParser
	if a.Config.StripeWebhookSecret != "" {
		stripeGateway = payment.NewStripeGateway(a.Config.StripeWebhookSecret, signer)
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:          a.Logger,
		OrderService:    services.Orders,
		LedgerService:   services.Ledger,
		TopupService:    services.Topups,
		CatalogService:  services.Catalog,
		StripeGateway:   stripeGateway,
		MetricsHandler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		JWTSecretKey:    []byte(a.Config.JWTSecret),
		PurchaseTimeout: purchase,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	processor := poller.New(services.Orders, a.Logger).
		SetWorkers(a.Config.PollWorkers).
		SetLimitPerIteration(a.Config.PollLimit).
		SetPollInterval(a.Config.PollInterval).
		SetStalePendingAfter(a.Config.StalePendingAfter)

	g, gCtx := errgroup.WithContext(notifyCtx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gCtx), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx) //nolint:contextcheck
	})
	g.Go(func() error {
		processor.Run(gCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return notifyCtx.Err() //nolint:wrapcheck
}

// initStorage возвращает хранилище согласно config.Storage и функцию его закрытия.
func (a *App) initStorage(ctx context.Context) (uow.UOW, func(), error) {
	if a.Config.Storage == config.StorageMemory {
		a.Logger.Warn("in-memory storage: data is lost on shutdown")
		return memrepo.New(), func() {}, nil
	}

	conn, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return nil, nil, fmt.Errorf("init storage: %w", connErr)
	}

	unitOfWork := uow.NewUnitOfWork(conn)
	if regErr := pgrepo.Register(unitOfWork); regErr != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("init storage: %w", regErr)
	}
	return unitOfWork, conn.Close, nil
}

// initProviders адаптеры провайдеров. Провайдер без адреса заменяется фейковым.
func (a *App) initProviders() (*provider.Registry, error) {
	registry := provider.NewRegistry()

	if a.Config.ProviderAURL != "" {
		registry.Register(domain.ProviderA, smsactivate.New(a.Config.ProviderAURL, a.Config.ProviderAKey))
	} else {
		adapter, err := fake.New(domain.ProviderA)
		if err != nil {
			return nil, fmt.Errorf("init providers: %w", err)
		}
		registry.Register(domain.ProviderA, adapter)
		a.Logger.WithField("provider", domain.ProviderA).Warn("using fake provider")
	}

	if a.Config.ProviderBURL != "" {
		registry.Register(domain.ProviderB, fivesim.New(a.Config.ProviderBURL, a.Config.ProviderBKey))
	} else {
		adapter, err := fake.New(domain.ProviderB)
		if err != nil {
			return nil, fmt.Errorf("init providers: %w", err)
		}
		registry.Register(domain.ProviderB, adapter)
		a.Logger.WithField("provider", domain.ProviderB).Warn("using fake provider")
	}
	return registry, nil
}

func (a *App) orderOptions() service.OrderOptions {
	opts := service.DefaultOrderOptions()
	opts.ProviderTimeout = a.Config.ProviderTimeout
	opts.ProviderRetries = a.Config.ProviderRetries
	opts.ProviderBackoff = a.Config.ProviderBackoff
	opts.OrderTTL = a.Config.OrderTTL
	opts.MaxPollErrors = a.Config.MaxPollErrors
	return opts
}

// purchaseTimeout таймаут запроса покупки: все вызовы провайдера с паузами и запас на работу с БД.
func purchaseTimeout(opts service.OrderOptions) time.Duration {
	return opts.PurchaseBudget() + purchaseMargin
}

// checkStalePending заказ в pending нельзя считать зависшим, пока по нему может идти покупка.
func checkStalePending(stalePendingAfter, purchase time.Duration) error {
	if stalePendingAfter <= purchase {
		return fmt.Errorf("stale pending timeout %s must exceed purchase timeout %s", stalePendingAfter, purchase)
	}
	return nil
}
