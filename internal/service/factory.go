package service

import (
	"fmt"

	"github.com/fsdevblog/virtnum/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	Ledger  *LedgerService
	Topups  *TopupService
	Orders  *OrderService
	Catalog *CatalogService
}

// FactoryArgs внешние зависимости сервисов. Publisher и Metrics можно не указывать.
type FactoryArgs struct {
	UOW          uow.UOW
	Cache        ServiceCache
	Providers    ProviderRegistry
	Verifier     SignatureVerifier
	Publisher    EventPublisher
	Metrics      MetricsCollector
	Logger       *logrus.Logger
	OrderOptions OrderOptions
}

func Factory(args FactoryArgs) (*AppServices, error) {
	if args.Publisher == nil {
		args.Publisher = NoopPublisher{}
	}
	if args.Metrics == nil {
		args.Metrics = NoopMetrics{}
	}

	ledger, err := NewLedgerService(args.UOW, args.Metrics)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	catalog, err := NewCatalogService(args.UOW, args.Cache, args.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	topups, err := NewTopupService(TopupServiceArgs{
		UOW:       args.UOW,
		Ledger:    ledger,
		Verifier:  args.Verifier,
		Publisher: args.Publisher,
		Metrics:   args.Metrics,
		Logger:    args.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	orders, err := NewOrderService(OrderServiceArgs{
		UOW:       args.UOW,
		Ledger:    ledger,
		Catalog:   catalog,
		Providers: args.Providers,
		Publisher: args.Publisher,
		Metrics:   args.Metrics,
		Logger:    args.Logger,
		Options:   args.OrderOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	return &AppServices{
		Ledger:  ledger,
		Topups:  topups,
		Orders:  orders,
		Catalog: catalog,
	}, nil
}
