package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/virtnum/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout  = 3 * time.Second
	DefaultPurchaseTimeout = time.Minute
)

const (
	RouteGroup             = "/api"
	OrdersRoute            = "/orders"
	OrderRoute             = "/orders/:id"
	OrderCheckRoute        = "/orders/:id/check"
	OrderCancelRoute       = "/orders/:id/cancel"
	BalanceRoute           = "/balance"
	BalanceEntriesRoute    = "/balance/entries"
	TopupsRoute            = "/topups"
	ServicesRoute          = "/services"
	PaymentWebhookRoute    = "/webhooks/payment"
	StripeWebhookRoute     = "/webhooks/stripe"
	ProviderWebhookRoute   = "/webhooks/provider/:provider"
	AdminServicePriceRoute = "/admin/services/:id/price"
	MetricsRoute           = "/metrics"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	OrderService   OrderServicer
	LedgerService  LedgerServicer
	TopupService   TopupServicer
	CatalogService CatalogServicer
	// StripeGateway необязателен: без него вебхук stripe не регистрируется.
	StripeGateway StripeWebhookParser
	// MetricsHandler если указан, отдается по MetricsRoute.
	MetricsHandler  http.Handler
	JWTSecretKey    []byte
	PurchaseTimeout time.Duration
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}
	if args.PurchaseTimeout == 0 {
		args.PurchaseTimeout = DefaultPurchaseTimeout
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	if args.MetricsHandler != nil {
		r.GET(MetricsRoute, gin.WrapH(args.MetricsHandler))
	}

	ordersHandler := NewOrdersHandler(args.OrderService, args.PurchaseTimeout)
	balanceHandler := NewBalanceHandler(args.LedgerService)
	topupsHandler := NewTopupsHandler(args.TopupService)
	servicesHandler := NewServicesHandler(args.CatalogService)
	webhooksHandler := NewWebhooksHandler(args.TopupService, args.OrderService, args.StripeGateway)

	api := r.Group(RouteGroup)

	// вебхуки аутентифицируются подписью, а не токеном пользователя.
	api.POST(PaymentWebhookRoute, webhooksHandler.Payment)
	if args.StripeGateway != nil {
		api.POST(StripeWebhookRoute, webhooksHandler.Stripe)
	}
	api.POST(ProviderWebhookRoute, webhooksHandler.Provider)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(ServicesRoute, servicesHandler.Index)

	api.POST(OrdersRoute, ordersHandler.Create)
	api.GET(OrdersRoute, ordersHandler.Index)
	api.GET(OrderRoute, ordersHandler.Show)
	api.POST(OrderCheckRoute, ordersHandler.Check)
	api.POST(OrderCancelRoute, ordersHandler.Cancel)

	api.GET(BalanceRoute, balanceHandler.Index)
	api.GET(BalanceEntriesRoute, balanceHandler.Entries)

	api.POST(TopupsRoute, topupsHandler.Create)
	api.GET(TopupsRoute, topupsHandler.Index)

	api.PUT(AdminServicePriceRoute, middlewares.AdminRequired(), servicesHandler.SetPrice)
	return r, nil
}
