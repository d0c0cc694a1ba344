package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/payment"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// maxWebhookBodyBytes предельный размер тела вебхука.
const maxWebhookBodyBytes = 64 << 10

type WebhooksHandler struct {
	topups TopupServicer
	orders OrderServicer
	stripe StripeWebhookParser
}

func NewWebhooksHandler(topups TopupServicer, orders OrderServicer, stripe StripeWebhookParser) *WebhooksHandler {
	return &WebhooksHandler{
		topups: topups,
		orders: orders,
		stripe: stripe,
	}
}

type PaymentConfirmationParams struct {
	ExternalRef string                    `binding:"required,max_bytes=64"       json:"externalRef"`
	Status      domain.ConfirmationStatus `binding:"required,oneof=PAID FAILED" json:"status"`
	Amount      decimal.Decimal           `binding:"dgt0"                        json:"amount"`
	Signature   string                    `binding:"required"                    json:"signature"`
}

type ConfirmationResponse struct {
	Topup    TopupResponse `json:"topup"`
	Replayed bool          `json:"replayed"`
}

// Payment POST RouteGroup + PaymentWebhookRoute. Подтверждение платежа, подписанное HMAC. Повторная доставка
// того же события отвечает 200 с replayed=true.
func (w *WebhooksHandler) Payment(c *gin.Context) {
	var params PaymentConfirmationParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	w.confirm(c, domain.ConfirmationEvent{
		ExternalRef: params.ExternalRef,
		Status:      params.Status,
		Amount:      params.Amount,
		Signature:   params.Signature,
	})
}

// Stripe POST RouteGroup + StripeWebhookRoute. Подпись проверяется по заголовку Stripe-Signature,
// события, не относящиеся к пополнениям, подтверждаются без обработки.
func (w *WebhooksHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePrivate)
		return
	}

	ev, err := w.stripe.ParseWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, payment.ErrIgnoredEvent) {
			c.JSON(http.StatusOK, gin.H{"ignored": true})
			return
		}
		abortWithServiceError(c, err)
		return
	}

	w.confirm(c, *ev)
}

func (w *WebhooksHandler) confirm(c *gin.Context, ev domain.ConfirmationEvent) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	confirmation, err := w.topups.HandleConfirmation(reqCtx, ev)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ConfirmationResponse{
		Topup:    newTopupResponse(confirmation.Topup),
		Replayed: confirmation.Replayed,
	})
}

// ProviderCallbackParams уведомление провайдера о пришедшем смс. Провайдеры называют поле с номером заказа
// по-разному.
type ProviderCallbackParams struct {
	ID      string `binding:"max_bytes=64" json:"id"`
	OrderID string `binding:"max_bytes=64" json:"order_id"`
}

func (p ProviderCallbackParams) providerOrderID() string {
	if p.OrderID != "" {
		return p.OrderID
	}
	return p.ID
}

// Provider POST RouteGroup + ProviderWebhookRoute. Уведомление служит только сигналом: код смс всегда
// запрашивается у провайдера.
func (w *WebhooksHandler) Provider(c *gin.Context) {
	p := domain.ProviderType(c.Param("provider"))
	if p != domain.ProviderA && p != domain.ProviderB {
		_ = c.AbortWithError(http.StatusNotFound, errors.New("unknown provider")).SetType(gin.ErrorTypePublic)
		return
	}

	var params ProviderCallbackParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}
	providerOrderID := params.providerOrderID()
	if providerOrderID == "" {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("order id is required")).
			SetType(gin.ErrorTypePublic)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := w.orders.ResolveByProviderOrderID(reqCtx, p, providerOrderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": order.Status})
}
