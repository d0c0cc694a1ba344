package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/service"
	"github.com/gin-gonic/gin"
)

type OrdersHandler struct {
	orderSvs        OrderServicer
	purchaseTimeout time.Duration
}

func NewOrdersHandler(orderSvs OrderServicer, purchaseTimeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		orderSvs:        orderSvs,
		purchaseTimeout: purchaseTimeout,
	}
}

type BuyParams struct {
	ServiceID int64 `binding:"required,gt=0" json:"service_id"`
}

// Create POST RouteGroup + OrdersRoute. Покупает номер для услуги.
func (o *OrdersHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params BuyParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	// покупка включает вызовы провайдера с повторами, поэтому у нее отдельный таймаут.
	reqCtx, cancel := context.WithTimeout(c, o.purchaseTimeout)
	defer cancel()

	order, err := o.orderSvs.Buy(reqCtx, service.BuyArgs{UserID: currentUserID, ServiceID: params.ServiceID})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newOrderResponse(order))
}

// Index GET RouteGroup + OrdersRoute.
func (o *OrdersHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()
	orders, err := o.orderSvs.GetByUserID(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	if len(orders) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	var response = make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = newOrderResponse(&orders[i])
	}

	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + OrderRoute.
func (o *OrdersHandler) Show(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	orderID, ok := idParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Get(reqCtx, currentUserID, orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

// Check POST RouteGroup + OrderCheckRoute. Запрашивает смс у провайдера, не дожидаясь фонового опроса.
func (o *OrdersHandler) Check(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	orderID, ok := idParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, o.purchaseTimeout)
	defer cancel()

	// проверяем, что заказ принадлежит текущему пользователю.
	if _, err := o.orderSvs.Get(reqCtx, currentUserID, orderID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	order, err := o.orderSvs.ResolveSMS(reqCtx, orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

// Cancel POST RouteGroup + OrderCancelRoute. При отказе в отмене отдает 409 и текущее состояние заказа.
func (o *OrdersHandler) Cancel(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	orderID, ok := idParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Cancel(reqCtx, currentUserID, orderID)
	if err != nil {
		var transitionErr *domain.InvalidTransitionError
		if errors.As(err, &transitionErr) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": domain.ErrInvalidTransition.Error(),
				"order": newOrderResponse(transitionErr.Order),
			})
			return
		}
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}
