package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TopupsHandler struct {
	svs TopupServicer
}

func NewTopupsHandler(svs TopupServicer) *TopupsHandler {
	return &TopupsHandler{svs: svs}
}

type InitiateTopupParams struct {
	Amount decimal.Decimal `binding:"dgt0" json:"amount"`
}

// Create POST RouteGroup + TopupsRoute. Создает пополнение, external_ref из ответа передается платежному шлюзу.
func (t *TopupsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params InitiateTopupParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	topup, err := t.svs.Initiate(reqCtx, currentUserID, params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTopupResponse(topup))
}

// Index GET RouteGroup + TopupsRoute.
func (t *TopupsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	topups, err := t.svs.GetByUserID(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	if len(topups) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]TopupResponse, len(topups))
	for i := range topups {
		response[i] = newTopupResponse(&topups[i])
	}
	c.JSON(http.StatusOK, response)
}
