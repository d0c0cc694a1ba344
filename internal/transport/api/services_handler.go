package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ServicesHandler struct {
	svs CatalogServicer
}

func NewServicesHandler(svs CatalogServicer) *ServicesHandler {
	return &ServicesHandler{svs: svs}
}

// Index GET RouteGroup + ServicesRoute. Каталог услуг.
func (s *ServicesHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	services, err := s.svs.List(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]ServiceResponse, len(services))
	for i := range services {
		response[i] = newServiceResponse(&services[i])
	}
	c.JSON(http.StatusOK, response)
}

type SetPriceParams struct {
	Price decimal.Decimal `binding:"dgte0" json:"price"`
}

// SetPrice PUT RouteGroup + AdminServicePriceRoute. Только для администраторов.
func (s *ServicesHandler) SetPrice(c *gin.Context) {
	serviceID, ok := idParam(c)
	if !ok {
		return
	}

	var params SetPriceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	svc, err := s.svs.SetPrice(reqCtx, serviceID, params.Price)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newServiceResponse(svc))
}
