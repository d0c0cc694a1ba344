package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	svs LedgerServicer
}

func NewBalanceHandler(svs LedgerServicer) *BalanceHandler {
	return &BalanceHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Current float64 `json:"current"`
}

func (b *BalanceHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.svs.Balance(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Current: balance.InexactFloat64(),
	})
}

type EntryResponseItem struct {
	ID          int64                   `json:"id"`
	Delta       float64                 `json:"delta"`
	Reason      domain.LedgerReasonType `json:"reason"`
	ReferenceID int64                   `json:"reference_id"`
	CreatedAt   string                  `json:"created_at"`
}

// Entries GET RouteGroup + BalanceEntriesRoute. История движения средств, новые записи первыми.
func (b *BalanceHandler) Entries(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := b.svs.Entries(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	if len(entries) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]EntryResponseItem, len(entries))
	for i, entry := range entries {
		response[i] = EntryResponseItem{
			ID:          entry.ID,
			Delta:       entry.Delta.InexactFloat64(),
			Reason:      entry.Reason,
			ReferenceID: entry.ReferenceID,
			CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, response)
}
