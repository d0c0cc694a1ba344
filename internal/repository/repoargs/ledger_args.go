package repoargs

import (
	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/shopspring/decimal"
)

type LedgerEntryCreate struct {
	UserID      int64
	Delta       decimal.Decimal
	Reason      domain.LedgerReasonType
	ReferenceID int64
}
