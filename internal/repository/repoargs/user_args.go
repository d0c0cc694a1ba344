package repoargs

import (
	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateUser пользователь создается с нулевым балансом, средства поступают только через журнал.
type CreateUser struct {
	Role domain.RoleType
}

type CreateService struct {
	Code         string
	Provider     domain.ProviderType
	ProviderCost decimal.Decimal
	Price        decimal.Decimal
	Active       bool
}

type CreateTopup struct {
	UserID      int64
	Amount      decimal.Decimal
	ExternalRef string
}
