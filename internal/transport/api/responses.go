package api

import (
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
)

type OrderResponse struct {
	ID            int64                  `json:"id"`
	ServiceID     int64                  `json:"service_id"`
	Provider      domain.ProviderType    `json:"provider"`
	Price         float64                `json:"price"`
	VirtualNumber *string                `json:"number,omitempty"`
	SMSCode       *string                `json:"sms_code,omitempty"`
	Status        domain.OrderStatusType `json:"status"`
	ExpiresAt     *time.Time             `json:"expires_at,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		ServiceID:     o.ServiceID,
		Provider:      o.Provider,
		Price:         o.Price.InexactFloat64(),
		VirtualNumber: o.VirtualNumber,
		SMSCode:       o.SMSCode,
		Status:        o.Status,
		ExpiresAt:     o.ExpiresAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

type TopupResponse struct {
	ID          int64                  `json:"id"`
	ExternalRef string                 `json:"external_ref"`
	Amount      float64                `json:"amount"`
	Status      domain.TopupStatusType `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
}

func newTopupResponse(t *domain.Topup) TopupResponse {
	return TopupResponse{
		ID:          t.ID,
		ExternalRef: t.ExternalRef,
		Amount:      t.Amount.InexactFloat64(),
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
}

type ServiceResponse struct {
	ID       int64               `json:"id"`
	Code     string              `json:"code"`
	Provider domain.ProviderType `json:"provider"`
	Price    float64             `json:"price"`
	Active   bool                `json:"active"`
}

func newServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:       s.ID,
		Code:     s.Code,
		Provider: s.Provider,
		Price:    s.Price.InexactFloat64(),
		Active:   s.Active,
	}
}
