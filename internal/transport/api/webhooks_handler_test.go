package api

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/payment"
	"github.com/fsdevblog/virtnum/internal/service"
	"github.com/fsdevblog/virtnum/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WebhooksHandlerTestSuite struct {
	handlerSuite
}

func TestWebhooksHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhooksHandlerTestSuite))
}

func (s *WebhooksHandlerTestSuite) confirmation(ref string, status domain.TopupStatusType, replayed bool) *service.TopupConfirmation {
	return &service.TopupConfirmation{
		Topup: &domain.Topup{
			ID:          1,
			UserID:      1,
			Amount:      decimal.NewFromInt(20),
			ExternalRef: ref,
			Status:      status,
		},
		Replayed: replayed,
	}
}

func (s *WebhooksHandlerTestSuite) TestPayment() {
	// ответ сервиса зависит от external_ref события
	s.topups.EXPECT().HandleConfirmation(gomock.Any(), gomock.AssignableToTypeOf(domain.ConfirmationEvent{})).
		DoAndReturn(func(_ any, ev domain.ConfirmationEvent) (*service.TopupConfirmation, error) {
			switch ev.ExternalRef {
			case "ok":
				s.Equal(domain.ConfirmationPaid, ev.Status)
				s.True(ev.Amount.Equal(decimal.NewFromInt(20)))
				s.Equal("sig", ev.Signature)
				return s.confirmation(ev.ExternalRef, domain.TopupStatusPaid, false), nil
			case "replay":
				return s.confirmation(ev.ExternalRef, domain.TopupStatusPaid, true), nil
			case "forged":
				return nil, domain.ErrAuthenticationFailed
			case "unknown":
				return nil, fmt.Errorf("%w: unknown", domain.ErrUnknownReference)
			default:
				return nil, fmt.Errorf("%w: topup 1", domain.ErrAmountMismatch)
			}
		}).Times(5)

	cases := []struct {
		name         string
		payload      string
		wantStatus   int
		wantReplayed bool
	}{
		{
			name:       "paid",
			payload:    `{"externalRef":"ok","status":"PAID","amount":"20.00","signature":"sig"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:         "replayed",
			payload:      `{"externalRef":"replay","status":"PAID","amount":20,"signature":"sig"}`,
			wantStatus:   http.StatusOK,
			wantReplayed: true,
		},
		{
			name:       "forged signature",
			payload:    `{"externalRef":"forged","status":"PAID","amount":20,"signature":"bad"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown reference",
			payload:    `{"externalRef":"unknown","status":"PAID","amount":20,"signature":"sig"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "amount mismatch",
			payload:    `{"externalRef":"mismatch","status":"FAILED","amount":21,"signature":"sig"}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown status",
			payload:    `{"externalRef":"ok","status":"PENDING","amount":20,"signature":"sig"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "too long reference",
			payload: fmt.Sprintf(`{"externalRef":%q,"status":"PAID","amount":20,"signature":"sig"}`,
				testutils.GenerateOverBytesUnderRunes(20)),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no signature",
			payload:    `{"externalRef":"ok","status":"PAID","amount":20}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, PaymentWebhookRoute, []byte(t.payload), "")
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body ConfirmationResponse
				s.decode(res, &body)
				s.Equal(t.wantReplayed, body.Replayed)
				s.Equal(domain.TopupStatusPaid, body.Topup.Status)
			}
		})
	}
}

func (s *WebhooksHandlerTestSuite) TestStripe() {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	ev := &domain.ConfirmationEvent{
		ExternalRef: "ref-1",
		Status:      domain.ConfirmationPaid,
		Amount:      decimal.NewFromInt(20),
		Signature:   "signed",
	}

	s.stripe.EXPECT().ParseWebhook(payload, "valid").Return(ev, nil)
	s.stripe.EXPECT().ParseWebhook(payload, "ignored").
		Return(nil, fmt.Errorf("%w: charge.refunded", payment.ErrIgnoredEvent))
	s.stripe.EXPECT().ParseWebhook(payload, "forged").
		Return(nil, fmt.Errorf("%w: bad signature", domain.ErrAuthenticationFailed))
	s.topups.EXPECT().HandleConfirmation(gomock.Any(), *ev).
		Return(s.confirmation("ref-1", domain.TopupStatusPaid, false), nil)

	cases := []struct {
		name       string
		signature  string
		wantStatus int
	}{
		{name: "confirmed", signature: "valid", wantStatus: http.StatusOK},
		{name: "ignored event", signature: "ignored", wantStatus: http.StatusOK},
		{name: "forged", signature: "forged", wantStatus: http.StatusUnauthorized},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + StripeWebhookRoute,
				Body:   bytes.NewReader(payload),
			},
				testutils.WithHeader("Content-Type", "application/json"),
				testutils.WithHeader("Stripe-Signature", t.signature),
			)
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *WebhooksHandlerTestSuite) TestStripeNotConfigured() {
	router, err := New(RouterArgs{
		OrderService:   s.orders,
		LedgerService:  s.ledger,
		TopupService:   s.topups,
		CatalogService: s.catalog,
		JWTSecretKey:   s.jwtSecret,
	})
	s.Require().NoError(err)

	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: router,
		Method: http.MethodPost,
		URL:    RouteGroup + StripeWebhookRoute,
		Body:   bytes.NewReader(payload),
	}, testutils.WithHeader("Stripe-Signature", "t=1,v1=00"))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *WebhooksHandlerTestSuite) TestProvider() {
	received := &domain.Order{ID: 1, Provider: domain.ProviderB, Status: domain.OrderStatusReceived}

	s.orders.EXPECT().ResolveByProviderOrderID(gomock.Any(), domain.ProviderB, "777").Return(received, nil)
	s.orders.EXPECT().ResolveByProviderOrderID(gomock.Any(), domain.ProviderA, "5").
		Return(nil, fmt.Errorf("%w: provider_a/5", domain.ErrOrderNotFound))

	cases := []struct {
		name       string
		url        string
		payload    string
		wantStatus int
	}{
		{name: "id field", url: "/webhooks/provider/provider_b", payload: `{"id":"777"}`, wantStatus: http.StatusOK},
		{name: "order_id field", url: "/webhooks/provider/provider_a", payload: `{"order_id":"5"}`, wantStatus: http.StatusNotFound},
		{name: "unknown provider", url: "/webhooks/provider/provider_c", payload: `{"id":"1"}`, wantStatus: http.StatusNotFound},
		{name: "no order id", url: "/webhooks/provider/provider_a", payload: `{}`, wantStatus: http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, t.url, []byte(t.payload), "")
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
