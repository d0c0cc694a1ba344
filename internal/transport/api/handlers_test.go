package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/logger"
	"github.com/fsdevblog/virtnum/internal/transport/api/mocks"
	"github.com/fsdevblog/virtnum/internal/transport/api/testutils"
	"github.com/fsdevblog/virtnum/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// handlerSuite общая обвязка тестов обработчиков: роутер на моках сервисов.
type handlerSuite struct {
	suite.Suite
	router    *gin.Engine
	orders    *mocks.MockOrderServicer
	ledger    *mocks.MockLedgerServicer
	topups    *mocks.MockTopupServicer
	catalog   *mocks.MockCatalogServicer
	stripe    *mocks.MockStripeWebhookParser
	jwtSecret []byte
}

func (s *handlerSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.orders = mocks.NewMockOrderServicer(mockCtrl)
	s.ledger = mocks.NewMockLedgerServicer(mockCtrl)
	s.topups = mocks.NewMockTopupServicer(mockCtrl)
	s.catalog = mocks.NewMockCatalogServicer(mockCtrl)
	s.stripe = mocks.NewMockStripeWebhookParser(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, err := New(RouterArgs{
		Logger:         logger.New(io.Discard),
		OrderService:   s.orders,
		LedgerService:  s.ledger,
		TopupService:   s.topups,
		CatalogService: s.catalog,
		StripeGateway:  s.stripe,
		JWTSecretKey:   s.jwtSecret,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *handlerSuite) token(userID int64, role domain.RoleType) string {
	token, err := tokens.GenerateUserJWT(userID, role, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

// request выполняет запрос к роутеру. Пустой token - запрос без авторизации.
func (s *handlerSuite) request(method, url string, body []byte, token string) *http.Response {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    RouteGroup + url,
	}
	if body != nil {
		args.Body = bytes.NewReader(body)
	}

	reqOpts := []func(*testutils.RequestOptions){
		testutils.WithHeader("Content-Type", "application/json"),
	}
	if token != "" {
		reqOpts = append(reqOpts, testutils.WithHeader("Authorization", "Bearer "+token))
	}

	res, err := testutils.MakeRequest(args, reqOpts...)
	s.Require().NoError(err)
	s.T().Cleanup(func() {
		_ = res.Body.Close()
	})
	return res
}

func (s *handlerSuite) decode(res *http.Response, v any) {
	s.Require().NoError(json.NewDecoder(res.Body).Decode(v))
}

func ptr[T any](v T) *T {
	return &v
}
