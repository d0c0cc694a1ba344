package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BalanceHandlerTestSuite struct {
	handlerSuite
}

func TestBalanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(BalanceHandlerTestSuite))
}

func (s *BalanceHandlerTestSuite) TestIndex() {
	var userID int64 = 1
	s.ledger.EXPECT().Balance(gomock.Any(), userID).Return(decimal.RequireFromString("42.10"), nil)
	s.ledger.EXPECT().Balance(gomock.Any(), int64(2)).Return(decimal.Zero, errors.New("db is down"))

	res := s.request(http.MethodGet, BalanceRoute, nil, s.token(userID, domain.RoleUser))
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var balance BalanceResponse
	s.decode(res, &balance)
	s.InEpsilon(42.1, balance.Current, 1e-9)

	res = s.request(http.MethodGet, BalanceRoute, nil, s.token(2, domain.RoleUser))
	s.Equal(http.StatusInternalServerError, res.StatusCode)
	var body map[string]string
	s.decode(res, &body)
	s.Equal("internal server error", body["error"])

	res = s.request(http.MethodGet, BalanceRoute, nil, "")
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *BalanceHandlerTestSuite) TestEntries() {
	var userID int64 = 1
	now := time.Now()
	s.ledger.EXPECT().Entries(gomock.Any(), userID).Return([]domain.LedgerEntry{
		{ID: 2, CreatedAt: now, UserID: userID, Delta: decimal.NewFromInt(-10), Reason: domain.LedgerReasonPurchase, ReferenceID: 5},
		{ID: 1, CreatedAt: now, UserID: userID, Delta: decimal.NewFromInt(50), Reason: domain.LedgerReasonTopup, ReferenceID: 3},
	}, nil)
	s.ledger.EXPECT().Entries(gomock.Any(), int64(2)).Return(nil, nil)

	res := s.request(http.MethodGet, BalanceEntriesRoute, nil, s.token(userID, domain.RoleUser))
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var entries []EntryResponseItem
	s.decode(res, &entries)
	s.Require().Len(entries, 2)
	s.InEpsilon(-10.0, entries[0].Delta, 1e-9)
	s.Equal(domain.LedgerReasonPurchase, entries[0].Reason)
	s.Equal(int64(5), entries[0].ReferenceID)

	res = s.request(http.MethodGet, BalanceEntriesRoute, nil, s.token(2, domain.RoleUser))
	s.Equal(http.StatusNoContent, res.StatusCode)
}
