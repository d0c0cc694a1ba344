package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TopupsHandlerTestSuite struct {
	handlerSuite
}

func TestTopupsHandlerSuite(t *testing.T) {
	suite.Run(t, new(TopupsHandlerTestSuite))
}

func (s *TopupsHandlerTestSuite) TestCreate() {
	var userID int64 = 1
	token := s.token(userID, domain.RoleUser)

	amount := decimal.RequireFromString("25.50")
	s.topups.EXPECT().
		Initiate(gomock.Any(), userID, gomock.AssignableToTypeOf(decimal.Decimal{})).
		DoAndReturn(func(_ any, _ int64, got decimal.Decimal) (*domain.Topup, error) {
			s.True(got.Equal(amount))
			return &domain.Topup{
				ID:          7,
				CreatedAt:   time.Now(),
				UserID:      userID,
				Amount:      got,
				ExternalRef: "ref-7",
				Status:      domain.TopupStatusPending,
			}, nil
		})

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "all ok", payload: `{"amount":"25.50"}`, wantStatus: http.StatusCreated},
		{name: "zero amount", payload: `{"amount":0}`, wantStatus: http.StatusBadRequest},
		{name: "negative amount", payload: `{"amount":-5}`, wantStatus: http.StatusBadRequest},
		{name: "sub-cent amount", payload: `{"amount":"10.005"}`, wantStatus: http.StatusBadRequest},
		{name: "no amount", payload: `{}`, wantStatus: http.StatusBadRequest},
		{name: "broken json", payload: `{"amount":`, wantStatus: http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, TopupsRoute, []byte(t.payload), token)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusCreated {
				var topup TopupResponse
				s.decode(res, &topup)
				s.Equal("ref-7", topup.ExternalRef)
				s.Equal(domain.TopupStatusPending, topup.Status)
				s.InEpsilon(25.5, topup.Amount, 1e-9)
			}
		})
	}
}

func (s *TopupsHandlerTestSuite) TestIndex() {
	var userID int64 = 1
	s.topups.EXPECT().GetByUserID(gomock.Any(), userID).Return([]domain.Topup{
		{ID: 2, UserID: userID, Amount: decimal.NewFromInt(10), ExternalRef: "b", Status: domain.TopupStatusPaid},
		{ID: 1, UserID: userID, Amount: decimal.NewFromInt(5), ExternalRef: "a", Status: domain.TopupStatusFailed},
	}, nil)
	s.topups.EXPECT().GetByUserID(gomock.Any(), int64(2)).Return([]domain.Topup{}, nil)

	res := s.request(http.MethodGet, TopupsRoute, nil, s.token(userID, domain.RoleUser))
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var topups []TopupResponse
	s.decode(res, &topups)
	s.Require().Len(topups, 2)
	s.Equal(domain.TopupStatusPaid, topups[0].Status)

	res = s.request(http.MethodGet, TopupsRoute, nil, s.token(2, domain.RoleUser))
	s.Equal(http.StatusNoContent, res.StatusCode)
}
