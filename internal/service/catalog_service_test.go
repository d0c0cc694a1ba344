package service

import (
	"errors"
	"io"
	"testing"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/repository/repoargs"
	"github.com/fsdevblog/virtnum/internal/service/mocks"
	"github.com/fsdevblog/virtnum/pkg/uow"
	uowmocks "github.com/fsdevblog/virtnum/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockServiceRepo *mocks.MockServiceRepository
	mockCache       *mocks.MockServiceCache
	catalog         *CatalogService
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockServiceRepo = mocks.NewMockServiceRepository(s.mockCtrl)
	s.mockCache = mocks.NewMockServiceCache(s.mockCtrl)

	mockUOW := uowmocks.NewMockUOW(s.mockCtrl)
	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ServiceRepoName)).
		Return(s.mockServiceRepo, nil)

	l := logrus.New()
	l.SetOutput(io.Discard)

	catalog, err := NewCatalogService(mockUOW, s.mockCache, l)
	s.Require().NoError(err)
	s.catalog = catalog
}

func (s *CatalogServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CatalogServiceTestSuite) TestLookupCacheHit() {
	svc := &domain.Service{ID: 1, Code: "tg", Price: decimal.NewFromInt(2)}
	s.mockCache.EXPECT().Get(gomock.Any(), int64(1)).Return(svc, nil)

	got, err := s.catalog.Lookup(s.T().Context(), 1)
	s.Require().NoError(err)
	s.Equal(svc, got)
}

func (s *CatalogServiceTestSuite) TestLookupCacheMiss() {
	svc := &domain.Service{ID: 1, Code: "tg", Price: decimal.NewFromInt(2)}
	gomock.InOrder(
		s.mockCache.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, domain.ErrRecordNotFound),
		s.mockServiceRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(svc, nil),
		s.mockCache.EXPECT().Add(gomock.Any(), svc).Return(nil),
	)

	got, err := s.catalog.Lookup(s.T().Context(), 1)
	s.Require().NoError(err)
	s.Equal(svc, got)
}

func (s *CatalogServiceTestSuite) TestLookupCacheFailureFallsBackToRepository() {
	svc := &domain.Service{ID: 1}
	s.mockCache.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, errors.New("redis down"))
	s.mockServiceRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(svc, nil)
	s.mockCache.EXPECT().Add(gomock.Any(), svc).Return(errors.New("redis down"))

	got, err := s.catalog.Lookup(s.T().Context(), 1)
	s.Require().NoError(err)
	s.Equal(svc, got)
}

func (s *CatalogServiceTestSuite) TestLookupNotFound() {
	s.mockCache.EXPECT().Get(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)
	s.mockServiceRepo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound)

	_, err := s.catalog.Lookup(s.T().Context(), 404)
	s.ErrorIs(err, domain.ErrServiceNotFound)
}

func (s *CatalogServiceTestSuite) TestSetPriceRefreshesCache() {
	price := decimal.RequireFromString("3.10")
	updated := &domain.Service{ID: 1, Price: price}
	gomock.InOrder(
		s.mockServiceRepo.EXPECT().UpdatePrice(gomock.Any(), int64(1), price).Return(updated, nil),
		s.mockCache.EXPECT().Set(gomock.Any(), updated).Return(nil),
	)

	svc, err := s.catalog.SetPrice(s.T().Context(), 1, price)
	s.Require().NoError(err)
	s.True(price.Equal(svc.Price))
}

func (s *CatalogServiceTestSuite) TestSetPriceInvalidatesOnCacheFailure() {
	price := decimal.RequireFromString("3.10")
	updated := &domain.Service{ID: 1, Price: price}
	gomock.InOrder(
		s.mockServiceRepo.EXPECT().UpdatePrice(gomock.Any(), int64(1), price).Return(updated, nil),
		s.mockCache.EXPECT().Set(gomock.Any(), updated).Return(errors.New("redis down")),
		s.mockCache.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil),
	)

	_, err := s.catalog.SetPrice(s.T().Context(), 1, price)
	s.Require().NoError(err)
}

func (s *CatalogServiceTestSuite) TestSetPriceRejectsNegative() {
	_, err := s.catalog.SetPrice(s.T().Context(), 1, decimal.NewFromInt(-1))
	s.ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *CatalogServiceTestSuite) TestSetPriceRejectsSubCent() {
	_, err := s.catalog.SetPrice(s.T().Context(), 1, decimal.RequireFromString("1.999"))
	s.ErrorIs(err, domain.ErrInvalidAmount)
}
