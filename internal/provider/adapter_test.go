package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/stretchr/testify/suite"
)

type ProviderTestSuite struct {
	suite.Suite
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}

func (s *ProviderTestSuite) TestIsTransient() {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "transient", err: NewTransientError(domain.ProviderA, "op", errors.New("x")), want: true},
		{name: "wrapped transient", err: fmt.Errorf("buy: %w", NewTransientError(domain.ProviderA, "op", nil)), want: true},
		{name: "permanent", err: NewPermanentError(domain.ProviderB, "op", errors.New("x")), want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "canceled", err: context.Canceled, want: false},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			s.Equal(t.want, IsTransient(t.err))
		})
	}
}

func (s *ProviderTestSuite) TestRegistry() {
	r := NewRegistry()
	_, err := r.Get(domain.ProviderA)
	s.ErrorIs(err, ErrUnknownProvider)
}

func (s *ProviderTestSuite) TestDoRetryAfter() {
	cases := []struct {
		header string
		want   time.Duration
	}{
		{header: "5", want: 5 * time.Second},
		{header: "0", want: defaultRetryAfter},
		{header: "abc", want: defaultRetryAfter},
		{header: "1000", want: defaultRetryAfter},
	}
	for _, t := range cases {
		s.Run(t.header, func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Retry-After", t.header)
				w.WriteHeader(http.StatusTooManyRequests)
			}))
			defer server.Close()

			req, err := http.NewRequest(http.MethodGet, server.URL, nil)
			s.Require().NoError(err)

			_, doErr := Do(s.T().Context(), server.Client(), domain.ProviderA, "op", req)
			var pErr *Error
			s.Require().ErrorAs(doErr, &pErr)
			s.Equal(KindTransient, pErr.Kind)
			s.Equal(t.want, pErr.RetryAfter)
		})
	}
}

func (s *ProviderTestSuite) TestDoNotFound() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	s.Require().NoError(err)

	_, doErr := Do(s.T().Context(), server.Client(), domain.ProviderB, "op", req)
	s.True(IsNotFound(doErr))
	s.False(IsTransient(doErr))
}
