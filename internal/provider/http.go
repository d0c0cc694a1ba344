package provider

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/pkg/errors"
)

// Границы значения заголовка Retry-After в секундах.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 30 * time.Second
	maxBodySize       = 1 << 20
)

// StatusCodeError неожиданный http статус ответа провайдера.
type StatusCodeError struct {
	Code int
	Body string
}

func (e *StatusCodeError) Error() string {
	return "unexpected status code " + strconv.Itoa(e.Code) + ": " + e.Body
}

// Do выполняет запрос и возвращает тело ответа со статусом 2xx. Сетевые ошибки, 429 и 5xx возвращаются как
// временные *Error, 404 как *Error постоянного типа с *StatusCodeError внутри, остальное - постоянные ошибки.
//
//nolint:nonamedreturns
func Do(
	ctx context.Context,
	client *http.Client,
	p domain.ProviderType,
	op string,
	req *http.Request,
) (body []byte, err error) {
	resp, doErr := client.Do(req.WithContext(ctx))
	if doErr != nil {
		return nil, NewTransientError(p, op, errors.Wrap(doErr, "do request"))
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = NewTransientError(p, op, errors.Wrap(closeErr, "close body"))
		}
	}()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if readErr != nil {
		return nil, NewTransientError(p, op, errors.Wrap(readErr, "read response"))
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		e := NewTransientError(p, op, &StatusCodeError{Code: resp.StatusCode, Body: string(body)})
		e.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, e
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, NewTransientError(p, op, &StatusCodeError{Code: resp.StatusCode, Body: string(body)})
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, NewPermanentError(p, op, &StatusCodeError{Code: resp.StatusCode, Body: string(body)})
	}
	return body, nil
}

// IsNotFound сообщает, что провайдер ответил 404.
func IsNotFound(err error) bool {
	var sErr *StatusCodeError
	return errors.As(err, &sErr) && sErr.Code == http.StatusNotFound
}

func parseRetryAfter(v string) time.Duration {
	sec, err := strconv.Atoi(v)
	if err != nil || sec < minRetryAfter || sec > maxRetryAfter {
		return defaultRetryAfter
	}
	return time.Duration(sec) * time.Second
}
