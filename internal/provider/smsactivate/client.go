// Package smsactivate адаптер провайдера с текстовым протоколом handler_api (ACCESS_NUMBER, STATUS_OK ...).
package smsactivate

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/provider"
	"github.com/pkg/errors"
)

const RouteHandlerAPI = "/stubs/handler_api.php"

const (
	opOrderNumber = "order_number"
	opGetSMS      = "get_sms"
)

// Ответы API.
const (
	respAccessNumber  = "ACCESS_NUMBER"
	respStatusOK      = "STATUS_OK"
	respWaitCode      = "STATUS_WAIT_CODE"
	respWaitRetry     = "STATUS_WAIT_RETRY"
	respWaitResend    = "STATUS_WAIT_RESEND"
	respStatusCancel  = "STATUS_CANCEL"
	respNoActivation  = "NO_ACTIVATION"
	respNoNumbers     = "NO_NUMBERS"
	respErrorSQL      = "ERROR_SQL"
	respBadKey        = "BAD_KEY"
	respNoBalance     = "NO_BALANCE"
	respBadService    = "BAD_SERVICE"
	respBadAction     = "BAD_ACTION"
	respBannedAccount = "BANNED"
)

var errUnexpectedResponse = errors.New("unexpected response")

type Client struct {
	baseURL    string
	apiKey     string
	country    string
	httpClient *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second}, //nolint:mnd
	}
}

// SetCountry задает код страны для аренды номеров. По умолчанию страну выбирает провайдер.
func (c *Client) SetCountry(country string) *Client {
	c.country = country
	return c
}

// SetHTTPClient подменяет http клиент (тесты, прокси).
func (c *Client) SetHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// OrderNumber арендует номер. Успешный ответ имеет вид ACCESS_NUMBER:$id:$number.
func (c *Client) OrderNumber(ctx context.Context, serviceCode string) (*provider.Allocation, error) {
	params := url.Values{"action": {"getNumber"}, "service": {serviceCode}}
	if c.country != "" {
		params.Set("country", c.country)
	}
	body, err := c.call(ctx, opOrderNumber, params)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(body, ":")
	if parts[0] == respAccessNumber && len(parts) == 3 && parts[1] != "" && parts[2] != "" {
		return &provider.Allocation{ProviderOrderID: parts[1], Number: normalizeNumber(parts[2])}, nil
	}
	return nil, c.classify(opOrderNumber, body)
}

// GetSMS запрашивает статус активации.
func (c *Client) GetSMS(ctx context.Context, providerOrderID string) (*provider.SMSResult, error) {
	body, err := c.call(ctx, opGetSMS, url.Values{"action": {"getStatus"}, "id": {providerOrderID}})
	if err != nil {
		return nil, err
	}

	status, rest, _ := strings.Cut(body, ":")
	switch status {
	case respStatusOK:
		if rest == "" {
			return nil, provider.NewTransientError(domain.ProviderA, opGetSMS, errors.Wrap(errUnexpectedResponse, body))
		}
		return &provider.SMSResult{Status: provider.SMSReceived, Code: rest}, nil
	case respWaitCode, respWaitRetry, respWaitResend:
		return &provider.SMSResult{Status: provider.SMSPending}, nil
	case respStatusCancel, respNoActivation:
		return &provider.SMSResult{Status: provider.SMSExpired}, nil
	default:
		return nil, c.classify(opGetSMS, body)
	}
}

func (c *Client) call(ctx context.Context, op string, params url.Values) (string, error) {
	params.Set("api_key", c.apiKey)
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+RouteHandlerAPI+"?"+params.Encode(), nil)
	if reqErr != nil {
		return "", provider.NewPermanentError(domain.ProviderA, op, errors.Wrap(reqErr, "create request"))
	}
	body, err := provider.Do(ctx, c.httpClient, domain.ProviderA, op, req)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	return strings.TrimSpace(string(body)), nil
}

// classify переводит текстовые ошибки API в *provider.Error.
func (c *Client) classify(op, body string) error {
	switch {
	case body == respErrorSQL:
		return provider.NewTransientError(domain.ProviderA, op, errors.New(body))
	case body == respNoNumbers, body == respBadKey, body == respNoBalance, body == respBadService,
		body == respBadAction, strings.HasPrefix(body, respBannedAccount):
		return provider.NewPermanentError(domain.ProviderA, op, errors.New(body))
	default:
		return provider.NewPermanentError(domain.ProviderA, op, errors.Wrap(errUnexpectedResponse, body))
	}
}

func normalizeNumber(n string) string {
	if strings.HasPrefix(n, "+") {
		return n
	}
	return "+" + n
}
