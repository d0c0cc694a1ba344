// Package fivesim адаптер JSON API провайдера с активациями по стране, оператору и продукту.
package fivesim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/fsdevblog/virtnum/internal/provider"
	"github.com/pkg/errors"
)

const (
	RouteBuyActivation = "/v1/user/buy/activation/%s/%s/%s"
	RouteCheckOrder    = "/v1/user/check/%s"
)

const (
	opOrderNumber = "order_number"
	opGetSMS      = "get_sms"
)

// Статусы заказа на стороне провайдера.
const (
	statusPending  = "PENDING"
	statusReceived = "RECEIVED"
	statusCanceled = "CANCELED"
	statusTimeout  = "TIMEOUT"
	statusFinished = "FINISHED"
	statusBanned   = "BANNED"
)

var errUnexpectedResponse = errors.New("unexpected response")

// flexString принимает как строковое, так и числовое JSON значение.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err //nolint:wrapcheck
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err //nolint:wrapcheck
	}
	*f = flexString(n.String())
	return nil
}

type sms struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// orderResponse ответ провайдера. Разные версии API отдают id или order_id, phone или number.
type orderResponse struct {
	ID      flexString `json:"id"`
	OrderID flexString `json:"order_id"`
	Phone   string     `json:"phone"`
	Number  string     `json:"number"`
	Status  string     `json:"status"`
	SMS     []sms      `json:"sms"`
}

func (r *orderResponse) providerOrderID() string {
	if r.ID != "" {
		return string(r.ID)
	}
	return string(r.OrderID)
}

func (r *orderResponse) phone() string {
	if r.Phone != "" {
		return r.Phone
	}
	return r.Number
}

type Client struct {
	baseURL    string
	apiKey     string
	country    string
	operator   string
	httpClient *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		country:    "any",
		operator:   "any",
		httpClient: &http.Client{Timeout: 30 * time.Second}, //nolint:mnd
	}
}

func (c *Client) SetCountry(country, operator string) *Client {
	c.country = country
	c.operator = operator
	return c
}

func (c *Client) SetHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// OrderNumber покупает активацию для продукта serviceCode.
func (c *Client) OrderNumber(ctx context.Context, serviceCode string) (*provider.Allocation, error) {
	var resp orderResponse
	if err := c.get(ctx, opOrderNumber, sprintfPath(RouteBuyActivation, c.country, c.operator, serviceCode), &resp); err != nil {
		return nil, err
	}

	id, phone := resp.providerOrderID(), resp.phone()
	if id == "" || phone == "" {
		return nil, provider.NewPermanentError(domain.ProviderB, opOrderNumber, errUnexpectedResponse)
	}
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}
	return &provider.Allocation{ProviderOrderID: id, Number: phone}, nil
}

// GetSMS проверяет заказ. Заказ, неизвестный провайдеру (404), считается истекшим.
func (c *Client) GetSMS(ctx context.Context, providerOrderID string) (*provider.SMSResult, error) {
	var resp orderResponse
	if err := c.get(ctx, opGetSMS, sprintfPath(RouteCheckOrder, providerOrderID), &resp); err != nil {
		if provider.IsNotFound(err) {
			return &provider.SMSResult{Status: provider.SMSExpired}, nil
		}
		return nil, err
	}

	for _, m := range resp.SMS {
		if m.Code != "" {
			return &provider.SMSResult{Status: provider.SMSReceived, Code: m.Code}, nil
		}
	}

	switch resp.Status {
	case statusPending, statusReceived, statusFinished:
		// RECEIVED без смс означает, что номер выдан и ждет сообщения.
		return &provider.SMSResult{Status: provider.SMSPending}, nil
	case statusCanceled, statusTimeout, statusBanned:
		return &provider.SMSResult{Status: provider.SMSExpired}, nil
	default:
		return nil, provider.NewTransientError(domain.ProviderB, opGetSMS,
			errors.Wrapf(errUnexpectedResponse, "status %q", resp.Status))
	}
}

func (c *Client) get(ctx context.Context, op, path string, dst any) error {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if reqErr != nil {
		return provider.NewPermanentError(domain.ProviderB, op, errors.Wrap(reqErr, "create request"))
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	body, err := provider.Do(ctx, c.httpClient, domain.ProviderB, op, req)
	if err != nil {
		return err //nolint:wrapcheck
	}

	// На ошибки бизнес-логики (нет номеров, нет баланса) провайдер отвечает 200 с текстом вместо JSON.
	if len(body) == 0 || body[0] != '{' {
		return provider.NewPermanentError(domain.ProviderB, op, errors.New(strings.TrimSpace(string(body))))
	}
	if jsonErr := json.Unmarshal(body, dst); jsonErr != nil {
		return provider.NewPermanentError(domain.ProviderB, op, errors.Wrap(jsonErr, "parse response"))
	}
	return nil
}

func sprintfPath(format string, parts ...string) string {
	args := make([]any, len(parts))
	for i, p := range parts {
		args[i] = url.PathEscape(p)
	}
	return fmt.Sprintf(format, args...)
}
