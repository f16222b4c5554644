// Package client — HTTP клиент helpdesk API. Любой сбой — сетевой, не-2xx
// без тела, либо конверт с success:false — нормализуется в *Error с
// человекочитаемым сообщением; вызывающему коду не нужно различать слои.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/psds-microservice/helpdesk-service/internal/model"
)

// Error — единый тип ошибки транспортного слоя.
type Error struct {
	// Status — HTTP-код ответа, 0 если ответа не было.
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound сообщает, что сервер ответил 404 (тикет отсутствует).
func (e *Error) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// envelope — конверт всех ответов API: {success, data?, message?, count?, error?}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Error   string          `json:"error"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Message: "failed to encode request", Err: err}
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &Error{Message: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: "Unable to connect to server. Please check your connection.", Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &Error{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			Err:     err,
		}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}
	return &env, nil
}

// ListOptions — параметры GET /tickets. Пустые значения не передаются.
type ListOptions struct {
	Status string
	SortBy string
	Order  string
}

func (c *Client) List(ctx context.Context, opts ListOptions) ([]model.Ticket, error) {
	q := url.Values{}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.SortBy != "" {
		q.Set("sortBy", opts.SortBy)
	}
	if opts.Order != "" {
		q.Set("order", opts.Order)
	}
	path := "/tickets"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var tickets []model.Ticket
	if err := json.Unmarshal(env.Data, &tickets); err != nil {
		return nil, &Error{Message: "failed to decode ticket list", Err: err}
	}
	return tickets, nil
}

func (c *Client) Get(ctx context.Context, id uint64) (*model.Ticket, error) {
	env, err := c.do(ctx, http.MethodGet, "/tickets/"+strconv.FormatUint(id, 10), nil)
	if err != nil {
		return nil, err
	}
	return decodeTicket(env)
}

// CreateTicketRequest — тело POST /tickets. Статус назначает сервер.
type CreateTicketRequest struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	ContactInformation string `json:"contact_information"`
}

func (c *Client) Create(ctx context.Context, req CreateTicketRequest) (*model.Ticket, error) {
	env, err := c.do(ctx, http.MethodPost, "/tickets", req)
	if err != nil {
		return nil, err
	}
	return decodeTicket(env)
}

// UpdateStatus переводит тикет в новый статус и возвращает строку в том виде,
// в каком её сохранил сервер (авторитетный updated_at).
func (c *Client) UpdateStatus(ctx context.Context, id uint64, status model.TicketStatus) (*model.Ticket, error) {
	body := map[string]string{"status": string(status)}
	env, err := c.do(ctx, http.MethodPut, "/tickets/"+strconv.FormatUint(id, 10), body)
	if err != nil {
		return nil, err
	}
	return decodeTicket(env)
}

func decodeTicket(env *envelope) (*model.Ticket, error) {
	var t model.Ticket
	if err := json.Unmarshal(env.Data, &t); err != nil {
		return nil, &Error{Message: "failed to decode ticket", Err: err}
	}
	return &t, nil
}
