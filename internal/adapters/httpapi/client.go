// Package httpapi is the HTTP client for the remote storefront API.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/mahabubulhasibshawon/dexter-storefront.git/internal/domain"
)

const maxResponseBytes = 8 << 20

type ClientConfig struct {
	// BaseURL is the API root including its base path, e.g. http://host/api.
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logrus.Entry
}

// Client implements ports.GatewayPort. It holds no session state; every
// authenticated call receives the bearer token from the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logrus.Entry
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		log:        log.WithField("component", "httpapi"),
	}
}

type request struct {
	method string
	path   string
	query  url.Values
	body   interface{}
	bearer bool
	token  string
}

type response struct {
	status int
	body   []byte
}

func (c *Client) do(ctx context.Context, r request) (*response, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var bodyReader io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// sent even when no token is held; the server rejects it
	if r.bearer {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	c.log.WithFields(logrus.Fields{
		"method":   r.method,
		"path":     r.path,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("api call")

	return &response{status: resp.StatusCode, body: body}, nil
}

// parse validates a JSON body and maps 401 and non-success statuses to errors.
func parse(resp *response, bearer bool) (gjson.Result, error) {
	if bearer && resp.status == http.StatusUnauthorized {
		return gjson.Result{}, domain.ErrUnauthorized
	}
	if !gjson.ValidBytes(resp.body) {
		if resp.status >= 400 {
			return gjson.Result{}, fmt.Errorf("request failed with status %d", resp.status)
		}
		return gjson.Result{}, fmt.Errorf("invalid JSON response (status %d)", resp.status)
	}
	res := gjson.ParseBytes(resp.body)
	if failure := envelopeError(res); failure != nil {
		return res, failure
	}
	if resp.status >= 400 {
		return res, fmt.Errorf("request failed with status %d", resp.status)
	}
	return res, nil
}

// envelopeError reports {success:false, error:{message}} bodies.
func envelopeError(res gjson.Result) error {
	if !res.IsObject() {
		return nil
	}
	success := res.Get("success")
	if !success.Exists() || success.Bool() {
		return nil
	}
	errField := res.Get("error")
	msg := errField.Get("message").String()
	if !errField.IsObject() {
		msg = errField.String()
	}
	return &domain.APIError{Message: msg}
}

func decode(res gjson.Result, target interface{}) error {
	if !res.Exists() || res.Type == gjson.Null {
		return nil
	}
	if err := json.Unmarshal([]byte(res.Raw), target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	resp, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/login",
		body:   map[string]string{"email": email, "password": password},
	})
	if err != nil {
		return nil, err
	}
	res, err := parse(resp, false)
	if err != nil {
		return nil, err
	}
	if !res.Get("success").Bool() {
		return nil, &domain.APIError{Message: res.Get("error.message").String()}
	}

	result := &domain.LoginResult{Token: res.Get("customer_token").String()}
	if !res.Get("customer").IsObject() {
		return nil, fmt.Errorf("login response carried no customer")
	}
	if err := decode(res.Get("customer"), &result.Customer); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/logout",
		bearer: true,
		token:  token,
	})
	return err
}

// ListStores accepts both a bare array and a {success, stores} envelope.
func (c *Client) ListStores(ctx context.Context, token string) ([]domain.Store, error) {
	resp, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/stores",
		bearer: true,
		token:  token,
	})
	if err != nil {
		return nil, err
	}
	res, err := parse(resp, true)
	if err != nil {
		return nil, err
	}

	list := res
	if res.IsObject() {
		list = res.Get("stores")
	}
	if list.Exists() && !list.IsArray() && list.Type != gjson.Null {
		return nil, fmt.Errorf("unexpected stores response")
	}
	stores := []domain.Store{}
	if err := decode(list, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (c *Client) ListProducts(ctx context.Context, token string, storeID domain.NumericID, page, limit int) (*domain.ProductPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("store_id", storeID.String())

	resp, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/products",
		query:  q,
		bearer: true,
		token:  token,
	})
	if err != nil {
		return nil, err
	}
	res, err := parse(resp, true)
	if err != nil {
		return nil, err
	}

	out := &domain.ProductPage{Items: []domain.Product{}, Page: page}
	if err := decode(res.Get("products"), &out.Items); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []domain.Product{}
	}
	return out, nil
}

func (c *Client) ListOrders(ctx context.Context, token string, page, limit int) (*domain.OrderPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	resp, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/orders",
		query:  q,
		bearer: true,
		token:  token,
	})
	if err != nil {
		return nil, err
	}
	res, err := parse(resp, true)
	if err != nil {
		return nil, err
	}

	out := &domain.OrderPage{Items: []domain.Order{}, CurrentPage: page, TotalPages: page}
	if err := decode(res.Get("orders"), &out.Items); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []domain.Order{}
	}
	if cp := res.Get("pagination.current_page"); cp.Exists() {
		out.CurrentPage = int(cp.Int())
	}
	if tp := res.Get("pagination.total_pages"); tp.Exists() {
		out.TotalPages = int(tp.Int())
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, payload domain.OrderPayload) error {
	resp, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/custom_order",
		body:   payload,
		bearer: true,
		token:  token,
	})
	if err != nil {
		return err
	}
	res, err := parse(resp, true)
	if err != nil {
		return err
	}
	if !res.Get("success").Bool() {
		return &domain.APIError{Message: res.Get("error.message").String()}
	}
	return nil
}
