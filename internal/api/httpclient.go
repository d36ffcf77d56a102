// Package api implements the HTTP client for the grocery tracking backend.
// Transport failures map to ErrUnavailable, completed non-2xx exchanges to
// *ServerError carrying the server's message, so callers can distinguish
// "offline" from "rejected".
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/freshtrack/freshtrack/internal/models"
)

// HTTPClient talks JSON over HTTP to the backend. It is safe to share a
// single instance; the token is the only mutable field. The session
// manager writes it while refresh goroutines may still be reading it
// (logout does not wait for an in-flight refresh), so access goes
// through the mutex.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://127.0.0.1:5000". The timeout applies per request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues a request and decodes a JSON response into out (if out is
// non-nil). A non-2xx status is returned as *ServerError with the
// "message" field of the body when the server provided one.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// serverMessage pulls the "message" field out of an error body, if any.
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}

func (c *HTTPClient) Register(ctx context.Context, username, password, phoneNumber string) error {
	body := map[string]string{"username": username, "password": password}
	if phoneNumber != "" {
		body["phone_number"] = phoneNumber
	}
	return c.do(ctx, http.MethodPost, "/register", body, nil)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, string, error) {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		AccessToken string `json:"access_token"`
		Username    string `json:"username"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return "", "", err
	}
	return resp.AccessToken, resp.Username, nil
}

func (c *HTTPClient) CheckAuth(ctx context.Context) (string, error) {
	var resp struct {
		Username string `json:"username"`
	}
	if err := c.do(ctx, http.MethodGet, "/check_auth", nil, &resp); err != nil {
		return "", err
	}
	return resp.Username, nil
}

func (c *HTTPClient) ListItems(ctx context.Context) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	if err := c.do(ctx, http.MethodGet, "/get_list", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) ExpiringSoon(ctx context.Context) ([]models.ExpiringItem, error) {
	var items []models.ExpiringItem
	if err := c.do(ctx, http.MethodGet, "/get_expiring_soon", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) ShoppingHistory(ctx context.Context) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	if err := c.do(ctx, http.MethodGet, "/get_shopping_history", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) AddItem(ctx context.Context, name string, shelfLifeDays int) error {
	body := map[string]any{"name": name, "shelf_life": shelfLifeDays}
	return c.do(ctx, http.MethodPost, "/add_item", body, nil)
}

func (c *HTTPClient) UpdateItem(ctx context.Context, id int64, name string, shelfLifeDays int) error {
	body := map[string]any{"name": name, "shelf_life": shelfLifeDays}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/update_item/%d", id), body, nil)
}

func (c *HTTPClient) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/delete_item/%d", id), nil, nil)
}

func (c *HTTPClient) DeleteAllItems(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/delete_all_items", nil, nil)
}

func (c *HTTPClient) Recipes(ctx context.Context, ingredients string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	path := "/get_recipes?ingredients=" + url.QueryEscape(ingredients)
	if err := c.do(ctx, http.MethodGet, path, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}
