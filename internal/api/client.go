package api

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

	"go.uber.org/zap"

	"github.com/bankpilot/bankpilot/internal/models"
)

// Client talks JSON over REST to the assistant backend. Every call is a
// single attempt: failures are terminal for that action and surface to the
// user, there is no retry policy.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type errorPayload struct {
	Error string `json:"error"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ep errorPayload
		_ = json.NewDecoder(resp.Body).Decode(&ep)
		if ep.Error == "" {
			ep.Error = resp.Status
		}
		c.logger.Warn("backend error", zap.String("path", path), zap.Int("status", resp.StatusCode), zap.String("error", ep.Error))
		return fmt.Errorf("%s %s: %s", method, path, ep.Error)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// CreateSession asks the backend for a new conversation session.
func (c *Client) CreateSession(ctx context.Context) (string, error) {
	var out struct {
		SessionID string `json:"session_id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/session", struct{}{}, &out); err != nil {
		return "", err
	}
	return out.SessionID, nil
}

func (c *Client) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var out struct {
		Accounts []models.Account `json:"accounts"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/accounts", nil, &out); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

type processRequest struct {
	Query     string `json:"query"`
	UIContext string `json:"ui_context"`
	SessionID string `json:"session_id,omitempty"`
}

// Process submits a user query for classification. An empty sessionID
// requests a fresh, disposable session.
func (c *Client) Process(ctx context.Context, query, uiContext, sessionID string) (models.ProcessResponse, error) {
	var out models.ProcessResponse
	req := processRequest{Query: query, UIContext: uiContext, SessionID: sessionID}
	if err := c.doJSON(ctx, http.MethodPost, "/api/process", req, &out); err != nil {
		return models.ProcessResponse{}, err
	}
	return out, nil
}

func (c *Client) GetBalance(ctx context.Context, accountID string) (models.AccountBalance, error) {
	var out models.AccountBalance
	path := "/api/accounts/" + url.PathEscape(accountID) + "/balance"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return models.AccountBalance{}, err
	}
	return out, nil
}

func (c *Client) GetTransactions(ctx context.Context, accountID string, limit int) ([]models.Transaction, error) {
	var out struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	path := "/api/accounts/" + url.PathEscape(accountID) + "/transactions"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// FetchRoutes pulls the backend's route catalog for remote hydration.
func (c *Client) FetchRoutes(ctx context.Context) ([]models.RouteConfig, error) {
	var out struct {
		Routes []models.RouteConfig `json:"routes"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/routes", nil, &out); err != nil {
		return nil, err
	}
	return out.Routes, nil
}
