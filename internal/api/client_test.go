package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankpilot/bankpilot/internal/backend"
)

func newTestClient(t *testing.T) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(backend.NewServer(backend.Config{AllowedOrigin: "*"}, nil).Router())
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nil), srv
}

func TestCreateSession(t *testing.T) {
	client, _ := newTestClient(t)

	id, err := client.CreateSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	other, err := client.CreateSession(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestListAccounts(t *testing.T) {
	client, _ := newTestClient(t)

	accounts, err := client.ListAccounts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, accounts)
	assert.NotEmpty(t, accounts[0].ID)
	assert.NotEmpty(t, accounts[0].Name)
}

func TestProcessClassifiesQuery(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.Process(context.Background(), "what's my checking balance for account 1001", "banking", "")
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "accounts.balance.check", resp.Intent)
	assert.Equal(t, "1001", resp.Entities["account_id"])
	require.NotNil(t, resp.UIAssistance)
	assert.Equal(t, "navigation", resp.UIAssistance.Type)
}

func TestProcessRejectsEmptyQuery(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Process(context.Background(), "", "banking", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query is required")
}

func TestGetBalanceAndTransactions(t *testing.T) {
	client, _ := newTestClient(t)

	accounts, err := client.ListAccounts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, accounts)
	id := accounts[0].ID

	balance, err := client.GetBalance(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, balance.AccountID)
	assert.NotEmpty(t, balance.Currency)

	txns, err := client.GetTransactions(context.Background(), id, 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(txns), 2)
	for _, txn := range txns {
		assert.Equal(t, id, txn.AccountID)
	}
}

func TestGetBalanceUnknownAccount(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.GetBalance(context.Background(), "no-such-account")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account")
}

func TestFetchRoutes(t *testing.T) {
	client, _ := newTestClient(t)

	configs, err := client.FetchRoutes(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, configs)

	var sawParameterized bool
	for _, cfg := range configs {
		assert.NotEmpty(t, cfg.BaseRoute)
		assert.NotEmpty(t, cfg.IntentID)
		if cfg.HasParameters {
			sawParameterized = true
			assert.NotEmpty(t, cfg.Params)
		}
	}
	assert.True(t, sawParameterized)
}

func TestErrorPayloadDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"error":"teapots cannot bank"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil)
	_, err := client.ListAccounts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teapots cannot bank")
}
