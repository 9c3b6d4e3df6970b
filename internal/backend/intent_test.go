package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"what's my balance", "accounts.balance.check"},
		{"show me my accounts", "accounts.balance.check"},
		{"wire $500 to my landlord", "transfers.wire.initiate"},
		{"transfer money to savings", "transfers.internal.execute"},
		{"pay my electricity bill", "payments.bill.pay"},
		{"what did I spend last week", "transactions.search"},
		{"tell me a joke", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := DetectIntent(tt.query)
		assert.Equal(t, tt.want, got.ID, "query: %s", tt.query)
		if tt.want != "" {
			assert.Greater(t, got.Confidence, 0.0)
		}
	}
}

func TestExtractEntities(t *testing.T) {
	entities := ExtractEntities("check my savings account 1002 balance, I sent $42.50 yesterday")
	require.NotNil(t, entities)
	assert.Equal(t, "1002", entities["account_id"])
	assert.Equal(t, "savings", entities["account_type"])
	assert.Equal(t, "42.50", entities["amount"])

	assert.Nil(t, ExtractEntities("hello there"))
}

func TestClassifyBuildsAssistance(t *testing.T) {
	resp := Classify("what's the balance on account 1001")
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "accounts.balance.check", resp.Intent)
	assert.Equal(t, "1001", resp.Entities["account_id"])
	require.NotNil(t, resp.UIAssistance)
	assert.Equal(t, "navigation", resp.UIAssistance.Type)

	wire := Classify("wire $100 to mom")
	require.NotNil(t, wire.UIAssistance)
	assert.Equal(t, "transaction_form", wire.UIAssistance.Type)
	require.NotNil(t, wire.UIAssistance.FormConfig)
	assert.Equal(t, "wire-transfer", wire.UIAssistance.FormConfig.FormID)

	unknown := Classify("tell me a joke")
	assert.Empty(t, unknown.Intent)
	assert.Nil(t, unknown.UIAssistance)
	assert.NotEmpty(t, unknown.Message)
}
