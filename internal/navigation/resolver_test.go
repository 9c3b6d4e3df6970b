package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/internal/routes"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(routes.Load(), nil)
}

func scalar(v string) models.Entity {
	return models.Entity{Kind: models.EntityScalar, Value: v}
}

func TestMapIntentWithoutEntitiesFallsBackToOverview(t *testing.T) {
	r := newResolver(t)

	target := r.MapIntentToNavigation("accounts.balance.check", nil)
	require.NotNil(t, target)
	assert.Equal(t, "/banking/accounts", target.Path)
	assert.Equal(t, "AccountsOverview", target.Route.Component)
	assert.False(t, target.RequiresEntities)
}

func TestMapIntentWithAccountIDPrefersDetailRoute(t *testing.T) {
	r := newResolver(t)

	target := r.MapIntentToNavigation("accounts.balance.check", map[string]models.Entity{
		"account_id": scalar("123"),
	})
	require.NotNil(t, target)
	assert.Equal(t, "/banking/accounts/123", target.Path)
	assert.Equal(t, map[string]string{"accountId": "123"}, target.Params)
	assert.Equal(t, "Account Details", target.Title)
	assert.True(t, target.RequiresEntities)
}

func TestMapIntentWithAccountTypeBuildsDynamicTitle(t *testing.T) {
	r := newResolver(t)

	target := r.MapIntentToNavigation("accounts.balance.check", map[string]models.Entity{
		"account_id":   scalar("456"),
		"account_type": scalar("savings"),
	})
	require.NotNil(t, target)
	assert.Equal(t, "/banking/accounts/456", target.Path)
	assert.Equal(t, "Savings Account Details", target.Title)
}

func TestMapIntentUnknownReturnsNil(t *testing.T) {
	r := newResolver(t)
	assert.Nil(t, r.MapIntentToNavigation("crypto.trade.execute", nil))
}

func TestMapIntentLegacySubstringFallback(t *testing.T) {
	r := newResolver(t)

	target := r.MapIntentToNavigation("accounts.list", nil)
	require.NotNil(t, target)
	assert.Equal(t, "/banking/accounts", target.Path)
}

func TestCanNavigateOnlyFromBankingView(t *testing.T) {
	r := newResolver(t)

	assert.True(t, r.CanNavigate("accounts.balance.check", models.TabBanking))
	assert.False(t, r.CanNavigate("accounts.balance.check", models.TabChat))
	assert.False(t, r.CanNavigate("accounts.balance.check", models.TabTransaction))
}

func TestNavigateSuppressedOutsideBanking(t *testing.T) {
	r := newResolver(t)

	result := r.Navigate("accounts.balance.check", "", nil, models.TabChat)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestNavigateExplicitRoutePathWins(t *testing.T) {
	r := newResolver(t)

	result := r.Navigate("accounts.balance.check", "/banking/transfers/wire", nil, models.TabBanking)
	require.True(t, result.Success)
	assert.Equal(t, "/banking/transfers/wire", result.Path)
	assert.Equal(t, "WireTransferForm", result.Component)
}

func TestNavigateExplicitUnknownRouteFails(t *testing.T) {
	r := newResolver(t)

	result := r.Navigate("accounts.balance.check", "/banking/crypto", nil, models.TabBanking)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "/banking/crypto")
}

func TestNavigateExplicitParameterizedPathExtractsParams(t *testing.T) {
	r := newResolver(t)

	result := r.Navigate("", "/banking/accounts/777", nil, models.TabBanking)
	require.True(t, result.Success)
	assert.Equal(t, "AccountDetails", result.Component)
	assert.Equal(t, map[string]string{"accountId": "777"}, result.Params)
}

func TestNavigateUnresolvedRoutePathFallsThroughToIntent(t *testing.T) {
	r := newResolver(t)

	// A literal placeholder in route_path is never navigable as-is; the
	// resolver falls back to intent lookup, which lands on the overview.
	result := r.Navigate("accounts.balance.check", "/banking/accounts/:accountId", nil, models.TabBanking)
	require.True(t, result.Success)
	assert.Equal(t, "/banking/accounts", result.Path)
}

func TestNavigateUnknownIntentFails(t *testing.T) {
	r := newResolver(t)

	result := r.Navigate("crypto.trade.execute", "", nil, models.TabBanking)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "crypto.trade.execute")
}
