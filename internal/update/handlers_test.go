package update

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankpilot/bankpilot/internal/eventbus"
	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/internal/routes"
)

func newTestModel() (*models.AppModel, *routes.Catalog, *eventbus.EventBus) {
	catalog := routes.Load()
	appModel := &models.AppModel{
		ServiceReady: true,
		ActiveTab:    models.TabBanking,
	}
	ApplyPath(appModel, catalog, catalog.DefaultPath())
	return appModel, catalog, eventbus.NewEventBus()
}

func drainUIEvents(bus *eventbus.EventBus) []eventbus.UIEvent {
	var events []eventbus.UIEvent
	for {
		select {
		case e := <-bus.UIToCore():
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestApplyPathFollowsRootRedirect(t *testing.T) {
	appModel, catalog, _ := newTestModel()

	ApplyPath(appModel, catalog, "/")
	assert.Equal(t, "/banking/accounts", appModel.CurrentPath)
	assert.Equal(t, "AccountsOverview", appModel.CurrentComponent)
	assert.Equal(t, models.TabBanking, appModel.ActiveTab)
}

func TestApplyPathUnknownShowsNotFound(t *testing.T) {
	appModel, catalog, _ := newTestModel()

	ApplyPath(appModel, catalog, "/banking/crypto")
	assert.Equal(t, "/banking/crypto", appModel.CurrentPath)
	assert.Empty(t, appModel.CurrentComponent)
	assert.Equal(t, "Not Found", appModel.ScreenTitle)
}

func TestApplyPathParameterizedRoute(t *testing.T) {
	appModel, catalog, _ := newTestModel()

	ApplyPath(appModel, catalog, "/banking/accounts/123")
	assert.Equal(t, "AccountDetails", appModel.CurrentComponent)
}

func TestSubmitPersistentUsesActiveTab(t *testing.T) {
	appModel, _, bus := newTestModel()
	appModel.ActiveTab = models.TabChat
	appModel.Input = "what's my balance"

	submit(appModel, bus)

	assert.Empty(t, appModel.Input)
	events := drainUIEvents(bus)
	require.Len(t, events, 1)
	msg, ok := events[0].(eventbus.SubmitMessageEvent)
	require.True(t, ok)
	assert.Equal(t, "what's my balance", msg.Text)
	assert.Equal(t, models.TabChat, msg.Context)
	assert.False(t, msg.Silent)
}

func TestSubmitFromNavigatorIsSilentAndBankingScoped(t *testing.T) {
	appModel, _, bus := newTestModel()
	appModel.ActiveTab = models.TabChat
	appModel.NavigatorOpen = true
	appModel.NavigatorInput = "go to transfers"

	submit(appModel, bus)

	assert.False(t, appModel.NavigatorOpen)
	assert.Empty(t, appModel.NavigatorInput)
	events := drainUIEvents(bus)
	require.Len(t, events, 1)
	msg, ok := events[0].(eventbus.SubmitMessageEvent)
	require.True(t, ok)
	assert.True(t, msg.Silent)
	assert.Equal(t, models.TabBanking, msg.Context)
}

func TestSubmitBlankInputIsDropped(t *testing.T) {
	appModel, _, bus := newTestModel()
	appModel.Input = "   "

	submit(appModel, bus)

	assert.Empty(t, drainUIEvents(bus))
}

func TestSwitchTabNotifiesCoreAndLandsOnFirstEntry(t *testing.T) {
	appModel, catalog, bus := newTestModel()

	switchTab(appModel, catalog, models.TabChat, bus)

	assert.Equal(t, models.TabChat, appModel.ActiveTab)
	assert.Equal(t, "/chat", appModel.CurrentPath)

	events := drainUIEvents(bus)
	require.Len(t, events, 1)
	ctx, ok := events[0].(eventbus.SetUIContextEvent)
	require.True(t, ok)
	assert.Equal(t, models.TabChat, ctx.Context)
}

func TestCycleScreenWrapsAroundMenu(t *testing.T) {
	appModel, catalog, _ := newTestModel()
	require.Equal(t, "/banking/accounts", appModel.CurrentPath)

	cycleScreen(appModel, catalog, 1)
	assert.Equal(t, "/banking/transfers", appModel.CurrentPath)

	cycleScreen(appModel, catalog, -1)
	cycleScreen(appModel, catalog, -1)
	assert.Equal(t, "/banking/payments/bills", appModel.CurrentPath)
}

func TestStateUpdateAppendsDeltas(t *testing.T) {
	appModel, catalog, bus := newTestModel()

	first := []models.Message{{ID: "1", Content: "welcome", Type: models.Program}}
	HandleCoreEvent(appModel, catalog, CoreEventMsg{Event: eventbus.StateUpdateEvent{Messages: first}}, bus)
	second := []models.Message{{ID: "2", Content: "hi", Type: models.User}}
	HandleCoreEvent(appModel, catalog, CoreEventMsg{Event: eventbus.StateUpdateEvent{Messages: second, IsProcessing: true}}, bus)

	require.Len(t, appModel.Messages, 2)
	assert.Equal(t, "welcome", appModel.Messages[0].Content)
	assert.Equal(t, "hi", appModel.Messages[1].Content)
	assert.True(t, appModel.Loading)
	assert.Equal(t, "Processing", appModel.Status)
}

func TestNavigateEventSelectsAccount(t *testing.T) {
	appModel, catalog, bus := newTestModel()

	HandleCoreEvent(appModel, catalog, CoreEventMsg{Event: eventbus.NavigateEvent{
		Path:      "/banking/accounts/123",
		Component: "AccountDetails",
		Title:     "Savings Account Details",
		Params:    map[string]string{"accountId": "123"},
	}}, bus)

	assert.Equal(t, "/banking/accounts/123", appModel.CurrentPath)
	assert.Equal(t, "Savings Account Details", appModel.ScreenTitle)
	assert.Equal(t, "123", appModel.SelectedAccount)

	events := drainUIEvents(bus)
	require.Len(t, events, 1)
	sel, ok := events[0].(eventbus.SelectAccountEvent)
	require.True(t, ok)
	assert.Equal(t, "123", sel.AccountID)
}

func TestShowFormEventOpensWireScreen(t *testing.T) {
	appModel, catalog, bus := newTestModel()

	HandleCoreEvent(appModel, catalog, CoreEventMsg{Event: eventbus.ShowFormEvent{
		Config: models.DynamicFormConfig{FormID: "wire-transfer", Title: "Wire Transfer"},
	}}, bus)

	require.NotNil(t, appModel.FormConfig)
	assert.Equal(t, "wire-transfer", appModel.FormConfig.FormID)
	assert.Equal(t, "WireTransferForm", appModel.CurrentComponent)
}

func TestDisconnectEventRaisesToast(t *testing.T) {
	appModel, catalog, bus := newTestModel()
	appModel.SocketConnected = true

	HandleCoreEvent(appModel, catalog, CoreEventMsg{Event: eventbus.ConnectivityEvent{Connected: false}}, bus)

	assert.False(t, appModel.SocketConnected)
	require.Len(t, appModel.Toasts, 1)
	assert.Equal(t, models.ToastError, appModel.Toasts[0].Level)
}

func TestTickPrunesExpiredToasts(t *testing.T) {
	appModel, _, _ := newTestModel()
	appModel.Toasts = []models.Toast{
		{Text: "old", Expires: time.Now().Add(-time.Second)},
		{Text: "fresh", Expires: time.Now().Add(time.Minute)},
	}

	HandleTickMsg(appModel)

	require.Len(t, appModel.Toasts, 1)
	assert.Equal(t, "fresh", appModel.Toasts[0].Text)
}
