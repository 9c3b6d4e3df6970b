package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankpilot/bankpilot/internal/eventbus"
	"github.com/bankpilot/bankpilot/internal/models"
)

type processCall struct {
	Query     string
	UIContext string
	SessionID string
}

type fakeBackend struct {
	processCalls []processCall
	processResp  models.ProcessResponse
	processErr   error

	sessionID  string
	sessionErr error

	accounts    []models.Account
	accountsErr error

	routeConfigs []models.RouteConfig
	routesErr    error

	balance models.AccountBalance
	txns    []models.Transaction
}

func (f *fakeBackend) CreateSession(ctx context.Context) (string, error) {
	return f.sessionID, f.sessionErr
}

func (f *fakeBackend) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return f.accounts, f.accountsErr
}

func (f *fakeBackend) Process(ctx context.Context, query, uiContext, sessionID string) (models.ProcessResponse, error) {
	f.processCalls = append(f.processCalls, processCall{Query: query, UIContext: uiContext, SessionID: sessionID})
	return f.processResp, f.processErr
}

func (f *fakeBackend) GetBalance(ctx context.Context, accountID string) (models.AccountBalance, error) {
	return f.balance, nil
}

func (f *fakeBackend) GetTransactions(ctx context.Context, accountID string, limit int) ([]models.Transaction, error) {
	return f.txns, nil
}

func (f *fakeBackend) FetchRoutes(ctx context.Context) ([]models.RouteConfig, error) {
	return f.routeConfigs, f.routesErr
}

func newTestService(backend *fakeBackend) (*AssistantService, *eventbus.EventBus) {
	bus := eventbus.NewEventBus()
	svc := NewAssistantService(Options{Backend: backend, EventBus: bus})
	return svc, bus
}

// drainEvents collects everything currently buffered on the core-to-UI
// channel without blocking.
func drainEvents(bus *eventbus.EventBus) []eventbus.CoreEvent {
	var events []eventbus.CoreEvent
	for {
		select {
		case e := <-bus.CoreToUI():
			events = append(events, e)
		default:
			return events
		}
	}
}

func countByType(msgs []models.Message, mt models.MessageType) int {
	n := 0
	for _, m := range msgs {
		if m.Type == mt {
			n++
		}
	}
	return n
}

func TestPersistentSubmissionAppendsBothTurns(t *testing.T) {
	backend := &fakeBackend{
		processResp: models.ProcessResponse{
			Status:     "ok",
			Intent:     "accounts.balance.check",
			Confidence: 0.9,
			Message:    "Here you go.",
		},
	}
	svc, _ := newTestService(backend)
	svc.sess.Set("sess-1")

	svc.processMessage("what's my balance", models.TabChat, PersistentStrategy{})

	msgs := svc.state.Messages()
	assert.Equal(t, 1, countByType(msgs, models.User))
	assert.Equal(t, 1, countByType(msgs, models.Assistant))
	assert.False(t, svc.state.IsProcessing())

	last := msgs[len(msgs)-1]
	assert.Equal(t, "Here you go.", last.Content)
	assert.Equal(t, "accounts.balance.check", last.Intent)

	require.Len(t, backend.processCalls, 1)
	assert.Equal(t, "sess-1", backend.processCalls[0].SessionID)
	assert.Equal(t, string(models.TabChat), backend.processCalls[0].UIContext)
}

func TestSilentSubmissionNeverTouchesTranscript(t *testing.T) {
	backend := &fakeBackend{
		processResp: models.ProcessResponse{Status: "ok", Message: "Done."},
	}
	svc, bus := newTestService(backend)
	svc.sess.Set("sess-1")
	before := svc.state.TranscriptLen()

	svc.processMessage("transfers", models.TabBanking, SilentStrategy{})

	assert.Equal(t, before, svc.state.TranscriptLen())
	// Ephemeral session: no id goes out even though one is stored.
	require.Len(t, backend.processCalls, 1)
	assert.Empty(t, backend.processCalls[0].SessionID)

	var toasts []eventbus.ToastEvent
	for _, e := range drainEvents(bus) {
		if toast, ok := e.(eventbus.ToastEvent); ok {
			toasts = append(toasts, toast)
		}
	}
	require.Len(t, toasts, 1)
	assert.Equal(t, "Done.", toasts[0].Text)
}

func TestBlankSubmissionNeverReachesBackend(t *testing.T) {
	backend := &fakeBackend{}
	svc, _ := newTestService(backend)
	before := svc.state.TranscriptLen()

	svc.processMessage("   ", models.TabChat, PersistentStrategy{})
	svc.processMessage("", models.TabChat, SilentStrategy{})

	assert.Empty(t, backend.processCalls)
	assert.Equal(t, before, svc.state.TranscriptLen())
}

func TestPersistentFailureSurfacesSystemMessage(t *testing.T) {
	backend := &fakeBackend{processErr: errors.New("backend down")}
	svc, _ := newTestService(backend)

	svc.processMessage("balance please", models.TabChat, PersistentStrategy{})

	msgs := svc.state.Messages()
	assert.Equal(t, 1, countByType(msgs, models.User))
	assert.Equal(t, 1, countByType(msgs, models.System))
	assert.Equal(t, 0, countByType(msgs, models.Assistant))
	assert.False(t, svc.state.IsProcessing())
	assert.Error(t, svc.state.LastError())
}

func TestEmptyReplyGetsDefaultText(t *testing.T) {
	backend := &fakeBackend{processResp: models.ProcessResponse{Status: "ok"}}
	svc, _ := newTestService(backend)

	svc.processMessage("hmm", models.TabChat, PersistentStrategy{})

	msgs := svc.state.Messages()
	last := msgs[len(msgs)-1]
	assert.Equal(t, defaultAssistantText, last.Content)
}

func TestNavigationAssistEmitsNavigateEvent(t *testing.T) {
	backend := &fakeBackend{}
	svc, bus := newTestService(backend)

	svc.handleAssistantResponse(models.ProcessResponse{
		Status:       "ok",
		Intent:       "accounts.balance.check",
		Entities:     map[string]any{"account_id": "123"},
		Message:      "Opening your account.",
		UIAssistance: &models.UIAssistance{Type: "navigation"},
	}, PersistentStrategy{}, models.TabBanking)

	var navs []eventbus.NavigateEvent
	for _, e := range drainEvents(bus) {
		if nav, ok := e.(eventbus.NavigateEvent); ok {
			navs = append(navs, nav)
		}
	}
	require.Len(t, navs, 1)
	assert.Equal(t, "/banking/accounts/123", navs[0].Path)
	assert.Equal(t, "AccountDetails", navs[0].Component)
	assert.Equal(t, map[string]string{"accountId": "123"}, navs[0].Params)
}

func TestNavigationAssistSuppressedOutsideBanking(t *testing.T) {
	backend := &fakeBackend{}
	svc, bus := newTestService(backend)

	svc.handleAssistantResponse(models.ProcessResponse{
		Status:       "ok",
		Intent:       "accounts.balance.check",
		Message:      "Opening your account.",
		UIAssistance: &models.UIAssistance{Type: "navigation"},
	}, PersistentStrategy{}, models.TabChat)

	events := drainEvents(bus)
	for _, e := range events {
		_, isNav := e.(eventbus.NavigateEvent)
		assert.False(t, isNav, "no navigation should escape the chat view")
	}
	var sawErrorToast bool
	for _, e := range events {
		if toast, ok := e.(eventbus.ToastEvent); ok && toast.Level == models.ToastError {
			sawErrorToast = true
		}
	}
	assert.True(t, sawErrorToast)
}

func TestAssistanceTitleOverridesRouteTitle(t *testing.T) {
	backend := &fakeBackend{}
	svc, bus := newTestService(backend)

	svc.handleAssistantResponse(models.ProcessResponse{
		Status:       "ok",
		Intent:       "transfers.wire.initiate",
		Message:      "Opening wires.",
		UIAssistance: &models.UIAssistance{Type: "navigation", Title: "Send Money Abroad"},
	}, PersistentStrategy{}, models.TabBanking)

	var navs []eventbus.NavigateEvent
	for _, e := range drainEvents(bus) {
		if nav, ok := e.(eventbus.NavigateEvent); ok {
			navs = append(navs, nav)
		}
	}
	require.Len(t, navs, 1)
	assert.Equal(t, "Send Money Abroad", navs[0].Title)
}

func TestTransactionFormAssistEmitsShowForm(t *testing.T) {
	backend := &fakeBackend{}
	svc, bus := newTestService(backend)

	svc.handleAssistantResponse(models.ProcessResponse{
		Status:  "ok",
		Message: "Form ready.",
		UIAssistance: &models.UIAssistance{
			Type:       "transaction_form",
			FormConfig: &models.DynamicFormConfig{FormID: "wire-transfer", Title: "Wire Transfer"},
		},
	}, PersistentStrategy{}, models.TabBanking)

	var forms []eventbus.ShowFormEvent
	for _, e := range drainEvents(bus) {
		if form, ok := e.(eventbus.ShowFormEvent); ok {
			forms = append(forms, form)
		}
	}
	require.Len(t, forms, 1)
	assert.Equal(t, "wire-transfer", forms[0].Config.FormID)
}

func TestResetSessionClearsStoredID(t *testing.T) {
	backend := &fakeBackend{}
	svc, bus := newTestService(backend)
	svc.sess.Set("sess-1")

	svc.handleUIEvent(eventbus.ResetSessionEvent{})

	assert.False(t, svc.sess.Established())
	var sawReset bool
	for _, e := range drainEvents(bus) {
		if s, ok := e.(eventbus.SessionEvent); ok && !s.Established {
			sawReset = true
		}
	}
	assert.True(t, sawReset)
}

func TestHydrateRoutesFailureKeepsBundledCatalog(t *testing.T) {
	backend := &fakeBackend{routesErr: errors.New("route endpoint down")}
	svc, _ := newTestService(backend)
	before := svc.Catalog()

	svc.hydrateRoutes()

	assert.Same(t, before, svc.Catalog())
}

func TestHydrateRoutesSwapsCatalog(t *testing.T) {
	backend := &fakeBackend{routeConfigs: []models.RouteConfig{
		{BaseRoute: "/banking/loans", IntentID: "loans.status.check", Title: "Loans"},
	}}
	svc, _ := newTestService(backend)
	before := svc.Catalog()

	svc.hydrateRoutes()

	after := svc.Catalog()
	assert.NotSame(t, before, after)
	assert.True(t, after.IsValidRoute("/banking/loans"))
}

func TestStateUpdatesCarryOnlyNewMessages(t *testing.T) {
	backend := &fakeBackend{
		processResp: models.ProcessResponse{Status: "ok", Message: "First."},
	}
	svc, bus := newTestService(backend)

	// Initial push carries the welcome banner.
	svc.pushStateToUI()
	events := drainEvents(bus)
	require.NotEmpty(t, events)
	first, ok := events[0].(eventbus.StateUpdateEvent)
	require.True(t, ok)
	welcome := len(first.Messages)
	require.Greater(t, welcome, 0)

	svc.processMessage("hello", models.TabChat, PersistentStrategy{})

	total := 0
	for _, e := range drainEvents(bus) {
		if update, ok := e.(eventbus.StateUpdateEvent); ok {
			total += len(update.Messages)
		}
	}
	// One user turn and one assistant turn, never the welcome banner again.
	assert.Equal(t, 2, total)
}
