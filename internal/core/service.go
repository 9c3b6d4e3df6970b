package core

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/bankpilot/bankpilot/internal/eventbus"
	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/internal/navigation"
	"github.com/bankpilot/bankpilot/internal/routes"
	"github.com/bankpilot/bankpilot/internal/session"
)

// Backend is the slice of the HTTP client the service depends on.
type Backend interface {
	CreateSession(ctx context.Context) (string, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	Process(ctx context.Context, query, uiContext, sessionID string) (models.ProcessResponse, error)
	GetBalance(ctx context.Context, accountID string) (models.AccountBalance, error)
	GetTransactions(ctx context.Context, accountID string, limit int) ([]models.Transaction, error)
	FetchRoutes(ctx context.Context) ([]models.RouteConfig, error)
}

// PushSource is the socket listener surface the service consumes.
type PushSource interface {
	Connect(ctx context.Context) error
	Results() <-chan models.ProcessResponse
	Status() <-chan bool
	Connected() bool
	Close()
}

const recentTransactionsLimit = 10

// AssistantService runs the core logic behind the UI: it owns the state,
// consumes UI events from the bus, talks to the backend, and folds socket
// pushes into the same response handling as HTTP replies.
type AssistantService struct {
	backend Backend
	sess    *session.Context

	routesMu sync.RWMutex
	catalog  *routes.Catalog
	resolver *navigation.Resolver

	push         PushSource
	state        *AssistantState
	eventBus     *eventbus.EventBus
	logger       *zap.Logger
	remoteRoutes bool

	ctx    context.Context
	cancel context.CancelFunc

	pushMu        sync.Mutex
	lastSentCount int // messages already pushed to the UI
}

type Options struct {
	Backend      Backend
	Session      *session.Context
	Catalog      *routes.Catalog
	Push         PushSource
	EventBus     *eventbus.EventBus
	Logger       *zap.Logger
	RemoteRoutes bool
}

func NewAssistantService(opts Options) *AssistantService {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Catalog == nil {
		opts.Catalog = routes.Load()
	}
	if opts.Session == nil {
		opts.Session = session.NewContext()
	}
	ctx, cancel := context.WithCancel(context.Background())
	svc := &AssistantService{
		backend:      opts.Backend,
		sess:         opts.Session,
		catalog:      opts.Catalog,
		resolver:     navigation.NewResolver(opts.Catalog, opts.Logger),
		push:         opts.Push,
		state:        NewAssistantState(),
		eventBus:     opts.EventBus,
		logger:       opts.Logger,
		remoteRoutes: opts.RemoteRoutes,
	}
	svc.ctx = ctx
	svc.cancel = cancel
	svc.addWelcomeMessages()
	return svc
}

// Start pushes the initial state and launches the event loop plus the
// startup fetches. Session init and the account fetch are deliberately fired
// concurrently with no ordering between them.
func (s *AssistantService) Start() {
	s.pushStateToUI()
	go s.eventLoop()
	go s.initSession()
	go s.loadAccounts()
	if s.remoteRoutes {
		go s.hydrateRoutes()
	}
	if s.push != nil {
		go s.runSocket()
	}
}

func (s *AssistantService) Stop() {
	if s.push != nil {
		s.push.Close()
	}
	s.cancel()
}

// Catalog exposes the route table for the view shell.
func (s *AssistantService) Catalog() *routes.Catalog {
	s.routesMu.RLock()
	defer s.routesMu.RUnlock()
	return s.catalog
}

func (s *AssistantService) navResolver() *navigation.Resolver {
	s.routesMu.RLock()
	defer s.routesMu.RUnlock()
	return s.resolver
}

func (s *AssistantService) State() *AssistantState {
	return s.state
}

func (s *AssistantService) eventLoop() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-s.eventBus.UIToCore():
			if !ok {
				return
			}
			s.handleUIEvent(event)
		}
	}
}

func (s *AssistantService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SubmitMessageEvent:
		var strategy MessageStrategy = PersistentStrategy{}
		if e.Silent {
			strategy = SilentStrategy{}
		}
		s.processMessage(e.Text, e.Context, strategy)
	case eventbus.SetUIContextEvent:
		s.state.SetCurrentTab(e.Context)
	case eventbus.SelectAccountEvent:
		s.loadAccountDetail(e.AccountID)
	case eventbus.RefreshAccountsEvent:
		s.loadAccounts()
	case eventbus.ResetSessionEvent:
		s.sess.Reset()
		_ = s.eventBus.SendToUI(eventbus.SessionEvent{Established: false})
		s.toast(models.ToastInfo, "Session cleared")
	case eventbus.ReconnectSocketEvent:
		s.reconnectSocket()
	}
}

// processMessage runs one user submission through the selected strategies.
// Blank input never reaches the backend or the transcript.
func (s *AssistantService) processMessage(text string, uiContext models.Tab, strategy MessageStrategy) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	strategy.OnUserMessage(s, trimmed)

	sessionID := strategy.Session().SessionID(s.sess)
	resp, err := s.backend.Process(s.ctx, trimmed, string(uiContext), sessionID)
	if err != nil {
		s.logger.Warn("process failed", zap.Error(err))
		strategy.OnFailure(s, err)
		return
	}
	s.handleAssistantResponse(resp, strategy, uiContext)
}

// handleAssistantResponse is shared by HTTP replies and socket pushes; the
// two paths may interleave arbitrarily and carry no correlation ids, so an
// out-of-order push just reads as another assistant turn.
func (s *AssistantService) handleAssistantResponse(resp models.ProcessResponse, strategy MessageStrategy, uiContext models.Tab) {
	text := strings.TrimSpace(resp.Message)
	if text == "" {
		text = defaultAssistantText
	}
	strategy.OnAssistantMessage(s, text, resp)

	if resp.UIAssistance == nil {
		return
	}
	switch resp.UIAssistance.Type {
	case "navigation":
		s.handleNavigationAssist(resp, uiContext)
	case "transaction_form":
		if resp.UIAssistance.FormConfig != nil {
			_ = s.eventBus.SendToUI(eventbus.ShowFormEvent{Config: *resp.UIAssistance.FormConfig})
		}
	default:
		s.logger.Debug("ignoring ui assistance", zap.String("type", resp.UIAssistance.Type))
	}
}

func (s *AssistantService) handleNavigationAssist(resp models.ProcessResponse, uiContext models.Tab) {
	entities := models.DecodeEntities(resp.Entities)
	result := s.navResolver().Navigate(resp.Intent, resp.UIAssistance.RoutePath, entities, uiContext)
	if !result.Success {
		s.toast(models.ToastError, result.Error)
		return
	}
	title := result.Title
	if resp.UIAssistance.Title != "" {
		title = resp.UIAssistance.Title
	}
	_ = s.eventBus.SendToUI(eventbus.NavigateEvent{
		Path:      result.Path,
		Component: result.Component,
		Title:     title,
		Params:    result.Params,
	})
}

func (s *AssistantService) initSession() {
	id, err := s.backend.CreateSession(s.ctx)
	if err != nil {
		s.logger.Warn("session init failed", zap.Error(err))
		s.toast(models.ToastError, "Could not start an assistant session; chat continuity is off.")
		return
	}
	s.sess.Set(id)
	_ = s.eventBus.SendToUI(eventbus.SessionEvent{Established: true})
}

func (s *AssistantService) loadAccounts() {
	accounts, err := s.backend.ListAccounts(s.ctx)
	if err != nil {
		s.logger.Warn("account fetch failed", zap.Error(err))
		s.toast(models.ToastError, "Could not load accounts.")
		return
	}
	s.state.SetAccounts(accounts)
	_ = s.eventBus.SendToUI(eventbus.AccountsUpdatedEvent{Accounts: accounts})
}

func (s *AssistantService) loadAccountDetail(accountID string) {
	balance, err := s.backend.GetBalance(s.ctx, accountID)
	if err != nil {
		s.logger.Warn("balance fetch failed", zap.String("account", accountID), zap.Error(err))
		s.toast(models.ToastError, fmt.Sprintf("Could not load balance for account %s.", accountID))
		return
	}
	txns, err := s.backend.GetTransactions(s.ctx, accountID, recentTransactionsLimit)
	if err != nil {
		s.logger.Warn("transactions fetch failed", zap.String("account", accountID), zap.Error(err))
		s.toast(models.ToastError, fmt.Sprintf("Could not load activity for account %s.", accountID))
		return
	}
	_ = s.eventBus.SendToUI(eventbus.AccountDetailEvent{
		AccountID:    accountID,
		Balance:      balance,
		Transactions: txns,
	})
}

// hydrateRoutes replaces the bundled catalog with the backend's when the
// profile opts in; any failure keeps the static catalog and tells the user.
func (s *AssistantService) hydrateRoutes() {
	configs, err := s.backend.FetchRoutes(s.ctx)
	if err != nil {
		s.logger.Warn("route hydration failed, keeping bundled catalog", zap.Error(err))
		s.toast(models.ToastInfo, "Using bundled navigation routes.")
		return
	}
	catalog := routes.LoadWithRemote(configs)
	s.routesMu.Lock()
	s.catalog = catalog
	s.resolver = navigation.NewResolver(catalog, s.logger)
	s.routesMu.Unlock()
}

func (s *AssistantService) runSocket() {
	if err := s.push.Connect(s.ctx); err != nil {
		s.logger.Warn("socket connect failed", zap.Error(err))
		s.state.SetSocketConnected(false)
		_ = s.eventBus.SendToUI(eventbus.ConnectivityEvent{Connected: false})
	}
	for {
		select {
		case <-s.ctx.Done():
			return
		case connected, ok := <-s.push.Status():
			if !ok {
				return
			}
			s.state.SetSocketConnected(connected)
			_ = s.eventBus.SendToUI(eventbus.ConnectivityEvent{Connected: connected})
		case resp, ok := <-s.push.Results():
			if !ok {
				return
			}
			// Pushed replies persist like chat turns, gated on whatever
			// view the user is in right now.
			s.handleAssistantResponse(resp, PersistentStrategy{}, s.state.CurrentTab())
		}
	}
}

// reconnectSocket is the manual reconnect path; there is no automatic
// backoff loop anywhere.
func (s *AssistantService) reconnectSocket() {
	if s.push == nil || s.push.Connected() {
		return
	}
	if err := s.push.Connect(s.ctx); err != nil {
		s.logger.Warn("socket reconnect failed", zap.Error(err))
		s.toast(models.ToastError, "Reconnect failed.")
		return
	}
	s.state.SetSocketConnected(true)
	_ = s.eventBus.SendToUI(eventbus.ConnectivityEvent{Connected: true})
}

func (s *AssistantService) pushStateToUI() {
	s.pushMu.Lock()
	defer s.pushMu.Unlock()
	allMessages := s.state.Messages()
	newMessages := allMessages[s.lastSentCount:]
	s.lastSentCount = len(allMessages)

	if err := s.eventBus.SendToUI(eventbus.StateUpdateEvent{
		Messages:     newMessages,
		IsProcessing: s.state.IsProcessing(),
		Error:        s.state.LastError(),
	}); err != nil {
		s.logger.Warn("state push dropped", zap.Error(err))
	}
}

func (s *AssistantService) addWelcomeMessages() {
	s.state.AddProgramMessage("-- BANKPILOT --")
	s.state.AddProgramMessage("Ask about balances, transfers, or bills; ctrl+n opens the navigator")
	s.state.AddProgramMessage("Controls: tab switches views, ctrl+r reconnects, ctrl+c quits")
	s.state.AddProgramMessage("")
}
