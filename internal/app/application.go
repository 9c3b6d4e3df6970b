package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/bankpilot/bankpilot/internal/api"
	"github.com/bankpilot/bankpilot/internal/config"
	"github.com/bankpilot/bankpilot/internal/core"
	"github.com/bankpilot/bankpilot/internal/dispatcher"
	"github.com/bankpilot/bankpilot/internal/eventbus"
	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/internal/session"
	"github.com/bankpilot/bankpilot/internal/socket"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	logger     *zap.Logger
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.AssistantService
	model      *AppModel
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := newFileLogger()

	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)

	client := api.NewClient(cfg.GetServerURL(), cfg.GetTimeout(), logger)
	listener := socket.NewListener(cfg.GetWSURL(), logger)

	service := core.NewAssistantService(core.Options{
		Backend:      client,
		Session:      session.NewContext(),
		Push:         listener,
		EventBus:     eb,
		Logger:       logger,
		RemoteRoutes: cfg.RemoteRoutes(),
	})

	model := &AppModel{
		appModel:   createInitialAppModel(service, cfg),
		dispatcher: disp,
		service:    service,
	}

	return &Application{
		config:     cfg,
		logger:     logger,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model)
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	if app.logger != nil {
		_ = app.logger.Sync()
	}
}

// newFileLogger builds a production zap logger writing next to the config
// file so the TUI owns stdout. Logging is best effort: a bad path just means
// a nop logger.
func newFileLogger() *zap.Logger {
	path, err := config.LogPath()
	if err != nil {
		return zap.NewNop()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func createInitialAppModel(service *core.AssistantService, cfg *config.Config) models.AppModel {
	catalog := service.Catalog()
	m := models.AppModel{
		Messages:     make([]models.Message, 0),
		Status:       "Ready",
		ActiveTab:    models.TabBanking,
		ServiceReady: cfg.IsValid(),
	}
	m.CurrentPath = catalog.DefaultPath()
	if route, ok := catalog.Find(m.CurrentPath); ok {
		m.CurrentComponent = route.Component
		m.ScreenTitle = route.Breadcrumb
		if route.Tab != "" {
			m.ActiveTab = route.Tab
		}
	}
	return m
}
