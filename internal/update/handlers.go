package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bankpilot/bankpilot/internal/eventbus"
	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/internal/routes"
)

const toastLifetime = 4 * time.Second

// HandleKeyMsgWithEventBus handles keyboard input using the event bus.
func HandleKeyMsgWithEventBus(appModel *models.AppModel, catalog *routes.Catalog, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+n":
		appModel.NavigatorOpen = !appModel.NavigatorOpen
		appModel.NavigatorInput = ""
	case "esc":
		appModel.NavigatorOpen = false
		appModel.NavigatorInput = ""
	case "tab":
		switchTab(appModel, catalog, nextTab(appModel.ActiveTab), eb)
	case "left":
		cycleScreen(appModel, catalog, -1)
	case "right":
		cycleScreen(appModel, catalog, 1)
	case "ctrl+r":
		sendToCore(appModel, eb, eventbus.ReconnectSocketEvent{})
	case "ctrl+e":
		sendToCore(appModel, eb, eventbus.ResetSessionEvent{})
	case "enter":
		submit(appModel, eb)
	case "backspace":
		if appModel.NavigatorOpen {
			appModel.NavigatorInput = trimLast(appModel.NavigatorInput)
		} else {
			appModel.Input = trimLast(appModel.Input)
		}
	default:
		if len(keyMsg.String()) == 1 {
			if appModel.NavigatorOpen {
				appModel.NavigatorInput += keyMsg.String()
			} else {
				appModel.Input += keyMsg.String()
			}
		}
	}
	return nil
}

// submit routes the pending input to the right strategy. The navigator
// popover is silent/ephemeral; the regular input persists with the active
// tab as ui context. Blank input is dropped before it reaches the core.
func submit(appModel *models.AppModel, eb *eventbus.EventBus) {
	if appModel.NavigatorOpen {
		text := appModel.NavigatorInput
		appModel.NavigatorInput = ""
		appModel.NavigatorOpen = false
		if strings.TrimSpace(text) == "" {
			return
		}
		sendToCore(appModel, eb, eventbus.SubmitMessageEvent{Text: text, Context: models.TabBanking, Silent: true})
		return
	}
	text := appModel.Input
	if strings.TrimSpace(text) == "" {
		return
	}
	if !appModel.ServiceReady {
		appModel.Input = ""
		appModel.Status = "Assistant service not available"
		return
	}
	appModel.Input = ""
	sendToCore(appModel, eb, eventbus.SubmitMessageEvent{Text: text, Context: appModel.ActiveTab})
}

func sendToCore(appModel *models.AppModel, eb *eventbus.EventBus, event eventbus.UIEvent) {
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error sending event: " + err.Error()
	}
}

func trimLast(s string) string {
	if s == "" {
		return s
	}
	return s[:len(s)-1]
}

func nextTab(t models.Tab) models.Tab {
	switch t {
	case models.TabBanking:
		return models.TabTransaction
	case models.TabTransaction:
		return models.TabChat
	default:
		return models.TabBanking
	}
}

func switchTab(appModel *models.AppModel, catalog *routes.Catalog, tab models.Tab, eb *eventbus.EventBus) {
	appModel.ActiveTab = tab
	sendToCore(appModel, eb, eventbus.SetUIContextEvent{Context: tab})
	entries := catalog.InNavigation(tab)
	if len(entries) > 0 {
		ApplyPath(appModel, catalog, entries[0].Path)
		return
	}
	ApplyPath(appModel, catalog, catalog.DefaultPath())
}

// cycleScreen walks the banking navigation menu in declared order.
func cycleScreen(appModel *models.AppModel, catalog *routes.Catalog, dir int) {
	entries := catalog.InNavigation(appModel.ActiveTab)
	if len(entries) < 2 {
		return
	}
	current := 0
	for i, r := range entries {
		if r.Path == appModel.CurrentPath {
			current = i
			break
		}
	}
	next := (current + dir + len(entries)) % len(entries)
	ApplyPath(appModel, catalog, entries[next].Path)
}

// ApplyPath points the view shell at path, following the root redirect and
// falling back to the not-found screen for anything outside the table.
func ApplyPath(appModel *models.AppModel, catalog *routes.Catalog, path string) {
	route, ok := catalog.Find(path)
	if ok && route.RedirectTo != "" {
		path = route.RedirectTo
		route, ok = catalog.Find(path)
	}
	appModel.CurrentPath = path
	if !ok {
		appModel.CurrentComponent = ""
		appModel.ScreenTitle = "Not Found"
		return
	}
	appModel.CurrentComponent = route.Component
	appModel.ScreenTitle = route.Breadcrumb
	if route.Tab != "" {
		appModel.ActiveTab = route.Tab
	}
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, catalog *routes.Catalog, coreEventMsg CoreEventMsg, eb *eventbus.EventBus) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		appModel.Messages = append(appModel.Messages, event.Messages...)
		appModel.Loading = event.IsProcessing

		if event.Error != nil {
			appModel.Status = "Error: " + event.Error.Error()
		} else if event.IsProcessing {
			appModel.Status = "Processing"
		} else {
			appModel.Status = "Ready"
		}
	case eventbus.ToastEvent:
		appModel.Toasts = append(appModel.Toasts, models.Toast{
			Text:    event.Text,
			Level:   event.Level,
			Expires: time.Now().Add(toastLifetime),
		})
	case eventbus.NavigateEvent:
		ApplyPath(appModel, catalog, event.Path)
		if event.Title != "" {
			appModel.ScreenTitle = event.Title
		}
		appModel.RouteParams = event.Params
		if id, ok := event.Params["accountId"]; ok && id != "" {
			appModel.SelectedAccount = id
			sendToCore(appModel, eb, eventbus.SelectAccountEvent{AccountID: id})
		}
	case eventbus.AccountsUpdatedEvent:
		appModel.Accounts = event.Accounts
	case eventbus.AccountDetailEvent:
		appModel.SelectedAccount = event.AccountID
		balance := event.Balance
		appModel.Balance = &balance
		appModel.Transactions = event.Transactions
	case eventbus.ConnectivityEvent:
		appModel.SocketConnected = event.Connected
		if !event.Connected {
			appModel.Toasts = append(appModel.Toasts, models.Toast{
				Text:    "Assistant push channel disconnected (ctrl+r to reconnect)",
				Level:   models.ToastError,
				Expires: time.Now().Add(toastLifetime),
			})
		}
	case eventbus.SessionEvent:
		appModel.SessionReady = event.Established
	case eventbus.ShowFormEvent:
		config := event.Config
		appModel.FormConfig = &config
		ApplyPath(appModel, catalog, "/banking/transfers/wire")
	}

	return nil
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// UI animations plus toast expiry
	if appModel.Loading {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	}
	if len(appModel.Toasts) > 0 {
		now := time.Now()
		kept := appModel.Toasts[:0]
		for _, t := range appModel.Toasts {
			if t.Expires.After(now) {
				kept = append(kept, t)
			}
		}
		appModel.Toasts = kept
	}
	return TickCmd()
}
