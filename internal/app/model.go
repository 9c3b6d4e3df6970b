package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bankpilot/bankpilot/internal/core"
	"github.com/bankpilot/bankpilot/internal/dispatcher"
	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/internal/update"
	"github.com/bankpilot/bankpilot/ui/components"
)

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	service    *core.AssistantService
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	catalog := m.service.Catalog()

	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, catalog, coreEvent, m.dispatcher.GetEventBus())
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	cmd := update.HandleUpdateWithEventBus(&m.appModel, catalog, msg, m.dispatcher.GetEventBus())
	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderTabs(m.appModel.ActiveTab, m.appModel.SocketConnected, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(m.renderScreen())
	b.WriteString(components.RenderToasts(m.appModel.Toasts))
	if m.appModel.NavigatorOpen {
		b.WriteString(components.RenderNavigator(m.appModel.NavigatorInput, m.appModel.Width))
	}
	b.WriteString(components.RenderInput(m.appModel.Input, m.appModel.Loading, m.appModel.LoadingDots, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel.Status, m.appModel.Loading, m.appModel.LoadingDots, m.appModel.Width))

	return b.String()
}

// renderScreen is the view shell: a fixed switch on the current route's
// component name. Unknown components land on the not-found screen.
func (m *AppModel) renderScreen() string {
	am := &m.appModel
	switch am.CurrentComponent {
	case "AccountsOverview":
		return components.RenderAccounts(am.Accounts, am.ScreenTitle)
	case "AccountDetails":
		return components.RenderAccountDetail(am.SelectedAccount, am.Balance, am.Transactions, am.ScreenTitle)
	case "TransfersHub":
		return components.RenderTransfers(am.ScreenTitle, nil)
	case "WireTransferForm":
		return components.RenderTransfers(am.ScreenTitle, am.FormConfig)
	case "BillPayHub":
		return components.RenderBillPay(am.ScreenTitle)
	case "ChatPanel", "TransactionAssist":
		return components.RenderMessages(am.Messages)
	default:
		return components.RenderNotFound(am.CurrentPath)
	}
}
