package models

import "time"

// Tab identifies one of the three top-level views. Its string value doubles
// as the ui_context sent with every process request.
type Tab string

const (
	TabBanking     Tab = "banking"
	TabTransaction Tab = "transaction"
	TabChat        Tab = "chat"
)

func (t Tab) Title() string {
	switch t {
	case TabBanking:
		return "Banking"
	case TabTransaction:
		return "Transactions"
	case TabChat:
		return "Chat"
	}
	return string(t)
}

type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

// Toast is a transient notification; expired toasts are pruned on tick.
type Toast struct {
	Text    string
	Level   ToastLevel
	Expires time.Time
}

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Messages    []Message
	Input       string
	Status      string
	Loading     bool
	LoadingDots int
	Width       int
	Height      int

	ServiceReady    bool
	SessionReady    bool
	SocketConnected bool

	ActiveTab        Tab
	CurrentPath      string
	CurrentComponent string
	ScreenTitle      string
	RouteParams      map[string]string

	NavigatorOpen  bool
	NavigatorInput string

	Accounts        []Account
	SelectedAccount string
	Balance         *AccountBalance
	Transactions    []Transaction
	FormConfig      *DynamicFormConfig

	Toasts []Toast
}
