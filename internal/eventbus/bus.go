package eventbus

import (
	"errors"
	"time"

	"github.com/bankpilot/bankpilot/internal/models"
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// SubmitMessageEvent - UI submits a user query. Silent selects the
// toast-only strategy used by the navigator popover.
type SubmitMessageEvent struct {
	Text    string
	Context models.Tab
	Silent  bool
}

func (e SubmitMessageEvent) UIEvent() {}

// SetUIContextEvent - UI reports the active tab so socket-pushed navigation
// is gated against the right context.
type SetUIContextEvent struct {
	Context models.Tab
}

func (e SetUIContextEvent) UIEvent() {}

// SelectAccountEvent - UI requests balance and recent activity for one account.
type SelectAccountEvent struct {
	AccountID string
}

func (e SelectAccountEvent) UIEvent() {}

// RefreshAccountsEvent - UI requests a fresh account list.
type RefreshAccountsEvent struct{}

func (e RefreshAccountsEvent) UIEvent() {}

// ResetSessionEvent - UI discards the stored session id.
type ResetSessionEvent struct{}

func (e ResetSessionEvent) UIEvent() {}

// ReconnectSocketEvent - UI asks for a manual socket reconnect.
type ReconnectSocketEvent struct{}

func (e ReconnectSocketEvent) UIEvent() {}

// StateUpdateEvent - Core pushes transcript changes to UI. Messages carries
// only the entries appended since the last push.
type StateUpdateEvent struct {
	Messages     []models.Message
	IsProcessing bool
	Error        error
}

func (e StateUpdateEvent) CoreEvent() {}

// ToastEvent - Core surfaces transient feedback outside the transcript.
type ToastEvent struct {
	Level models.ToastLevel
	Text  string
}

func (e ToastEvent) CoreEvent() {}

// NavigateEvent - Core instructs the view shell to switch screens.
type NavigateEvent struct {
	Path      string
	Component string
	Title     string
	Params    map[string]string
}

func (e NavigateEvent) CoreEvent() {}

// AccountsUpdatedEvent - Core delivers the fetched account list.
type AccountsUpdatedEvent struct {
	Accounts []models.Account
}

func (e AccountsUpdatedEvent) CoreEvent() {}

// AccountDetailEvent - Core delivers balance plus recent activity for the
// selected account.
type AccountDetailEvent struct {
	AccountID    string
	Balance      models.AccountBalance
	Transactions []models.Transaction
}

func (e AccountDetailEvent) CoreEvent() {}

// ConnectivityEvent - Core reports socket connectivity flips.
type ConnectivityEvent struct {
	Connected bool
}

func (e ConnectivityEvent) CoreEvent() {}

// SessionEvent - Core reports session establishment or reset.
type SessionEvent struct {
	Established bool
}

func (e SessionEvent) CoreEvent() {}

// ShowFormEvent - Core delivers a backend-described transaction form.
type ShowFormEvent struct {
	Config models.DynamicFormConfig
}

func (e ShowFormEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

// CircuitBreakerState represents the state of circuit breaker
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

// CircuitBreaker implements circuit breaker pattern
type CircuitBreaker struct {
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           CircuitBreakerState
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	if cb.state == CircuitOpen {
		// Check if we should transition to half-open
		if time.Since(cb.lastFailureTime) > cb.resetTimeout {
			cb.state = CircuitHalfOpen
		}
	}
	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.failureCount = 0
	cb.state = CircuitClosed
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.failureCount++
	cb.lastFailureTime = time.Now()

	if cb.failureCount >= cb.maxFailures {
		cb.state = CircuitOpen
	}
}

// EventBus handles communication between UI and Core with circuit breaker
type EventBus struct {
	uiToCore       chan UIEvent
	coreToUI       chan CoreEvent
	errorCallback  func(EventBusError)
	circuitBreaker *CircuitBreaker
}

func NewEventBus() *EventBus {
	return &EventBus{
		uiToCore:       make(chan UIEvent, 100),
		coreToUI:       make(chan CoreEvent, 100),
		circuitBreaker: NewCircuitBreaker(5, 30*time.Second),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}

	eb.circuitBreaker.RecordFailure()

	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	if eb.circuitBreaker.IsOpen() {
		err := errors.New("circuit breaker is open")
		eb.reportError("SendToCore", err)
		return err
	}

	select {
	case eb.uiToCore <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		err := errors.New("UI to Core channel is full")
		eb.reportError("SendToCore", err)
		return err
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	if eb.circuitBreaker.IsOpen() {
		err := errors.New("circuit breaker is open")
		eb.reportError("SendToUI", err)
		return err
	}

	select {
	case eb.coreToUI <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		err := errors.New("Core to UI channel is full")
		eb.reportError("SendToUI", err)
		return err
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) GetCircuitBreakerState() CircuitBreakerState {
	return eb.circuitBreaker.state
}

func (eb *EventBus) Close() {
	close(eb.uiToCore)
	close(eb.coreToUI)
}
