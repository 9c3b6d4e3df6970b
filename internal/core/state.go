package core

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bankpilot/bankpilot/internal/models"
)

// AssistantState manages conversation and banking state for the event-driven
// architecture. It is the single source of truth; the UI only ever sees
// copies pushed over the bus. All mutation happens under one mutex, so the
// only surprises possible are ordering ones, never data races.
type AssistantState struct {
	mu              sync.RWMutex
	transcript      []models.Message
	accounts        []models.Account
	currentTab      models.Tab
	isProcessing    bool
	lastError       error
	socketConnected bool
}

func NewAssistantState() *AssistantState {
	return &AssistantState{
		transcript: make([]models.Message, 0),
		currentTab: models.TabBanking,
	}
}

func (s *AssistantState) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Message, len(s.transcript))
	copy(result, s.transcript)
	return result
}

func (s *AssistantState) TranscriptLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transcript)
}

// AddProgramMessage adds an application notice (welcome text, hints).
func (s *AssistantState) AddProgramMessage(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, models.Message{
		ID:        uuid.NewString(),
		Content:   content,
		Type:      models.Program,
		Timestamp: time.Now(),
	})
}

// StartProcessingWithUserMessage atomically flips processing on and appends
// the user's message, so the UI never observes one without the other.
func (s *AssistantState) StartProcessingWithUserMessage(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isProcessing = true
	s.lastError = nil
	s.transcript = append(s.transcript, models.Message{
		ID:        uuid.NewString(),
		Content:   content,
		Type:      models.User,
		Timestamp: time.Now(),
	})
}

func (s *AssistantState) SetProcessing(processing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isProcessing = processing
	if processing {
		s.lastError = nil
	}
}

// AppendAssistantMessage records a reply with its classification metadata.
func (s *AssistantState) AppendAssistantMessage(content, intent string, confidence float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, models.Message{
		ID:         uuid.NewString(),
		Content:    content,
		Type:       models.Assistant,
		Intent:     intent,
		Confidence: confidence,
		Timestamp:  time.Now(),
	})
}

// AppendSystemMessage records an in-transcript error or notice.
func (s *AssistantState) AppendSystemMessage(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, models.Message{
		ID:        uuid.NewString(),
		Content:   content,
		Type:      models.System,
		Timestamp: time.Now(),
	})
}

func (s *AssistantState) FinishProcessing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isProcessing = false
	s.lastError = nil
}

func (s *AssistantState) FinishProcessingWithError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isProcessing = false
	s.lastError = err
}

func (s *AssistantState) IsProcessing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isProcessing
}

func (s *AssistantState) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func (s *AssistantState) SetAccounts(accounts []models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append([]models.Account(nil), accounts...)
}

func (s *AssistantState) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *AssistantState) SetCurrentTab(tab models.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentTab = tab
}

func (s *AssistantState) CurrentTab() models.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTab
}

func (s *AssistantState) SetSocketConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.socketConnected = connected
}

func (s *AssistantState) SocketConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.socketConnected
}
