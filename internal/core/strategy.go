package core

import (
	"github.com/bankpilot/bankpilot/internal/eventbus"
	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/internal/session"
)

const (
	defaultAssistantText = "I'm not sure how to help with that yet. Try asking about accounts, transfers, or bill pay."
	genericErrorText     = "Sorry, something went wrong while processing that. Please try again."
)

// MessageStrategy selects the side effects of one outbound user action. The
// chat panel persists the exchange into the transcript with session
// continuity; the navigator popover stays silent, uses a disposable session,
// and surfaces all feedback as toasts. The choice is made per call site,
// never negotiated at runtime.
type MessageStrategy interface {
	Session() session.Strategy
	OnUserMessage(svc *AssistantService, text string)
	OnAssistantMessage(svc *AssistantService, text string, resp models.ProcessResponse)
	OnFailure(svc *AssistantService, err error)
}

// PersistentStrategy appends both sides of the exchange to the transcript.
type PersistentStrategy struct{}

func (PersistentStrategy) Session() session.Strategy { return session.Continuity{} }

func (PersistentStrategy) OnUserMessage(svc *AssistantService, text string) {
	svc.state.StartProcessingWithUserMessage(text)
	svc.pushStateToUI()
}

func (PersistentStrategy) OnAssistantMessage(svc *AssistantService, text string, resp models.ProcessResponse) {
	svc.state.AppendAssistantMessage(text, resp.Intent, resp.Confidence)
	svc.state.FinishProcessing()
	svc.pushStateToUI()
}

func (PersistentStrategy) OnFailure(svc *AssistantService, err error) {
	svc.state.AppendSystemMessage(genericErrorText)
	svc.state.FinishProcessingWithError(err)
	svc.pushStateToUI()
}

// SilentStrategy never touches the transcript; feedback goes out as toasts.
type SilentStrategy struct{}

func (SilentStrategy) Session() session.Strategy { return session.Ephemeral{} }

func (SilentStrategy) OnUserMessage(svc *AssistantService, text string) {
	svc.state.SetProcessing(true)
	svc.pushStateToUI()
}

func (SilentStrategy) OnAssistantMessage(svc *AssistantService, text string, resp models.ProcessResponse) {
	svc.state.FinishProcessing()
	svc.pushStateToUI()
	svc.toast(models.ToastInfo, text)
}

func (SilentStrategy) OnFailure(svc *AssistantService, err error) {
	svc.state.FinishProcessingWithError(err)
	svc.pushStateToUI()
	svc.toast(models.ToastError, genericErrorText)
}

func (svc *AssistantService) toast(level models.ToastLevel, text string) {
	if err := svc.eventBus.SendToUI(eventbus.ToastEvent{Level: level, Text: text}); err != nil {
		svc.logger.Warn("dropping toast: " + err.Error())
	}
}
