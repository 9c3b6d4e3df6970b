package components

import (
	"fmt"
	"strings"

	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/internal/utils"
	"github.com/bankpilot/bankpilot/ui/styles"
)

func RenderMessages(messages []models.Message) string {
	var b strings.Builder

	systemStyle := styles.SystemStyle()
	userStyle := styles.UserStyle()
	assistantStyle := styles.AssistantStyle()
	programStyle := styles.ProgramStyle()

	for _, msg := range messages {
		switch msg.Type {
		case models.System:
			b.WriteString(systemStyle.Render(msg.Content) + "\n\n")
		case models.User:
			b.WriteString(userStyle.Render("You: "+msg.Content) + "\n\n")
		case models.Assistant:
			label := "Assistant: " + utils.RenderInline(msg.Content)
			if msg.Intent != "" {
				label += fmt.Sprintf("  (%s %.0f%%)", msg.Intent, msg.Confidence*100)
			}
			b.WriteString(assistantStyle.Render(label) + "\n\n")
		case models.Program:
			b.WriteString(programStyle.Render(msg.Content) + "\n\n")
		}
	}

	return b.String()
}
