package components

import (
	"fmt"
	"strings"

	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/ui/styles"
)

func RenderTransfers(title string, form *models.DynamicFormConfig) string {
	var b strings.Builder
	b.WriteString(styles.ScreenTitleStyle().Render(title) + "\n\n")

	if form == nil {
		b.WriteString(styles.MutedStyle().Render("Ask the assistant to start a transfer, e.g. \"wire $200 to checking\".") + "\n\n")
		return b.String()
	}

	b.WriteString(styles.RowStyle().Render(form.Title) + "\n")
	for _, f := range form.Fields {
		marker := " "
		if f.Required {
			marker = "*"
		}
		value := f.Value
		if value == "" {
			value = f.Placeholder
		}
		b.WriteString(styles.RowStyle().Render(fmt.Sprintf("%s %-15s %s", marker, f.Label+":", value)) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}
