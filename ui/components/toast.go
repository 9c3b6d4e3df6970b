package components

import (
	"strings"

	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/ui/styles"
)

func RenderToasts(toasts []models.Toast) string {
	if len(toasts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range toasts {
		b.WriteString(styles.ToastStyle(t.Level).Render(t.Text) + "\n")
	}
	return b.String()
}
