package components

import (
	"strings"

	"github.com/bankpilot/bankpilot/ui/styles"
)

func RenderNotFound(path string) string {
	var b strings.Builder
	b.WriteString(styles.ScreenTitleStyle().Render("Not Found") + "\n\n")
	b.WriteString(styles.MutedStyle().Render("No screen is registered for "+path) + "\n\n")
	return b.String()
}
