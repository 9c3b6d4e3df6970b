package components

import (
	"github.com/bankpilot/bankpilot/ui/styles"
)

// RenderNavigator draws the floating assistant popover. Its submissions are
// silent: replies arrive as toasts or navigation, never in the transcript.
func RenderNavigator(input string, width int) string {
	style := styles.NavigatorStyle(width)
	return style.Render("Where to? "+input) + "\n"
}
