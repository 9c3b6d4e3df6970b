package components

import (
	"strings"

	"github.com/bankpilot/bankpilot/ui/styles"
)

func RenderBillPay(title string) string {
	var b strings.Builder
	b.WriteString(styles.ScreenTitleStyle().Render(title) + "\n\n")
	b.WriteString(styles.MutedStyle().Render("Ask the assistant to pay a bill, e.g. \"pay my electricity bill\".") + "\n\n")
	return b.String()
}
