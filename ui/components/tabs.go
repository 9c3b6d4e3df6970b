package components

import (
	"strings"

	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/ui/styles"
)

var tabOrder = []models.Tab{models.TabBanking, models.TabTransaction, models.TabChat}

func RenderTabs(active models.Tab, socketConnected bool, width int) string {
	var b strings.Builder
	activeStyle := styles.ActiveTabStyle()
	inactiveStyle := styles.InactiveTabStyle()

	for _, tab := range tabOrder {
		label := " " + tab.Title() + " "
		if tab == active {
			b.WriteString(activeStyle.Render(label))
		} else {
			b.WriteString(inactiveStyle.Render(label))
		}
	}

	indicator := " offline"
	if socketConnected {
		indicator = " live"
	}
	b.WriteString(styles.ConnectivityStyle(socketConnected).Render(indicator))
	return b.String()
}
