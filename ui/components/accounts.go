package components

import (
	"fmt"
	"strings"

	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/ui/styles"
)

func RenderAccounts(accounts []models.Account, title string) string {
	var b strings.Builder
	b.WriteString(styles.ScreenTitleStyle().Render(title) + "\n\n")

	if len(accounts) == 0 {
		b.WriteString(styles.MutedStyle().Render("No accounts loaded yet.") + "\n\n")
		return b.String()
	}

	rowStyle := styles.RowStyle()
	for _, a := range accounts {
		line := fmt.Sprintf("%-20s %-10s ****%s  %12.2f %s", a.Name, a.Type, lastFour(a.Number), a.Balance, a.Currency)
		b.WriteString(rowStyle.Render(line) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func RenderAccountDetail(accountID string, balance *models.AccountBalance, txns []models.Transaction, title string) string {
	var b strings.Builder
	b.WriteString(styles.ScreenTitleStyle().Render(title) + "\n\n")

	if balance != nil {
		b.WriteString(styles.RowStyle().Render(fmt.Sprintf("Available: %.2f %s   Current: %.2f %s",
			balance.Available, balance.Currency, balance.Current, balance.Currency)) + "\n\n")
	} else {
		b.WriteString(styles.MutedStyle().Render(fmt.Sprintf("Loading balance for account %s...", accountID)) + "\n\n")
	}

	if len(txns) == 0 {
		b.WriteString(styles.MutedStyle().Render("No recent activity.") + "\n\n")
		return b.String()
	}
	rowStyle := styles.RowStyle()
	for _, t := range txns {
		line := fmt.Sprintf("%s  %-30s %10.2f", t.Date.Format("2006-01-02"), t.Description, t.Amount)
		b.WriteString(rowStyle.Render(line) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func lastFour(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
