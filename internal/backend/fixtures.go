package backend

import (
	"time"

	"github.com/bankpilot/bankpilot/internal/models"
)

func demoAccounts() []models.Account {
	return []models.Account{
		{ID: "1001", Name: "Everyday Checking", Type: "checking", Number: "4455667788", Balance: 2450.32, Currency: "USD"},
		{ID: "1002", Name: "Rainy Day Savings", Type: "savings", Number: "4455668899", Balance: 15200.00, Currency: "USD"},
		{ID: "1003", Name: "Travel Rewards Card", Type: "credit", Number: "5566778811", Balance: -432.18, Currency: "USD"},
	}
}

func demoTransactions(accountID string) []models.Transaction {
	now := time.Now()
	day := func(n int) time.Time { return now.AddDate(0, 0, -n) }
	switch accountID {
	case "1001":
		return []models.Transaction{
			{ID: "t-101", AccountID: accountID, Date: day(1), Description: "Grocery Store", Amount: -84.12, Category: "groceries"},
			{ID: "t-102", AccountID: accountID, Date: day(2), Description: "Payroll Deposit", Amount: 2100.00, Category: "income"},
			{ID: "t-103", AccountID: accountID, Date: day(4), Description: "Coffee Shop", Amount: -6.75, Category: "dining"},
			{ID: "t-104", AccountID: accountID, Date: day(6), Description: "Electric Utility", Amount: -112.40, Category: "utilities"},
		}
	case "1002":
		return []models.Transaction{
			{ID: "t-201", AccountID: accountID, Date: day(3), Description: "Transfer from Checking", Amount: 500.00, Category: "transfer"},
			{ID: "t-202", AccountID: accountID, Date: day(30), Description: "Interest Payment", Amount: 12.64, Category: "interest"},
		}
	case "1003":
		return []models.Transaction{
			{ID: "t-301", AccountID: accountID, Date: day(2), Description: "Airline Tickets", Amount: -389.00, Category: "travel"},
			{ID: "t-302", AccountID: accountID, Date: day(5), Description: "Restaurant", Amount: -43.18, Category: "dining"},
		}
	default:
		return nil
	}
}

func demoBalance(account models.Account) models.AccountBalance {
	return models.AccountBalance{
		AccountID: account.ID,
		Available: account.Balance,
		Current:   account.Balance,
		Currency:  account.Currency,
		AsOf:      time.Now(),
	}
}

// routeCatalog mirrors the front end's static intent routes so remote
// hydration round-trips to the same table.
func routeCatalog() []models.RouteConfig {
	return []models.RouteConfig{
		{
			BaseRoute:   "/banking/accounts",
			IntentID:    "accounts.balance.check",
			Title:       "Accounts",
			Description: "Overview of all accounts",
		},
		{
			BaseRoute:         "/banking/accounts/:accountId",
			IntentID:          "accounts.balance.check",
			HasParameters:     true,
			ParameterFallback: "/banking/accounts",
			Title:             "Account Details",
			Description:       "Balance and activity for one account",
			Params:            []models.RouteParam{{Name: "accountId", ExtractFrom: "account_id"}},
		},
		{
			BaseRoute:   "/banking/transfers",
			IntentID:    "transfers.internal.execute",
			Title:       "Transfers",
			Description: "Move money between accounts",
		},
		{
			BaseRoute:   "/banking/transfers/wire",
			IntentID:    "transfers.wire.initiate",
			Title:       "Wire Transfer",
			Description: "Send a wire transfer",
		},
		{
			BaseRoute:   "/banking/payments/bills",
			IntentID:    "payments.bill.pay",
			Title:       "Bill Pay",
			Description: "Pay and schedule bills",
		},
	}
}
