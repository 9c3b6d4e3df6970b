package routes

import "github.com/bankpilot/bankpilot/internal/models"

// staticRoutes are the core application routes, inserted into the table
// before the intent-derived list. Declared order is navigation-menu order.
func staticRoutes() []Route {
	return []Route{
		{
			Path:       "/",
			RedirectTo: "/banking/accounts",
		},
		{
			Path:             "/banking/accounts",
			Component:        "AccountsOverview",
			Breadcrumb:       "Accounts",
			Tab:              models.TabBanking,
			NavigationLabel:  "Accounts",
			ShowInNavigation: true,
			Group:            "Banking",
			Intent:           "accounts.list accounts.balance.check",
		},
		{
			Path:       "/banking/accounts/:accountId",
			Component:  "AccountDetails",
			Breadcrumb: "Account Details",
			Tab:        models.TabBanking,
			Group:      "Banking",
			Intent:     "accounts.balance.check accounts.transactions.review",
		},
		{
			Path:             "/banking/transfers",
			Component:        "TransfersHub",
			Breadcrumb:       "Transfers",
			Tab:              models.TabBanking,
			NavigationLabel:  "Transfers",
			ShowInNavigation: true,
			Group:            "Banking",
			Intent:           "transfers.internal.execute",
		},
		{
			Path:             "/banking/transfers/wire",
			Component:        "WireTransferForm",
			Breadcrumb:       "Wire Transfer",
			Tab:              models.TabBanking,
			NavigationLabel:  "Wire Transfer",
			ShowInNavigation: true,
			Group:            "Banking",
			Intent:           "transfers.wire.initiate",
		},
		{
			Path:             "/banking/payments/bills",
			Component:        "BillPayHub",
			Breadcrumb:       "Bill Pay",
			Tab:              models.TabBanking,
			NavigationLabel:  "Bill Pay",
			ShowInNavigation: true,
			Group:            "Banking",
			Intent:           "payments.bill.pay",
		},
		{
			Path:             "/transactions",
			Component:        "TransactionAssist",
			Breadcrumb:       "Transaction Assistance",
			Tab:              models.TabTransaction,
			NavigationLabel:  "Assist",
			ShowInNavigation: true,
		},
		{
			Path:             "/chat",
			Component:        "ChatPanel",
			Breadcrumb:       "Chat",
			Tab:              models.TabChat,
			NavigationLabel:  "Chat",
			ShowInNavigation: true,
		},
	}
}
