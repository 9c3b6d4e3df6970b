package models

import "time"

// Account is a read-only DTO fetched from the backend. Lifecycle is
// fetch-on-startup, replace-on-next-fetch; there is no client-side mutation.
type Account struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Number   string  `json:"number"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

type AccountBalance struct {
	AccountID string    `json:"account_id"`
	Available float64   `json:"available"`
	Current   float64   `json:"current"`
	Currency  string    `json:"currency"`
	AsOf      time.Time `json:"as_of"`
}

type Transaction struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category,omitempty"`
}
