package backend

import (
	"regexp"
	"strings"
)

type Intent struct {
	ID         string
	Confidence float64
}

// DetectIntent performs simple keyword heuristics over the query. It is a
// stand-in for the real classification service, good enough to exercise the
// front end and the test suite.
func DetectIntent(query string) Intent {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Intent{}
	}
	switch {
	case containsAny(q, []string{"wire", "send money", "transfer to"}):
		return Intent{ID: "transfers.wire.initiate", Confidence: 0.88}
	case containsAny(q, []string{"transfer", "move money"}):
		return Intent{ID: "transfers.internal.execute", Confidence: 0.85}
	case containsAny(q, []string{"pay my", "pay bill", "bill pay", "bills"}):
		return Intent{ID: "payments.bill.pay", Confidence: 0.86}
	case containsAny(q, []string{"balance", "how much", "accounts", "account", "my money"}):
		return Intent{ID: "accounts.balance.check", Confidence: 0.9}
	case containsAny(q, []string{"transactions", "spent", "spending", "activity"}):
		return Intent{ID: "transactions.search", Confidence: 0.8}
	default:
		return Intent{}
	}
}

var (
	accountIDRe   = regexp.MustCompile(`\b(\d{3,})\b`)
	accountTypeRe = regexp.MustCompile(`\b(checking|savings|credit)\b`)
	amountRe      = regexp.MustCompile(`\$\s*(\d+(?:\.\d{1,2})?)`)
)

// ExtractEntities pulls slot values out of the raw query text.
func ExtractEntities(query string) map[string]any {
	q := strings.ToLower(query)
	entities := map[string]any{}
	if m := accountIDRe.FindStringSubmatch(q); m != nil {
		entities["account_id"] = m[1]
	}
	if m := accountTypeRe.FindStringSubmatch(q); m != nil {
		entities["account_type"] = m[1]
	}
	if m := amountRe.FindStringSubmatch(q); m != nil {
		entities["amount"] = m[1]
	}
	if len(entities) == 0 {
		return nil
	}
	return entities
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
