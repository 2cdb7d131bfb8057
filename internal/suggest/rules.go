package suggest

import "strings"

// categoryRule maps keywords to a category name; the table is ordered and the
// first match wins.
type categoryRule struct {
	keywords []string
	category string
}

var categoryRules = []categoryRule{
	{[]string{"starbucks", "coffee", "kopi", "cafe", "resto", "restaurant", "warung", "mcd", "kfc"}, "Food & Dining"},
	{[]string{"indomaret", "alfamart", "supermarket", "hypermart", "grocery", "pasar"}, "Groceries"},
	{[]string{"pln", "listrik", "pdam", "telkom", "indihome", "internet", "pulsa"}, "Utilities"},
	{[]string{"atm", "tarik tunai", "cash withdrawal"}, "Cash & ATM"},
	{[]string{"gaji", "salary", "payroll", "bonus", "thr"}, "Income"},
	{[]string{"pertamina", "shell", "spbu", "bensin", "parkir", "tol", "gojek", "grab"}, "Transportation"},
	{[]string{"apotek", "pharmacy", "kimia farma", "klinik", "rumah sakit"}, "Health"},
	{[]string{"transfer", "trf"}, "Transfer"},
}

// ruleCategory applies the keyword table to a description.
func ruleCategory(description string) (string, bool) {
	lower := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category, true
			}
		}
	}
	return "", false
}

// merchantPrefixes are fixed bank-statement description prefixes whose
// remainder names the counterparty.
var merchantPrefixes = []string{"BELANJA ", "BAYAR ", "TRANSFER KE ", "TRF DARI "}

// merchantFromStatement strips a known prefix off a statement row description.
func merchantFromStatement(description string) string {
	upper := strings.ToUpper(description)
	for _, prefix := range merchantPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return strings.TrimSpace(description[len(prefix):])
		}
	}
	return ""
}
