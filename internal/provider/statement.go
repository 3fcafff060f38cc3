// internal/provider/statement.go
package provider

import "strings"

// LineItem is one reported account from a filing.
type LineItem struct {
	Name   string
	Amount float64
}

// Statement is one fiscal year of filed line items for a company.
type Statement struct {
	CorpCode string
	Year     int
	Items    []LineItem
}

// Find looks up a line item by account name. Matching strips all
// whitespace from both sides and then tries an exact match first, falling
// back to substring containment, because filers vary between spellings
// like "매출액", "매 출 액" and "I. 매출액".
func (s *Statement) Find(name string) (float64, bool) {
	want := normalizeItemName(name)
	if want == "" {
		return 0, false
	}
	for _, it := range s.Items {
		if normalizeItemName(it.Name) == want {
			return it.Amount, true
		}
	}
	for _, it := range s.Items {
		if strings.Contains(normalizeItemName(it.Name), want) {
			return it.Amount, true
		}
	}
	return 0, false
}

// FindAny returns the first name in the list that resolves.
func (s *Statement) FindAny(names ...string) (float64, bool) {
	for _, n := range names {
		if v, ok := s.Find(n); ok {
			return v, true
		}
	}
	return 0, false
}

func normalizeItemName(s string) string {
	return strings.Join(strings.Fields(s), "")
}
