package ocr

import "strings"

// LineItem is one heuristic (name, price, quantity) record pulled from
// a cleaned receipt text.
type LineItem struct {
	Name     string
	Price    string
	Quantity int
}

// ParseLineItems splits cleaned text into candidate item records. Each
// newline-delimited line containing a currency symbol is split on the
// first "$": the prefix is the item name, the suffix the price with
// thousands separators removed. Quantity is always 1; explicit
// quantities on the line are not recognized. Lines without a currency
// symbol (headers, totals in words, noise) are dropped. Order is
// preserved, duplicates are kept, and the price fragment is not
// validated as numeric.
func ParseLineItems(text string) []LineItem {
	var items []LineItem
	for _, line := range strings.Split(text, "\n") {
		idx := strings.IndexByte(line, '$')
		if idx < 0 {
			continue
		}
		name := strings.TrimSpace(line[:idx])
		price := strings.TrimSpace(line[idx+1:])
		price = strings.ReplaceAll(price, ",", "")
		items = append(items, LineItem{Name: name, Price: price, Quantity: 1})
	}
	return items
}
