package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLineItems(t *testing.T) {
	items := ParseLineItems("Bread $2.50\nTOTAL\nMilk $4.00")
	assert.Equal(t, []LineItem{
		{Name: "Bread", Price: "2.50", Quantity: 1},
		{Name: "Milk", Price: "4.00", Quantity: 1},
	}, items)
}

func TestParseLineItemsTable(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []LineItem
	}{
		{"empty", "", nil},
		{"no currency", "RECEIPT\nTHANK YOU", nil},
		{"thousands separator stripped", "TV $1,299.00", []LineItem{{Name: "TV", Price: "1299.00", Quantity: 1}}},
		{"split on first symbol only", "Gift card $25 $5 off", []LineItem{{Name: "Gift card", Price: "25 $5 off", Quantity: 1}}},
		{"non-numeric price kept as-is", "Misc $n/a", []LineItem{{Name: "Misc", Price: "n/a", Quantity: 1}}},
		{"empty name kept", "$3.10", []LineItem{{Name: "", Price: "3.10", Quantity: 1}}},
		{"duplicates kept in order", "Soda $1.00\nSoda $1.00", []LineItem{
			{Name: "Soda", Price: "1.00", Quantity: 1},
			{Name: "Soda", Price: "1.00", Quantity: 1},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLineItems(tc.in))
		})
	}
}
