package ocr

import "testing"

func TestCleanRejoinsSplitAmount(t *testing.T) {
	got := CleanText("Milk $4 00")
	if got != "Milk $400" {
		t.Fatalf("expected %q got %q", "Milk $400", got)
	}
}

func TestCleanAcrossLineBreak(t *testing.T) {
	got := CleanText("Bread $2\n50\nTOTAL")
	if got != "Bread $250\nTOTAL" {
		t.Fatalf("expected %q got %q", "Bread $250\nTOTAL", got)
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Milk $4 00",
		"Eggs $3 99 Juice $12 49",
		"$1 2 3", // chained splits collapse in one call
		"no amounts here",
		"",
	}
	for _, in := range inputs {
		once := CleanText(in)
		twice := CleanText(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
		if splitAmountRE.MatchString(once) {
			t.Fatalf("split pattern survives one pass for %q: %q", in, once)
		}
	}
}

func TestCleanLeavesIntactAmounts(t *testing.T) {
	for _, s := range []string{"Bread $2.50", "TOTAL $14.99", "Qty 2 x $5"} {
		if got := CleanText(s); got != s {
			t.Fatalf("expected %q unchanged, got %q", s, got)
		}
	}
}
