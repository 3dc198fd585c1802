package ocr

import "regexp"

// splitAmountRE matches a currency amount broken across whitespace or a
// line break into two digit groups, e.g. "$4 00" from a misread "$4.00".
var splitAmountRE = regexp.MustCompile(`(\$\d+)\s+(\d+)\b`)

// CleanText rejoins currency amounts that OCR split across whitespace:
// the trailing digit group is treated as cents and concatenated onto
// the leading "$digits" token ("Milk $4 00" -> "Milk $400"). This is a
// best-effort repair, not a monetary parser; the joined token is not
// validated as a plausible price. Replacement runs to fixpoint so the
// function is idempotent.
func CleanText(text string) string {
	for {
		out := splitAmountRE.ReplaceAllString(text, "${1}${2}")
		if out == text {
			return out
		}
		text = out
	}
}
