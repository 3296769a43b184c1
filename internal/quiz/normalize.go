package quiz

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize canonicalizes text for comparison: it case-folds, collapses
// runs of whitespace to a single space and trims the ends.
func Normalize(s string) string {
	folded := cases.Fold().String(s)
	return strings.Join(strings.Fields(folded), " ")
}
