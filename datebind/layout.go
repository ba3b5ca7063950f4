package datebind

import "strings"

var dateFormatToTimeLayoutReplacer = strings.NewReplacer(
	"yyyy", "2006",
	"MM", "01",
	"dd", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
	"'T'", "T",
)

// PatternToLayout converts a SimpleDateFormat style date pattern to a time
// package layout.
func PatternToLayout(pattern string) string {
	return dateFormatToTimeLayoutReplacer.Replace(pattern)
}
