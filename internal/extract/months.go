package extract

import "strings"

// Indonesian month names, translated before time.Parse.
var monthTranslations = map[string]string{
	"januari":   "January",
	"februari":  "February",
	"maret":     "March",
	"april":     "April",
	"mei":       "May",
	"juni":      "June",
	"juli":      "July",
	"agustus":   "August",
	"september": "September",
	"oktober":   "October",
	"november":  "November",
	"desember":  "December",
}

// translateMonths rewrites Indonesian month names to English so the result
// parses with the "2 January 2006" layout.
func translateMonths(s string) string {
	lower := strings.ToLower(s)
	for id, en := range monthTranslations {
		if idx := strings.Index(lower, id); idx >= 0 {
			return s[:idx] + en + s[idx+len(id):]
		}
	}
	return s
}
