package extract

import (
	"regexp"
	"strings"
)

// Field anchors for model-generated label text. The model is asked to answer
// in exactly this layout, but drift is expected; each field is matched
// independently.
var (
	labelNameRe     = regexp.MustCompile(`商品名:\s*(.+)`)
	labelDateRe     = regexp.MustCompile(`賞味期限:\s*(\d{4}-\d{2}-\d{2})`)
	labelCategoryRe = regexp.MustCompile(`カテゴリ:\s*(.+)`)
)

// Label is the food metadata pulled out of model-generated label text. Any
// field the text does not contain is left empty; in particular an empty
// ExpirationDate means the date did not match the strict YYYY-MM-DD form,
// not that parsing failed.
type Label struct {
	Name           string `json:"name"`
	ExpirationDate string `json:"expiration_date"`
	Category       string `json:"category"`
}

// ParseLabel extracts name, expiration date and category from free-form
// label text. It never returns an error; missing fields stay empty.
func ParseLabel(text string) Label {
	return Label{
		Name:           firstMatch(labelNameRe, text),
		ExpirationDate: firstMatch(labelDateRe, text),
		Category:       firstMatch(labelCategoryRe, text),
	}
}

func firstMatch(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
