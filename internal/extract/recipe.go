package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Recipe is a structured recipe assembled from model-generated text.
type Recipe struct {
	Name        string   `json:"name"`
	CookingTime string   `json:"cooking_time"`
	Difficulty  string   `json:"difficulty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tips        []string `json:"tips"`
}

// section is the parser's cursor: which list the lines currently scanned
// belong to.
type section int

const (
	sectionNone section = iota
	sectionIngredients
	sectionSteps
	sectionTips
)

// ParseRecipe scans model output line by line and assembles a Recipe. The
// model is asked for a fixed layout (name:/cooking_time:/difficulty: scalar
// lines, then ingredients:/steps:/tips: sections) but is not trusted to
// follow it: section headers may come in any order, scalar lines may be
// interleaved anywhere, and lines that fit no rule inside a section are
// silently dropped. Parsing never fails; at worst fields stay empty, with
// cooking time and difficulty falling back to the caller-supplied defaults.
func ParseRecipe(text, defaultCookingTime, defaultDifficulty string) Recipe {
	r := Recipe{
		Ingredients: []string{},
		Steps:       []string{},
		Tips:        []string{},
	}
	current := sectionNone

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// Scalar fields apply regardless of the active section.
		if v, ok := strings.CutPrefix(line, "name:"); ok {
			r.Name = strings.TrimSpace(v)
			continue
		}
		if v, ok := strings.CutPrefix(line, "cooking_time:"); ok {
			r.CookingTime = strings.TrimSpace(v)
			continue
		}
		if v, ok := strings.CutPrefix(line, "difficulty:"); ok {
			r.Difficulty = strings.TrimSpace(v)
			continue
		}

		// A bare header switches the cursor; the header line itself is
		// never stored.
		switch line {
		case "ingredients:":
			current = sectionIngredients
			continue
		case "steps:":
			current = sectionSteps
			continue
		case "tips:":
			current = sectionTips
			continue
		}

		switch current {
		case sectionIngredients:
			if v, ok := strings.CutPrefix(line, "-"); ok {
				r.Ingredients = append(r.Ingredients, strings.TrimSpace(v))
			}
		case sectionSteps:
			if startsWithDigit(line) {
				r.Steps = append(r.Steps, stripStepNumber(line))
			}
		case sectionTips:
			if v, ok := strings.CutPrefix(line, "-"); ok {
				r.Tips = append(r.Tips, strings.TrimSpace(v))
			}
		}
	}

	if r.CookingTime == "" {
		r.CookingTime = defaultCookingTime
	}
	if r.Difficulty == "" {
		r.Difficulty = defaultDifficulty
	}
	return r
}

func startsWithDigit(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsDigit(r)
}

// stripStepNumber drops the leading "1." style numbering from a step line.
// A numbered line without a dot is kept verbatim.
func stripStepNumber(line string) string {
	if _, rest, ok := strings.Cut(line, "."); ok {
		return strings.TrimSpace(rest)
	}
	return line
}
