package form

import (
	"regexp"
	"strings"
)

// DefaultLabeler upper-cases the first character of the field name, leaving
// the rest untouched. This matches what admin UIs conventionally show for
// short machine names ("email" -> "Email", "maxAge" -> "MaxAge").
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// HumanizeLabeler converts a field name into a multi-word label, splitting on
// underscores, dashes, and camelCase boundaries ("created_by" -> "Created By",
// "maxAge" -> "Max Age"). Install it with WithLabeler when the terser default
// reads poorly.
func HumanizeLabeler(name string) string {
	if name == "" {
		return ""
	}

	words := splitWordsPattern.Split(name, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(splitCamel(word)))
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	words := strings.Split(word, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		lower := strings.ToLower(w)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}
