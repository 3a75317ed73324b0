package str

import (
	"strings"
	"unicode"
)

// ToScreamingSnakeCase turns identifiers such as "customerId", "DatabaseURL" or "foo-bar" into
// "CUSTOMER_ID", "DATABASE_URL" and "FOO_BAR".
//
// Runs of upper case letters are kept together as acronyms, so "ID" stays "ID" and "XMLHttp" reads
// "XML_HTTP". Digits start a new word, '_' and '-' are word separators.
func ToScreamingSnakeCase(in string) string {
	in = strings.TrimSpace(in)
	if in == "" {
		return in
	}

	runes := []rune(in)
	var sb strings.Builder
	sb.Grow(len(in) + len(in)/3)

	separated := false
	for i, r := range runes {
		if r == '_' || r == '-' {
			separated = sb.Len() > 0
			continue
		}
		if sb.Len() > 0 && (separated || startsWord(runes, i)) {
			sb.WriteByte('_')
		}
		separated = false
		sb.WriteRune(unicode.ToUpper(r))
	}

	return sb.String()
}

func startsWord(runes []rune, i int) bool {
	if i == 0 {
		return false
	}
	prev, r := runes[i-1], runes[i]
	switch {
	case unicode.IsDigit(r):
		return !unicode.IsDigit(prev)
	case unicode.IsUpper(r):
		// the last capital of an acronym followed by lower case letters starts a word, as H in XMLHttp
		nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		return !unicode.IsUpper(prev) || nextIsLower
	default:
		return false
	}
}

// ToEnvKey joins prefix and the screaming snake case version of every part with '_'.
func ToEnvKey(prefix string, parts ...string) string {
	tokens := make([]string, 0, len(parts)+1)
	if prefix != "" {
		tokens = append(tokens, strings.ToUpper(prefix))
	}
	for _, part := range parts {
		tokens = append(tokens, ToScreamingSnakeCase(part))
	}
	return strings.Join(tokens, "_")
}
