package games

import "strings"

// Tokenize splits a raw record line into its flat token sequence.
// The delimiters are space, comma, colon and semicolon,
// each token is trimmed and empty pieces are dropped.
// Semicolon separated "rounds" are flattened into one sequence,
// round boundaries carry no meaning for the supported evaluations.
// No quoting or escaping is supported.
func Tokenize(line string) []string {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ' ', ',', ':', ';':
			return true
		default:
			return false
		}
	})

	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}
