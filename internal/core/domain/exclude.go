package domain

import "strings"

// SplitExcludeSpec splits a comma separated exclusion spec into tokens.
// Empty tokens are skipped.
func SplitExcludeSpec(spec string) []string {
	var tokens []string
	for _, tok := range strings.Split(spec, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// IsDirectoryToken reports whether an exclusion token names a directory.
// Both separators are accepted on every platform.
func IsDirectoryToken(token string) bool {
	return strings.HasSuffix(token, "/") || strings.HasSuffix(token, `\`)
}

// TrimDirectoryToken strips separators from both ends of a directory token.
func TrimDirectoryToken(token string) string {
	return strings.Trim(token, `/\`)
}
