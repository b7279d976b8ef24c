package token

import "unicode"

// IsIdentStart reports whether r may begin an unquoted identifier.
func IsIdentStart(r rune) bool {
	return r == '_' || r == '#' || r == '@' || unicode.IsLetter(r)
}

// IsIdentPart reports whether r may continue an unquoted identifier.
func IsIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// NeedsQuotes reports whether id must be double-quoted to be read back as
// the same identifier.
func NeedsQuotes(id string) bool {
	if id == "" || IsReserved(id) {
		return true
	}
	for i, r := range id {
		if i == 0 {
			if !IsIdentStart(r) {
				return true
			}
			continue
		}
		if !IsIdentPart(r) {
			return true
		}
	}
	return false
}
