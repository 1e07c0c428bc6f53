package corpus

import "strings"

// hanDelimiters are the CJK punctuation marks that split source-script
// text into keyword runs.
const hanDelimiters = "，。、；：？！“”‘’（）【】"

// TokenizeHan splits source-script text on CJK punctuation and
// whitespace and keeps runs of at least 2 runes.
func TokenizeHan(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		if strings.ContainsRune(hanDelimiters, r) {
			return true
		}
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	var tokens []string
	for _, f := range fields {
		if len([]rune(f)) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// TokenizeLatin lowercases text, splits on anything that is not a word
// character, and keeps tokens of at least 3 characters.
func TokenizeLatin(text string) []string {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		case r == '_':
			return false
		}
		return true
	})
	var tokens []string
	for _, f := range fields {
		if len(f) >= 3 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Keywords builds the deduplicated keyword set for one verse: Han
// tokens from the source text unioned with Latin tokens from the
// translation. Order follows first occurrence.
func Keywords(text, textEn string) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, tok := range TokenizeHan(text) {
		if !seen[tok] {
			seen[tok] = true
			keywords = append(keywords, tok)
		}
	}
	for _, tok := range TokenizeLatin(textEn) {
		if !seen[tok] {
			seen[tok] = true
			keywords = append(keywords, tok)
		}
	}
	return keywords
}
