package rules

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// smallWords stay lowercase inside titles unless first or last.
var smallWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "but": true, "or": true, "nor": true, "for": true,
	"so": true, "yet": true,
	"at": true, "by": true, "in": true, "of": true, "on": true, "to": true,
	"up": true, "via": true, "per": true,
	"as": true, "from": true, "into": true, "onto": true, "with": true,
	"over": true, "out": true, "off": true,
}

// titleAcronyms are written fully uppercased wherever they appear.
var titleAcronyms = map[string]bool{
	"un": true, "eu": true, "nato": true, "usa": true, "uk": true,
	"uae": true, "nasa": true, "esa": true, "who": true, "imf": true,
	"oecd": true, "unesco": true,
}

var wordCaser = cases.Title(language.English, cases.NoLower)

// CapitalizeWord uppercases the first letter of a word, leaving the rest as-is.
func CapitalizeWord(w string) string {
	if w == "" {
		return w
	}
	return wordCaser.String(w[:1]) + w[1:]
}

// TitleCase capitalizes every word of a title except designated small words,
// which stay lowercase unless they are the first or last word. Known acronyms
// are fully uppercased and hyphenated compounds are handled segment by
// segment. Leading and trailing punctuation around each word is preserved.
func TitleCase(s string) string {
	words := strings.Split(s, " ")
	last := len(words) - 1

	for i, w := range words {
		prefix, core, suffix := splitPunct(w)
		if core == "" {
			continue
		}

		parts := strings.Split(core, "-")
		for pi, part := range parts {
			lower := strings.ToLower(part)

			switch {
			case titleAcronyms[strings.ReplaceAll(lower, ".", "")]:
				parts[pi] = strings.ToUpper(part)
			case (i == 0 || i == last) && pi == 0:
				parts[pi] = CapitalizeWord(lower)
			case smallWords[lower]:
				parts[pi] = lower
			default:
				parts[pi] = CapitalizeWord(lower)
			}
		}

		words[i] = prefix + strings.Join(parts, "-") + suffix
	}

	return strings.Join(words, " ")
}

// splitPunct separates a word into leading punctuation, its alphanumeric
// core (hyphens included), and trailing punctuation.
func splitPunct(w string) (prefix, core, suffix string) {
	isCore := func(c byte) bool {
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') || c == '-'
	}

	start := 0
	for start < len(w) && !isCore(w[start]) {
		start++
	}
	end := len(w)
	for end > start && !isCore(w[end-1]) {
		end--
	}
	return w[:start], w[start:end], w[end:]
}
