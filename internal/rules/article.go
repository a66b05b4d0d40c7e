package rules

import "strings"

// Article verdicts.
const (
	ArticleA  = "a"
	ArticleAn = "an"
)

// phraseExceptions overrides the sound rules for curated multi-word phrases.
// An override fires only on an exact (lowercased) phrase match.
var phraseExceptions = map[string]string{
	"mba student":    ArticleAn,
	"european city":  ArticleA,
	"one-time offer": ArticleA,
}

// Letters whose spoken name starts with a vowel sound ("ef", "aitch", "em"...).
// Used for single letters and acronyms said letter by letter.
var vowelNameLetters = map[byte]bool{
	'a': true, 'e': true, 'f': true, 'h': true, 'i': true, 'l': true,
	'm': true, 'n': true, 'o': true, 'r': true, 's': true, 'x': true,
}

// silentHPrefixes start with a silent "h", so they take "an".
var silentHPrefixes = []string{
	"honest", "honour", "honor", "hour", "heir", "herb",
}

// consonantSoundPrefixes start with a vowel letter but a consonant sound
// (the /juː/ and /wʌ/ families), so they take "a". Checked before the plain
// vowel-letter rule; the precedence matters for words like "university".
var consonantSoundPrefixes = []string{
	"eu", "uni", "use", "usu", "ufo", "uk", "usb", "url", "one", "once",
}

// Article selects "a" or "an" for a noun phrase by the sound of its first
// word. The rules are ordered: curated phrase exceptions, silent h, spoken
// letter names, consonant-sound vowel spellings, vowel letters, and finally
// the consonant default. Unknown tokens fall through to "a" rather than
// erroring; the vocabulary is curated and this path is a safety net.
func Article(phrase string) string {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return ArticleA
	}

	fields := strings.Fields(phrase)
	if len(fields) >= 2 {
		pair := strings.ToLower(trimPunct(fields[0] + " " + fields[1]))
		if override, ok := phraseExceptions[pair]; ok {
			return override
		}
	}

	token := firstToken(phrase)
	core := leadingLetters(token)
	if core == "" {
		return ArticleA
	}
	lower := strings.ToLower(core)

	for _, p := range silentHPrefixes {
		if strings.HasPrefix(lower, p) {
			return ArticleAn
		}
	}

	// Single letters and all-caps acronyms are said by letter name.
	if len(core) == 1 || isAcronym(core) {
		if vowelNameLetters[lower[0]] {
			return ArticleAn
		}
		return ArticleA
	}

	for _, p := range consonantSoundPrefixes {
		if strings.HasPrefix(lower, p) {
			return ArticleA
		}
	}

	if strings.ContainsRune("aeiou", rune(lower[0])) {
		return ArticleAn
	}
	return ArticleA
}

// firstToken returns the first whitespace-delimited token of the phrase.
func firstToken(phrase string) string {
	fields := strings.Fields(phrase)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// leadingLetters returns the run of letters at the start of a token,
// so "x-ray" yields "x" and "j.k." yields "j".
func leadingLetters(token string) string {
	for i := 0; i < len(token); i++ {
		c := token[i]
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !isLetter {
			return token[:i]
		}
	}
	return token
}

// isAcronym reports whether a token core is written in all capitals (FBI, EU).
func isAcronym(core string) bool {
	if len(core) < 2 {
		return false
	}
	for i := 0; i < len(core); i++ {
		if core[i] < 'A' || core[i] > 'Z' {
			return false
		}
	}
	return true
}

// trimPunct strips trailing sentence punctuation from a phrase before the
// exception lookup, so "European city." still matches its table entry.
func trimPunct(phrase string) string {
	return strings.TrimRight(phrase, ".,!?;:\"'")
}
