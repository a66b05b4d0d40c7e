package rules

import "strings"

// PresentVerb carries a verb's base form and its stored third-person form.
type PresentVerb struct {
	Base  string
	Third string
}

// PresentSimple returns the present-simple form agreeing with the subject.
// Verbs without a stored third-person override fall back to the orthographic
// suffix table.
func PresentSimple(thirdSingular bool, v PresentVerb) string {
	if !thirdSingular {
		return v.Base
	}
	if v.Third != "" {
		return v.Third
	}
	return ThirdPersonForm(v.Base)
}

// sibilantEndings take "-es" in the third person.
var sibilantEndings = []string{"s", "sh", "ch", "x", "z", "o"}

// ThirdPersonForm derives the regular third-person singular spelling:
// consonant + y becomes "ies", sibilant endings take "es", everything else
// takes "s". Irregular verbs must carry an explicit override instead.
func ThirdPersonForm(base string) string {
	if base == "" {
		return base
	}

	if strings.HasSuffix(base, "y") && len(base) >= 2 && !isVowel(base[len(base)-2]) {
		return base[:len(base)-1] + "ies"
	}

	for _, end := range sibilantEndings {
		if strings.HasSuffix(base, end) {
			return base + "es"
		}
	}

	return base + "s"
}

func isVowel(c byte) bool {
	return strings.ContainsRune("aeiou", rune(c))
}
