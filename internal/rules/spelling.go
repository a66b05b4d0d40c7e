package rules

import "strings"

// hintRule fires when the correct spelling contains a pattern the attempt
// is missing.
type hintRule struct {
	pattern string
	suffix  bool
	hint    string
}

var hintRules = []hintRule{
	{pattern: "ch", hint: `"ch" is a common spelling for the /tʃ/ sound (as in "chair").`},
	{pattern: "tion", hint: `Many nouns end with "-tion" (nation, information).`},
	{pattern: "sion", hint: `"-sion" is common (decision, revision).`},
	{pattern: "ough", hint: `"-ough" has several pronunciations. Focus on the letters, not the sound.`},
	{pattern: "ie", hint: `"ie/ei" can be tricky. Check the vowel order carefully.`},
	{pattern: "ed", suffix: true, hint: `Regular past tense often ends in "-ed".`},
	{pattern: "ing", suffix: true, hint: `Continuous forms often end in "-ing".`},
}

// hasDoubleLetter reports whether the lowercased word repeats a letter in
// adjacent positions ("necessary", "accommodate").
func hasDoubleLetter(w string) bool {
	for i := 1; i < len(w); i++ {
		c := w[i]
		if c >= 'a' && c <= 'z' && c == w[i-1] {
			return true
		}
	}
	return false
}

// SpellingHints returns pattern-based hints for a wrong spelling attempt.
// An empty attempt gets no hints.
func SpellingHints(correct, attempt string) []string {
	if strings.TrimSpace(attempt) == "" {
		return nil
	}
	c := strings.ToLower(strings.TrimSpace(correct))
	a := strings.ToLower(strings.TrimSpace(attempt))

	var hints []string
	for _, r := range hintRules {
		inCorrect := strings.Contains(c, r.pattern)
		inAttempt := strings.Contains(a, r.pattern)
		if r.suffix {
			inCorrect = strings.HasSuffix(c, r.pattern)
			inAttempt = strings.HasSuffix(a, r.pattern)
		}
		if inCorrect && !inAttempt {
			hints = append(hints, "Hint: "+r.hint)
		}
	}

	if hasDoubleLetter(c) && !hasDoubleLetter(a) {
		hints = append(hints, `Hint: Watch for double letters (e.g., "necessary", "accommodate").`)
	}

	if abs(len(c)-len(a)) <= 2 {
		hints = append(hints, "Tip: Compare the word letter-by-letter. Look for missing or swapped letters.")
	}
	return hints
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
