package exercise

import (
	"math/rand"
	"strings"

	"github.com/example/engpractice/internal/rules"
	"github.com/example/engpractice/internal/vocab"
	"github.com/example/engpractice/pkg/models"
)

type articleModule struct{}

// Articles builds the "a vs an" fill-in exercise.
func Articles() Module { return articleModule{} }

func (articleModule) ID() string    { return "avsan" }
func (articleModule) Title() string { return "A vs An" }
func (articleModule) Instructions() string {
	return "Type a or an."
}

func (articleModule) Explanation() string {
	return `Use "a" before a consonant sound: a book, a university, a USB cable, a European city.
Use "an" before a vowel sound: an apple, an hour, an MRI scan, an honest person.
Decide by the sound, not the first letter: "u" and "eu" often sound like /ju:/ and take "a".`
}

func (articleModule) Generate(rng *rand.Rand, n int) []models.QuizItem {
	items := make([]models.QuizItem, 0, n)
	for i := 0; i < n; i++ {
		tmpl := pick(rng, vocab.ArticleTemplatesMid)
		if rng.Float64() < 0.3 {
			tmpl = pick(rng, vocab.ArticleTemplatesInitial)
		}

		noun := pick(rng, vocab.ANouns)
		if rng.Float64() < 0.5 {
			noun = pick(rng, vocab.AnNouns)
		}

		// Single-word nouns sometimes get an adjective, which changes the
		// sound the article agrees with.
		if rng.Float64() < 0.4 && !strings.Contains(noun, " ") {
			adj := pick(rng, vocab.ArticleAdjectives)
			tmpl = strings.Replace(tmpl, "{noun}", adj+" {noun}", 1)
		}

		prompt := strings.Replace(tmpl, "{noun}", noun, 1)

		// The key is always derived from the words that actually follow the
		// blank, so injected and template-built adjectives are both covered.
		answer := rules.Article(phraseAfterBlank(prompt))
		items = append(items, models.QuizItem{Prompt: prompt, Answer: answer})
	}
	return items
}

func (articleModule) Match(item models.QuizItem, input string) bool {
	cleaned := lettersOnly(input)
	return cleaned != "" && cleaned == item.Answer
}

// phraseAfterBlank returns the sentence text following the blank marker.
func phraseAfterBlank(prompt string) string {
	if i := strings.Index(prompt, "___"); i >= 0 {
		return strings.TrimSpace(prompt[i+3:])
	}
	return prompt
}

// lettersOnly lowercases and strips everything except a-z, so "An." and
// " a n " are accepted.
func lettersOnly(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
