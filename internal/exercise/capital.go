package exercise

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/example/engpractice/internal/rules"
	"github.com/example/engpractice/internal/vocab"
	"github.com/example/engpractice/pkg/models"
)

type capitalModule struct{}

// Capitalisation builds the sentence-rewriting capitalisation exercise.
func Capitalisation() Module { return capitalModule{} }

func (capitalModule) ID() string    { return "capital" }
func (capitalModule) Title() string { return "Capitalisation" }
func (capitalModule) Instructions() string {
	return "Rewrite the sentence with correct capital letters."
}

func (capitalModule) Explanation() string {
	return `Capitalise the first word of a sentence, the pronoun "I", and proper nouns:
names, cities, countries, languages, weekdays, months and holidays.
Titles capitalise every main word; short words like "of" and "the" stay lower case unless they open the title.`
}

// Template builders produce a lowercase sentence and its corrected form.
// The corrected form is derived through the casing rules, never hand-typed.
var capitalTemplates = []func(rng *rand.Rand) vocab.CapitalItem{
	func(rng *rand.Rand) vocab.CapitalItem {
		name := pick(rng, vocab.Names)
		city := pick(rng, vocab.Cities)
		month := pick(rng, vocab.Months)
		return vocab.CapitalItem{
			Text:      fmt.Sprintf("%s travelled to %s in %s.", name, city, month),
			Corrected: fmt.Sprintf("%s travelled to %s in %s.", rules.CapitalizeWord(name), rules.TitleCase(city), rules.CapitalizeWord(month)),
		}
	},
	func(rng *rand.Rand) vocab.CapitalItem {
		country := pick(rng, vocab.Countries)
		weekday := pick(rng, vocab.Weekdays)
		return vocab.CapitalItem{
			Text:      fmt.Sprintf("i will travel to %s next %s.", country, weekday),
			Corrected: fmt.Sprintf("I will travel to %s next %s.", rules.TitleCase(country), rules.CapitalizeWord(weekday)),
		}
	},
	func(rng *rand.Rand) vocab.CapitalItem {
		lang1 := pick(rng, vocab.Languages)
		lang2 := pick(rng, vocab.Languages)
		for lang2 == lang1 {
			lang2 = pick(rng, vocab.Languages)
		}
		return vocab.CapitalItem{
			Text:      fmt.Sprintf("my sister speaks %s and %s.", lang1, lang2),
			Corrected: fmt.Sprintf("My sister speaks %s and %s.", rules.CapitalizeWord(lang1), rules.CapitalizeWord(lang2)),
		}
	},
	func(rng *rand.Rand) vocab.CapitalItem {
		holiday := pick(rng, vocab.Holidays)
		weekday := pick(rng, vocab.Weekdays)
		country := pick(rng, vocab.Countries)
		return vocab.CapitalItem{
			Text:      fmt.Sprintf("on %s, we celebrate %s in %s.", weekday, holiday, country),
			Corrected: fmt.Sprintf("On %s, we celebrate %s in %s.", rules.CapitalizeWord(weekday), rules.TitleCase(holiday), rules.TitleCase(country)),
		}
	},
	func(rng *rand.Rand) vocab.CapitalItem {
		title := pick(rng, vocab.PersonTitles)
		name := pick(rng, vocab.Names)
		country := pick(rng, vocab.Countries)
		return vocab.CapitalItem{
			Text:      fmt.Sprintf("yesterday, %s %s visited %s.", title, name, country),
			Corrected: fmt.Sprintf("Yesterday, %s %s visited %s.", rules.TitleCase(title), rules.CapitalizeWord(name), rules.TitleCase(country)),
		}
	},
	func(rng *rand.Rand) vocab.CapitalItem {
		org := pick(rng, vocab.Organisations)
		return vocab.CapitalItem{
			Text:      fmt.Sprintf("the %s has its headquarters in %s.", org.ShortLower, org.City),
			Corrected: fmt.Sprintf("The %s has its headquarters in %s.", org.ShortUpper, rules.TitleCase(org.City)),
		}
	},
	func(rng *rand.Rand) vocab.CapitalItem {
		book := pick(rng, vocab.BookTitles)
		return vocab.CapitalItem{
			Text:      fmt.Sprintf("have you read %q?", book),
			Corrected: fmt.Sprintf("Have you read %q?", rules.TitleCase(book)),
		}
	},
}

func (capitalModule) Generate(rng *rand.Rand, n int) []models.QuizItem {
	statics := make([]vocab.CapitalItem, len(vocab.StaticCapitalItems))
	copy(statics, vocab.StaticCapitalItems)
	rng.Shuffle(len(statics), func(i, j int) {
		statics[i], statics[j] = statics[j], statics[i]
	})

	items := make([]models.QuizItem, 0, n)
	staticIndex := 0
	for len(items) < n {
		var item vocab.CapitalItem
		if staticIndex < len(statics) && rng.Intn(2) == 0 {
			item = statics[staticIndex]
			staticIndex++
		} else {
			item = pick(rng, capitalTemplates)(rng)
		}
		items = append(items, models.QuizItem{Prompt: item.Text, Answer: item.Corrected})
	}
	return items
}

// Capitalisation answers are compared case-sensitively; casing is the whole
// point of the exercise.
func (capitalModule) Match(item models.QuizItem, input string) bool {
	in := strings.TrimSpace(input)
	return in != "" && in == strings.TrimSpace(item.Answer)
}
