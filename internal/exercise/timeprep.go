package exercise

import (
	"fmt"
	"math/rand"

	"github.com/example/engpractice/internal/vocab"
	"github.com/example/engpractice/pkg/models"
)

type timePrepModule struct{}

// TimePrepositions builds the in/on/at time preposition exercise.
func TimePrepositions() Module { return timePrepModule{} }

func (timePrepModule) ID() string    { return "timeprep" }
func (timePrepModule) Title() string { return "Time prepositions" }
func (timePrepModule) Instructions() string {
	return "Type in, on, or at."
}

func (timePrepModule) Explanation() string {
	return `Use "at" for precise times: at 5 pm, at noon, at midnight.
Use "on" for days and dates: on Monday, on 5 May, on the 12th.
Use "in" for months, years and longer periods: in June, in 2024, in the morning.
Common mistakes: "in 7 o'clock" (should be at), "at Monday" (should be on).`
}

// Each frame yields a prompt and its preposition.
var timeFrames = []func(rng *rand.Rand) (string, string){
	func(rng *rand.Rand) (string, string) {
		return fmt.Sprintf("My birthday is ___ %s.", pick(rng, vocab.MonthNames)), "in"
	},
	func(rng *rand.Rand) (string, string) {
		return fmt.Sprintf("School starts ___ %s.", pick(rng, vocab.MonthNames)), "in"
	},
	func(rng *rand.Rand) (string, string) {
		return fmt.Sprintf("We usually study ___ %s.", pick(rng, vocab.TimesOfDay)), "in"
	},
	func(rng *rand.Rand) (string, string) {
		return fmt.Sprintf("I started learning English ___ %s.", pick(rng, vocab.Years)), "in"
	},
	func(rng *rand.Rand) (string, string) {
		return fmt.Sprintf("We have PE ___ %s.", pick(rng, vocab.WeekdayNames)), "on"
	},
	func(rng *rand.Rand) (string, string) {
		return fmt.Sprintf("The test is ___ %s.", pick(rng, vocab.WeekdayNames)), "on"
	},
	func(rng *rand.Rand) (string, string) {
		return fmt.Sprintf("The deadline is ___ the %s.", ordinalDay(rng)), "on"
	},
	func(rng *rand.Rand) (string, string) {
		return fmt.Sprintf("We have a quiz ___ %s.", pick(rng, vocab.DayParts)), "on"
	},
	func(rng *rand.Rand) (string, string) {
		return fmt.Sprintf("The lesson starts ___ %s.", clockTime(rng)), "at"
	},
	func(rng *rand.Rand) (string, string) {
		return fmt.Sprintf("Please call me ___ %s.", clockTime(rng)), "at"
	},
	func(rng *rand.Rand) (string, string) {
		return fmt.Sprintf("We met ___ %s.", pick(rng, vocab.HolidayNames)), "at"
	},
	func(rng *rand.Rand) (string, string) {
		if rng.Intn(2) == 0 {
			return "The train leaves ___ noon.", "at"
		}
		return "The train leaves ___ midnight.", "at"
	},
	func(rng *rand.Rand) (string, string) {
		return "I relax ___ the weekend.", "at"
	},
}

func (timePrepModule) Generate(rng *rand.Rand, n int) []models.QuizItem {
	items := make([]models.QuizItem, 0, n)
	for i := 0; i < n; i++ {
		prompt, answer := pick(rng, timeFrames)(rng)
		items = append(items, models.QuizItem{Prompt: prompt, Answer: answer})
	}
	return items
}

func (timePrepModule) Match(item models.QuizItem, input string) bool {
	in := normalize(input)
	return in != "" && in == item.Answer
}

func clockTime(rng *rand.Rand) string {
	h := 1 + rng.Intn(12)
	m := 5 * rng.Intn(12)
	return fmt.Sprintf("%d:%02d", h, m)
}

// ordinalDay returns a day of month 1-28 with its ordinal suffix.
func ordinalDay(rng *rand.Rand) string {
	day := 1 + rng.Intn(28)
	suf := "th"
	switch {
	case day%10 == 1 && day != 11:
		suf = "st"
	case day%10 == 2 && day != 12:
		suf = "nd"
	case day%10 == 3 && day != 13:
		suf = "rd"
	}
	return fmt.Sprintf("%d%s", day, suf)
}
