package exercise

import (
	"fmt"
	"math/rand"

	"github.com/example/engpractice/internal/rules"
	"github.com/example/engpractice/internal/vocab"
	"github.com/example/engpractice/pkg/models"
)

type tenseModule struct{}

// Tenses builds the present-perfect vs past-simple exercise.
func Tenses() Module { return tenseModule{} }

func (tenseModule) ID() string    { return "ppvsps" }
func (tenseModule) Title() string { return "Present perfect vs Past simple" }
func (tenseModule) Instructions() string {
	return "Type the correct form (e.g. have eaten, has eaten, went, Did)."
}

func (tenseModule) Explanation() string {
	return `Present perfect (have/has + past participle) links the past to now.
Use it with: already, just, yet, ever/never, so far, today, this week, recently.
Past simple is for a finished time in the past.
Use it with: yesterday, last week, two days ago, in 2020.
If the time is finished, use past simple.`
}

var sentenceForms = []rules.SentenceForm{
	rules.FormStatement,
	rules.FormNegative,
	rules.FormQuestion,
}

func (tenseModule) Generate(rng *rand.Rand, n int) []models.QuizItem {
	items := make([]models.QuizItem, 0, n)
	for i := 0; i < n; i++ {
		subj := pick(rng, vocab.TenseSubjects)
		verb := pick(rng, vocab.IrregularVerbs)
		form := pick(rng, sentenceForms)

		var prompt, answer string
		if rng.Intn(2) == 0 {
			marker := pick(rng, vocab.PerfectMarkers)
			answer = rules.PresentPerfectAnswer(form, subj.ThirdSingular, verb)
			switch form {
			case rules.FormQuestion:
				prompt = fmt.Sprintf("___ %s ever (%s) %s?", subj.Text, verb.Base, marker)
			case rules.FormNegative:
				prompt = fmt.Sprintf("%s ___ not (%s) %s.", subj.Text, verb.Base, marker)
			default:
				prompt = fmt.Sprintf("%s ___ (%s) %s.", subj.Text, verb.Base, marker)
			}
		} else {
			marker := pick(rng, vocab.PastMarkers)
			answer = rules.PastSimpleAnswer(form, verb)
			switch form {
			case rules.FormQuestion:
				prompt = fmt.Sprintf("___ %s (%s) it %s?", subj.Text, verb.Base, marker)
			case rules.FormNegative:
				prompt = fmt.Sprintf("%s ___ not (%s) %s.", subj.Text, verb.Base, marker)
			default:
				prompt = fmt.Sprintf("%s ___ (%s) %s.", subj.Text, verb.Base, marker)
			}
		}

		items = append(items, models.QuizItem{Prompt: prompt, Answer: answer})
	}
	return items
}

func (tenseModule) Match(item models.QuizItem, input string) bool {
	in := normalize(input)
	return in != "" && in == normalize(item.Answer)
}
