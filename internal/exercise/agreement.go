package exercise

import (
	"fmt"
	"math/rand"

	"github.com/example/engpractice/internal/rules"
	"github.com/example/engpractice/internal/vocab"
	"github.com/example/engpractice/pkg/models"
)

type agreementModule struct{}

// Agreement builds the present-simple subject-verb agreement exercise.
func Agreement() Module { return agreementModule{} }

func (agreementModule) ID() string    { return "sva" }
func (agreementModule) Title() string { return "Subject-verb agreement" }
func (agreementModule) Instructions() string {
	return "Type the correct verb form (present simple)."
}

func (agreementModule) Explanation() string {
	return `I / you / we / they take the base verb: I work, they study.
He / she / it takes the verb with -s (or a spelling change): she plays, it goes, he studies, she watches.
Special verbs: do becomes does, have becomes has.
Quick check: if you can replace the subject with "he", the verb usually needs -s.`
}

func (agreementModule) Generate(rng *rand.Rand, n int) []models.QuizItem {
	items := make([]models.QuizItem, 0, n)
	for i := 0; i < n; i++ {
		verb := pick(rng, vocab.AgreementVerbs)
		subj := pick(rng, vocab.AgreementSubjects)
		complement := pick(rng, vocab.Complements[verb.Base])

		answer := rules.PresentSimple(subj.ThirdSingular, verb)

		var prompt string
		if rng.Intn(2) == 0 {
			freq := pick(rng, vocab.FrequencyAdverbs)
			prompt = fmt.Sprintf("%s %s ___ %s. (%s)", subj.Text, freq, complement, verb.Base)
		} else {
			when := pick(rng, vocab.TimePhrases)
			prompt = fmt.Sprintf("%s ___ %s %s. (%s)", subj.Text, complement, when, verb.Base)
		}

		items = append(items, models.QuizItem{Prompt: prompt, Answer: answer})
	}
	return items
}

func (agreementModule) Match(item models.QuizItem, input string) bool {
	in := normalize(input)
	return in != "" && in == normalize(item.Answer)
}
