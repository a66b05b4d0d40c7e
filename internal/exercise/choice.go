package exercise

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/example/engpractice/internal/vocab"
	"github.com/example/engpractice/pkg/models"
)

// choiceModule is the shared multiple-choice machinery behind the idiom and
// phrasal verb exercises.
type choiceModule struct {
	id           string
	title        string
	instructions string
	explanation  string
	pool         []vocab.ChoiceEntry
}

// Idioms builds the idiom meaning multiple-choice exercise.
func Idioms() Module {
	return choiceModule{
		id:           "idioms",
		title:        "Idioms",
		instructions: "Choose the best meaning of the idiom in the sentence.",
		explanation: `An idiom's meaning is not the sum of its words: "break the ice" means to ease tension, not to crack frozen water.
Learn each idiom as a fixed phrase together with an example sentence.`,
		pool: vocab.Idioms,
	}
}

// PhrasalVerbs builds the phrasal verb meaning multiple-choice exercise.
func PhrasalVerbs() Module {
	return choiceModule{
		id:           "phrasalverbs",
		title:        "Phrasal verbs",
		instructions: "Choose the best meaning of the phrase in the sentence.",
		explanation: `A phrasal verb is a verb plus a particle with its own meaning: "give up" means quit, "put off" means postpone.
The particle changes the meaning completely, so learn verb and particle as one unit.`,
		pool: vocab.PhrasalVerbs,
	}
}

func (m choiceModule) ID() string           { return m.id }
func (m choiceModule) Title() string        { return m.title }
func (m choiceModule) Instructions() string { return m.instructions }
func (m choiceModule) Explanation() string  { return m.explanation }

// Generate samples entries without replacement, so a set never repeats a
// term. Each item carries the correct meaning and three distractors in
// shuffled order.
func (m choiceModule) Generate(rng *rand.Rand, n int) []models.QuizItem {
	if n > len(m.pool) {
		n = len(m.pool)
	}
	perm := rng.Perm(len(m.pool))

	items := make([]models.QuizItem, 0, n)
	for _, pi := range perm[:n] {
		entry := m.pool[pi]
		options := []string{entry.Correct, entry.Wrong[0], entry.Wrong[1], entry.Wrong[2]}
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		correctIndex := 0
		for i, opt := range options {
			if opt == entry.Correct {
				correctIndex = i
				break
			}
		}

		items = append(items, models.QuizItem{
			Prompt:       fmt.Sprintf("%s: %s", entry.Term, entry.Sentence),
			Options:      options,
			CorrectIndex: correctIndex,
		})
	}
	return items
}

// Match accepts either a 1-based option number or the option text itself.
func (m choiceModule) Match(item models.QuizItem, input string) bool {
	in := normalize(input)
	if in == "" || len(item.Options) == 0 {
		return false
	}
	if idx, err := strconv.Atoi(in); err == nil {
		return idx-1 == item.CorrectIndex
	}
	return in == normalize(item.Options[item.CorrectIndex])
}
