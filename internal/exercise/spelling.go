package exercise

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/example/engpractice/internal/vocab"
	"github.com/example/engpractice/pkg/models"
)

// WordProvider supplies the saved spelling word list.
type WordProvider interface {
	Words() ([]string, error)
}

type spellingModule struct {
	provider WordProvider
}

// Spelling builds the listen-and-spell exercise. Words come from the
// provider; when it is nil, empty, or failing, the starter list is used.
func Spelling(provider WordProvider) Module {
	return spellingModule{provider: provider}
}

func (spellingModule) ID() string    { return "spelling" }
func (spellingModule) Title() string { return "Spelling" }
func (spellingModule) Instructions() string {
	return "Listen to the word and type its spelling."
}

func (spellingModule) Explanation() string {
	return `English spelling often disagrees with pronunciation.
Watch for double letters, the "ie/ei" order, and endings like -tion, -sion and -ough.
Comparing your answer letter by letter catches most slips.`
}

func (m spellingModule) Generate(rng *rand.Rand, n int) []models.QuizItem {
	words := vocab.DefaultSpellingWords
	if m.provider != nil {
		if saved, err := m.provider.Words(); err == nil && len(saved) > 0 {
			words = saved
		}
	}
	if n > len(words) {
		n = len(words)
	}
	perm := rng.Perm(len(words))

	items := make([]models.QuizItem, 0, n)
	for _, wi := range perm[:n] {
		word := words[wi]
		items = append(items, models.QuizItem{
			Prompt: "Listen and type the word.",
			Answer: word,
			Hint:   maskWord(word),
		})
	}
	return items
}

func (spellingModule) Match(item models.QuizItem, input string) bool {
	in := normalize(input)
	return in != "" && in == normalize(item.Answer)
}

// maskWord keeps the first letter and the length visible, for practising
// without audio.
func maskWord(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return ""
	}
	return fmt.Sprintf("%c%s (%d letters)", runes[0], strings.Repeat("_", len(runes)-1), len(runes))
}
