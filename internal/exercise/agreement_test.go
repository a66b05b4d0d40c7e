package exercise

import (
	"strings"
	"testing"

	"github.com/example/engpractice/internal/vocab"
)

func TestAgreementAnswerMatchesBracketedVerb(t *testing.T) {
	forms := make(map[string][]string, len(vocab.AgreementVerbs))
	for _, v := range vocab.AgreementVerbs {
		forms[v.Base] = []string{v.Base, v.Third}
	}

	m := Agreement()
	items := m.Generate(testRand(), 200)

	for i, item := range items {
		start := strings.LastIndex(item.Prompt, "(")
		end := strings.LastIndex(item.Prompt, ")")
		if start < 0 || end < start {
			t.Fatalf("item %d: no bracketed base verb in %q", i, item.Prompt)
		}
		base := item.Prompt[start+1 : end]

		valid, ok := forms[base]
		if !ok {
			t.Fatalf("item %d: unknown verb %q", i, base)
		}
		if item.Answer != valid[0] && item.Answer != valid[1] {
			t.Errorf("item %d: answer %q is not a form of %q", i, item.Answer, base)
		}
	}
}
