package exercise

import (
	"strings"
	"testing"
)

func TestTimePrepositionsGenerate(t *testing.T) {
	m := TimePrepositions()
	items := m.Generate(testRand(), 200)

	for i, item := range items {
		switch item.Answer {
		case "in", "on", "at":
		default:
			t.Errorf("item %d: answer %q is not in/on/at", i, item.Answer)
		}
		if !strings.Contains(item.Prompt, "___") {
			t.Errorf("item %d: no blank in %q", i, item.Prompt)
		}
	}
}

func TestOrdinalDaySuffixes(t *testing.T) {
	rng := testRand()
	for i := 0; i < 500; i++ {
		d := ordinalDay(rng)
		ok := strings.HasSuffix(d, "st") || strings.HasSuffix(d, "nd") ||
			strings.HasSuffix(d, "rd") || strings.HasSuffix(d, "th")
		if !ok {
			t.Fatalf("ordinalDay returned %q", d)
		}
		if strings.HasPrefix(d, "11s") || strings.HasPrefix(d, "12n") || strings.HasPrefix(d, "13r") {
			t.Fatalf("teen day got a wrong suffix: %q", d)
		}
	}
}
