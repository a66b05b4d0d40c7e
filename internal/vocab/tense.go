package vocab

import "github.com/example/engpractice/internal/rules"

// Subject pairs a pronoun with its agreement class.
type Subject struct {
	Text          string
	ThirdSingular bool
}

// Irregular verbs used by the present-perfect / past-simple exercise.
var IrregularVerbs = []rules.Verb{
	{Base: "go", Past: "went", Participle: "gone"},
	{Base: "see", Past: "saw", Participle: "seen"},
	{Base: "eat", Past: "ate", Participle: "eaten"},
	{Base: "do", Past: "did", Participle: "done"},
	{Base: "write", Past: "wrote", Participle: "written"},
	{Base: "take", Past: "took", Participle: "taken"},
	{Base: "buy", Past: "bought", Participle: "bought"},
	{Base: "make", Past: "made", Participle: "made"},
	{Base: "choose", Past: "chose", Participle: "chosen"},
	{Base: "break", Past: "broke", Participle: "broken"},
	{Base: "meet", Past: "met", Participle: "met"},
	{Base: "read", Past: "read", Participle: "read"},
}

var TenseSubjects = []Subject{
	{Text: "I", ThirdSingular: false},
	{Text: "You", ThirdSingular: false},
	{Text: "We", ThirdSingular: false},
	{Text: "They", ThirdSingular: false},
	{Text: "He", ThirdSingular: true},
	{Text: "She", ThirdSingular: true},
}

// Time markers that signal present perfect.
var PerfectMarkers = []string{
	"already", "just", "recently", "so far", "today",
	"this week", "this month", "in my life", "yet", "ever", "never",
}

// Time markers that signal past simple.
var PastMarkers = []string{
	"yesterday", "last week", "last month", "last year",
	"two days ago", "three weeks ago", "in 2018", "in 2020",
	"when I was younger", "during the holiday",
}
