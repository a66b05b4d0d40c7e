package vocab

import "github.com/example/engpractice/internal/rules"

var AgreementSubjects = []Subject{
	{Text: "I", ThirdSingular: false},
	{Text: "You", ThirdSingular: false},
	{Text: "We", ThirdSingular: false},
	{Text: "They", ThirdSingular: false},
	{Text: "He", ThirdSingular: true},
	{Text: "She", ThirdSingular: true},
	{Text: "It", ThirdSingular: true},
	{Text: "My friends", ThirdSingular: false},
	{Text: "The teacher", ThirdSingular: true},
	{Text: "The students", ThirdSingular: false},
}

var AgreementVerbs = []rules.PresentVerb{
	{Base: "go", Third: "goes"},
	{Base: "do", Third: "does"},
	{Base: "have", Third: "has"},
	{Base: "watch", Third: "watches"},
	{Base: "study", Third: "studies"},
	{Base: "play", Third: "plays"},
	{Base: "work", Third: "works"},
	{Base: "try", Third: "tries"},
	{Base: "teach", Third: "teaches"},
	{Base: "fix", Third: "fixes"},
	{Base: "carry", Third: "carries"},
}

// Complements keyed by verb base, so sentences stay natural.
var Complements = map[string][]string{
	"go":    {"to school", "to the gym", "to the library", "home after school", "to practice"},
	"do":    {"homework", "their homework", "the dishes", "a project", "exercise"},
	"have":  {"breakfast", "a test", "a lesson", "a lot of homework", "time"},
	"watch": {"TV", "a film", "football", "videos", "the match"},
	"study": {"English", "maths", "at home", "in the library", "after school"},
	"play":  {"football", "basketball", "video games", "tennis", "music"},
	"work":  {"at home", "in the library", "after school", "on weekends", "every day"},
	"try":   {"hard", "to improve", "again", "to help", "to learn"},
	"teach": {"English", "maths", "PE", "the class", "students"},
	"fix":   {"bikes", "computers", "phones", "the problem", "things"},
	"carry": {"a bag", "books", "a backpack", "a box", "shopping bags"},
}

var FrequencyAdverbs = []string{
	"always", "usually", "often", "sometimes", "rarely", "never", "normally",
	"generally", "frequently", "occasionally", "regularly", "hardly ever",
	"almost always", "almost never", "often enough", "once in a while",
	"every now and then", "most of the time", "from time to time", "on occasion",
}

var TimePhrases = []string{
	"after school", "on weekends", "every day", "in the morning",
	"in the afternoon", "in the evening", "at night", "at home", "in class",
	"in the library", "in the gym", "at school", "during lessons",
	"after work", "before class", "on weekdays", "on Mondays", "after lunch",
	"at the weekend",
}
