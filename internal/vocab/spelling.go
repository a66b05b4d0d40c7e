package vocab

// Starter word list seeded into an empty spelling store.
var DefaultSpellingWords = []string{
	"necessary", "because", "environment", "through", "beautiful",
	"different", "important", "beginning", "believe", "business",
	"calendar", "colleague", "definitely", "embarrass", "exaggerate",
	"familiar", "foreign", "government", "grammar", "immediately",
	"independent", "knowledge", "language", "library", "medicine",
	"neighbour", "occasion", "opportunity", "parliament", "particular",
	"possession", "pronunciation", "queue", "receive", "recommend",
	"restaurant", "rhythm", "schedule", "separate", "sincerely",
	"successful", "surprise", "temperature", "tomorrow", "vegetable",
	"wednesday", "weird", "accommodate", "achievement", "argument",
}
