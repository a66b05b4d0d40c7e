package vocab

// CapitalItem is a lowercase sentence paired with its correctly
// capitalised rewrite.
type CapitalItem struct {
	Text      string
	Corrected string
}

// Fixed capitalisation sentences mixed in alongside the template-built ones.
var StaticCapitalItems = []CapitalItem{
	{Text: "we visited london in april.", Corrected: "We visited London in April."},
	{Text: "my sister speaks spanish and german.", Corrected: "My sister speaks Spanish and German."},
	{Text: "yesterday, president biden met with the prime minister.", Corrected: "Yesterday, President Biden met with the Prime Minister."},
	{Text: "on monday, we will celebrate christmas in sweden.", Corrected: "On Monday, we will celebrate Christmas in Sweden."},
	{Text: "he read 'harry potter' by j.k. rowling.", Corrected: "He read 'Harry Potter' by J.K. Rowling."},
	{Text: "the un is based in new york city.", Corrected: "The UN is based in New York City."},
	{Text: "we drove south until we reached the pacific ocean.", Corrected: "We drove south until we reached the Pacific Ocean."},
	{Text: "every january, the university opens new courses.", Corrected: "Every January, the University opens new courses."},
	{Text: "they moved to france in september.", Corrected: "They moved to France in September."},
	{Text: "we saw the eiffel tower in paris.", Corrected: "We saw the Eiffel Tower in Paris."},
}

var Names = []string{
	"alex", "sara", "michael", "fatima", "joel", "anna", "david", "maria",
	"li", "mei", "yuki", "arjun", "aisha", "samuel", "kwame", "amina",
	"diego", "sofia", "omar", "hana", "luca", "noah", "leila", "yara",
	"mohamed", "chi", "noura", "raj", "tariq", "lina",
}

var Cities = []string{
	"paris", "london", "stockholm", "tokyo", "nairobi", "berlin", "madrid",
	"rome", "cairo", "lagos", "addis ababa", "helsinki", "oslo", "copenhagen",
	"zurich", "vienna", "istanbul", "dubai", "mumbai", "delhi", "jakarta",
	"seoul", "beijing", "shanghai", "sydney", "toronto", "new york",
	"mexico city", "buenos aires", "santiago",
}

var Countries = []string{
	"france", "united kingdom", "sweden", "japan", "kenya", "germany", "spain",
	"italy", "egypt", "nigeria", "ethiopia", "finland", "norway", "denmark",
	"switzerland", "austria", "turkiye", "united arab emirates", "india",
	"china", "south korea", "indonesia", "australia", "canada", "mexico",
	"argentina", "chile", "brazil", "south africa",
}

var Languages = []string{
	"english", "swedish", "french", "german", "spanish", "portuguese",
	"italian", "russian", "ukrainian", "polish", "turkish", "arabic",
	"persian", "hebrew", "amharic", "somali", "hausa", "yoruba", "zulu",
	"afrikaans", "hindi", "urdu", "bengali", "tamil", "japanese", "korean",
	"chinese", "vietnamese", "thai", "indonesian",
}

var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var Months = []string{
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
}

var Holidays = []string{
	"christmas", "easter", "good friday", "new year", "hanukkah",
	"yom kippur", "passover", "ramadan", "eid al-fitr", "eid al-adha",
	"diwali", "holi", "vesak", "lunar new year", "chuseok", "songkran",
	"nowruz", "thanksgiving", "halloween", "independence day", "labor day",
	"bastille day", "midsummer", "day of the dead", "carnival", "kwanzaa",
	"purim", "pongal",
}

var BookTitles = []string{
	"harry potter", "the hunger games", "the fault in our stars",
	"the outsiders", "to kill a mockingbird", "the great gatsby",
	"animal farm", "lord of the flies", "the catcher in the rye",
	"the hobbit", "the lord of the rings", "twilight", "percy jackson",
	"maze runner", "divergent", "romeo and juliet", "hamlet",
	"the diary of a young girl", "the chronicles of narnia",
}

// Organisation names written as acronyms, with their headquarters city.
type Organisation struct {
	ShortLower string
	ShortUpper string
	City       string
}

var Organisations = []Organisation{
	{ShortLower: "un", ShortUpper: "UN", City: "new york city"},
	{ShortLower: "eu", ShortUpper: "EU", City: "brussels"},
	{ShortLower: "nato", ShortUpper: "NATO", City: "brussels"},
}

// Titles used before a person's name.
var PersonTitles = []string{
	"president", "prime minister", "king", "queen", "professor",
}
