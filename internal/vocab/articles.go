// Package vocab holds the curated word pools and sentence templates the
// exercise generators sample from. The pools are data only; answer keys are
// always derived by the rules package, never read from here.
package vocab

// Nouns whose dictionary form takes "an". Used for sampling balance only.
var AnNouns = []string{
	"apple", "orange", "egg", "idea", "example", "engineer", "artist", "actor",
	"umbrella", "email", "answer", "invoice", "essay", "exercise", "argument",
	"ice cream", "airport", "island", "event", "experiment", "opportunity",
	"objective", "issue", "error", "accident", "adult", "animal", "editor",
	"author", "intern", "enemy", "image", "option", "outcome", "interest",
	"effect", "energy", "emotion", "episode", "estimate", "exception",
	"hour", "honest person", "honour", "honest mistake", "honourable act",
	"heir", "heiress", "herb", "hourglass", "honesty",
	"MBA student", "FBI agent", "MRI scan", "X-ray",
	"SOS message", "NSA report", "EU agreement", "AI system", "RNA molecule",
	"LCD screen", "LED display", "API call", "SQL error",
	"online order", "unexpected result", "important issue", "early start",
	"old habit", "open discussion", "interesting idea", "urgent email",
	"empty box", "easy question", "official answer", "excellent result",
	"unusual case", "international agreement", "advanced level", "academic article",
}

// Nouns whose dictionary form takes "a".
var ANouns = []string{
	"book", "car", "dog", "house", "table", "computer", "phone", "teacher",
	"student", "chair", "window", "garden", "picture", "lesson", "problem",
	"bike", "bag", "pen", "map", "job", "team", "project", "report", "meeting",
	"decision", "hotel", "haircut", "homework", "school", "game", "movie",
	"story", "plan", "goal", "rule", "test", "task", "skill", "habit", "career",
	"university student", "uniform", "European city", "one-time offer",
	"user account", "USB cable", "UFO story", "UK company", "unit test",
	"useful skill", "unique opportunity", "usual problem", "young person",
	"yearly report", "youth club", "yellow card", "yoga class", "yard sale",
	"historic building", "historical event", "heavy bag", "high score",
	"hard test", "helpful teacher", "local shop", "long journey",
	"modern house", "new rule", "normal day", "practical solution",
	"real problem", "simple answer", "strong opinion", "technical issue",
	"valuable lesson", "weekly meeting", "wrong answer", "working solution",
	"CIA officer", "URL address",
}

// Templates with the blank mid-sentence. {noun} is replaced by the sampled
// noun phrase; ___ marks where the student writes the article.
var ArticleTemplatesMid = []string{
	"I need ___ {noun} for class.",
	"She bought ___ {noun} yesterday.",
	"He is ___ {noun}.",
	"They saw ___ {noun} at the station.",
	"We heard ___ {noun} in the meeting.",
	"I ordered ___ {noun} online.",
	"She wants to become ___ {noun}.",
	"He found ___ {noun} on the floor.",
	"They discussed ___ {noun} in class.",
	"I watched ___ {noun} last night.",
	"This is ___ {noun} I like.",
	"That sounds like ___ {noun}.",
	"It was ___ {noun} I didn't expect.",
	"She mentioned ___ {noun} in her email.",
	"He works as ___ {noun}.",
	"They are looking for ___ {noun}.",
	"I have never seen ___ {noun} before.",
	"We need ___ {noun} right now.",
	"She explained ___ {noun} clearly.",
	"He described ___ {noun} in detail.",
	"It turned into ___ {noun} very quickly.",
	"That would be ___ {noun} to remember.",
	"This could be ___ {noun} for you.",
	"She reacted like ___ {noun}.",
	"He asked for ___ {noun} politely.",
	"They faced ___ {noun} at work.",
	"I was surprised by ___ {noun}.",
	"We considered ___ {noun} carefully.",
	"She gave ___ {noun} as an example.",
	"He ended up with ___ {noun}.",
	"There was ___ {noun} in the room.",
	"I noticed ___ {noun} immediately.",
	"She pointed out ___ {noun}.",
	"They complained about ___ {noun}.",
	"He focused on ___ {noun}.",
	"We talked about ___ {noun} later.",
	"She responded with ___ {noun}.",
	"I remember ___ {noun} clearly.",
	"They discovered ___ {noun} by chance.",
	"He dealt with ___ {noun} calmly.",
	"She was worried about ___ {noun}.",
	"I learned about ___ {noun} today.",
	"They prepared ___ {noun} in advance.",
	"He made ___ {noun} sound easy.",
	"We solved ___ {noun} together.",
	"She expected ___ {noun} to happen.",
	"I came across ___ {noun} online.",
	"They treated it like ___ {noun}.",
}

// Templates that open with the blank. Some carry a built-in adjective before
// {noun}; the generator re-derives the answer from the final phrase either way.
var ArticleTemplatesInitial = []string{
	"___ {noun} was left on the table.",
	"___ {noun} is missing.",
	"___ {noun} arrived this morning.",
	"___ {noun} caused a problem.",
	"___ {noun} appeared suddenly.",
	"___ {noun} surprised everyone.",
	"___ {noun} was discussed in class.",
	"___ {noun} made the news.",
	"___ {noun} is required for the task.",
	"___ {noun} changed everything.",
	"___ unusual {noun} happened yesterday.",
	"___ interesting {noun} came up in class.",
	"___ important {noun} was mentioned.",
	"___ unexpected {noun} caused confusion.",
	"___ excellent {noun} solved the issue.",
	"___ urgent {noun} needs attention.",
	"___ old {noun} was found.",
	"___ honest {noun} can be helpful.",
	"___ early {noun} made a difference.",
	"___ simple {noun} worked well.",
	"___ {noun} from the report was surprising.",
	"___ {noun} in the email was unclear.",
	"___ {noun} at the meeting stood out.",
	"___ {noun} on the desk belongs to me.",
	"___ {noun} in the story was memorable.",
	"___ {noun} for the project is needed.",
	"___ {noun} during the lesson caused laughter.",
	"___ {noun} on the screen caught attention.",
	"___ {noun} in the test was difficult.",
	"___ {noun} at the start matters most.",
}

// Adjectives injected before single-word nouns. An injected adjective changes
// the sound the article agrees with.
var ArticleAdjectives = []string{
	"unusual", "interesting", "important", "unexpected", "excellent", "urgent",
	"honest", "early", "simple", "old", "advanced", "international", "academic",
	"official", "emergency", "expensive", "easy", "innovative", "ordinary",
	"obvious", "useful", "unique", "European", "young", "yearly", "local",
	"modern", "practical", "real", "valuable",
}
