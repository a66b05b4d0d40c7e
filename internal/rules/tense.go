package rules

// Verb carries the stored principal parts of a verb used in tense exercises.
type Verb struct {
	Base       string
	Past       string
	Participle string
}

// SentenceForm is the syntactic shape of a generated tense sentence.
type SentenceForm string

const (
	FormStatement SentenceForm = "statement"
	FormNegative  SentenceForm = "negative"
	FormQuestion  SentenceForm = "question"
)

// PerfectAuxiliary returns the present-perfect auxiliary agreeing with the
// subject: "has" for third-person singular, otherwise "have".
func PerfectAuxiliary(thirdSingular bool) string {
	if thirdSingular {
		return "has"
	}
	return "have"
}

// PresentPerfectAnswer builds the blank-filling answer for a present-perfect
// sentence. Statements and negatives both answer with auxiliary + participle
// ("not" is fixed template text); questions answer with the sentence-initial
// auxiliary alone.
func PresentPerfectAnswer(form SentenceForm, thirdSingular bool, v Verb) string {
	aux := PerfectAuxiliary(thirdSingular)
	if form == FormQuestion {
		return CapitalizeWord(aux)
	}
	return aux + " " + v.Participle
}

// PastSimpleAnswer builds the blank-filling answer for a past-simple
// sentence. Questions answer with the auxiliary "Did"; statements and
// negatives answer with the stored past form.
func PastSimpleAnswer(form SentenceForm, v Verb) string {
	if form == FormQuestion {
		return "Did"
	}
	return v.Past
}
