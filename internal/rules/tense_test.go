package rules

import "testing"

var seeVerb = Verb{Base: "see", Past: "saw", Participle: "seen"}

func TestPerfectAuxiliary(t *testing.T) {
	if got := PerfectAuxiliary(true); got != "has" {
		t.Errorf("PerfectAuxiliary(true) = %q, want %q", got, "has")
	}
	if got := PerfectAuxiliary(false); got != "have" {
		t.Errorf("PerfectAuxiliary(false) = %q, want %q", got, "have")
	}
}

func TestPresentPerfectAnswer(t *testing.T) {
	tests := []struct {
		form          SentenceForm
		thirdSingular bool
		want          string
	}{
		{FormStatement, true, "has seen"},
		{FormStatement, false, "have seen"},
		{FormNegative, true, "has seen"},
		{FormNegative, false, "have seen"},
		{FormQuestion, true, "Has"},
		{FormQuestion, false, "Have"},
	}

	for _, tt := range tests {
		got := PresentPerfectAnswer(tt.form, tt.thirdSingular, seeVerb)
		if got != tt.want {
			t.Errorf("PresentPerfectAnswer(%s, %v) = %q, want %q",
				tt.form, tt.thirdSingular, got, tt.want)
		}
	}
}

func TestPastSimpleAnswer(t *testing.T) {
	tests := []struct {
		form SentenceForm
		want string
	}{
		{FormStatement, "saw"},
		{FormNegative, "saw"},
		{FormQuestion, "Did"},
	}

	for _, tt := range tests {
		if got := PastSimpleAnswer(tt.form, seeVerb); got != tt.want {
			t.Errorf("PastSimpleAnswer(%s) = %q, want %q", tt.form, got, tt.want)
		}
	}
}
