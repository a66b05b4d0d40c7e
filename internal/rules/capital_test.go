package rules

import "testing"

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"the lord of the rings", "The Lord of the Rings"},
		{"a tale of two cities", "A Tale of Two Cities"},
		{"war and peace", "War and Peace"},
		{"the catcher in the rye", "The Catcher in the Rye"},
		{"of mice and men", "Of Mice and Men"},
		{"something to live for", "Something to Live For"},
		{"the united nations", "The United Nations"},
		{"the eu parliament", "The EU Parliament"},
		{"nato summit", "NATO Summit"},
		{"a well-known writer", "A Well-Known Writer"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitleCaseIsIdempotent(t *testing.T) {
	titles := []string{
		"the lord of the rings",
		"a well-known writer",
		"the eu parliament",
	}
	for _, in := range titles {
		once := TitleCase(in)
		if twice := TitleCase(once); twice != once {
			t.Errorf("TitleCase not idempotent: %q then %q", once, twice)
		}
	}
}

func TestCapitalizeWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"london", "London"},
		{"London", "London"},
		{"a", "A"},
		{"", ""},
		{"o'brien", "O'brien"},
	}

	for _, tt := range tests {
		if got := CapitalizeWord(tt.in); got != tt.want {
			t.Errorf("CapitalizeWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
